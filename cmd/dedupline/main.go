package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yhlooo/dedupline/pkg/commands"
)

func main() {
	cmd := commands.NewCommand(filepath.Base(os.Args[0]))
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

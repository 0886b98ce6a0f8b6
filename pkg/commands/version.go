package commands

import (
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yhlooo/dedupline/pkg/version"
)

// NewVersionOptions 创建默认的 version 子命令选项
func NewVersionOptions() VersionOptions {
	return VersionOptions{}
}

// VersionOptions version 子命令选项
type VersionOptions struct {
	// 输出格式
	// 空（文本）或 json
	OutputFormat string
}

// Validate 校验选项
func (opts *VersionOptions) Validate() error {
	switch opts.OutputFormat {
	case "", "json":
	default:
		return fmt.Errorf("invalid output format: %s (must be 'json' or empty)", opts.OutputFormat)
	}
	return nil
}

// AddPFlags 将选项绑定到命令行
func (opts *VersionOptions) AddPFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&opts.OutputFormat, "output-format", "f", opts.OutputFormat, "Output format. One of (json).")
}

var versionTpl = template.Must(template.New("Version").Parse(`Version:   {{ .Version }}
GitCommit: {{ .GitCommit }}
GoVersion: {{ .GoVersion }}
Arch:      {{ .Arch }}
OS:        {{ .OS }}
`))

// newVersionCommand 创建 version 子命令
func newVersionCommand() *cobra.Command {
	opts := NewVersionOptions()

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}

			info := version.GetVersionInfo()
			out := cmd.OutOrStdout()

			if opts.OutputFormat == "json" {
				raw, err := json.Marshal(info)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(raw))
				return err
			}
			return versionTpl.Execute(out, info)
		},
	}

	opts.AddPFlags(cmd.Flags())

	return cmd
}

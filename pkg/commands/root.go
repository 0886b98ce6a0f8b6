package commands

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yhlooo/dedupline/pkg/filters"
	"github.com/yhlooo/dedupline/pkg/log"
	"github.com/yhlooo/dedupline/pkg/version"
)

// NewGlobalOptions 创建一个默认 GlobalOptions
func NewGlobalOptions() GlobalOptions {
	return GlobalOptions{
		Verbosity: 0,
	}
}

// GlobalOptions 全局选项
type GlobalOptions struct {
	// 日志数量级别（ 0 / 1 / 2 ）
	Verbosity uint32
	// 是否开启调试模式
	Debug bool
}

// Validate 校验选项是否合法
func (o *GlobalOptions) Validate() error {
	if o.Verbosity > 2 {
		return fmt.Errorf("invalid log verbosity: %d (expected: 0, 1 or 2)", o.Verbosity)
	}
	return nil
}

// AddPFlags 将选项绑定到命令行参数
func (o *GlobalOptions) AddPFlags(fs *pflag.FlagSet) {
	fs.Uint32VarP(&o.Verbosity, "verbose", "v", o.Verbosity, "Number for the log level verbosity (0, 1, or 2)")
	fs.BoolVar(&o.Debug, "debug", false, "Run in debug mode (same as -v 2)")
}

// NewDedupOptions 创建默认 DedupOptions
func NewDedupOptions() DedupOptions {
	return DedupOptions{
		FalsePositiveRate: filters.DefaultFalsePositiveRate,
	}
}

// DedupOptions 去重选项
type DedupOptions struct {
	// 预估的不同行数量
	ExpectedLines uint
	// 布隆过滤器误判率
	FalsePositiveRate float64
}

// Validate 校验选项是否合法
func (o *DedupOptions) Validate() error {
	filterOpts := o.FilterOptions()
	return filterOpts.Validate()
}

// FilterOptions 转换为过滤器选项
func (o *DedupOptions) FilterOptions() filters.Options {
	return filters.Options{
		ExpectedLines:     o.ExpectedLines,
		FalsePositiveRate: o.FalsePositiveRate,
	}
}

// AddPFlags 将选项绑定到命令行参数
func (o *DedupOptions) AddPFlags(fs *pflag.FlagSet) {
	fs.UintVar(&o.ExpectedLines, "expected-lines", o.ExpectedLines,
		"Estimated number of distinct lines. When set, lookups are accelerated by a bloom filter")
	fs.Float64Var(&o.FalsePositiveRate, "false-positive-rate", o.FalsePositiveRate,
		"Bloom filter false positive rate, only used with --expected-lines")
}

// NewCommand 创建根命令
func NewCommand(name string) *cobra.Command {
	globalOpts := NewGlobalOptions()
	dedupOpts := NewDedupOptions()

	cmd := &cobra.Command{
		Use:           name,
		Short:         "Print each distinct line of standard input once, in first-seen order.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := globalOpts.Validate(); err != nil {
				return err
			}

			verbosity := globalOpts.Verbosity
			if globalOpts.Debug {
				verbosity = 2
			}

			// 标准输出用于数据，日志只输出到标准错误
			logger := log.NewLogger(cmd.ErrOrStderr(), verbosity)
			cmd.SetContext(logr.NewContext(cmd.Context(), logger))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dedupOpts.Validate(); err != nil {
				return err
			}

			ctx := log.WithRunID(cmd.Context())
			if dedupOpts.ExpectedLines == 0 {
				return filters.Process(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			}

			f, err := filters.NewFilter(dedupOpts.FilterOptions())
			if err != nil {
				return fmt.Errorf("init filter error: %w", err)
			}
			return f.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	globalOpts.AddPFlags(cmd.PersistentFlags())
	dedupOpts.AddPFlags(cmd.Flags())

	cmd.AddCommand(
		newVersionCommand(),
	)

	return cmd
}

package filters

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/yhlooo/dedupline/pkg/deduplicators"
	"github.com/yhlooo/dedupline/pkg/lines"
)

// DefaultFalsePositiveRate 默认的布隆过滤器误判率
const DefaultFalsePositiveRate = 0.01

// MaxExpectedLines 预估不同行数量的上限
//
// 布隆过滤器按预估值一次性分配，误判率 0.01 时约 80 MiB
const MaxExpectedLines = 1 << 26

// MinFalsePositiveRate 布隆过滤器误判率的下限
const MinFalsePositiveRate = 1e-6

// Options 过滤选项
type Options struct {
	// 预估的不同行数量
	// 为 0 时使用 deduplicators.Set ，否则使用 deduplicators.BloomGuardedSet
	ExpectedLines uint
	// 布隆过滤器误判率，仅 ExpectedLines 大于 0 时有效
	FalsePositiveRate float64
}

// Validate 校验选项
func (o *Options) Validate() error {
	if o.ExpectedLines > MaxExpectedLines {
		return fmt.Errorf("invalid expected lines: %d (expected: <= %d)", o.ExpectedLines, MaxExpectedLines)
	}
	if o.ExpectedLines > 0 && (o.FalsePositiveRate < MinFalsePositiveRate || o.FalsePositiveRate >= 1) {
		return fmt.Errorf("invalid false positive rate: %v (expected: %v <= rate < 1)", o.FalsePositiveRate, MinFalsePositiveRate)
	}
	return nil
}

// NewFilter 创建去重过滤器
func NewFilter(opts Options) (*Filter, error) {
	if opts.ExpectedLines > 0 && opts.FalsePositiveRate == 0 {
		opts.FalsePositiveRate = DefaultFalsePositiveRate
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Filter{opts: opts}, nil
}

// Filter 按首次出现顺序输出不同行的去重过滤器
//
// 每次 Run 使用独立的已见集合，同一个 Filter 可以处理多个流，但单个流的处理是单线程的
type Filter struct {
	opts Options
}

// newDeduplicator 为一次运行创建已见集合
func (f *Filter) newDeduplicator() deduplicators.Deduplicator {
	if f.opts.ExpectedLines > 0 {
		return deduplicators.NewBloomGuardedSet(f.opts.ExpectedLines, f.opts.FalsePositiveRate)
	}
	return deduplicators.NewSet(0)
}

// Run 从 r 读取行，将每个不同行的首次出现写入 w
//
// 每个输出行在读取下一行前写入 w ，不做额外缓冲。
// 读写失败时立即返回包装了 ErrRead 或 ErrWrite 的错误，已写出的内容不会回滚。
func (f *Filter) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	logger := logr.FromContextOrDiscard(ctx).WithName("filter")

	d := f.newDeduplicator()
	logger.V(1).Info("start deduplicating", "deduplicator", fmt.Sprintf("%T", d))

	for line, err := range Unique(lines.Lines(r), d) {
		if err != nil {
			return fmt.Errorf("%w: read line error: %w", ErrRead, err)
		}
		if err := writeLine(w, line); err != nil {
			return fmt.Errorf("%w: write line error: %w", ErrWrite, err)
		}
	}

	logger.V(1).Info("input exhausted", "distinctLines", d.Len())
	if bd, ok := d.(*deduplicators.BloomGuardedSet); ok {
		logger.V(2).Info("bloom filter statistics", "falsePositives", bd.FalsePositives())
	}
	return nil
}

// writeLine 将一整行写入 w
func writeLine(w io.Writer, line []byte) error {
	n, err := w.Write(line)
	if err != nil {
		return err
	}
	if n != len(line) {
		return io.ErrShortWrite
	}
	return nil
}

// Process 使用默认选项对 r 去重并写入 w
func Process(ctx context.Context, r io.Reader, w io.Writer) error {
	f, err := NewFilter(Options{})
	if err != nil {
		return err
	}
	return f.Run(ctx, r, w)
}

package filters

import (
	"iter"

	"github.com/yhlooo/dedupline/pkg/deduplicators"
)

// Unique 返回只包含 seq 中每个不同行首次出现的惰性序列
//
// 输出顺序即首次出现的顺序。 seq 产生的错误原样传递并结束序列。
// 行在被消费方成功接收（ yield 返回 true ）后才记录到 d ，
// 因此 d 中只包含已输出的行。
// 返回的序列只能遍历一次，且与 d 共享状态，重新处理需要新的输入和新的 d 。
func Unique(seq iter.Seq2[[]byte, error], d deduplicators.Deduplicator) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for line, err := range seq {
			if err != nil {
				yield(nil, err)
				return
			}
			if d.Contains(line) {
				continue
			}
			if !yield(line, nil) {
				return
			}
			d.Add(line)
		}
	}
}

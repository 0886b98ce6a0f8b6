package lines

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Terminator 行结束符
const Terminator = '\n'

// Lines 返回按行读取 r 的惰性序列
//
// 每一行包含其原始的结束符（ "\r\n" 原样保留），输入末尾没有结束符的部分也作为完整的一行。
// 读取出错时产生一次 (nil, err) 后结束，不会产生读到一半的行。
// 每次产生的切片都是新分配的，调用方可以持有。
func Lines(r io.Reader) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadBytes(Terminator)
			switch {
			case err == nil:
				if !yield(line, nil) {
					return
				}
			case errors.Is(err, io.EOF):
				if len(line) > 0 {
					yield(line, nil)
				}
				return
			default:
				yield(nil, err)
				return
			}
		}
	}
}

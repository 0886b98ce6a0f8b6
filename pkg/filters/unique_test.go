package filters

import (
	"errors"
	"iter"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yhlooo/dedupline/pkg/deduplicators"
)

// seqOf 返回依次产生 items 的序列
func seqOf(items ...string) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for _, item := range items {
			if !yield([]byte(item), nil) {
				return
			}
		}
	}
}

// uniqueStrings 对 items 去重并返回结果
func uniqueStrings(t *testing.T, items []string) []string {
	var ret []string
	for line, err := range Unique(seqOf(items...), deduplicators.NewSet(0)) {
		assert.NoError(t, err)
		ret = append(ret, string(line))
	}
	return ret
}

// TestUnique 测试 Unique
func TestUnique(t *testing.T) {
	a := assert.New(t)

	cases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "mixed", input: []string{"a\n", "b\n", "a\n", "c\n", "b\n"}, expected: []string{"a\n", "b\n", "c\n"}},
		{name: "empty", input: nil, expected: nil},
		{name: "all-same", input: []string{"x\n", "x\n", "x\n"}, expected: []string{"x\n"}},
		{name: "unterminated", input: []string{"p\n", "q"}, expected: []string{"p\n", "q"}},
		{name: "case-sensitive", input: []string{"line\n", "Line\n"}, expected: []string{"line\n", "Line\n"}},
		{name: "terminator-sensitive", input: []string{"q\n", "q", "q\n", "q"}, expected: []string{"q\n", "q"}},
		{name: "blank-lines", input: []string{"\n", "a\n", "\n", "\n"}, expected: []string{"\n", "a\n"}},
	}

	for _, c := range cases {
		a.Equal(c.expected, uniqueStrings(t, c.input), c.name)
	}
}

// randomLines 生成包含大量重复的随机输入
func randomLines(r *rand.Rand, n, distinct int) []string {
	ret := make([]string, n)
	for i := range ret {
		ret[i] = "v" + strconv.Itoa(r.Intn(distinct)) + "\n"
	}
	return ret
}

// TestUnique_Properties 测试 Unique 在随机输入上的性质
func TestUnique_Properties(t *testing.T) {
	a := assert.New(t)

	r := rand.New(rand.NewSource(7134))
	for round := 0; round < 50; round++ {
		input := randomLines(r, r.Intn(500), 1+r.Intn(60))
		output := uniqueStrings(t, input)

		// 每个不同的行恰好出现一次
		distinct := map[string]struct{}{}
		for _, line := range input {
			distinct[line] = struct{}{}
		}
		seen := map[string]struct{}{}
		for _, line := range output {
			_, dup := seen[line]
			a.False(dup, "line %q emitted twice", line)
			seen[line] = struct{}{}
		}
		a.Equal(distinct, seen)

		// 输出是输入的子序列，且顺序为首次出现顺序
		var firsts []string
		firstSeen := map[string]struct{}{}
		for _, line := range input {
			if _, ok := firstSeen[line]; ok {
				continue
			}
			firstSeen[line] = struct{}{}
			firsts = append(firsts, line)
		}
		a.Equal(firsts, output)

		// 对输出再次去重结果不变
		a.Equal(output, uniqueStrings(t, output))
	}
}

// TestUnique_Streaming 测试每个首次出现的行在读取下一行前产生
func TestUnique_Streaming(t *testing.T) {
	a := assert.New(t)

	input := []string{"a\n", "b\n", "a\n", "c\n"}
	var output []string
	pulled := 0
	seq := func(yield func([]byte, error) bool) {
		for i, item := range input {
			// 拉取第 i 行时，之前的首次出现的行都已输出
			a.Equal(uniqueStrings(t, input[:i]), output, "before pulling line %d", i)
			pulled++
			if !yield([]byte(item), nil) {
				return
			}
		}
	}

	for line, err := range Unique(seq, deduplicators.NewSet(0)) {
		a.NoError(err)
		output = append(output, string(line))
	}
	a.Equal(len(input), pulled)
	a.Equal([]string{"a\n", "b\n", "c\n"}, output)
}

// TestUnique_Error 测试输入错误的传递
func TestUnique_Error(t *testing.T) {
	a := assert.New(t)

	errBroken := errors.New("broken")
	seq := func(yield func([]byte, error) bool) {
		if !yield([]byte("a\n"), nil) {
			return
		}
		if !yield(nil, errBroken) {
			return
		}
		yield([]byte("b\n"), nil)
	}

	d := deduplicators.NewSet(0)
	var output []string
	var gotErr error
	for line, err := range Unique(seq, d) {
		if err != nil {
			gotErr = err
			continue
		}
		output = append(output, string(line))
	}
	a.Equal(errBroken, gotErr)
	a.Equal([]string{"a\n"}, output)
	a.Equal(1, d.Len())
}

// TestUnique_Break 测试提前结束遍历
func TestUnique_Break(t *testing.T) {
	a := assert.New(t)

	d := deduplicators.NewSet(0)
	for line := range Unique(seqOf("a\n", "b\n", "c\n"), d) {
		a.Equal("a\n", string(line))
		break
	}
	// 未被成功接收的行不会被记录
	a.Equal(0, d.Len())
}

// TestUnique_RecordAfterYield 测试行在被成功接收后才记录
func TestUnique_RecordAfterYield(t *testing.T) {
	a := assert.New(t)

	d := deduplicators.NewSet(0)
	var output []string
	for line, err := range Unique(seqOf("a\n", "b\n", "a\n", "c\n"), d) {
		a.NoError(err)
		// 处理当前行时尚未记录
		a.False(d.Contains(line))
		if string(line) == "c\n" {
			// 模拟写出失败
			break
		}
		output = append(output, string(line))
	}
	a.Equal([]string{"a\n", "b\n"}, output)
	a.Equal(2, d.Len())
	a.True(d.Contains([]byte("a\n")))
	a.True(d.Contains([]byte("b\n")))
	a.False(d.Contains([]byte("c\n")))
}

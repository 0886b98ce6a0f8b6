package deduplicators

import (
	"math"

	"github.com/bits-and-blooms/bloom/v3"
)

// NewBloomGuardedSet 创建由布隆过滤器前置加速的精确 Deduplicator 实现
//
// n 为预估的不同内容数量， fp 为布隆过滤器期望的误判率。
// n 的合法范围由调用方校验，过大的值会导致布隆过滤器分配失败
func NewBloomGuardedSet(n uint, fp float64) *BloomGuardedSet {
	hint := maxSizeHint
	if n < uint(math.MaxInt) {
		hint = int(n)
	}
	return &BloomGuardedSet{
		bloom: bloom.NewWithEstimates(n, fp),
		set:   NewSet(hint),
	}
}

// BloomGuardedSet 由布隆过滤器前置加速的精确 Deduplicator 实现
//
// 布隆过滤器判定不存在时直接记录，跳过哈希表查找；判定存在时以哈希表结果为准，
// 因此结果与 Set 完全一致，不会因误判丢弃内容
type BloomGuardedSet struct {
	bloom *bloom.BloomFilter
	set   *Set

	// 布隆过滤器判定存在但哈希表中不存在的次数
	falsePositives uint64
}

var _ Deduplicator = (*BloomGuardedSet)(nil)

// Duplicate 校验是否重复的并记录下该内容
func (d *BloomGuardedSet) Duplicate(data []byte) bool {
	if !d.bloom.TestOrAdd(data) {
		// 一定是新内容
		d.set.Add(data)
		return false
	}

	if d.set.Duplicate(data) {
		return true
	}
	d.falsePositives++
	return false
}

// Contains 校验是否已记录该内容
func (d *BloomGuardedSet) Contains(data []byte) bool {
	if !d.bloom.Test(data) {
		return false
	}
	if d.set.Contains(data) {
		return true
	}
	d.falsePositives++
	return false
}

// Add 记录该内容
func (d *BloomGuardedSet) Add(data []byte) {
	d.bloom.Add(data)
	d.set.Add(data)
}

// Len 返回已记录的不同内容数量
func (d *BloomGuardedSet) Len() int {
	return d.set.Len()
}

// FalsePositives 返回布隆过滤器误判的次数
func (d *BloomGuardedSet) FalsePositives() uint64 {
	return d.falsePositives
}

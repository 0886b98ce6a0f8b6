package deduplicators

// maxSizeHint 预分配的上限，超出部分按需增长
const maxSizeHint = 1 << 20

// NewSet 创建基于哈希表的精确 Deduplicator 实现
//
// sizeHint 为预估的不同内容数量，仅用于预分配， 0 表示不预分配
func NewSet(sizeHint int) *Set {
	return &Set{
		seen: make(map[string]struct{}, clampSizeHint(sizeHint)),
	}
}

// clampSizeHint 将预分配大小限制在 [0, maxSizeHint]
func clampSizeHint(sizeHint int) int {
	return min(max(sizeHint, 0), maxSizeHint)
}

// Set 基于哈希表的精确 Deduplicator 实现
//
// 只增不减，不做任何淘汰
type Set struct {
	seen map[string]struct{}
}

var _ Deduplicator = (*Set)(nil)

// Duplicate 校验是否重复的并记录下该内容
func (d *Set) Duplicate(data []byte) bool {
	if d.Contains(data) {
		return true
	}
	d.Add(data)
	return false
}

// Contains 校验是否已记录该内容
func (d *Set) Contains(data []byte) bool {
	// string(data) 作为索引查找时编译器不会产生拷贝
	_, ok := d.seen[string(data)]
	return ok
}

// Add 记录该内容
func (d *Set) Add(data []byte) {
	d.seen[string(data)] = struct{}{}
}

// Len 返回已记录的不同内容数量
func (d *Set) Len() int {
	return len(d.seen)
}

package deduplicators

// Deduplicator 去重器
//
// 实现仅由单个处理流程独占使用，不保证并发安全
type Deduplicator interface {
	// Duplicate 校验是否重复的并记录下该内容
	//
	// 未记录过时记录该内容并返回 false ，已记录过时返回 true 且不做任何修改
	Duplicate(data []byte) bool
	// Contains 校验是否已记录该内容，不做任何修改
	Contains(data []byte) bool
	// Add 记录该内容
	Add(data []byte)
	// Len 返回已记录的不同内容数量
	Len() int
}

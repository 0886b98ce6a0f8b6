package filters

import "errors"

var (
	// ErrRead 读取输入失败
	ErrRead = errors.New("ReadFailed")
	// ErrWrite 写入输出失败
	ErrWrite = errors.New("WriteFailed")
)

// IsIOError 判断是否输入输出失败
func IsIOError(err error) bool {
	return errors.Is(err, ErrRead) || errors.Is(err, ErrWrite)
}

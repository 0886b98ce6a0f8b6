package log

import (
	"context"
	"io"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewLogger 创建输出到 w 的 logger
//
// verbosity 为 0 / 1 / 2 时分别输出 Info / Debug / Trace 级别日志
func NewLogger(w io.Writer, verbosity uint32) logr.Logger {
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(w)
	switch verbosity {
	case 0:
		logrusLogger.Level = logrus.InfoLevel
	case 1:
		logrusLogger.Level = logrus.DebugLevel
	default:
		logrusLogger.Level = logrus.TraceLevel
	}
	return logrusr.New(logrusLogger)
}

// WithRunID 返回 logger 带有新运行 ID 的上下文
func WithRunID(ctx context.Context) context.Context {
	logger := logr.FromContextOrDiscard(ctx).WithValues("run", uuid.New().String())
	return logr.NewContext(ctx, logger)
}

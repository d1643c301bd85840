// Package log 是 logrus 的一层薄封装，整个项目都通过这里打日志，方便统一格式和级别。
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level 是 logrus 中级别的别名。
type Level = logrus.Level

// Fields 是 logrus 中字段集合的别名。
type Fields = logrus.Fields

// 日志级别，只有大于或等于当前级别的日志才会输出
var (
	DebugLevel = logrus.DebugLevel
	InfoLevel  = logrus.InfoLevel
	WarnLevel  = logrus.WarnLevel
	ErrorLevel = logrus.ErrorLevel
)

// Setup 设置日志格式：完整时间戳，格式是 年-月-日 时:分。debug 为 true 时输出调试日志
func Setup(w io.Writer, debug bool) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04",
	})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.InfoLevel)
}

// SetLevel 设置日志级别
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// CheckErr 检查错误是否不为 nil，不为 nil 时按给定级别记录
func CheckErr(level Level, err error) {
	if err == nil {
		return
	}
	switch level {
	case logrus.WarnLevel:
		logrus.Warn(err)
	case logrus.ErrorLevel:
		logrus.Error(err)
	case logrus.InfoLevel:
		logrus.Info(err)
	default:
		logrus.Debug(err)
	}
}

// WithField 添加一个字段到日志记录
func WithField(key string, value interface{}) *logrus.Entry {
	return logrus.WithField(key, value)
}

// WithFields 添加多个字段到日志记录
func WithFields(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

// Infof 格式化并记录信息日志
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}

// Warnf 格式化并记录警告日志
func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}

// Debugf 格式化并记录调试日志
func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

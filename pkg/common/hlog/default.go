package hlog

import (
	"fmt"
	"io"
	"log"
	"os"
)

var logger FullLogger = &defaultLogger{
	level:  LevelInfo,
	stdlog: log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile|log.Lmicroseconds),
	depth:  4,
}

// SetOutput 设置默认日志的输出目标。
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel 设置默认日志的级别，低于该级别的日志将被丢弃。
func SetLevel(lv Level) {
	logger.SetLevel(lv)
}

// SetLogger 替换默认日志实现，系统日志也会随之替换。
func SetLogger(v FullLogger) {
	logger = v
	sysLogger.replace(v)
}

// DefaultLogger 返回当前的默认日志。
func DefaultLogger() FullLogger {
	return logger
}

// Debugf 以调试级别调用默认日志。
func Debugf(format string, v ...any) {
	logger.Debugf(format, v...)
}

// Infof 以信息级别调用默认日志。
func Infof(format string, v ...any) {
	logger.Infof(format, v...)
}

// Warnf 以警告级别调用默认日志。
func Warnf(format string, v ...any) {
	logger.Warnf(format, v...)
}

// Errorf 以错误级别调用默认日志。
func Errorf(format string, v ...any) {
	logger.Errorf(format, v...)
}

type defaultLogger struct {
	stdlog *log.Logger
	level  Level
	depth  int
}

func (ll *defaultLogger) SetOutput(w io.Writer) {
	ll.stdlog.SetOutput(w)
}

func (ll *defaultLogger) SetLevel(lv Level) {
	ll.level = lv
}

func (ll *defaultLogger) logf(lv Level, format *string, v ...any) {
	if ll.level > lv {
		return
	}
	msg := lv.toString()
	if format != nil {
		msg += fmt.Sprintf(*format, v...)
	} else {
		msg += fmt.Sprint(v...)
	}
	ll.stdlog.Output(ll.depth, msg)
	if lv == LevelFatal {
		os.Exit(1)
	}
}

func (ll *defaultLogger) Fatal(v ...any)  { ll.logf(LevelFatal, nil, v...) }
func (ll *defaultLogger) Error(v ...any)  { ll.logf(LevelError, nil, v...) }
func (ll *defaultLogger) Warn(v ...any)   { ll.logf(LevelWarn, nil, v...) }
func (ll *defaultLogger) Notice(v ...any) { ll.logf(LevelNotice, nil, v...) }
func (ll *defaultLogger) Info(v ...any)   { ll.logf(LevelInfo, nil, v...) }
func (ll *defaultLogger) Debug(v ...any)  { ll.logf(LevelDebug, nil, v...) }
func (ll *defaultLogger) Trace(v ...any)  { ll.logf(LevelTrace, nil, v...) }

func (ll *defaultLogger) Fatalf(format string, v ...any)  { ll.logf(LevelFatal, &format, v...) }
func (ll *defaultLogger) Errorf(format string, v ...any)  { ll.logf(LevelError, &format, v...) }
func (ll *defaultLogger) Warnf(format string, v ...any)   { ll.logf(LevelWarn, &format, v...) }
func (ll *defaultLogger) Noticef(format string, v ...any) { ll.logf(LevelNotice, &format, v...) }
func (ll *defaultLogger) Infof(format string, v ...any)   { ll.logf(LevelInfo, &format, v...) }
func (ll *defaultLogger) Debugf(format string, v ...any)  { ll.logf(LevelDebug, &format, v...) }
func (ll *defaultLogger) Tracef(format string, v ...any)  { ll.logf(LevelTrace, &format, v...) }

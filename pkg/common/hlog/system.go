package hlog

import (
	"io"
	"sync"
)

const systemLogPrefix = "HTTPTYPES: "

var sysLogger = &systemLogger{logger: logger, prefix: systemLogPrefix}

// SystemLogger 返回库内部使用的日志，每条日志带有统一前缀。
func SystemLogger() FullLogger {
	return sysLogger
}

type systemLogger struct {
	mu     sync.RWMutex
	logger FullLogger
	prefix string
}

func (ll *systemLogger) replace(l FullLogger) {
	ll.mu.Lock()
	ll.logger = l
	ll.mu.Unlock()
}

func (ll *systemLogger) get() FullLogger {
	ll.mu.RLock()
	defer ll.mu.RUnlock()
	return ll.logger
}

func (ll *systemLogger) SetOutput(w io.Writer) { ll.get().SetOutput(w) }
func (ll *systemLogger) SetLevel(lv Level)     { ll.get().SetLevel(lv) }

func (ll *systemLogger) Fatal(v ...any)  { ll.get().Fatal(ll.prepend(v)...) }
func (ll *systemLogger) Error(v ...any)  { ll.get().Error(ll.prepend(v)...) }
func (ll *systemLogger) Warn(v ...any)   { ll.get().Warn(ll.prepend(v)...) }
func (ll *systemLogger) Notice(v ...any) { ll.get().Notice(ll.prepend(v)...) }
func (ll *systemLogger) Info(v ...any)   { ll.get().Info(ll.prepend(v)...) }
func (ll *systemLogger) Debug(v ...any)  { ll.get().Debug(ll.prepend(v)...) }
func (ll *systemLogger) Trace(v ...any)  { ll.get().Trace(ll.prepend(v)...) }

func (ll *systemLogger) Fatalf(format string, v ...any)  { ll.get().Fatalf(ll.prefix+format, v...) }
func (ll *systemLogger) Errorf(format string, v ...any)  { ll.get().Errorf(ll.prefix+format, v...) }
func (ll *systemLogger) Warnf(format string, v ...any)   { ll.get().Warnf(ll.prefix+format, v...) }
func (ll *systemLogger) Noticef(format string, v ...any) { ll.get().Noticef(ll.prefix+format, v...) }
func (ll *systemLogger) Infof(format string, v ...any)   { ll.get().Infof(ll.prefix+format, v...) }
func (ll *systemLogger) Debugf(format string, v ...any)  { ll.get().Debugf(ll.prefix+format, v...) }
func (ll *systemLogger) Tracef(format string, v ...any)  { ll.get().Tracef(ll.prefix+format, v...) }

func (ll *systemLogger) prepend(v []any) []any {
	return append([]any{ll.prefix}, v...)
}

package hlog

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := &defaultLogger{stdlog: log.New(&buf, "", 0), level: LevelWarn, depth: 4}

	l.Infof("丢弃 %d", 1)
	assert.Empty(t, buf.String())

	l.Warnf("保留 %d", 2)
	assert.Equal(t, "[Warn] 保留 2\n", buf.String())

	buf.Reset()
	l.Error("a", "b")
	assert.Equal(t, "[Error] ab\n", buf.String())
}

func TestSystemLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	old := DefaultLogger()
	defer SetLogger(old)

	SetLogger(&defaultLogger{stdlog: log.New(&buf, "", 0), level: LevelDebug, depth: 4})
	SystemLogger().Debugf("拒绝字段 %s", ":bogus")
	assert.Equal(t, "[Debug] HTTPTYPES: 拒绝字段 :bogus\n", buf.String())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "[Notice] ", LevelNotice.toString())
	assert.Equal(t, "[?9] ", Level(9).toString())
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("重复的伪标头")

func TestError(t *testing.T) {
	t.Parallel()

	err := New(errSentinel, ErrorTypeParse, ":method")
	assert.Equal(t, "重复的伪标头: :method", err.Error())
	assert.True(t, errors.Is(err, errSentinel))
	assert.True(t, err.IsType(ErrorTypeParse|ErrorTypeDecode))
	assert.False(t, err.IsType(ErrorTypeDecode))

	wrapped := fmt.Errorf("解码失败：%w", err)
	assert.Equal(t, ErrorTypeParse, TypeOf(wrapped))
	assert.Equal(t, ErrorType(0), TypeOf(errSentinel))

	assert.Equal(t, "x", New(errors.New("x"), ErrorTypePublic, nil).Error())
	assert.Equal(t, "状态码 1000: code", Newf(ErrorTypePublic, "code", "状态码 %d", 1000).Error())
}

func TestRetype(t *testing.T) {
	t.Parallel()

	err := Retype(fmt.Errorf("外层：%w", New(errSentinel, ErrorTypeParse, ":path")), ErrorTypeDecode)
	assert.Equal(t, ErrorTypeDecode, err.Type)
	assert.Equal(t, ":path", err.Meta)
	assert.True(t, errors.Is(err, errSentinel))

	err = Retype(errSentinel, ErrorTypeDecode)
	assert.Same(t, errSentinel, err.Err)
	assert.Nil(t, err.Meta)
}

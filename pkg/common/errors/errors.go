// Package errors 定义带类型与元数据的错误。
//
// 字段相关的哨兵错误由调用方定义，此处只负责附加类型（解析或解码）与出错位置，
// 调用方可用 errors.Is 比较哨兵，用 TypeOf 或 IsType 区分错误来源。
package errors

import (
	"errors"
	"fmt"
)

// ErrorType 是错误类型的位集合。
type ErrorType uint64

const (
	// ErrorTypeParse 用于线路字段列表的解析与校验失败。
	ErrorTypeParse ErrorType = 1 << iota
	// ErrorTypeDecode 用于序列化数据（JSON、HPACK）的解码失败。
	ErrorTypeDecode
	// ErrorTypePublic 用于可直接展示给调用方的参数错误。
	ErrorTypePublic
)

// Error 是携带类型与元数据的错误，可用 errors.Is 与其包装的哨兵错误比较。
type Error struct {
	Err  error
	Type ErrorType
	// Meta 一般为出错的字段名称。
	Meta any
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	if e.Meta == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Err.Error(), e.Meta)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsType 报告错误类型是否属于 flags 中的任一类型。
func (e *Error) IsType(flags ErrorType) bool {
	return e.Type&flags > 0
}

// New 以哨兵错误 err 创建类型为 t 的错误。
func New(err error, t ErrorType, meta any) *Error {
	return &Error{Err: err, Type: t, Meta: meta}
}

// Newf 以格式化消息创建类型为 t 的错误。
func Newf(t ErrorType, meta any, format string, v ...any) *Error {
	return New(fmt.Errorf(format, v...), t, meta)
}

// TypeOf 返回 err 链中第一个 *Error 的类型，若无则返回 0。
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return 0
}

// Retype 返回与 err 携带相同哨兵和元数据、类型改为 t 的错误。
// err 链中没有 *Error 时，以 err 本身为哨兵。
func Retype(err error, t ErrorType) *Error {
	var e *Error
	if errors.As(err, &e) {
		return New(e.Err, t, e.Meta)
	}
	return New(err, t, nil)
}

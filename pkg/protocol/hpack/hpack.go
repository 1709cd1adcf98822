// Package hpack 在 HPACK 标头块与 protocol 的请求、响应及尾部字段之间转换。
//
// 编解码器都带有连接级的动态表状态，不可在多个协程间共享，
// 同一连接的所有标头块须按顺序交给同一个编解码器。
package hpack

import (
	"errors"
)

var (
	// ErrHeaderListTooLarge 表示解码后的字段列表超过了 MaxHeaderListSize。
	ErrHeaderListTooLarge = errors.New("标头列表过大")
	// ErrCompression 表示标头块无法按 HPACK 解压。
	ErrCompression = errors.New("HPACK 解压失败")
)

package config

import (
	"math"
)

const (
	defaultMaxFieldCount       = math.MaxUint16
	defaultMaxDynamicTableSize = 4096
	defaultMaxStringLength     = 0
	defaultMaxHeaderListSize   = 0
)

// Option 是唯一可用于设置 Options 的结构体。
type Option struct {
	F func(o *Options)
}

// Options 是解析器与 HPACK 编解码器共用的限制项。
type Options struct {
	// 单个字段集合允许容纳的普通字段数。
	// 超出时解析器返回错误，而不会触发集合的容量恐慌。不可超过 65535。
	MaxFieldCount int

	// HPACK 动态表的最大字节数，编码器与解码器共用。
	MaxDynamicTableSize uint32

	// 解码时单个名称或值允许的最大长度。零值意为不限制。
	MaxStringLength int

	// 解码时字段列表的最大尺寸，按 RFC 9113 第 6.5.2 节计算（名称+值+32）。
	// 零值意为不限制。
	MaxHeaderListSize uint32
}

func (o *Options) Apply(opts []Option) {
	for _, opt := range opts {
		opt.F(o)
	}
}

func NewOptions(opts []Option) *Options {
	options := &Options{
		MaxFieldCount:       defaultMaxFieldCount,
		MaxDynamicTableSize: defaultMaxDynamicTableSize,
		MaxStringLength:     defaultMaxStringLength,
		MaxHeaderListSize:   defaultMaxHeaderListSize,
	}
	options.Apply(opts)
	return options
}

// WithMaxFieldCount 设置普通字段数上限，取值范围为 1 到 65535。
func WithMaxFieldCount(n int) Option {
	return Option{F: func(o *Options) {
		if n <= 0 || n > math.MaxUint16 {
			panic("BUG：MaxFieldCount 须在 1 到 65535 之间")
		}
		o.MaxFieldCount = n
	}}
}

// WithMaxDynamicTableSize 设置 HPACK 动态表大小。
func WithMaxDynamicTableSize(size uint32) Option {
	return Option{F: func(o *Options) {
		o.MaxDynamicTableSize = size
	}}
}

// WithMaxStringLength 设置解码字符串长度上限。
func WithMaxStringLength(n int) Option {
	return Option{F: func(o *Options) {
		o.MaxStringLength = n
	}}
}

// WithMaxHeaderListSize 设置解码字段列表尺寸上限。
func WithMaxHeaderListSize(size uint32) Option {
	return Option{F: func(o *Options) {
		o.MaxHeaderListSize = size
	}}
}

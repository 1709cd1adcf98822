package protocol

import (
	"github.com/favbox/httptypes/internal/bytesconv"
	"github.com/favbox/httptypes/pkg/protocol/consts"
)

// Method 是 HTTP 请求方法，须为非空 token，区分大小写。
type Method string

const (
	MethodGet     Method = consts.MethodGet
	MethodHead    Method = consts.MethodHead
	MethodPost    Method = consts.MethodPost
	MethodPut     Method = consts.MethodPut
	MethodPatch   Method = consts.MethodPatch
	MethodDelete  Method = consts.MethodDelete
	MethodConnect Method = consts.MethodConnect
	MethodOptions Method = consts.MethodOptions
	MethodTrace   Method = consts.MethodTrace
)

// ParseMethod 校验并返回请求方法。
func ParseMethod(s string) (Method, bool) {
	if !bytesconv.IsToken(s) {
		return "", false
	}
	return Method(s), true
}

func (m Method) String() string {
	return string(m)
}

// IsValid 返回方法是否为合法 token。
func (m Method) IsValid() bool {
	return bytesconv.IsToken(string(m))
}

// IsSafe 返回是否为 RFC 9110 定义的安全方法。
func (m Method) IsSafe() bool {
	switch m {
	case MethodGet, MethodHead, MethodOptions, MethodTrace:
		return true
	}
	return false
}

// IsIdempotent 返回是否为 RFC 9110 定义的幂等方法。
func (m Method) IsIdempotent() bool {
	switch m {
	case MethodPut, MethodDelete:
		return true
	}
	return m.IsSafe()
}

package adaptor

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/favbox/httptypes/internal/bytesconv"
	"github.com/favbox/httptypes/pkg/protocol"
	"github.com/favbox/httptypes/pkg/protocol/consts"
)

var (
	// ErrIncompleteRequest 表示请求缺少构造 URL 所需的伪标头。
	ErrIncompleteRequest = errors.New("请求缺少 :scheme、:authority 或 :path")
	// ErrInvalidStatusCode 表示状态码不在 0 到 999 之间。
	ErrInvalidStatusCode = errors.New("无效的状态码")
)

// RequestURL 由 :scheme、:authority 与 :path 构造请求的绝对 URL。
//
// CONNECT 请求（非扩展 CONNECT）只有 :authority，返回仅含 Host 的 URL。
func RequestURL(r *protocol.Request) (*url.URL, error) {
	pseudo := r.PseudoHeaderFields()
	authority, hasAuthority := pseudo.Authority()
	_, isExtended := pseudo.Protocol()
	if r.Method() == protocol.MethodConnect && !isExtended {
		if !hasAuthority {
			return nil, ErrIncompleteRequest
		}
		return &url.URL{Host: authority.Value()}, nil
	}

	scheme, hasScheme := pseudo.Scheme()
	path, hasPath := pseudo.Path()
	if !hasScheme || !hasPath {
		return nil, ErrIncompleteRequest
	}
	if path.Value() == "*" {
		return &url.URL{Scheme: scheme.Value(), Host: authority.Value(), Path: "*"}, nil
	}

	buf := make([]byte, 0, scheme.RawValue().Len()+authority.RawValue().Len()+path.RawValue().Len()+3)
	appendValue := func(b []byte) { buf = append(buf, b...) }
	scheme.RawValue().WithBytes(appendValue)
	buf = append(buf, "://"...)
	if hasAuthority {
		authority.RawValue().WithBytes(appendValue)
	}
	path.RawValue().WithBytes(appendValue)
	return url.Parse(string(buf))
}

// ToHTTPRequest 转换为 net/http 的请求，不带请求体。
func ToHTTPRequest(r *protocol.Request) (*http.Request, error) {
	u, err := RequestURL(r)
	if err != nil {
		return nil, err
	}
	req := &http.Request{
		Method:        r.Method().String(),
		URL:           u,
		Proto:         consts.HTTP11,
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        ToHTTPHeader(&r.Header),
		Host:          u.Host,
		Body:          http.NoBody,
		ContentLength: -1,
	}
	if cl, ok := r.Header.Lookup(protocol.NameContentLength); ok {
		if n, err := bytesconv.ParseUint(cl); err == nil {
			req.ContentLength = int64(n)
		}
	}
	return req, nil
}

// FromHTTPRequest 由 net/http 的请求构造请求。
//
// :scheme 优先取 URL 中的协议，否则按是否为 TLS 连接推断；:authority 取 Host。
// CONNECT 请求只设置 :authority。
func FromHTTPRequest(req *http.Request) *protocol.Request {
	method := protocol.Method(req.Method)
	if method == "" {
		method = protocol.MethodGet
	}
	authority := req.Host
	if authority == "" {
		authority = req.URL.Host
	}

	var r *protocol.Request
	if method == protocol.MethodConnect {
		r = protocol.NewRequest(method, "", authority, "")
	} else {
		scheme := req.URL.Scheme
		if scheme == "" {
			scheme = consts.SchemeHTTP
			if req.TLS != nil {
				scheme = consts.SchemeHTTPS
			}
		}
		r = protocol.NewRequest(method, scheme, authority, req.URL.RequestURI())
	}
	appendHTTPHeader(&r.Header, req.Header)
	r.Header.Del(protocol.NameHost)
	return r
}

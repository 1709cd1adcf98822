package protocol

import (
	"github.com/favbox/httptypes/internal/bytebufferpool"
)

// Request 是与协议版本无关的 HTTP 请求元数据：伪标头加普通标头字段。
//
// 禁止按值复制 Request，请使用 Clone。
type Request struct {
	pseudo RequestPseudoHeaderFields

	// Header 是请求的普通标头字段。
	Header Fields
}

// NewRequest 创建请求。scheme、authority 与 path 为空串时表示不设置对应伪标头。
//
// method 须为合法 token，否则触发恐慌。
func NewRequest(method Method, scheme, authority, path string) *Request {
	checkMethod(method)
	r := &Request{pseudo: newRequestPseudoHeaderFields(NewField(NameMethod, string(method)))}
	if scheme != "" {
		r.pseudo.SetScheme(NewField(NameScheme, scheme))
	}
	if authority != "" {
		r.pseudo.SetAuthority(NewField(NameAuthority, authority))
	}
	if path != "" {
		r.pseudo.SetPath(NewField(NamePath, path))
	}
	return r
}

func checkMethod(m Method) {
	if !m.IsValid() {
		panic("BUG：无效的请求方法 " + string(m))
	}
}

func optionalValue(f Field, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	return f.Value(), true
}

// Method 返回请求方法。
func (r *Request) Method() Method {
	return Method(r.pseudo.Method().Value())
}

// SetMethod 设置请求方法。method 须为合法 token，否则触发恐慌。
func (r *Request) SetMethod(method Method) {
	checkMethod(method)
	r.pseudo.SetMethod(NewField(NameMethod, string(method)))
}

// Scheme 返回 :scheme 的值。
func (r *Request) Scheme() (string, bool) {
	return optionalValue(r.pseudo.Scheme())
}

// SetScheme 设置 :scheme。
func (r *Request) SetScheme(scheme string) {
	r.pseudo.SetScheme(NewField(NameScheme, scheme))
}

// DelScheme 删除 :scheme。
func (r *Request) DelScheme() {
	r.pseudo.DelScheme()
}

// Authority 返回 :authority 的值。
func (r *Request) Authority() (string, bool) {
	return optionalValue(r.pseudo.Authority())
}

// SetAuthority 设置 :authority。
func (r *Request) SetAuthority(authority string) {
	r.pseudo.SetAuthority(NewField(NameAuthority, authority))
}

// DelAuthority 删除 :authority。
func (r *Request) DelAuthority() {
	r.pseudo.DelAuthority()
}

// Path 返回 :path 的值。
func (r *Request) Path() (string, bool) {
	return optionalValue(r.pseudo.Path())
}

// SetPath 设置 :path。
func (r *Request) SetPath(path string) {
	r.pseudo.SetPath(NewField(NamePath, path))
}

// DelPath 删除 :path。
func (r *Request) DelPath() {
	r.pseudo.DelPath()
}

// ExtendedConnectProtocol 返回扩展 CONNECT（RFC 8441）的 :protocol 值。
func (r *Request) ExtendedConnectProtocol() (string, bool) {
	return optionalValue(r.pseudo.Protocol())
}

// SetExtendedConnectProtocol 设置 :protocol。
func (r *Request) SetExtendedConnectProtocol(protocol string) {
	r.pseudo.SetProtocol(NewField(NameProtocol, protocol))
}

// DelExtendedConnectProtocol 删除 :protocol。
func (r *Request) DelExtendedConnectProtocol() {
	r.pseudo.DelProtocol()
}

// PseudoHeaderFields 返回请求的伪标头，可直接读写。
func (r *Request) PseudoHeaderFields() *RequestPseudoHeaderFields {
	return &r.pseudo
}

// Clone 返回与 r 共享存储的副本，两者此后的修改互不可见。
// 副本不再使用时应调用其 Reset，以免 r 下次修改时多复制一次存储。
func (r *Request) Clone() *Request {
	return &Request{pseudo: r.pseudo.clone(), Header: r.Header.share()}
}

// Reset 清空请求，方法恢复为 GET。
func (r *Request) Reset() {
	r.pseudo.release()
	r.Header.Reset()
}

// Equal 比较伪标头与标头字段。
func (r *Request) Equal(o *Request) bool {
	return r.pseudo.Equal(&o.pseudo) && r.Header.Equal(&o.Header)
}

// String 返回 "GET https://example.com/path" 形式的请求摘要。
func (r *Request) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.WriteString(string(r.Method()))
	scheme, hasScheme := r.Scheme()
	authority, hasAuthority := r.Authority()
	path, hasPath := r.Path()
	if hasScheme || hasAuthority || hasPath {
		_ = buf.WriteByte(' ')
	}
	if hasScheme {
		buf.WriteString(scheme)
		buf.WriteString("://")
	}
	buf.WriteString(authority)
	buf.WriteString(path)
	return buf.String()
}

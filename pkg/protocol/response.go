package protocol

// Response 是与协议版本无关的 HTTP 响应元数据：状态加普通标头字段。
//
// 禁止按值复制 Response，请使用 Clone。
type Response struct {
	pseudo ResponsePseudoHeaderFields

	// Header 是响应的普通标头字段。
	Header Fields
}

// NewResponse 以状态创建响应。
func NewResponse(status Status) *Response {
	return &Response{pseudo: newResponsePseudoHeaderFields(status)}
}

// Status 返回响应状态。零值响应的状态为 200 OK。
func (r *Response) Status() Status {
	code, _ := parseStatusCode(r.pseudo.Status().value.s)
	return Status{Code: code, ReasonPhrase: r.pseudo.ReasonPhrase()}
}

// SetStatus 设置状态码与原因短语。原因短语中的非法字节会被替换为空格。
func (r *Response) SetStatus(status Status) {
	r.pseudo = newResponsePseudoHeaderFields(status)
}

// PseudoHeaderFields 返回响应的伪标头，可直接读写。
func (r *Response) PseudoHeaderFields() *ResponsePseudoHeaderFields {
	return &r.pseudo
}

// Clone 返回与 r 共享存储的副本，两者此后的修改互不可见。
// 副本不再使用时应调用其 Reset，以免 r 下次修改时多复制一次存储。
func (r *Response) Clone() *Response {
	return &Response{pseudo: r.pseudo, Header: r.Header.share()}
}

// Reset 清空响应，状态恢复为 200 OK。
func (r *Response) Reset() {
	r.pseudo = ResponsePseudoHeaderFields{}
	r.Header.Reset()
}

// Equal 比较状态、原因短语与标头字段。
func (r *Response) Equal(o *Response) bool {
	return r.pseudo.Equal(&o.pseudo) && r.Header.Equal(&o.Header)
}

// String 返回 "200 OK" 形式的响应摘要。
func (r *Response) String() string {
	return r.Status().String()
}

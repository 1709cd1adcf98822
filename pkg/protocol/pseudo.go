package protocol

import (
	"github.com/favbox/httptypes/internal/nocopy"
)

type requestPseudoStorage struct {
	refs refCount

	method    Field
	scheme    *Field
	authority *Field
	path      *Field
	protocol  *Field
}

func (s *requestPseudoStorage) copy() *requestPseudoStorage {
	c := &requestPseudoStorage{
		method:    s.method,
		scheme:    copyField(s.scheme),
		authority: copyField(s.authority),
		path:      copyField(s.path),
		protocol:  copyField(s.protocol),
	}
	c.refs.init()
	return c
}

func copyField(f *Field) *Field {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

// RequestPseudoHeaderFields 是请求的伪标头字段：:method 必选，
// :scheme、:authority、:path 与 :protocol 可选。
//
// 与 Fields 一样采用写时复制的共享存储。每个槽位只接受对应名称的字段，
// 写入名称不符的字段会触发恐慌。
type RequestPseudoHeaderFields struct {
	noCopy nocopy.NoCopy

	s *requestPseudoStorage
}

func newRequestPseudoHeaderFields(method Field) RequestPseudoHeaderFields {
	checkSlot(&method, NameMethod)
	s := &requestPseudoStorage{method: method}
	s.refs.init()
	return RequestPseudoHeaderFields{s: s}
}

func checkSlot(f *Field, slot Name) {
	if !f.Name.Equal(slot) {
		panic("BUG：伪标头槽位 " + slot.canonical + " 不能存放字段 " + f.Name.raw)
	}
}

func (p *RequestPseudoHeaderFields) storage() *requestPseudoStorage {
	if p.s == nil {
		return &requestPseudoStorage{method: NewField(NameMethod, string(MethodGet))}
	}
	return p.s
}

func (p *RequestPseudoHeaderFields) mutable() *requestPseudoStorage {
	if p.s == nil {
		p.s = p.storage()
		p.s.refs.init()
	} else if !p.s.refs.isUnique() {
		c := p.s.copy()
		p.s.refs.release()
		p.s = c
	}
	return p.s
}

func (p *RequestPseudoHeaderFields) clone() RequestPseudoHeaderFields {
	if p.s == nil {
		return RequestPseudoHeaderFields{}
	}
	p.s.refs.retain()
	return RequestPseudoHeaderFields{s: p.s}
}

func (p *RequestPseudoHeaderFields) release() {
	if p.s != nil {
		p.s.refs.release()
		p.s = nil
	}
}

func optionalField(f *Field) (Field, bool) {
	if f == nil {
		return Field{}, false
	}
	return *f, true
}

// Method 返回 :method 字段。零值的方法为 GET。
func (p *RequestPseudoHeaderFields) Method() Field {
	return p.storage().method
}

// SetMethod 设置 :method 字段。
func (p *RequestPseudoHeaderFields) SetMethod(f Field) {
	checkSlot(&f, NameMethod)
	p.mutable().method = f
}

// Scheme 返回 :scheme 字段。
func (p *RequestPseudoHeaderFields) Scheme() (Field, bool) {
	return optionalField(p.storage().scheme)
}

// SetScheme 设置 :scheme 字段。
func (p *RequestPseudoHeaderFields) SetScheme(f Field) {
	checkSlot(&f, NameScheme)
	p.mutable().scheme = &f
}

// DelScheme 删除 :scheme 字段。
func (p *RequestPseudoHeaderFields) DelScheme() {
	p.mutable().scheme = nil
}

// Authority 返回 :authority 字段。
func (p *RequestPseudoHeaderFields) Authority() (Field, bool) {
	return optionalField(p.storage().authority)
}

// SetAuthority 设置 :authority 字段。
func (p *RequestPseudoHeaderFields) SetAuthority(f Field) {
	checkSlot(&f, NameAuthority)
	p.mutable().authority = &f
}

// DelAuthority 删除 :authority 字段。
func (p *RequestPseudoHeaderFields) DelAuthority() {
	p.mutable().authority = nil
}

// Path 返回 :path 字段。
func (p *RequestPseudoHeaderFields) Path() (Field, bool) {
	return optionalField(p.storage().path)
}

// SetPath 设置 :path 字段。
func (p *RequestPseudoHeaderFields) SetPath(f Field) {
	checkSlot(&f, NamePath)
	p.mutable().path = &f
}

// DelPath 删除 :path 字段。
func (p *RequestPseudoHeaderFields) DelPath() {
	p.mutable().path = nil
}

// Protocol 返回扩展 CONNECT 的 :protocol 字段。
func (p *RequestPseudoHeaderFields) Protocol() (Field, bool) {
	return optionalField(p.storage().protocol)
}

// SetProtocol 设置 :protocol 字段。
func (p *RequestPseudoHeaderFields) SetProtocol(f Field) {
	checkSlot(&f, NameProtocol)
	p.mutable().protocol = &f
}

// DelProtocol 删除 :protocol 字段。
func (p *RequestPseudoHeaderFields) DelProtocol() {
	p.mutable().protocol = nil
}

// VisitAll 按 method、scheme、authority、path、protocol 的固定顺序访问已设置的伪标头。
func (p *RequestPseudoHeaderFields) VisitAll(fn func(f Field)) {
	s := p.storage()
	fn(s.method)
	for _, f := range []*Field{s.scheme, s.authority, s.path, s.protocol} {
		if f != nil {
			fn(*f)
		}
	}
}

// Equal 逐槽位比较两组伪标头。
func (p *RequestPseudoHeaderFields) Equal(o *RequestPseudoHeaderFields) bool {
	a, b := p.storage(), o.storage()
	if a == b {
		return true
	}
	return a.method.Equal(b.method) &&
		optionalEqual(a.scheme, b.scheme) &&
		optionalEqual(a.authority, b.authority) &&
		optionalEqual(a.path, b.path) &&
		optionalEqual(a.protocol, b.protocol)
}

func optionalEqual(a, b *Field) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// ResponsePseudoHeaderFields 是响应的伪标头：:status 字段与原因短语。
//
// 两者都是不可变的小值，直接按值保存，无需共享存储。
type ResponsePseudoHeaderFields struct {
	status       Field
	reasonPhrase string
}

func newResponsePseudoHeaderFields(status Status) ResponsePseudoHeaderFields {
	return ResponsePseudoHeaderFields{
		status:       Field{Name: NameStatus, value: NewLatin1(status.codeBytes())},
		reasonPhrase: legalizeValue(status.ReasonPhrase),
	}
}

// Status 返回 :status 字段，其值恒为三位 ASCII 数字。零值为 200。
func (p *ResponsePseudoHeaderFields) Status() Field {
	if p.status.Name.IsZero() {
		return Field{Name: NameStatus, value: NewLatin1String("200")}
	}
	return p.status
}

// SetStatus 设置 :status 字段。字段名称须为 :status，值须为三位 ASCII 数字。
func (p *ResponsePseudoHeaderFields) SetStatus(f Field) {
	checkSlot(&f, NameStatus)
	if _, ok := parseStatusCode(f.value.s); !ok {
		panic("BUG：:status 的值须为三位 ASCII 数字，实际为 " + f.value.s)
	}
	p.status = f
}

// ReasonPhrase 返回原因短语。
func (p *ResponsePseudoHeaderFields) ReasonPhrase() string {
	if p.status.Name.IsZero() {
		return StatusOK.ReasonPhrase
	}
	return p.reasonPhrase
}

// SetReasonPhrase 设置原因短语，非法字节会被替换为空格。
func (p *ResponsePseudoHeaderFields) SetReasonPhrase(reason string) {
	if p.status.Name.IsZero() {
		p.status = p.Status()
	}
	p.reasonPhrase = legalizeValue(reason)
}

// Equal 比较 :status 字段与原因短语。
func (p *ResponsePseudoHeaderFields) Equal(o *ResponsePseudoHeaderFields) bool {
	return p.Status().Equal(o.Status()) && p.ReasonPhrase() == o.ReasonPhrase()
}

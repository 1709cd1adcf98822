package protocol

import (
	"errors"

	"github.com/favbox/httptypes/internal/bytesconv"
	"github.com/favbox/httptypes/pkg/common/config"
	errs "github.com/favbox/httptypes/pkg/common/errors"
	"github.com/favbox/httptypes/pkg/common/hlog"
)

// 线路字段列表的解析错误。返回的错误均为 ErrorTypeParse 类型的 *errors.Error，
// 可用 errors.Is 与下列哨兵比较，Meta 为出错的字段名称。
var (
	ErrInvalidPseudoName          = errors.New("未知的伪标头")
	ErrMultiplePseudo             = errors.New("伪标头重复出现")
	ErrPseudoNotFirst             = errors.New("伪标头出现在普通字段之后")
	ErrRequestWithoutMethod       = errors.New("请求缺少 :method")
	ErrInvalidMethod              = errors.New("无效的请求方法")
	ErrRequestWithResponsePseudo  = errors.New("请求中出现响应伪标头")
	ErrResponseWithoutStatus      = errors.New("响应缺少 :status")
	ErrInvalidStatus              = errors.New("无效的响应状态码")
	ErrResponseWithRequestPseudo  = errors.New("响应中出现请求伪标头")
	ErrTrailerFieldsWithPseudo    = errors.New("尾部字段中出现伪标头")
	ErrMultipleContentLength      = errors.New("Content-Length 多次出现且值不一致")
	ErrMultipleContentDisposition = errors.New("Content-Disposition 多次出现且值不一致")
	ErrMultipleLocation           = errors.New("Location 多次出现且值不一致")
	ErrTooManyFields              = errors.New("字段数超过上限")
)

// ParsedFields 按线路顺序累积已分帧的字段，再组装为请求、响应或尾部字段。
//
// 伪标头须全部位于普通字段之前，每个伪标头至多出现一次。
// 同一个 ParsedFields 只应调用 Request、Response、TrailerFields 中的一个，
// 组装成功后普通字段的所有权即转移给结果。
type ParsedFields struct {
	method    *Field
	scheme    *Field
	authority *Field
	path      *Field
	protocol  *Field
	status    *Field

	fields        Fields
	maxFieldCount int
}

// NewParsedFields 以给定限制项创建 ParsedFields。零值 ParsedFields 使用默认限制。
func NewParsedFields(opts ...config.Option) *ParsedFields {
	return &ParsedFields{maxFieldCount: config.NewOptions(opts).MaxFieldCount}
}

func parseError(err error, name Name) error {
	hlog.SystemLogger().Debugf("字段解析被拒绝：%s, name=%q", err, name.raw)
	return errs.New(err, errs.ErrorTypeParse, name.raw)
}

// Add 追加一个线路字段。
func (p *ParsedFields) Add(f Field) error {
	if !f.Name.IsPseudo() {
		limit := p.maxFieldCount
		if limit == 0 {
			limit = maxFieldCount
		}
		if p.fields.Len() >= limit {
			return parseError(ErrTooManyFields, f.Name)
		}
		p.fields.Add(f)
		return nil
	}

	if p.fields.Len() > 0 {
		return parseError(ErrPseudoNotFirst, f.Name)
	}
	slot := p.slot(f.Name)
	if slot == nil {
		return parseError(ErrInvalidPseudoName, f.Name)
	}
	if *slot != nil {
		return parseError(ErrMultiplePseudo, f.Name)
	}
	*slot = &f
	return nil
}

func (p *ParsedFields) slot(name Name) **Field {
	switch name.canonical {
	case NameMethod.canonical:
		return &p.method
	case NameScheme.canonical:
		return &p.scheme
	case NameAuthority.canonical:
		return &p.authority
	case NamePath.canonical:
		return &p.path
	case NameProtocol.canonical:
		return &p.protocol
	case NameStatus.canonical:
		return &p.status
	}
	return nil
}

// 同名多值会造成请求走私歧义的字段，其所有出现须逐字节相同。
var singletonFields = []struct {
	name *Name
	err  error
}{
	{&NameContentLength, ErrMultipleContentLength},
	{&NameContentDisposition, ErrMultipleContentDisposition},
	{&NameLocation, ErrMultipleLocation},
}

func (p *ParsedFields) validate() error {
	for _, sf := range singletonFields {
		var (
			first    string
			seen     bool
			mismatch bool
		)
		p.fields.visit(*sf.name, func(f *Field) {
			if !seen {
				first, seen = f.value.s, true
			} else if f.value.s != first {
				mismatch = true
			}
		})
		if mismatch {
			return parseError(sf.err, *sf.name)
		}
	}
	return nil
}

// Request 组装请求。
func (p *ParsedFields) Request() (*Request, error) {
	if p.method == nil {
		return nil, parseError(ErrRequestWithoutMethod, NameMethod)
	}
	if !bytesconv.IsToken(p.method.value.s) {
		return nil, parseError(ErrInvalidMethod, NameMethod)
	}
	if p.status != nil {
		return nil, parseError(ErrRequestWithResponsePseudo, NameStatus)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	r := &Request{pseudo: newRequestPseudoHeaderFields(*p.method), Header: p.fields.take()}
	if p.scheme != nil {
		r.pseudo.SetScheme(*p.scheme)
	}
	if p.authority != nil {
		r.pseudo.SetAuthority(*p.authority)
	}
	if p.path != nil {
		r.pseudo.SetPath(*p.path)
	}
	if p.protocol != nil {
		r.pseudo.SetProtocol(*p.protocol)
	}
	return r, nil
}

// Response 组装响应。线路上的响应不携带原因短语，故原因短语为空。
func (p *ParsedFields) Response() (*Response, error) {
	if p.status == nil {
		return nil, parseError(ErrResponseWithoutStatus, NameStatus)
	}
	if _, ok := parseStatusCode(p.status.value.s); !ok {
		return nil, parseError(ErrInvalidStatus, NameStatus)
	}
	for _, f := range []*Field{p.method, p.scheme, p.authority, p.path, p.protocol} {
		if f != nil {
			return nil, parseError(ErrResponseWithRequestPseudo, f.Name)
		}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	r := &Response{Header: p.fields.take()}
	r.pseudo.status = *p.status
	return r, nil
}

// TrailerFields 返回尾部字段。
func (p *ParsedFields) TrailerFields() (*Fields, error) {
	for _, f := range []*Field{p.method, p.scheme, p.authority, p.path, p.protocol, p.status} {
		if f != nil {
			return nil, parseError(ErrTrailerFieldsWithPseudo, f.Name)
		}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	fields := p.fields.take()
	return &fields, nil
}

func parseFields(fields []Field, opts []config.Option) (*ParsedFields, error) {
	p := NewParsedFields(opts...)
	for _, f := range fields {
		if err := p.Add(f); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ParseRequest 将线路字段列表解析为请求。
func ParseRequest(fields []Field, opts ...config.Option) (*Request, error) {
	p, err := parseFields(fields, opts)
	if err != nil {
		return nil, err
	}
	return p.Request()
}

// ParseResponse 将线路字段列表解析为响应。
func ParseResponse(fields []Field, opts ...config.Option) (*Response, error) {
	p, err := parseFields(fields, opts)
	if err != nil {
		return nil, err
	}
	return p.Response()
}

// ParseTrailerFields 将线路字段列表解析为尾部字段。
func ParseTrailerFields(fields []Field, opts ...config.Option) (*Fields, error) {
	p, err := parseFields(fields, opts)
	if err != nil {
		return nil, err
	}
	return p.TrailerFields()
}

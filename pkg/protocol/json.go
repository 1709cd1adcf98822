package protocol

import (
	"errors"
	"strings"

	errs "github.com/favbox/httptypes/pkg/common/errors"
	"github.com/favbox/httptypes/pkg/common/json"
)

// JSON 解码错误。返回的错误均为 ErrorTypeDecode 类型的 *errors.Error。
// 伪标头相关的校验复用解析器的哨兵错误，如 ErrMultiplePseudo、ErrRequestWithoutMethod。
var (
	ErrInvalidFieldName        = errors.New("无效的字段名称")
	ErrInvalidFieldValue       = errors.New("无效的字段值")
	ErrInvalidIndexingStrategy = errors.New("无效的索引策略")
	ErrPseudoInHeaderFields    = errors.New("标头字段中出现伪标头")
)

type jsonField struct {
	Name             string `json:"name"`
	Value            string `json:"value"`
	IndexingStrategy int    `json:"indexingStrategy,omitempty"`
}

type jsonRequest struct {
	PseudoHeaderFields []jsonField `json:"pseudoHeaderFields"`
	HeaderFields       []jsonField `json:"headerFields"`
}

type jsonResponse struct {
	PseudoHeaderFields []jsonField `json:"pseudoHeaderFields"`
	ReasonPhrase       string      `json:"reasonPhrase"`
	HeaderFields       []jsonField `json:"headerFields"`
}

func decodeError(err error, meta any) error {
	return errs.New(err, errs.ErrorTypeDecode, meta)
}

// 将解析器返回的错误改为解码错误。
func asDecodeError(err error) error {
	return errs.Retype(err, errs.ErrorTypeDecode)
}

func toJSONField(f *Field) jsonField {
	return jsonField{Name: f.Name.raw, Value: f.value.s, IndexingStrategy: int(f.IndexingStrategy)}
}

func (j *jsonField) toField() (Field, error) {
	var (
		name Name
		ok   bool
	)
	if strings.HasPrefix(j.Name, ":") {
		name, ok = ParseName(j.Name)
	} else {
		name, ok = NewName(j.Name)
	}
	if !ok {
		return Field{}, decodeError(ErrInvalidFieldName, j.Name)
	}
	if !IsValidValue(j.Value) {
		return Field{}, decodeError(ErrInvalidFieldValue, j.Name)
	}
	if j.IndexingStrategy < 0 || !IndexingStrategy(j.IndexingStrategy).IsValid() {
		return Field{}, decodeError(ErrInvalidIndexingStrategy, j.IndexingStrategy)
	}
	return Field{
		Name:             name,
		IndexingStrategy: IndexingStrategy(j.IndexingStrategy),
		value:            NewLatin1String(j.Value),
	}, nil
}

func toJSONFields(f *Fields) []jsonField {
	entries := f.entries()
	out := make([]jsonField, len(entries))
	for i := range entries {
		out[i] = toJSONField(&entries[i].field)
	}
	return out
}

func fromJSONFields(in []jsonField, dst *Fields) error {
	fields := make([]Field, 0, len(in))
	for i := range in {
		// 伪标头须先于名称校验识别，以给出更确切的错误。
		if strings.HasPrefix(in[i].Name, ":") {
			return decodeError(ErrPseudoInHeaderFields, in[i].Name)
		}
		f, err := in[i].toField()
		if err != nil {
			return err
		}
		fields = append(fields, f)
	}
	if len(fields) > maxFieldCount {
		return decodeError(ErrTooManyFields, len(fields))
	}
	dst.Reset()
	dst.Append(fields...)
	return nil
}

// 以伪标头列表填充解析器。
func parsePseudo(in []jsonField) (*ParsedFields, error) {
	p := NewParsedFields()
	for i := range in {
		f, err := in[i].toField()
		if err != nil {
			return nil, err
		}
		if !f.Name.IsPseudo() {
			return nil, decodeError(ErrInvalidPseudoName, in[i].Name)
		}
		if err = p.Add(f); err != nil {
			return nil, asDecodeError(err)
		}
	}
	return p, nil
}

// MarshalJSON 编码为 {"name","value","indexingStrategy"}，默认策略省略。
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSONField(&f))
}

// UnmarshalJSON 解码并校验名称、值与索引策略。
func (f *Field) UnmarshalJSON(data []byte) error {
	var j jsonField
	if err := json.Unmarshal(data, &j); err != nil {
		return decodeError(err, nil)
	}
	field, err := j.toField()
	if err != nil {
		return err
	}
	*f = field
	return nil
}

// MarshalJSON 按存储顺序编码为字段数组。
func (f *Fields) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSONFields(f))
}

// UnmarshalJSON 以解码得到的字段替换全部内容，不接受伪标头。
func (f *Fields) UnmarshalJSON(data []byte) error {
	var in []jsonField
	if err := json.Unmarshal(data, &in); err != nil {
		return decodeError(err, nil)
	}
	return fromJSONFields(in, f)
}

// MarshalJSON 编码为 {"pseudoHeaderFields","headerFields"}，伪标头按固定顺序排列。
func (r *Request) MarshalJSON() ([]byte, error) {
	var pseudo []jsonField
	r.pseudo.VisitAll(func(f Field) {
		pseudo = append(pseudo, toJSONField(&f))
	})
	return json.Marshal(jsonRequest{PseudoHeaderFields: pseudo, HeaderFields: toJSONFields(&r.Header)})
}

// UnmarshalJSON 解码请求，并像解析线路字段一样校验伪标头。
func (r *Request) UnmarshalJSON(data []byte) error {
	var j jsonRequest
	if err := json.Unmarshal(data, &j); err != nil {
		return decodeError(err, nil)
	}
	p, err := parsePseudo(j.PseudoHeaderFields)
	if err != nil {
		return err
	}
	req, err := p.Request()
	if err != nil {
		return asDecodeError(err)
	}
	if err = fromJSONFields(j.HeaderFields, &req.Header); err != nil {
		return err
	}

	r.pseudo.release()
	r.pseudo.s, req.pseudo.s = req.pseudo.s, nil
	r.Header.Reset()
	r.Header.s, req.Header.s = req.Header.s, nil
	return nil
}

// MarshalJSON 编码为 {"pseudoHeaderFields","reasonPhrase","headerFields"}。
func (r *Response) MarshalJSON() ([]byte, error) {
	status := r.pseudo.Status()
	return json.Marshal(jsonResponse{
		PseudoHeaderFields: []jsonField{toJSONField(&status)},
		ReasonPhrase:       r.pseudo.ReasonPhrase(),
		HeaderFields:       toJSONFields(&r.Header),
	})
}

// UnmarshalJSON 解码响应，并校验 :status。
func (r *Response) UnmarshalJSON(data []byte) error {
	var j jsonResponse
	if err := json.Unmarshal(data, &j); err != nil {
		return decodeError(err, nil)
	}
	p, err := parsePseudo(j.PseudoHeaderFields)
	if err != nil {
		return err
	}
	resp, err := p.Response()
	if err != nil {
		return asDecodeError(err)
	}
	if err = fromJSONFields(j.HeaderFields, &resp.Header); err != nil {
		return err
	}

	r.pseudo = resp.pseudo
	r.pseudo.reasonPhrase = legalizeValue(j.ReasonPhrase)
	r.Header.Reset()
	r.Header.s, resp.Header.s = resp.Header.s, nil
	return nil
}

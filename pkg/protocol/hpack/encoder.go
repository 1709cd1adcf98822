package hpack

import (
	"bytes"

	xhpack "golang.org/x/net/http2/hpack"

	"github.com/favbox/httptypes/pkg/common/config"
	"github.com/favbox/httptypes/pkg/protocol"
)

// Encoder 将请求、响应与尾部字段编码为 HPACK 标头块。
//
// 名称一律使用小写规范形式，伪标头位于普通字段之前。
// 值按 ISO-8859-1 编码为字节，IndexingDisallow 的字段以“永不索引”的字面量编码。
type Encoder struct {
	buf bytes.Buffer
	enc *xhpack.Encoder
}

// NewEncoder 创建编码器，动态表大小取自 opts。
func NewEncoder(opts ...config.Option) *Encoder {
	o := config.NewOptions(opts)
	e := &Encoder{}
	e.enc = xhpack.NewEncoder(&e.buf)
	e.enc.SetMaxDynamicTableSizeLimit(o.MaxDynamicTableSize)
	e.enc.SetMaxDynamicTableSize(o.MaxDynamicTableSize)
	return e
}

// SetMaxDynamicTableSize 按对端的 SETTINGS_HEADER_TABLE_SIZE 调整动态表大小。
func (e *Encoder) SetMaxDynamicTableSize(v uint32) {
	e.enc.SetMaxDynamicTableSize(v)
}

func (e *Encoder) writeField(f protocol.Field) {
	// 写入 bytes.Buffer 不会失败。
	_ = e.enc.WriteField(xhpack.HeaderField{
		Name:      f.Name.Canonical(),
		Value:     f.RawValue().Octets(),
		Sensitive: f.IndexingStrategy == protocol.IndexingDisallow,
	})
}

func (e *Encoder) writeFields(fields *protocol.Fields) {
	fields.VisitAll(e.writeField)
}

// 取出已编码的块并清空缓冲区。
func (e *Encoder) flush() []byte {
	block := append([]byte(nil), e.buf.Bytes()...)
	e.buf.Reset()
	return block
}

// EncodeRequest 编码请求的伪标头与标头字段。
func (e *Encoder) EncodeRequest(r *protocol.Request) []byte {
	r.PseudoHeaderFields().VisitAll(e.writeField)
	e.writeFields(&r.Header)
	return e.flush()
}

// EncodeResponse 编码响应的 :status 与标头字段。原因短语不参与编码。
func (e *Encoder) EncodeResponse(r *protocol.Response) []byte {
	e.writeField(r.PseudoHeaderFields().Status())
	e.writeFields(&r.Header)
	return e.flush()
}

// EncodeTrailerFields 编码尾部字段。
func (e *Encoder) EncodeTrailerFields(fields *protocol.Fields) []byte {
	e.writeFields(fields)
	return e.flush()
}

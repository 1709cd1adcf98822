package hpack

import (
	xhpack "golang.org/x/net/http2/hpack"

	"github.com/favbox/httptypes/pkg/common/config"
	errs "github.com/favbox/httptypes/pkg/common/errors"
	"github.com/favbox/httptypes/pkg/common/hlog"
	"github.com/favbox/httptypes/pkg/protocol"
)

// Decoder 将 HPACK 标头块解码为请求、响应或尾部字段。
type Decoder struct {
	dec  *xhpack.Decoder
	opts []config.Option

	maxHeaderListSize uint32
}

// NewDecoder 创建解码器，动态表大小、字符串长度与字段列表尺寸取自 opts。
func NewDecoder(opts ...config.Option) *Decoder {
	o := config.NewOptions(opts)
	d := &Decoder{
		dec:               xhpack.NewDecoder(o.MaxDynamicTableSize, nil),
		opts:              opts,
		maxHeaderListSize: o.MaxHeaderListSize,
	}
	d.dec.SetMaxStringLength(o.MaxStringLength)
	return d
}

// SetMaxDynamicTableSize 在对端确认 SETTINGS_HEADER_TABLE_SIZE 后调整动态表上限。
func (d *Decoder) SetMaxDynamicTableSize(v uint32) {
	d.dec.SetAllowedMaxDynamicTableSize(v)
}

// 解码整个标头块并逐个交给解析器。
//
// 遇到无效字段后停止收集，但仍消费完整个块，以保持动态表与对端同步。
func (d *Decoder) decode(block []byte) (*protocol.ParsedFields, error) {
	var (
		p       = protocol.NewParsedFields(d.opts...)
		invalid error
		remain  = d.maxHeaderListSize
	)
	d.dec.SetEmitEnabled(true)
	d.dec.SetEmitFunc(func(hf xhpack.HeaderField) {
		name, ok := protocol.ParseName(hf.Name)
		if !ok {
			invalid = errs.New(protocol.ErrInvalidFieldName, errs.ErrorTypeParse, hf.Name)
			d.dec.SetEmitEnabled(false)
			return
		}
		if d.maxHeaderListSize > 0 {
			size := hf.Size()
			if size > remain {
				invalid = errs.New(ErrHeaderListTooLarge, errs.ErrorTypeParse, d.maxHeaderListSize)
				d.dec.SetEmitEnabled(false)
				return
			}
			remain -= size
		}

		f := protocol.NewFieldLenient(name, []byte(hf.Value))
		if hf.Sensitive {
			f.IndexingStrategy = protocol.IndexingDisallow
		}
		if err := p.Add(f); err != nil {
			invalid = err
			d.dec.SetEmitEnabled(false)
		}
	})
	defer d.dec.SetEmitFunc(func(xhpack.HeaderField) {})

	if _, err := d.dec.Write(block); err != nil {
		return nil, d.compressionError(err)
	}
	if err := d.dec.Close(); err != nil {
		return nil, d.compressionError(err)
	}
	if invalid != nil {
		hlog.SystemLogger().Debugf("HPACK 标头块被拒绝：%s", invalid)
		return nil, invalid
	}
	return p, nil
}

func (d *Decoder) compressionError(err error) error {
	hlog.SystemLogger().Debugf("HPACK 解压失败：%s", err)
	return errs.New(ErrCompression, errs.ErrorTypeDecode, err.Error())
}

// DecodeRequest 解码请求标头块。
func (d *Decoder) DecodeRequest(block []byte) (*protocol.Request, error) {
	p, err := d.decode(block)
	if err != nil {
		return nil, err
	}
	return p.Request()
}

// DecodeResponse 解码响应标头块。
func (d *Decoder) DecodeResponse(block []byte) (*protocol.Response, error) {
	p, err := d.decode(block)
	if err != nil {
		return nil, err
	}
	return p.Response()
}

// DecodeTrailerFields 解码尾部字段块。
func (d *Decoder) DecodeTrailerFields(block []byte) (*protocol.Fields, error) {
	p, err := d.decode(block)
	if err != nil {
		return nil, err
	}
	return p.TrailerFields()
}

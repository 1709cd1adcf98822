package hpack

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xhpack "golang.org/x/net/http2/hpack"

	"github.com/favbox/httptypes/pkg/common/config"
	errs "github.com/favbox/httptypes/pkg/common/errors"
	"github.com/favbox/httptypes/pkg/protocol"
)

// rawBlock 以原始 HPACK 编码器构造标头块，可写入本库编码器不会产生的字段。
func rawBlock(fields ...xhpack.HeaderField) []byte {
	var buf bytes.Buffer
	enc := xhpack.NewEncoder(&buf)
	for _, f := range fields {
		_ = enc.WriteField(f)
	}
	return buf.Bytes()
}

func newTestRequest() *protocol.Request {
	r := protocol.NewRequest(protocol.MethodPost, "https", "example.com", "/upload")
	r.Header.Add(protocol.NewField(protocol.NameContentType, "application/json"))
	r.Header.Add(protocol.NewField(protocol.NameAcceptEncoding, "gzip"))
	r.Header.Add(protocol.NewField(protocol.NameAcceptEncoding, "br"))
	secret := protocol.NewField(protocol.NameAuthorization, "Bearer token")
	secret.IndexingStrategy = protocol.IndexingDisallow
	r.Header.Add(secret)
	return r
}

func TestRequestRoundTrip(t *testing.T) {
	enc, dec := NewEncoder(), NewDecoder()
	r := newTestRequest()

	// 第二轮会用到第一轮写入的动态表条目。
	for i := 0; i < 2; i++ {
		got, err := dec.DecodeRequest(enc.EncodeRequest(r))
		require.NoError(t, err)
		assert.True(t, r.Equal(got), "round %d: %s", i, got.Header.String())
		assert.Equal(t, "gzip, br", got.Header.Get(protocol.NameAcceptEncoding))
		assert.Equal(t, protocol.IndexingDisallow, got.Header.GetFields(protocol.NameAuthorization)[0].IndexingStrategy)
	}
}

func TestEncoderWireFormat(t *testing.T) {
	block := NewEncoder().EncodeRequest(newTestRequest())
	fields, err := xhpack.NewDecoder(4096, nil).DecodeFull(block)
	require.NoError(t, err)

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
		assert.Equal(t, f.Name == "authorization", f.Sensitive, f.Name)
	}
	assert.Equal(t, []string{
		":method", ":scheme", ":authority", ":path",
		"content-type", "accept-encoding", "accept-encoding", "authorization",
	}, names)
}

func TestResponseRoundTrip(t *testing.T) {
	enc, dec := NewEncoder(), NewDecoder()
	r := protocol.NewResponse(protocol.StatusNotFound)
	r.Header.Add(protocol.NewField(protocol.NameContentLength, "0"))

	got, err := dec.DecodeResponse(enc.EncodeResponse(r))
	require.NoError(t, err)
	assert.Equal(t, 404, got.Status().Code)
	assert.Equal(t, "", got.Status().ReasonPhrase)
	assert.True(t, r.Header.Equal(&got.Header))
}

func TestTrailerFieldsRoundTrip(t *testing.T) {
	fields := protocol.NewFields(protocol.NewField(protocol.MustName("Grpc-Status"), "0"))
	got, err := NewDecoder().DecodeTrailerFields(NewEncoder().EncodeTrailerFields(fields))
	require.NoError(t, err)
	assert.True(t, fields.Equal(got))
	assert.Equal(t, "grpc-status", got.At(0).Name.String())
}

func TestDecodeLenientValue(t *testing.T) {
	block := rawBlock(
		xhpack.HeaderField{Name: ":method", Value: "GET"},
		xhpack.HeaderField{Name: "x-odd", Value: " a\x00b\r\n"},
	)
	r, err := NewDecoder().DecodeRequest(block)
	require.NoError(t, err)
	assert.Equal(t, " a b  ", r.Header.Get(protocol.MustName("x-odd")))
}

func TestLatin1RoundTrip(t *testing.T) {
	name := protocol.MustName("x-l")
	r := protocol.NewRequest(protocol.MethodGet, "https", "example.com", "/")
	r.Header.Add(protocol.NewFieldBytes(name, []byte("caf\xe9")))
	r.Header.Add(protocol.NewField(protocol.NameContentDisposition, "attachment; filename=ñ"))

	block := NewEncoder().EncodeRequest(r)
	fields, err := xhpack.NewDecoder(4096, nil).DecodeFull(block)
	require.NoError(t, err)
	assert.Equal(t, "caf\xe9", fields[len(fields)-2].Value)
	assert.Equal(t, "attachment; filename=\xf1", fields[len(fields)-1].Value)

	got, err := NewDecoder().DecodeRequest(block)
	require.NoError(t, err)
	assert.True(t, r.Equal(got), got.Header.String())
	assert.Equal(t, "café", got.Header.Get(name))
}

func TestDecodeErrors(t *testing.T) {
	_, err := NewDecoder().DecodeRequest(rawBlock(
		xhpack.HeaderField{Name: ":method", Value: "GET"},
		xhpack.HeaderField{Name: "X-Upper", Value: "1"},
	))
	assert.True(t, errors.Is(err, protocol.ErrInvalidFieldName))
	assert.Equal(t, errs.ErrorTypeParse, errs.TypeOf(err))

	_, err = NewDecoder().DecodeRequest(rawBlock(
		xhpack.HeaderField{Name: ":method", Value: "GET"},
		xhpack.HeaderField{Name: "accept", Value: "*/*"},
		xhpack.HeaderField{Name: ":path", Value: "/"},
	))
	assert.True(t, errors.Is(err, protocol.ErrPseudoNotFirst))

	_, err = NewDecoder().DecodeResponse(rawBlock(xhpack.HeaderField{Name: ":status", Value: "2000"}))
	assert.True(t, errors.Is(err, protocol.ErrInvalidStatus))

	_, err = NewDecoder().DecodeRequest([]byte{0x80})
	assert.True(t, errors.Is(err, ErrCompression))
	assert.Equal(t, errs.ErrorTypeDecode, errs.TypeOf(err))
}

func TestDecoderLimits(t *testing.T) {
	block := rawBlock(
		xhpack.HeaderField{Name: ":method", Value: "GET"},
		xhpack.HeaderField{Name: "x-long", Value: "0123456789abcdef"},
	)

	_, err := NewDecoder(config.WithMaxHeaderListSize(64)).DecodeRequest(block)
	assert.True(t, errors.Is(err, ErrHeaderListTooLarge))

	_, err = NewDecoder(config.WithMaxStringLength(8)).DecodeRequest(block)
	assert.True(t, errors.Is(err, ErrCompression))

	_, err = NewDecoder(config.WithMaxHeaderListSize(128), config.WithMaxStringLength(16)).DecodeRequest(block)
	assert.NoError(t, err)

	_, err = NewDecoder(config.WithMaxFieldCount(1)).DecodeRequest(rawBlock(
		xhpack.HeaderField{Name: ":method", Value: "GET"},
		xhpack.HeaderField{Name: "a", Value: "1"},
		xhpack.HeaderField{Name: "b", Value: "2"},
	))
	assert.True(t, errors.Is(err, protocol.ErrTooManyFields))
}

func TestDecoderRecoversAfterInvalidBlock(t *testing.T) {
	enc, dec := NewEncoder(), NewDecoder()
	bad := protocol.NewResponse(protocol.StatusOK)
	bad.Header.Add(protocol.NewField(protocol.NameLocation, "/a"))
	bad.Header.Add(protocol.NewField(protocol.NameLocation, "/b"))

	_, err := dec.DecodeResponse(enc.EncodeResponse(bad))
	assert.True(t, errors.Is(err, protocol.ErrMultipleLocation))

	// 动态表仍与编码器同步。
	good := protocol.NewResponse(protocol.StatusOK)
	good.Header.Add(protocol.NewField(protocol.NameLocation, "/a"))
	got, err := dec.DecodeResponse(enc.EncodeResponse(good))
	require.NoError(t, err)
	assert.Equal(t, "/a", got.Header.Get(protocol.NameLocation))
}

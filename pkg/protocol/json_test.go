package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/favbox/httptypes/pkg/common/errors"
	"github.com/favbox/httptypes/pkg/common/json"
)

func assertDecodeError(t *testing.T, err, want error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, want), "got %v, want %v", err, want)
	assert.Equal(t, errs.ErrorTypeDecode, errs.TypeOf(err))
}

func TestFieldJSON(t *testing.T) {
	f := NewField(NameAccept, "*/*")
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Accept","value":"*/*"}`, string(b))

	f.IndexingStrategy = IndexingAvoid
	b, err = json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Accept","value":"*/*","indexingStrategy":2}`, string(b))

	var got Field
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, f.Equal(got))
	assert.Equal(t, "Accept", got.Name.String())
}

func TestFieldJSONRejects(t *testing.T) {
	var f Field
	assertDecodeError(t, json.Unmarshal([]byte(`{"name":"bad name","value":"x"}`), &f), ErrInvalidFieldName)
	assertDecodeError(t, json.Unmarshal([]byte(`{"name":"X","value":" x"}`), &f), ErrInvalidFieldValue)
	assertDecodeError(t, json.Unmarshal([]byte(`{"name":"X","value":"a\r\nb"}`), &f), ErrInvalidFieldValue)
	assertDecodeError(t, json.Unmarshal([]byte(`{"name":"X","value":"x","indexingStrategy":4}`), &f), ErrInvalidIndexingStrategy)
	assertDecodeError(t, json.Unmarshal([]byte(`{"name":"X","value":"x","indexingStrategy":-1}`), &f), ErrInvalidIndexingStrategy)
}

func TestFieldJSONLatin1(t *testing.T) {
	f := NewFieldBytes(NameContentDisposition, []byte{'c', 'a', 'f', 0xe9})
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Content-Disposition","value":"café"}`, string(b))

	var got Field
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, f.Equal(got))
	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, got.RawValue().Bytes())
}

func TestRequestJSONLatin1RoundTrip(t *testing.T) {
	r := NewRequest(MethodGet, "https", "example.com", "/")
	r.Header.Add(NewFieldBytes(MustName("x-l"), []byte("caf\xe9")))
	r.Header.Add(NewFieldBytes(MustName("x-high"), []byte{0x80, 0xa0, 0xff}))
	assert.Equal(t, "café", r.Header.Get(MustName("x-l")))

	b, err := json.Marshal(r)
	require.NoError(t, err)

	var back Request
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, r.Equal(&back))
	assert.Equal(t, "café", back.Header.Get(MustName("x-l")))
	assert.Equal(t, []byte{0x80, 0xa0, 0xff}, back.Header.GetFields(MustName("x-high"))[0].RawValue().Bytes())
}

func TestRequestJSONRoundTrip(t *testing.T) {
	r := NewRequest(MethodPut, "https", "example", "/upload")
	r.Header.Add(NewField(NameAcceptEncoding, "gzip"))
	r.Header.Add(NewField(NameAcceptEncoding, "br"))
	r.Header.Add(NewField(NameContentLength, "1024"))

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"pseudoHeaderFields": [
			{"name": ":method", "value": "PUT"},
			{"name": ":scheme", "value": "https"},
			{"name": ":authority", "value": "example"},
			{"name": ":path", "value": "/upload"}
		],
		"headerFields": [
			{"name": "Accept-Encoding", "value": "gzip"},
			{"name": "Accept-Encoding", "value": "br"},
			{"name": "Content-Length", "value": "1024"}
		]
	}`, string(b))

	var got Request
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, r.Equal(&got))
	assert.Equal(t, "gzip, br", got.Header.Get(NameAcceptEncoding))
}

func TestRequestJSONRejects(t *testing.T) {
	for _, v := range []struct {
		in  string
		err error
	}{
		{`{"pseudoHeaderFields":[{"name":":path","value":"/"}],"headerFields":[]}`, ErrRequestWithoutMethod},
		{`{"pseudoHeaderFields":[{"name":":method","value":"GET"},{"name":":method","value":"GET"}],"headerFields":[]}`, ErrMultiplePseudo},
		{`{"pseudoHeaderFields":[{"name":":method","value":"GET"},{"name":":bogus","value":"x"}],"headerFields":[]}`, ErrInvalidPseudoName},
		{`{"pseudoHeaderFields":[{"name":":method","value":"GET"},{"name":"accept","value":"x"}],"headerFields":[]}`, ErrInvalidPseudoName},
		{`{"pseudoHeaderFields":[{"name":":method","value":"G T"}],"headerFields":[]}`, ErrInvalidMethod},
		{`{"pseudoHeaderFields":[{"name":":method","value":"GET"},{"name":":status","value":"200"}],"headerFields":[]}`, ErrRequestWithResponsePseudo},
		{`{"pseudoHeaderFields":[{"name":":method","value":"GET"}],"headerFields":[{"name":":path","value":"/"}]}`, ErrPseudoInHeaderFields},
		{`{"pseudoHeaderFields":[{"name":":method","value":"GET"}],"headerFields":[{"name":"x","value":"\u0000"}]}`, ErrInvalidFieldValue},
		{`{"pseudoHeaderFields":[{"name":":Method","value":"GET"}],"headerFields":[]}`, ErrInvalidFieldName},
	} {
		var r Request
		assertDecodeError(t, json.Unmarshal([]byte(v.in), &r), v.err)
	}

	var r Request
	err := json.Unmarshal([]byte(`{"pseudoHeaderFields":`), &r)
	require.Error(t, err)
	assert.Equal(t, errs.ErrorTypeDecode, errs.TypeOf(err))
}

func TestResponseJSONRoundTrip(t *testing.T) {
	r := NewResponse(StatusCreated)
	r.Header.Add(NewField(NameLocation, "/items/1"))
	secret := NewField(NameSetCookie, "id=1")
	secret.IndexingStrategy = IndexingDisallow
	r.Header.Add(secret)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"pseudoHeaderFields": [{"name": ":status", "value": "201"}],
		"reasonPhrase": "Created",
		"headerFields": [
			{"name": "Location", "value": "/items/1"},
			{"name": "Set-Cookie", "value": "id=1", "indexingStrategy": 3}
		]
	}`, string(b))

	var got Response
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, r.Equal(&got))
	assert.Equal(t, StatusCreated, got.Status())
}

func TestResponseJSONRejects(t *testing.T) {
	for _, v := range []struct {
		in  string
		err error
	}{
		{`{"pseudoHeaderFields":[],"reasonPhrase":"","headerFields":[]}`, ErrResponseWithoutStatus},
		{`{"pseudoHeaderFields":[{"name":":status","value":"20"}],"headerFields":[]}`, ErrInvalidStatus},
		{`{"pseudoHeaderFields":[{"name":":status","value":"200"},{"name":":status","value":"200"}],"headerFields":[]}`, ErrMultiplePseudo},
		{`{"pseudoHeaderFields":[{"name":":status","value":"200"},{"name":":method","value":"GET"}],"headerFields":[]}`, ErrResponseWithRequestPseudo},
		{`{"pseudoHeaderFields":[{"name":":status","value":"200"}],"headerFields":[{"name":":status","value":"200"}]}`, ErrPseudoInHeaderFields},
	} {
		var r Response
		assertDecodeError(t, json.Unmarshal([]byte(v.in), &r), v.err)
	}
}

func TestFieldsJSON(t *testing.T) {
	f := NewFields(NewField(nameA, "1"), NewField(nameB, "2"))
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"X-A","value":"1"},{"name":"X-B","value":"2"}]`, string(b))

	got := NewFields(NewField(nameC, "old"))
	require.NoError(t, json.Unmarshal(b, got))
	assert.True(t, f.Equal(got))
	assert.False(t, got.Has(nameC))

	assertDecodeError(t, json.Unmarshal([]byte(`[{"name":":path","value":"/"}]`), got), ErrPseudoInHeaderFields)
}

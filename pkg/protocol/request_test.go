package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	r := NewRequest(MethodGet, "https", "example.com", "/index.html")
	assert.Equal(t, MethodGet, r.Method())

	scheme, ok := r.Scheme()
	assert.True(t, ok)
	assert.Equal(t, "https", scheme)
	authority, _ := r.Authority()
	assert.Equal(t, "example.com", authority)
	path, _ := r.Path()
	assert.Equal(t, "/index.html", path)
	_, ok = r.ExtendedConnectProtocol()
	assert.False(t, ok)
	assert.Equal(t, "GET https://example.com/index.html", r.String())

	assert.Panics(t, func() { NewRequest("G T", "", "", "") })
}

func TestRequestConnect(t *testing.T) {
	r := NewRequest(MethodConnect, "", "example.com:443", "")
	_, ok := r.Scheme()
	assert.False(t, ok)
	_, ok = r.Path()
	assert.False(t, ok)
	assert.Equal(t, "CONNECT example.com:443", r.String())

	r.SetExtendedConnectProtocol("websocket")
	p, ok := r.ExtendedConnectProtocol()
	assert.True(t, ok)
	assert.Equal(t, "websocket", p)
	r.DelExtendedConnectProtocol()
	_, ok = r.ExtendedConnectProtocol()
	assert.False(t, ok)
}

func TestRequestZeroValue(t *testing.T) {
	var r Request
	assert.Equal(t, MethodGet, r.Method())
	assert.Equal(t, "GET", r.String())

	r.SetPath("/")
	path, ok := r.Path()
	assert.True(t, ok)
	assert.Equal(t, "/", path)
	assert.Equal(t, MethodGet, r.Method())

	r.Reset()
	_, ok = r.Path()
	assert.False(t, ok)
}

func TestRequestSetters(t *testing.T) {
	r := NewRequest(MethodPost, "http", "a.example", "/x")
	r.SetMethod(MethodPut)
	r.SetScheme("https")
	r.SetAuthority("b.example")
	r.SetPath(" /y\n")
	assert.Equal(t, "PUT https://b.example/y", r.String())

	r.DelScheme()
	r.DelAuthority()
	r.DelPath()
	assert.Equal(t, "PUT", r.String())
	assert.Panics(t, func() { r.SetMethod("") })
}

func TestRequestPseudoSlotMismatch(t *testing.T) {
	r := NewRequest(MethodGet, "https", "example.com", "/")
	p := r.PseudoHeaderFields()
	assert.Panics(t, func() { p.SetPath(NewField(NameScheme, "/")) })
	assert.Panics(t, func() { p.SetMethod(NewField(NameAccept, "GET")) })

	var got []string
	p.SetProtocol(NewField(NameProtocol, "websocket"))
	p.VisitAll(func(f Field) { got = append(got, f.Name.String()) })
	assert.Equal(t, []string{":method", ":scheme", ":authority", ":path", ":protocol"}, got)
}

func TestRequestClone(t *testing.T) {
	r := NewRequest(MethodGet, "https", "example.com", "/")
	r.Header.Add(NewField(NameAccept, "*/*"))

	c := r.Clone()
	assert.True(t, r.Equal(c))

	c.SetPath("/other")
	c.Header.Add(NewField(NameUserAgent, "test"))
	path, _ := r.Path()
	assert.Equal(t, "/", path)
	assert.Equal(t, 1, r.Header.Len())
	assert.False(t, r.Equal(c))

	r.SetMethod(MethodHead)
	assert.Equal(t, MethodGet, c.Method())
}

func TestResponse(t *testing.T) {
	r := NewResponse(StatusNotFound)
	assert.Equal(t, 404, r.Status().Code)
	assert.Equal(t, "Not Found", r.Status().ReasonPhrase)
	assert.Equal(t, "404 Not Found", r.String())
	assert.Equal(t, "404", r.PseudoHeaderFields().Status().Value())

	r.SetStatus(Status{Code: 5, ReasonPhrase: "odd\r\n"})
	assert.Equal(t, "005", r.PseudoHeaderFields().Status().Value())
	assert.Equal(t, "odd", r.Status().ReasonPhrase)

	assert.Panics(t, func() { r.SetStatus(Status{Code: 1000}) })
	assert.Panics(t, func() { r.PseudoHeaderFields().SetStatus(NewField(NameStatus, "20x")) })
	assert.Panics(t, func() { r.PseudoHeaderFields().SetStatus(NewField(NamePath, "200")) })
}

func TestResponseZeroValue(t *testing.T) {
	var r Response
	assert.Equal(t, StatusOK, r.Status())
	assert.True(t, r.Equal(NewResponse(StatusOK)))

	r.PseudoHeaderFields().SetReasonPhrase("Fine")
	assert.Equal(t, "200 Fine", r.String())
}

func TestResponseClone(t *testing.T) {
	r := NewResponse(StatusOK)
	r.Header.Add(NewField(NameContentType, "text/plain"))

	c := r.Clone()
	c.SetStatus(StatusCreated)
	c.Header.Set(NameContentType, "application/json")
	assert.Equal(t, StatusOK, r.Status())
	assert.Equal(t, "text/plain", r.Header.Get(NameContentType))
	assert.False(t, r.Equal(c))
}

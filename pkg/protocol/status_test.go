package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, Status{Code: 200, ReasonPhrase: "OK"}, StatusOK)
	assert.Equal(t, "418", NewStatus(418).String())
	assert.Equal(t, "Not Found", StatusText(404))
	assert.Equal(t, "", StatusText(799))
	assert.Panics(t, func() { NewStatus(1000) })
	assert.Panics(t, func() { NewStatus(-1) })

	for _, v := range []struct {
		code int
		kind StatusKind
	}{
		{100, StatusKindInformational},
		{204, StatusKindSuccessful},
		{308, StatusKindRedirection},
		{451, StatusKindClientError},
		{503, StatusKindServerError},
		{99, StatusKindInvalid},
		{600, StatusKindInvalid},
	} {
		assert.Equal(t, v.kind, NewStatus(v.code).Kind(), v.code)
	}
}

func TestParseStatusCode(t *testing.T) {
	code, ok := parseStatusCode("200")
	assert.True(t, ok)
	assert.Equal(t, 200, code)
	code, ok = parseStatusCode("007")
	assert.True(t, ok)
	assert.Equal(t, 7, code)

	for _, s := range []string{"", "20", "2000", "2a0", " 20", "+20"} {
		_, ok = parseStatusCode(s)
		assert.False(t, ok, s)
	}
}

func TestMethod(t *testing.T) {
	m, ok := ParseMethod("PROPFIND")
	assert.True(t, ok)
	assert.Equal(t, "PROPFIND", m.String())
	_, ok = ParseMethod("")
	assert.False(t, ok)
	_, ok = ParseMethod("GET /")
	assert.False(t, ok)

	assert.True(t, MethodGet.IsSafe())
	assert.False(t, MethodPost.IsSafe())
	assert.True(t, MethodPut.IsIdempotent())
	assert.True(t, MethodHead.IsIdempotent())
	assert.False(t, MethodPatch.IsIdempotent())
	assert.False(t, Method("a b").IsValid())
}

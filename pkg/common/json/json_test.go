package json

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBad = errors.New("bad")

type rejecting struct{}

func (*rejecting) UnmarshalJSON([]byte) error {
	return errBad
}

func TestUnmarshalKeepsErrorChain(t *testing.T) {
	err := Unmarshal([]byte(`{}`), &rejecting{})
	assert.True(t, errors.Is(err, errBad))

	err = UnmarshalFromString(`{}`, &rejecting{})
	assert.True(t, errors.Is(err, errBad))
}

func TestMarshal(t *testing.T) {
	s, err := MarshalToString(map[string]int{"a": 1})
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1}`, s)

	var m map[string]int
	assert.NoError(t, Unmarshal([]byte(`{"b":2}`), &m))
	assert.Equal(t, 2, m["b"])
}

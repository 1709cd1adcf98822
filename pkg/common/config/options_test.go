package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	options := NewOptions(nil)
	assert.Equal(t, math.MaxUint16, options.MaxFieldCount)
	assert.Equal(t, uint32(4096), options.MaxDynamicTableSize)
	assert.Equal(t, 0, options.MaxStringLength)
	assert.Equal(t, uint32(0), options.MaxHeaderListSize)
}

func TestApplyOptions(t *testing.T) {
	options := NewOptions([]Option{
		WithMaxFieldCount(100),
		WithMaxDynamicTableSize(0),
		WithMaxStringLength(1 << 10),
		WithMaxHeaderListSize(16 << 10),
	})
	assert.Equal(t, 100, options.MaxFieldCount)
	assert.Equal(t, uint32(0), options.MaxDynamicTableSize)
	assert.Equal(t, 1<<10, options.MaxStringLength)
	assert.Equal(t, uint32(16<<10), options.MaxHeaderListSize)

	assert.Panics(t, func() { NewOptions([]Option{WithMaxFieldCount(0)}) })
	assert.Panics(t, func() { NewOptions([]Option{WithMaxFieldCount(math.MaxUint16 + 1)}) })
}

func TestParseYAML(t *testing.T) {
	opts, err := ParseYAML([]byte("max_field_count: 128\nmax_header_list_size: 8192\n"))
	require.Nil(t, err)
	options := NewOptions(opts)
	assert.Equal(t, 128, options.MaxFieldCount)
	assert.Equal(t, uint32(8192), options.MaxHeaderListSize)
	assert.Equal(t, uint32(4096), options.MaxDynamicTableSize)

	opts, err = ParseYAML(nil)
	require.Nil(t, err)
	assert.Empty(t, opts)

	for _, doc := range []string{
		"max_field_count: 0",
		"max_field_count: 70000",
		"max_string_length: -1",
		"unknown_key: 1",
		"max_field_count: [",
	} {
		_, err = ParseYAML([]byte(doc))
		assert.NotNil(t, err, doc)
	}
}

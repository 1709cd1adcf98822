package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatin1ASCII(t *testing.T) {
	l := NewLatin1String("text/html")
	assert.True(t, l.IsASCII())
	assert.Equal(t, "text/html", l.String())
	assert.Equal(t, "text/html", l.Octets())
	assert.Equal(t, 9, l.Len())
	assert.True(t, l.Equal(NewLatin1([]byte("text/html"))))
}

func TestLatin1FromBytes(t *testing.T) {
	l := NewLatin1([]byte{'c', 'a', 'f', 0xe9})
	assert.False(t, l.IsASCII())
	assert.Equal(t, "café", l.String())
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, l.Bytes())
	assert.Equal(t, "caf\xe9", l.Octets())
	assert.True(t, l.Equal(NewLatin1String("café")))

	// 逐字节展开，而非 UTF-8 解码。
	l = NewLatin1([]byte{0xc3, 0xa9})
	assert.Equal(t, "Ã©", l.String())
	assert.Equal(t, []byte{0xc3, 0xa9}, l.Bytes())
}

func TestLatin1AllHighBytes(t *testing.T) {
	b := make([]byte, 0, 0x80)
	for c := 0x80; c <= 0xff; c++ {
		b = append(b, byte(c))
	}
	l := NewLatin1(b)
	assert.Equal(t, len(b), l.Len())
	assert.Equal(t, b, l.Bytes())
	assert.True(t, l.Equal(NewLatin1String(l.String())))
}

func TestLatin1FromString(t *testing.T) {
	// 非法 UTF-8 字节按单字节处理。
	l := NewLatin1String("caf\xe9")
	assert.Equal(t, "café", l.String())
	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, l.Bytes())

	// U+00FF 以上的标量以 UTF-8 字节输出。
	l = NewLatin1String("é😀")
	assert.Equal(t, "é😀", l.String())
	assert.Equal(t, append([]byte{0xe9}, "😀"...), l.Bytes())
	assert.Equal(t, 5, l.Len())
}

func TestLatin1WithBytes(t *testing.T) {
	var got []byte
	collect := func(b []byte) { got = append(got[:0], b...) }

	NewLatin1String("abc").WithBytes(collect)
	assert.Equal(t, []byte("abc"), got)

	NewLatin1String("ñ").WithBytes(collect)
	assert.Equal(t, []byte{0xf1}, got)

	b := []byte("xyz")
	l := NewLatin1(b)
	b[0] = 'X'
	assert.Equal(t, "xyz", l.String())
	assert.Equal(t, []byte("xyz"), l.Bytes())
}

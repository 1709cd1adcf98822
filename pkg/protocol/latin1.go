package protocol

import (
	"unicode/utf8"

	"github.com/favbox/httptypes/internal/bytesconv"
)

// Latin1 是按 ISO-8859-1 解释的不可变字段值。
//
// 内部保存解码后的文本（合法 UTF-8），线路上的每个字节对应一个同值的 Unicode 标量。
// 纯 ASCII 内容在任何方向上都不做转码。
type Latin1 struct {
	s     string
	ascii bool
}

// NewLatin1 将字节切片 b 按 ISO-8859-1 解码：每个字节展开为同值的标量。
//
// 这不是 UTF-8 解码，[]byte{0xC3, 0xA9} 得到的是 "Ã©"。
func NewLatin1(b []byte) Latin1 {
	if bytesconv.IsASCII(bytesconv.B2s(b)) {
		return Latin1{s: string(b), ascii: true}
	}

	buf := make([]byte, 0, len(b)*2)
	for _, c := range b {
		buf = utf8.AppendRune(buf, rune(c))
	}
	return Latin1{s: bytesconv.B2s(buf)}
}

// NewLatin1String 以文本 s 构造 Latin1。
//
// s 中不构成合法 UTF-8 的字节按 ISO-8859-1 单字节处理，
// 故 NewLatin1String("caf\xe9") 与 NewLatin1String("café") 相等。
func NewLatin1String(s string) Latin1 {
	if bytesconv.IsASCII(s) {
		return Latin1{s: s, ascii: true}
	}
	if utf8.ValidString(s) {
		return Latin1{s: s}
	}

	buf := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = rune(s[i])
		}
		buf = utf8.AppendRune(buf, r)
		i += size
	}
	return Latin1{s: bytesconv.B2s(buf)}
}

// String 返回解码后的文本。
func (l Latin1) String() string {
	return l.s
}

// WithBytes 把 ISO-8859-1 编码的字节交给 f：每个不大于 U+00FF 的标量对应一个字节。
// 大于 U+00FF 的标量无法用 ISO-8859-1 表示，按其 UTF-8 字节原样输出。
//
// 纯 ASCII 时零拷贝。f 不可修改该切片，也不可在返回后保留对它的引用。
func (l Latin1) WithBytes(f func(b []byte)) {
	if l.ascii {
		f(bytesconv.S2b(l.s))
		return
	}
	f(l.appendBytes(make([]byte, 0, len(l.s))))
}

// Bytes 返回 ISO-8859-1 编码字节的副本，编码规则同 WithBytes。
func (l Latin1) Bytes() []byte {
	if l.ascii {
		return []byte(l.s)
	}
	return l.appendBytes(make([]byte, 0, len(l.s)))
}

func (l Latin1) appendBytes(dst []byte) []byte {
	for i := 0; i < len(l.s); {
		r, size := utf8.DecodeRuneInString(l.s[i:])
		if r <= 0xFF {
			dst = append(dst, byte(r))
		} else {
			dst = append(dst, l.s[i:i+size]...)
		}
		i += size
	}
	return dst
}

// Octets 返回 ISO-8859-1 编码字节组成的字符串，编码规则同 WithBytes。纯 ASCII 时不分配内存。
func (l Latin1) Octets() string {
	if l.ascii {
		return l.s
	}
	return bytesconv.B2s(l.appendBytes(make([]byte, 0, len(l.s))))
}

// IsASCII 返回内容是否全为 ASCII。
func (l Latin1) IsASCII() bool {
	return l.ascii
}

// Len 返回 ISO-8859-1 编码后的字节数。
func (l Latin1) Len() int {
	if l.ascii {
		return len(l.s)
	}
	n := 0
	for i := 0; i < len(l.s); {
		r, size := utf8.DecodeRuneInString(l.s[i:])
		if r <= 0xFF {
			n++
		} else {
			n += size
		}
		i += size
	}
	return n
}

// Equal 按文本比较两者。
func (l Latin1) Equal(o Latin1) bool {
	return l.s == o.s
}

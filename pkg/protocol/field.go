package protocol

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/favbox/httptypes/internal/bytesconv"
	"github.com/favbox/httptypes/internal/bytestr"
)

// IndexingStrategy 是给 HPACK/QPACK 压缩器的动态表索引提示。
type IndexingStrategy uint8

const (
	// IndexingAutomatic 由压缩器自行决定是否索引。
	IndexingAutomatic IndexingStrategy = iota
	// IndexingPrefer 倾向于将字段加入动态表。
	IndexingPrefer
	// IndexingAvoid 倾向于不将字段加入动态表。
	IndexingAvoid
	// IndexingDisallow 禁止索引，中间节点也不可索引，适用于敏感字段。
	IndexingDisallow
)

func (s IndexingStrategy) String() string {
	switch s {
	case IndexingAutomatic:
		return "automatic"
	case IndexingPrefer:
		return "prefer"
	case IndexingAvoid:
		return "avoid"
	case IndexingDisallow:
		return "disallow"
	}
	return "IndexingStrategy(" + strconv.Itoa(int(s)) + ")"
}

// IsValid 返回是否为已定义的四种策略之一。
func (s IndexingStrategy) IsValid() bool {
	return s <= IndexingDisallow
}

// Field 是一个 HTTP 字段：名称、值以及索引策略。
//
// 值在每次构造或修改时都会按 RFC 9110 合法化，故 Field 中的值总是合法的。
type Field struct {
	Name             Name
	IndexingStrategy IndexingStrategy

	value Latin1
}

// NewField 以文本值构造字段，非法字节替换为空格并裁剪首尾空白。
func NewField(name Name, value string) Field {
	return Field{Name: name, value: NewLatin1String(legalizeValue(value))}
}

// NewFieldBytes 以 ISO-8859-1 字节值构造字段，合法化规则与 NewField 相同。
// 每个字节解码为同值的标量，如 0xE9 得到 "é"。
func NewFieldBytes(name Name, value []byte) Field {
	return Field{Name: name, value: NewLatin1(bytesconv.S2b(legalizeValue(string(value))))}
}

// NewFieldLenient 以线路上已分帧的字节值构造字段。
//
// 只将 NUL、CR、LF 替换为空格，不裁剪也不处理其他控制字符，
// 上游分帧已保证了结构安全。
func NewFieldLenient(name Name, value []byte) Field {
	b := append([]byte(nil), value...)
	for i, c := range b {
		if c == 0 || c == '\r' || c == '\n' {
			b[i] = ' '
		}
	}
	return Field{Name: name, value: NewLatin1(b)}
}

// Value 返回字段值解码后的文本。
func (f Field) Value() string {
	return f.value.String()
}

// RawValue 返回字段值，可由其取得 ISO-8859-1 编码的字节。
func (f Field) RawValue() Latin1 {
	return f.value
}

// SetValue 设置字段值，并从头重新合法化。
func (f *Field) SetValue(value string) {
	f.value = NewLatin1String(legalizeValue(value))
}

// SetValueBytes 设置字节形式的字段值，并从头重新合法化。
func (f *Field) SetValueBytes(value []byte) {
	f.value = NewLatin1(bytesconv.S2b(legalizeValue(string(value))))
}

// Equal 比较名称（规范形式）、值与索引策略。
func (f Field) Equal(o Field) bool {
	return f.Name.Equal(o.Name) && f.value.Equal(o.value) && f.IndexingStrategy == o.IndexingStrategy
}

// Hash 返回与 Equal 一致的哈希值。
func (f Field) Hash() uint64 {
	d := xxhash.New()
	f.writeHash(d)
	return d.Sum64()
}

func (f Field) writeHash(d *xxhash.Digest) {
	d.WriteString(f.Name.canonical)
	d.Write([]byte{0, byte(f.IndexingStrategy)})
	d.WriteString(f.value.s)
	d.Write([]byte{0})
}

// String 返回 "Name: value" 形式。
func (f Field) String() string {
	b := make([]byte, 0, len(f.Name.raw)+len(f.value.s)+2)
	b = append(b, f.Name.raw...)
	b = append(b, bytestr.StrColonSpace...)
	b = append(b, f.value.s...)
	return bytesconv.B2s(b)
}

// IsValidValue 返回 value 是否已是合法的字段值：
// 首尾字节不为空格或制表符，且每个字节都是 HTAB、SP、可见 ASCII 或 0x80-0xFF。
// 空字符串是合法的。
func IsValidValue(value string) bool {
	n := len(value)
	if n == 0 {
		return true
	}
	if isWhitespace(value[0]) || isWhitespace(value[n-1]) {
		return false
	}
	for i := 0; i < n; i++ {
		if bytesconv.FieldValueTable[value[i]] == 0 {
			return false
		}
	}
	return true
}

// IsValidValueBytes 与 IsValidValue 相同，作用于字节切片。
func IsValidValueBytes(value []byte) bool {
	return IsValidValue(bytesconv.B2s(value))
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

// 非法字节替换为空格，再裁剪首尾的空格与制表符。值已合法时不分配内存。
func legalizeValue(value string) string {
	if IsValidValue(value) {
		return value
	}

	b := []byte(value)
	for i, c := range b {
		if bytesconv.FieldValueTable[c] == 0 {
			b[i] = ' '
		}
	}

	start, end := 0, len(b)
	for start < end && isWhitespace(b[start]) {
		start++
	}
	for end > start && isWhitespace(b[end-1]) {
		end--
	}
	return bytesconv.B2s(b[start:end])
}

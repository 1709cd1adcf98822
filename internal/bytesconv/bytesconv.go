package bytesconv

import (
	"errors"
	"math"
	"unsafe"
)

// LowercaseBytes 将字节切片原地转为小写。
func LowercaseBytes(b []byte) {
	for i, n := 0, len(b); i < n; i++ {
		p := &b[i]
		*p = ToLowerTable[*p]
	}
}

// AppendLower 将 s 的小写形式附加到 dst 并返回。
func AppendLower(dst []byte, s string) []byte {
	for i, n := 0, len(s); i < n; i++ {
		dst = append(dst, ToLowerTable[s[i]])
	}
	return dst
}

// B2s 将字节切片转为字符串，且不分配内存。
// 详见 https://groups.google.com/forum/#!msg/Golang-Nuts/ENgbUzYvCuU/90yGx7GUAgAJ 。
//
// 注意：如果字符串或切片的标头在未来的go版本中更改，该方法可能会出错。
func B2s(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// S2b 将字符串转为字节切片，且不分配内存。
//
// 返回的切片与 s 共享底层数组，不可修改。
func S2b(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// IsToken 返回 s 是否为非空的 RFC 9110 token。
func IsToken(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, n := 0, len(s); i < n; i++ {
		if TokenTable[s[i]] == 0 {
			return false
		}
	}
	return true
}

// IsLowerToken 返回 s 是否为非空、且不含大写字母的 token。
func IsLowerToken(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, n := 0, len(s); i < n; i++ {
		if LowerTokenTable[s[i]] == 0 {
			return false
		}
	}
	return true
}

// IsASCII 返回 s 是否只包含 ASCII 字符。
func IsASCII(s string) bool {
	for i, n := 0, len(s); i < n; i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// AppendUint 附加正整数 n 到字节切片 dst 并返回。
func AppendUint(dst []byte, n int) []byte {
	if n < 0 {
		panic("BUG：int 必须为正数")
	}

	var b [20]byte
	buf := b[:]
	i := len(buf)
	var q int
	for n >= 10 {
		i--
		q = n / 10
		buf[i] = '0' + byte(n-q*10)
		n = q
	}
	i--
	buf[i] = '0' + byte(n)

	dst = append(dst, buf[i:]...)
	return dst
}

// 十进制解析错误。
var (
	ErrEmptyUint   = errors.New("整数为空")
	ErrInvalidUint = errors.New("整数含有 0-9 以外的字符")
	ErrUintTooLong = errors.New("整数溢出")
)

// ParseUint 将仅含 ASCII 数字的 s 解析为非负整数。
func ParseUint(s string) (int, error) {
	if len(s) == 0 {
		return -1, ErrEmptyUint
	}
	v := 0
	for i := 0; i < len(s); i++ {
		k := int(s[i] - '0')
		if k > 9 {
			return -1, ErrInvalidUint
		}
		if v > (math.MaxInt-k)/10 {
			return -1, ErrUintTooLong
		}
		v = 10*v + k
	}
	return v, nil
}

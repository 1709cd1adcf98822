package protocol

import (
	"strings"

	"github.com/favbox/httptypes/internal/bytesconv"
	"github.com/favbox/httptypes/pkg/common/utils"
)

// Name 是字段名称，保留原始大小写用于展示，比较与哈希只使用小写规范形式。
//
// 以 ':' 开头的名称为伪标头，不可放入 Fields，只能出现在请求或响应的伪标头槽位中。
//
// Name 的 == 运算会连同原始形式一起比较，判断同名请使用 Equal。
type Name struct {
	raw       string
	canonical string
}

// NewName 校验并构造字段名称。
//
// name 须非空且每个字节都属于 RFC 9110 的 tchar，否则返回 false。
func NewName(name string) (Name, bool) {
	if !bytesconv.IsToken(name) {
		return Name{}, false
	}
	return Name{raw: name, canonical: lower(name)}, true
}

// ParseName 用于 HPACK/QPACK 等解码器给出的小写名称。
//
// 允许以 ':' 开头表示伪标头，其余部分须为不含大写字母的 tchar。
func ParseName(name string) (Name, bool) {
	token := name
	if strings.HasPrefix(token, ":") {
		token = token[1:]
	}
	if !bytesconv.IsLowerToken(token) {
		return Name{}, false
	}
	return Name{raw: name, canonical: name}, true
}

// MustName 与 NewName 相同，但名称无效时触发恐慌。
func MustName(name string) Name {
	n, ok := NewName(name)
	if !ok {
		panic("BUG：无效的字段名称 " + name)
	}
	return n
}

func pseudoName(name string) Name {
	n, ok := ParseName(name)
	if !ok || !n.IsPseudo() {
		panic("BUG：无效的伪标头名称 " + name)
	}
	return n
}

// 名称多为小写，已是小写时不分配内存。
func lower(s string) string {
	for i, n := 0, len(s); i < n; i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			return bytesconv.B2s(bytesconv.AppendLower(make([]byte, 0, n), s))
		}
	}
	return s
}

// String 返回原始名称。
func (n Name) String() string {
	return n.raw
}

// Canonical 返回小写规范名称。
func (n Name) Canonical() string {
	return n.canonical
}

// IsPseudo 返回是否为伪标头名称。
func (n Name) IsPseudo() bool {
	return len(n.canonical) > 0 && n.canonical[0] == ':'
}

// IsZero 返回是否为零值名称。
func (n Name) IsZero() bool {
	return n.canonical == ""
}

// Equal 按规范名称比较。
func (n Name) Equal(o Name) bool {
	return n.canonical == o.canonical
}

// Is 不分大小写地比较名称与字符串 s。
func (n Name) Is(s string) bool {
	return utils.CaseInsensitiveCompare(n.canonical, s)
}

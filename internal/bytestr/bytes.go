// Package bytestr 定义一些常用字节化字符串。
package bytestr

var (
	StrCRLF       = []byte("\r\n")
	StrColon      = []byte(":")
	StrColonSpace = []byte(": ")
	StrSpace      = []byte(" ")
)

// 字段值的拼接分隔符
const (
	CommaSpace     = ", "
	SemicolonSpace = "; "
)

// 伪标头名称，均为小写规范形式。
const (
	PseudoMethod    = ":method"
	PseudoScheme    = ":scheme"
	PseudoAuthority = ":authority"
	PseudoPath      = ":path"
	PseudoProtocol  = ":protocol"
	PseudoStatus    = ":status"
)

// Package adaptor 在 protocol 的请求、响应与 net/http 的对应类型之间转换。
package adaptor

import (
	"net/http"
	"sort"
	"strings"

	"github.com/favbox/httptypes/internal/bytebufferpool"
	"github.com/favbox/httptypes/internal/bytesconv"
	"github.com/favbox/httptypes/internal/bytestr"
	"github.com/favbox/httptypes/pkg/common/hlog"
	"github.com/favbox/httptypes/pkg/common/utils"
	"github.com/favbox/httptypes/pkg/protocol"
)

// ToHTTPHeader 将字段折叠为 http.Header：同名字段合并为一个值，
// 以 ", " 拼接，Cookie 以 "; " 拼接。键为规范化的 MIME 形式。
//
// net/http 按原样写出标头字节，故值为 ISO-8859-1 编码的字节。
func ToHTTPHeader(fields *protocol.Fields) http.Header {
	names := fields.Names()
	h := make(http.Header, len(names))
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for _, name := range names {
		sep := bytestr.CommaSpace
		if name.Equal(protocol.NameCookie) {
			sep = bytestr.SemicolonSpace
		}
		buf.Reset()
		for i, f := range fields.GetFields(name) {
			if i > 0 {
				buf.WriteString(sep)
			}
			f.RawValue().WithBytes(func(b []byte) { _, _ = buf.Write(b) })
		}
		h[utils.CanonicalHeaderKey(name.String())] = []string{buf.String()}
	}
	return h
}

// FromHTTPHeader 由 http.Header 重建字段集合。
//
// http.Header 本身无序，故按键的字典序重建；Cookie 按 "; " 拆分，
// 名称无效的键被忽略，值按 ISO-8859-1 字节解码。
func FromHTTPHeader(h http.Header) *protocol.Fields {
	fields := protocol.NewFieldsWithCapacity(len(h))
	appendHTTPHeader(fields, h)
	return fields
}

func appendHTTPHeader(dst *protocol.Fields, h http.Header) {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name, ok := protocol.LookupName(k)
		if !ok {
			if name, ok = protocol.NewName(k); !ok {
				hlog.SystemLogger().Debugf("忽略无效的标头名称 %q", k)
				continue
			}
		}
		isCookie := name.Equal(protocol.NameCookie)
		for _, v := range h[k] {
			if !isCookie {
				dst.Add(protocol.NewFieldBytes(name, bytesconv.S2b(v)))
				continue
			}
			for _, c := range strings.Split(v, bytestr.SemicolonSpace) {
				dst.Add(protocol.NewFieldBytes(name, bytesconv.S2b(c)))
			}
		}
	}
}

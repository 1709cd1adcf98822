package utils

import "github.com/favbox/httptypes/internal/bytesconv"

// CaseInsensitiveCompare 按 ASCII 忽略大小写比较 a 与 b，不分配内存。
func CaseInsensitiveCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if bytesconv.ToLowerTable[a[i]] != bytesconv.ToLowerTable[b[i]] {
			return false
		}
	}
	return true
}

// CanonicalHeaderKey 返回 key 的 MIME 规范形式，如 "content-type" 转为 "Content-Type"：
// 首字母与每个 '-' 之后的字母大写，其余小写。key 已是规范形式时原样返回。
func CanonicalHeaderKey(key string) string {
	i := 0
	for ; i < len(key); i++ {
		if key[i] != canonicalByte(key, i) {
			break
		}
	}
	if i == len(key) {
		return key
	}

	b := []byte(key)
	for ; i < len(b); i++ {
		b[i] = canonicalByte(key, i)
	}
	return bytesconv.B2s(b)
}

func canonicalByte(key string, i int) byte {
	if i == 0 || key[i-1] == '-' {
		return bytesconv.ToUpperTable[key[i]]
	}
	return bytesconv.ToLowerTable[key[i]]
}

// Package json 是库内统一使用的 JSON 编解码入口，基于 json-iterator，行为与标准库兼容。
package json

import (
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal 返回 v 的 JSON 编码。
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalToString 返回 v 的 JSON 编码字符串。
func MarshalToString(v any) (string, error) {
	return api.MarshalToString(v)
}

// Unmarshal 将 JSON 数据解码到 v。
//
// json-iterator 会把 UnmarshalJSON 返回的错误改写为字符串，
// 故 v 自身实现了 json.Unmarshaler 时直接调用，以保留错误链。
func Unmarshal(data []byte, v any) error {
	if u, ok := v.(stdjson.Unmarshaler); ok {
		return u.UnmarshalJSON(data)
	}
	return api.Unmarshal(data, v)
}

// UnmarshalFromString 将 JSON 字符串解码到 v。
func UnmarshalFromString(s string, v any) error {
	return Unmarshal([]byte(s), v)
}

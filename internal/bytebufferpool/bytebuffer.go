// Package bytebufferpool 提供按使用情况自校准的字节缓冲池，用于拼接字段值与渲染字段集合。
package bytebufferpool

// ByteBuffer 是可追加写入的字节缓冲区。
type ByteBuffer struct {
	// B 是 append 操作所用的底层切片。
	B []byte
}

// Len 返回已写入的字节数。
func (b *ByteBuffer) Len() int {
	return len(b.B)
}

// Write 实现 io.Writer，总是返回 nil error。
func (b *ByteBuffer) Write(p []byte) (int, error) {
	b.B = append(b.B, p...)
	return len(p), nil
}

// WriteByte 追加一个字节，总是返回 nil error。
func (b *ByteBuffer) WriteByte(c byte) error {
	b.B = append(b.B, c)
	return nil
}

// WriteString 追加字符串，总是返回 nil error。
func (b *ByteBuffer) WriteString(s string) (int, error) {
	b.B = append(b.B, s...)
	return len(s), nil
}

// String 返回已写入内容的副本。缓冲区放回池中后副本仍然有效。
func (b *ByteBuffer) String() string {
	return string(b.B)
}

// Reset 清空内容，保留底层存储。
func (b *ByteBuffer) Reset() {
	b.B = b.B[:0]
}

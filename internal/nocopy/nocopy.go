package nocopy

// NoCopy 用于嵌入结构体，以便 `go vet` 的 copylocks 检查能发现按值复制。
//
// 详见 https://github.com/golang/go/issues/8005#issuecomment-190753527
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}

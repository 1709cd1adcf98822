package bytebufferpool

import (
	"sort"
	"sync"
	"sync/atomic"
)

const (
	minBitSize = 6 // 64 字节，一个缓存行
	steps      = 20

	minSize = 1 << minBitSize

	calibrateCallsThreshold = 42000
	maxPercentile           = 0.95
)

// Pool 是字节缓冲池。
//
// 每次 Put 按缓冲区长度分档计数，累计到阈值后重新校准：
// 新缓冲区的初始容量取最常见的档位，超过 95% 分位容量的缓冲区不再回收。
type Pool struct {
	calls       [steps]uint64
	calibrating uint32

	defaultSize uint64
	maxSize     uint64

	pool sync.Pool
}

var defaultPool Pool

// Get 从默认池取出一个空缓冲区。
func Get() *ByteBuffer { return defaultPool.Get() }

// Put 将缓冲区放回默认池，放回后不可再访问。
func Put(b *ByteBuffer) { defaultPool.Put(b) }

// Get 取出一个空缓冲区。
func (p *Pool) Get() *ByteBuffer {
	if v := p.pool.Get(); v != nil {
		return v.(*ByteBuffer)
	}
	return &ByteBuffer{B: make([]byte, 0, atomic.LoadUint64(&p.defaultSize))}
}

// Put 放回由 Get 取出的缓冲区。
func (p *Pool) Put(b *ByteBuffer) {
	if atomic.AddUint64(&p.calls[index(len(b.B))], 1) > calibrateCallsThreshold {
		p.calibrate()
	}

	limit := atomic.LoadUint64(&p.maxSize)
	if limit == 0 || uint64(cap(b.B)) <= limit {
		b.Reset()
		p.pool.Put(b)
	}
}

func (p *Pool) calibrate() {
	if !atomic.CompareAndSwapUint32(&p.calibrating, 0, 1) {
		return
	}
	defer atomic.StoreUint32(&p.calibrating, 0)

	var (
		buckets [steps]struct{ calls, size uint64 }
		total   uint64
	)
	for i := range buckets {
		buckets[i].calls = atomic.SwapUint64(&p.calls[i], 0)
		buckets[i].size = minSize << i
		total += buckets[i].calls
	}
	sort.Slice(buckets[:], func(i, j int) bool { return buckets[i].calls > buckets[j].calls })

	defaultSize := buckets[0].size
	maxSize := defaultSize
	limit := uint64(float64(total) * maxPercentile)
	var sum uint64
	for i := 0; i < steps && sum <= limit; i++ {
		sum += buckets[i].calls
		if buckets[i].size > maxSize {
			maxSize = buckets[i].size
		}
	}

	atomic.StoreUint64(&p.defaultSize, defaultSize)
	atomic.StoreUint64(&p.maxSize, maxSize)
}

// 长度为 n 的缓冲区所在的档位，第 i 档容纳至多 minSize<<i 字节。
func index(n int) int {
	n--
	n >>= minBitSize
	idx := 0
	for n > 0 {
		n >>= 1
		idx++
	}
	if idx >= steps {
		idx = steps - 1
	}
	return idx
}

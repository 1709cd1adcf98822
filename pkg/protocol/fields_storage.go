package protocol

import (
	"math"
	"sync"
	"sync/atomic"
)

const (
	// 单个集合可容纳的最多字段数，须能用 16 位下标表示。
	maxFieldCount = math.MaxUint16
	// 同名链表的结束标记，不会与任何有效下标冲突。
	endOfChain uint16 = math.MaxUint16
)

// refCount 是写时复制共享存储的引用计数。
type refCount struct {
	n atomic.Int32
}

func (r *refCount) init()          { r.n.Store(1) }
func (r *refCount) retain()        { r.n.Add(1) }
func (r *refCount) release()       { r.n.Add(-1) }
func (r *refCount) isUnique() bool { return r.n.Load() <= 1 }

type fieldEntry struct {
	field Field
	// 同名的下一个字段的下标，endOfChain 表示链尾。仅在索引有效时有意义。
	next uint16
}

// 同名链表的首尾下标。
type chain struct {
	first uint16
	last  uint16
}

// fieldsStorage 是 Fields 的共享底层存储。
//
// 多个 Fields 可共享同一存储，此时只读；修改前须确认独占，否则先复制。
// mu 只保护惰性索引的构建、修补与复制。
type fieldsStorage struct {
	refs refCount

	mu    sync.Mutex
	index map[string]chain // 为 nil 表示索引已失效

	fields []fieldEntry
}

func newFieldsStorage(capacity int) *fieldsStorage {
	s := &fieldsStorage{fields: make([]fieldEntry, 0, capacity)}
	s.refs.init()
	return s
}

// 深拷贝字段与索引。在锁内进行，以免与并发的索引构建交错。
func (s *fieldsStorage) copy() *fieldsStorage {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &fieldsStorage{fields: make([]fieldEntry, len(s.fields), cap(s.fields))}
	copy(c.fields, s.fields)
	if s.index != nil {
		c.index = make(map[string]chain, len(s.index))
		for k, v := range s.index {
			c.index[k] = v
		}
	}
	c.refs.init()
	return c
}

// 返回有效的索引，必要时重建。重建时逆序扫描，为每个条目设置同名后继。
//
// 返回的映射在下次修改前只读，可被多个协程同时读取。
func (s *fieldsStorage) ensureIndex() map[string]chain {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index != nil {
		return s.index
	}

	index := make(map[string]chain, len(s.fields))
	for i := len(s.fields) - 1; i >= 0; i-- {
		e := &s.fields[i]
		name := e.field.Name.canonical
		if c, ok := index[name]; ok {
			e.next = c.first
			c.first = uint16(i)
			index[name] = c
		} else {
			e.next = endOfChain
			index[name] = chain{first: uint16(i), last: uint16(i)}
		}
	}
	s.index = index
	return index
}

func (s *fieldsStorage) invalidateIndex() {
	s.mu.Lock()
	s.index = nil
	s.mu.Unlock()
}

// 追加到末尾。索引有效时只修补链尾，不使索引失效。
func (s *fieldsStorage) append(f Field) {
	if len(s.fields) >= maxFieldCount {
		panic("BUG：字段数超过 65535 的上限")
	}

	i := uint16(len(s.fields))
	s.fields = append(s.fields, fieldEntry{field: f, next: endOfChain})

	s.mu.Lock()
	if s.index != nil {
		name := f.Name.canonical
		if c, ok := s.index[name]; ok {
			s.fields[c.last].next = i
			c.last = i
			s.index[name] = c
		} else {
			s.index[name] = chain{first: i, last: i}
		}
	}
	s.mu.Unlock()
}

// 以 fields 替换 [lo, hi) 区间，总会使索引失效。
func (s *fieldsStorage) replaceRange(lo, hi int, fields []Field) {
	oldLen := len(s.fields)
	n := len(fields) - (hi - lo)
	if oldLen+n > maxFieldCount {
		panic("BUG：字段数超过 65535 的上限")
	}

	if n > 0 {
		s.fields = append(s.fields, make([]fieldEntry, n)...)
	}
	copy(s.fields[lo+len(fields):], s.fields[hi:oldLen])
	for k, f := range fields {
		s.fields[lo+k] = fieldEntry{field: f, next: endOfChain}
	}
	if n < 0 {
		s.truncate(oldLen + n)
	}
	s.invalidateIndex()
}

// 稳定地原地删除升序下标 positions 对应的条目，其余条目保持相对顺序。
func (s *fieldsStorage) removePositions(positions []int) {
	if len(positions) == 0 {
		return
	}

	w, p := positions[0], 0
	for r := positions[0]; r < len(s.fields); r++ {
		if p < len(positions) && positions[p] == r {
			p++
			continue
		}
		s.fields[w] = s.fields[r]
		w++
	}
	s.truncate(w)
	s.invalidateIndex()
}

// 截断至长度 n，并清空尾部以便回收。
func (s *fieldsStorage) truncate(n int) {
	for i := n; i < len(s.fields); i++ {
		s.fields[i] = fieldEntry{}
	}
	s.fields = s.fields[:n]
}

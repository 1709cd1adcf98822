package protocol

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/favbox/httptypes/internal/bytebufferpool"
	"github.com/favbox/httptypes/internal/bytestr"
	"github.com/favbox/httptypes/internal/nocopy"
)

// Fields 是保持插入顺序的 HTTP 字段集合，支持按名称高效查找。
//
// 同名字段通过底层数组上的单向链表串联，名称到链表首尾的索引惰性构建。
// Clone 以 O(1) 代价共享底层存储，直到某一方修改时才复制（写时复制）。
//
// 零值是可用的空集合。禁止按值复制 Fields 实例，请使用 Clone。
//
// 同一个 Fields 实例不可在多协程中并发修改；由 Clone 得到的各实例可在各自协程中独立读写。
type Fields struct {
	noCopy nocopy.NoCopy

	s *fieldsStorage
}

// NewFields 按顺序以给定字段创建集合。
func NewFields(fields ...Field) *Fields {
	f := NewFieldsWithCapacity(len(fields))
	f.Append(fields...)
	return f
}

// NewFieldsWithCapacity 创建预留了 n 个字段空间的集合。
func NewFieldsWithCapacity(n int) *Fields {
	return &Fields{s: newFieldsStorage(n)}
}

// Clone 返回与 f 共享存储的副本，两者此后的修改互不可见。
//
// 共享期间先修改的一方会复制存储。副本不再使用时应调用其 Reset 归还引用，
// 否则 f 下次修改时仍会多复制一次。
func (f *Fields) Clone() *Fields {
	c := f.share()
	return &c
}

// 返回共享同一存储的值，供内嵌 Fields 的结构体克隆使用。
func (f *Fields) share() Fields {
	if f.s == nil {
		return Fields{}
	}
	f.s.refs.retain()
	return Fields{s: f.s}
}

// 转移存储的所有权，f 随后为空集合。
func (f *Fields) take() Fields {
	s := f.s
	f.s = nil
	return Fields{s: s}
}

// 返回可修改的存储。存储被共享时先复制一份并释放旧的引用。
func (f *Fields) mutable() *fieldsStorage {
	if f.s == nil {
		f.s = newFieldsStorage(0)
	} else if !f.s.refs.isUnique() {
		c := f.s.copy()
		f.s.refs.release()
		f.s = c
	}
	return f.s
}

func (f *Fields) entries() []fieldEntry {
	if f == nil || f.s == nil {
		return nil
	}
	return f.s.fields
}

// 返回名称对应链表的首下标，不存在时为 endOfChain。
func (f *Fields) first(name Name) uint16 {
	if len(f.entries()) == 0 {
		return endOfChain
	}
	if c, ok := f.s.ensureIndex()[name.canonical]; ok {
		return c.first
	}
	return endOfChain
}

// visit 依序对名称为 name 的每个字段调用 fn。
func (f *Fields) visit(name Name, fn func(field *Field)) {
	for i := f.first(name); i != endOfChain; i = f.s.fields[i].next {
		fn(&f.s.fields[i].field)
	}
}

func checkNotPseudo(field *Field) {
	if field.Name.IsPseudo() {
		panic("BUG：伪标头 " + field.Name.raw + " 不可放入字段集合")
	}
}

// Len 返回字段数。
func (f *Fields) Len() int {
	return len(f.entries())
}

// At 返回第 i 个字段。
func (f *Fields) At(i int) Field {
	return f.entries()[i].field
}

// SetAt 替换第 i 个字段。名称改变时使索引失效。
func (f *Fields) SetAt(i int, field Field) {
	checkNotPseudo(&field)
	s := f.mutable()
	e := &s.fields[i]
	renamed := !e.field.Name.Equal(field.Name)
	e.field = field
	if renamed {
		s.invalidateIndex()
	}
}

// Add 追加一个字段。
func (f *Fields) Add(field Field) {
	checkNotPseudo(&field)
	f.mutable().append(field)
}

// Append 按顺序追加多个字段。
func (f *Fields) Append(fields ...Field) {
	if len(fields) == 0 {
		return
	}
	for i := range fields {
		checkNotPseudo(&fields[i])
	}
	s := f.mutable()
	for _, field := range fields {
		s.append(field)
	}
}

// Insert 在下标 i 处插入字段。
func (f *Fields) Insert(i int, fields ...Field) {
	f.ReplaceRange(i, i, fields)
}

// Remove 删除第 i 个字段。
func (f *Fields) Remove(i int) {
	f.ReplaceRange(i, i+1, nil)
}

// ReplaceRange 以 fields 替换 [lo, hi) 区间内的字段。
//
// 若区间为末尾的空区间，则等同于 Append；否则索引失效，待下次按名称访问时重建。
func (f *Fields) ReplaceRange(lo, hi int, fields []Field) {
	n := f.Len()
	if lo < 0 || lo > hi || hi > n {
		panic("BUG：字段区间越界")
	}
	for i := range fields {
		checkNotPseudo(&fields[i])
	}
	if lo == n && hi == n {
		f.Append(fields...)
		return
	}
	f.mutable().replaceRange(lo, hi, fields)
}

// RemoveFunc 删除所有满足 fn 的字段，其余字段保持顺序。
func (f *Fields) RemoveFunc(fn func(field Field) bool) {
	var positions []int
	entries := f.entries()
	for i := range entries {
		if fn(entries[i].field) {
			positions = append(positions, i)
		}
	}
	if len(positions) > 0 {
		f.mutable().removePositions(positions)
	}
}

// Reserve 确保至少可容纳 n 个字段而无需再次分配。
func (f *Fields) Reserve(n int) {
	s := f.mutable()
	if cap(s.fields) >= n {
		return
	}
	fields := make([]fieldEntry, len(s.fields), n)
	copy(fields, s.fields)
	s.fields = fields
}

// Reset 清空集合，并释放对共享存储的引用。
func (f *Fields) Reset() {
	if f.s != nil {
		f.s.refs.release()
		f.s = nil
	}
}

// VisitAll 按存储顺序对每个字段应用 fn。
func (f *Fields) VisitAll(fn func(field Field)) {
	entries := f.entries()
	for i := range entries {
		fn(entries[i].field)
	}
}

// All 按存储顺序返回所有字段的副本。
func (f *Fields) All() []Field {
	entries := f.entries()
	fields := make([]Field, len(entries))
	for i := range entries {
		fields[i] = entries[i].field
	}
	return fields
}

// Names 按首次出现的顺序返回去重后的字段名称。
func (f *Fields) Names() []Name {
	entries := f.entries()
	seen := make(map[string]struct{}, len(entries))
	var names []Name
	for i := range entries {
		name := entries[i].field.Name
		if _, ok := seen[name.canonical]; !ok {
			seen[name.canonical] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// Has 返回是否存在名为 name 的字段。
func (f *Fields) Has(name Name) bool {
	return f.first(name) != endOfChain
}

// Get 返回名为 name 的所有字段值拼接后的字符串，不存在时返回空串。
//
// 多个值以 ", " 拼接，Cookie 以 "; " 拼接。
func (f *Fields) Get(name Name) string {
	v, _ := f.Lookup(name)
	return v
}

// Lookup 与 Get 相同，并返回该名称是否存在。
func (f *Fields) Lookup(name Name) (string, bool) {
	i := f.first(name)
	if i == endOfChain {
		return "", false
	}

	first := f.s.fields[i].field.value.s
	i = f.s.fields[i].next
	if i == endOfChain {
		return first, true
	}

	sep := bytestr.CommaSpace
	if name.Equal(NameCookie) {
		sep = bytestr.SemicolonSpace
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.WriteString(first)
	for ; i != endOfChain; i = f.s.fields[i].next {
		buf.WriteString(sep)
		buf.WriteString(f.s.fields[i].field.value.s)
	}
	return buf.String(), true
}

// Set 将名为 name 的字段设为单个值 value，原有的同名字段按需覆盖或删除。
//
// 设置 Cookie 时按 "; " 拆分为多个字段，空片段会产生空值字段。
func (f *Fields) Set(name Name, value string) {
	if name.Equal(NameCookie) {
		f.SetAll(name, strings.Split(value, bytestr.SemicolonSpace))
		return
	}
	f.SetFields(name, []Field{NewField(name, value)})
}

// Del 删除名为 name 的所有字段。
func (f *Fields) Del(name Name) {
	f.SetFields(name, nil)
}

// GetAll 按顺序返回名为 name 的所有字段值。
func (f *Fields) GetAll(name Name) []string {
	var values []string
	f.visit(name, func(field *Field) {
		values = append(values, field.value.s)
	})
	return values
}

// SetAll 将名为 name 的字段依次设为 values。
func (f *Fields) SetAll(name Name, values []string) {
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = NewField(name, v)
	}
	f.SetFields(name, fields)
}

// GetFields 按顺序返回名为 name 的所有字段。
func (f *Fields) GetFields(name Name) []Field {
	var fields []Field
	f.visit(name, func(field *Field) {
		fields = append(fields, *field)
	})
	return fields
}

// SetFields 将名为 name 的字段依次替换为 fields。
//
// 已有的同名字段按链表顺序原地覆盖；多出的旧字段批量删除，
// 其余字段保持相对顺序；多出的新字段追加到末尾。
// fields 中每个字段的名称都须与 name 相同。
func (f *Fields) SetFields(name Name, fields []Field) {
	if name.IsPseudo() {
		panic("BUG：伪标头 " + name.raw + " 不可放入字段集合")
	}
	for i := range fields {
		if !fields[i].Name.Equal(name) {
			panic("BUG：字段 " + fields[i].Name.raw + " 与名称 " + name.raw + " 不一致")
		}
	}
	if len(fields) == 0 && !f.Has(name) {
		return
	}

	s := f.mutable()
	var (
		toDelete []int
		k        int
	)
	i := endOfChain
	if c, ok := s.ensureIndex()[name.canonical]; ok {
		i = c.first
	}
	for i != endOfChain {
		e := &s.fields[i]
		next := e.next
		if k < len(fields) {
			e.field = fields[k]
			k++
		} else {
			toDelete = append(toDelete, int(i))
		}
		i = next
	}
	s.removePositions(toDelete)
	for ; k < len(fields); k++ {
		s.append(fields[k])
	}
}

// Equal 返回两个集合是否相等：名称集合相同，且每个名称下的字段序列逐个相等。
//
// 不同名称之间的顺序不影响相等性，同名字段之间的顺序则影响。nil 视为空集合。
func (f *Fields) Equal(o *Fields) bool {
	if f.Len() != o.Len() {
		return false
	}
	if f.Len() == 0 || f.s == o.s {
		return true
	}

	fi, oi := f.s.ensureIndex(), o.s.ensureIndex()
	if len(fi) != len(oi) {
		return false
	}
	for name, fc := range fi {
		oc, ok := oi[name]
		if !ok {
			return false
		}
		i, j := fc.first, oc.first
		for i != endOfChain && j != endOfChain {
			if !f.s.fields[i].field.Equal(o.s.fields[j].field) {
				return false
			}
			i, j = f.s.fields[i].next, o.s.fields[j].next
		}
		if i != j {
			return false
		}
	}
	return true
}

// Hash 返回与 Equal 一致的哈希值：逐名称计算哈希，再以与顺序无关的方式合并。
func (f *Fields) Hash() uint64 {
	if f.Len() == 0 {
		return 0
	}

	var sum uint64
	d := xxhash.New()
	for _, c := range f.s.ensureIndex() {
		d.Reset()
		for i := c.first; i != endOfChain; i = f.s.fields[i].next {
			f.s.fields[i].field.writeHash(d)
		}
		sum += d.Sum64()
	}
	return sum
}

// String 按存储顺序返回 "Name: value\r\n" 形式的所有字段。
func (f *Fields) String() string {
	var b []byte
	entries := f.entries()
	for i := range entries {
		field := &entries[i].field
		b = append(b, field.Name.raw...)
		b = append(b, bytestr.StrColonSpace...)
		b = append(b, field.value.s...)
		b = append(b, bytestr.StrCRLF...)
	}
	return string(b)
}

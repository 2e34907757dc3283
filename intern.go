package cyan

import "sync"

// StrInterner deduplicates byte sequences, handing out a small stable
// StrListKey for each distinct sequence interned. Equal byte sequences
// always yield the same key; distinct sequences never collide.
//
// StrInterner tolerates many concurrent readers (via StrList's RWMutex)
// and a single writer at a time (serialized by mu) — multiple
// source units may safely share one interner across goroutines.
type StrInterner struct {
	mu    sync.Mutex
	table internTable
	list  StrList
}

type internTable struct {
	slots     []StrListKey // zero value means empty slot
	occupancy int
}

// NewStrInterner returns an empty interner.
func NewStrInterner() *StrInterner {
	return &StrInterner{}
}

// Intern returns the key for s, interning it first if this is the
// first time s has been seen by this interner.
func (in *StrInterner) Intern(s []byte) StrListKey {
	in.mu.Lock()
	defer in.mu.Unlock()

	if key, ok := internLookup(&in.table, &in.list, s); ok {
		return key
	}
	if len(in.table.slots) == 0 || float64(in.table.occupancy)/float64(len(in.table.slots)) >= 0.75 {
		internGrow(&in.table, &in.list)
	}
	key := in.list.Push(s)
	internInsert(&in.table, &in.list, key)
	return key
}

// StrList exposes the interner's backing string storage, so callers can
// resolve a StrListKey returned from Intern back to bytes.
func (in *StrInterner) StrList() *StrList {
	return &in.list
}

func internLookup(table *internTable, list *StrList, s []byte) (StrListKey, bool) {
	if len(table.slots) == 0 {
		return 0, false
	}
	cap := len(table.slots)
	place := int(fastHash(s) % uint64(cap))
	for step := 0; step < cap; step++ {
		idx := (place + step) % cap
		occupant := table.slots[idx]
		if occupant == 0 {
			return 0, false
		}
		if bytesEqual(list.Get(occupant), s) {
			return occupant, true
		}
	}
	return 0, false
}

func internInsert(table *internTable, list *StrList, key StrListKey) {
	s := list.Get(key)
	for {
		cap := len(table.slots)
		place := int(fastHash(s) % uint64(cap))
		placed := false
		for step := 0; step < cap; step++ {
			idx := (place + step) % cap
			if table.slots[idx] == 0 {
				table.slots[idx] = key
				table.occupancy++
				placed = true
				break
			}
		}
		if placed {
			return
		}
		internGrow(table, list)
	}
}

func internGrow(table *internTable, list *StrList) {
	newCapacity := len(table.slots) * 2
	if newCapacity == 0 {
		newCapacity = 1
	}
	old := table.slots
	*table = internTable{slots: make([]StrListKey, newCapacity)}
	for _, key := range old {
		if key != 0 {
			internInsert(table, list, key)
		}
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

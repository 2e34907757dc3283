package cyan

import (
	"encoding/binary"
	"sync"
)

// StrListKey addresses one string stored in a StrList. It is the
// pre-push length of the backing buffer plus one, so the zero value
// never denotes a valid string — useful as a "no string" sentinel in
// token buffer entries.
type StrListKey uint32

// StrList is an append-only store of length-prefixed byte runs,
// addressed by StrListKey. It never shrinks mid-run and never moves
// data that has already been returned to a caller, so slices handed
// out by Get remain valid for the lifetime of the StrList.
//
// A single StrList may be written by one goroutine while other
// goroutines concurrently call Get — writes are serialized by an
// RWMutex and readers never block each other.
type StrList struct {
	mu  sync.RWMutex
	buf []byte
}

const strListLenPrefixSize = 4

// Push appends s to the list and returns the key under which it can
// later be retrieved via Get.
func (l *StrList) Push(s []byte) StrListKey {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := StrListKey(len(l.buf) + 1)
	var lenPrefix [strListLenPrefixSize]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(len(s)))
	l.buf = append(l.buf, lenPrefix[:]...)
	l.buf = append(l.buf, s...)
	return key
}

// Get returns the bytes previously stored under key.
func (l *StrList) Get(key StrListKey) []byte {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := int(key) - 1
	contentBegin := idx + strListLenPrefixSize
	length := binary.LittleEndian.Uint32(l.buf[idx:contentBegin])
	return l.buf[contentBegin : contentBegin+int(length)]
}

// ShrinkToFit releases any excess capacity retained by the backing
// buffer. Safe to call once the writer is finished appending.
func (l *StrList) ShrinkToFit() {
	l.mu.Lock()
	defer l.mu.Unlock()

	shrunk := make([]byte, len(l.buf))
	copy(shrunk, l.buf)
	l.buf = shrunk
}

// StrRef is a lazily-materialized reference to a run of bytes, either
// owned directly (a literal span copied out of the source text) or
// addressed indirectly through a StrList. Both forms expose the same
// Get() []byte accessor so callers never need to know which case they
// hold.
type StrRef struct {
	list  *StrList
	key   StrListKey
	slice []byte
}

// NewStrRefSlice wraps a byte slice directly, with no StrList indirection.
func NewStrRefSlice(slice []byte) StrRef {
	return StrRef{slice: slice}
}

// NewStrRefList wraps a key into list.
func NewStrRefList(list *StrList, key StrListKey) StrRef {
	return StrRef{list: list, key: key}
}

// Get returns the referenced bytes.
func (r StrRef) Get() []byte {
	if r.list != nil {
		return r.list.Get(r.key)
	}
	return r.slice
}

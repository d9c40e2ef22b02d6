package pqueue

import (
	stdheap "container/heap"
	"errors"
)

// ErrEmpty is returned by ExtractMin when the heap has no entries.
var ErrEmpty = errors.New("pqueue: heap is empty")

// ErrKeyIncreased is returned by DecreaseKey when newKey does not compare
// less than the entry's current key under the heap's comparator.
var ErrKeyIncreased = errors.New("pqueue: decrease-key given a larger key")

// ErrRemoved is returned by any operation on an Entry that has already
// been extracted or removed.
var ErrRemoved = errors.New("pqueue: entry already removed")

// Entry is the addressable handle returned by Insert; callers keep it to
// later DecreaseKey or Remove the same payload in O(log n), eliminating
// the "stale entry" problem of a plain heap.
type Entry[K, V any] struct {
	key   K
	value V
	index int // position within the backing slice; -1 once removed
}

// Key returns the entry's current key.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's payload.
func (e *Entry[K, V]) Value() V { return e.value }

// Heap is an addressable binary heap: each payload has at most one alive
// Entry. less(a, b) must report whether key a sorts before
// key b (so ExtractMin returns the "smallest" under less).
type Heap[K, V any] struct {
	data *heapData[K, V]
}

// NewHeap returns an empty Heap ordered by less.
func NewHeap[K, V any](less func(a, b K) bool) *Heap[K, V] {
	return &Heap[K, V]{data: &heapData[K, V]{less: less}}
}

// Len returns the number of live entries.
func (h *Heap[K, V]) Len() int { return h.data.Len() }

// Insert adds (key, value) and returns its addressable Entry.
func (h *Heap[K, V]) Insert(key K, value V) *Entry[K, V] {
	e := &Entry[K, V]{key: key, value: value}
	stdheap.Push(h.data, e)
	return e
}

// ExtractMin removes and returns the minimum-key entry's (key, value).
func (h *Heap[K, V]) ExtractMin() (K, V, error) {
	if h.data.Len() == 0 {
		var zk K
		var zv V
		return zk, zv, ErrEmpty
	}
	e := stdheap.Pop(h.data).(*Entry[K, V])
	e.index = -1
	return e.key, e.value, nil
}

// DecreaseKey lowers e's key to newKey and re-sifts it up. It fails with
// ErrKeyIncreased if newKey does not sort before e's current key, and
// ErrRemoved if e was already extracted or removed.
func (h *Heap[K, V]) DecreaseKey(e *Entry[K, V], newKey K) error {
	if e.index < 0 {
		return ErrRemoved
	}
	if !h.data.less(newKey, e.key) {
		return ErrKeyIncreased
	}
	e.key = newKey
	stdheap.Fix(h.data, e.index)
	return nil
}

// Remove deletes e from the heap regardless of its key.
func (h *Heap[K, V]) Remove(e *Entry[K, V]) error {
	if e.index < 0 {
		return ErrRemoved
	}
	stdheap.Remove(h.data, e.index)
	e.index = -1
	return nil
}

// Update re-sifts e after its key was mutated externally (via e.key's
// owner type, e.g. a Node's scratch counter used as key storage). Callers
// that mutate key material outside DecreaseKey must call this to restore
// the heap invariant.
func (h *Heap[K, V]) Update(e *Entry[K, V]) error {
	if e.index < 0 {
		return ErrRemoved
	}
	stdheap.Fix(h.data, e.index)
	return nil
}

// heapData adapts Heap to container/heap.Interface.
type heapData[K, V any] struct {
	entries []*Entry[K, V]
	less    func(a, b K) bool
}

func (d *heapData[K, V]) Len() int { return len(d.entries) }
func (d *heapData[K, V]) Less(i, j int) bool {
	return d.less(d.entries[i].key, d.entries[j].key)
}
func (d *heapData[K, V]) Swap(i, j int) {
	d.entries[i], d.entries[j] = d.entries[j], d.entries[i]
	d.entries[i].index = i
	d.entries[j].index = j
}
func (d *heapData[K, V]) Push(x any) {
	e := x.(*Entry[K, V])
	e.index = len(d.entries)
	d.entries = append(d.entries, e)
}
func (d *heapData[K, V]) Pop() any {
	last := len(d.entries) - 1
	e := d.entries[last]
	d.entries[last] = nil
	d.entries = d.entries[:last]
	return e
}

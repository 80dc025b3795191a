package bucketmap

import "math"

// noEntry marks the end of a chain, an empty slot and an exhausted free list.
const noEntry int32 = -1

type entry[V any] struct {
	key   string
	value V

	// Index of the next entry in the same chain (or in the free list).
	next int32
}

// table is a fixed-capacity separate chaining hash table.
//
// All the entries are allocated up front in a single arena, and chains are
// linked by arena indices instead of pointers. Cells that are not part of
// any chain are linked together into the free list. The arena is never
// resized, so the table's memory footprint is fixed at init.
type table[V any] struct {
	entries []entry[V]
	slots   []int32

	capacity int
	size     int

	// Head of the free list.
	free int32

	hashFunc HashFunc

	emptyV V
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		if f != nil {
			t.hashFunc = f
		}
	}
}

func (t *table[V]) init(capacity int, opts ...Option[V]) error {
	if capacity <= 0 || capacity > math.MaxInt32 {
		return ErrInvalidCapacity
	}

	t.entries = make([]entry[V], capacity)
	t.slots = make([]int32, capacity)
	t.capacity = capacity
	t.hashFunc = DefaultHashFunc

	for _, opt := range opts {
		opt(t)
	}

	t.Reset()

	return nil
}

// lookup returns the slot index of the key, the arena index of the matching
// entry and the arena index of its predecessor in the chain.
// Both indexes are noEntry when there is no such entry.
func (t *table[V]) lookup(key string) (slot int, idx int32, prev int32) {
	slot = slotIndex(t.hashFunc(key), len(t.slots))
	prev = noEntry

	for idx = t.slots[slot]; idx != noEntry; idx = t.entries[idx].next {
		if t.entries[idx].key == key {
			return slot, idx, prev
		}

		prev = idx
	}

	return slot, noEntry, noEntry
}

func (t *table[V]) get(key string) (V, bool) {
	_, idx, _ := t.lookup(key)
	if idx == noEntry {
		return t.emptyV, false
	}

	return t.entries[idx].value, true
}

// set inserts or overwrites the key's value.
// Returns whether the key is new, and ErrTableFull if a new key doesn't fit.
func (t *table[V]) set(key string, value V) (bool, error) {
	slot, idx, _ := t.lookup(key)
	if idx != noEntry {
		t.entries[idx].value = value
		return false, nil
	}

	if t.size == t.capacity {
		return false, ErrTableFull
	}

	// The free list can't be empty here: it holds capacity-size cells.
	idx = t.free
	e := &t.entries[idx]
	t.free = e.next

	e.key = key
	e.value = value
	e.next = t.slots[slot]
	t.slots[slot] = idx
	t.size++

	return true, nil
}

func (t *table[V]) delete(key string) (V, bool) {
	slot, idx, prev := t.lookup(key)
	if idx == noEntry {
		return t.emptyV, false
	}

	e := &t.entries[idx]
	value := e.value

	// Splice the entry out of its chain
	if prev == noEntry {
		t.slots[slot] = e.next
	} else {
		t.entries[prev].next = e.next
	}

	// Drop references to the caller's data and recycle the cell
	e.key = ""
	e.value = t.emptyV
	e.next = t.free
	t.free = idx
	t.size--

	return value, true
}

func (t *table[V]) load() float64 {
	return float64(t.size) / float64(t.capacity)
}

// Reset removes all the entries, retaining the allocated memory.
func (t *table[V]) Reset() {
	for i := range t.slots {
		t.slots[i] = noEntry
	}

	last := int32(len(t.entries) - 1)
	for i := range t.entries {
		t.entries[i] = entry[V]{next: int32(i) + 1}
	}
	t.entries[last].next = noEntry

	t.free = 0
	t.size = 0
}

func (t *table[V]) chainLen(slot int) int {
	n := 0
	for idx := t.slots[slot]; idx != noEntry; idx = t.entries[idx].next {
		n++
	}

	return n
}

func (t *table[V]) stats() Stats {
	s := Stats{
		Size:     t.size,
		Capacity: t.capacity,
		Load:     t.load(),
	}

	for slot := range t.slots {
		n := t.chainLen(slot)
		if n == 0 {
			continue
		}

		s.UsedSlots++
		s.LongestChain = max(s.LongestChain, n)
	}

	return s
}

package btreeset

import "github.com/hollowtree/btreeset/btree"

// Map is an ordered key/value associative container with unique keys,
// backed by a B-tree.
type Map[K, V any] struct {
	t *btree.Tree[K, Pair[K, V]]
}

// NewMap creates an empty Map from cfg.
func NewMap[K, V any](cfg MapConfig[K, V]) (*Map[K, V], error) {
	t, err := btree.New[K, Pair[K, V]](cfg.toBtree(true))
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{t: t}, nil
}

// Insert adds the entry (k, v) when k is absent, reporting whether it did;
// an existing entry is left unchanged, matching the unique-tree insert
// semantics of spec.md §4.3.2 rather than assignment semantics.
func (m *Map[K, V]) Insert(k K, v V) bool {
	_, inserted := m.t.InsertUnique(Pair[K, V]{Key: k, Value: v})
	return inserted
}

// Get returns the value associated with k, if present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	p, ok := m.t.FindUnique(k)
	if !ok {
		var zero V
		return zero, false
	}
	return p.Value, true
}

// GetOrInsert is the Go analogue of operator[]: it returns a pointer to
// the stored value for k, creating it via produce only when k was not
// already present (so produce is not called on a hit).
func (m *Map[K, V]) GetOrInsert(k K, produce func() V) (*V, bool) {
	it, inserted := m.t.InsertUnique(Pair[K, V]{Key: k})
	ptr := it.Pointer()
	if inserted {
		ptr.Value = produce()
	}
	return &ptr.Value, inserted
}

// Erase removes the entry for k, reporting whether it was present.
func (m *Map[K, V]) Erase(k K) bool { return m.t.EraseUnique(k) }

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return m.t.Size() }

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.t.Empty() }

// Clear removes every entry.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Begin returns an iterator to the entry with the smallest key, or End()
// if empty.
func (m *Map[K, V]) Begin() btree.Iterator[K, Pair[K, V]] { return m.t.Begin() }

// End returns the past-the-end iterator.
func (m *Map[K, V]) End() btree.Iterator[K, Pair[K, V]] { return m.t.End() }

// Tree exposes the underlying engine for diagnostics and assembly.
func (m *Map[K, V]) Tree() *btree.Tree[K, Pair[K, V]] { return m.t }

package btreeset

import "github.com/hollowtree/btreeset/btree"

// MultiMap is an ordered key/value associative container that permits
// duplicate keys, backed by a B-tree.
type MultiMap[K, V any] struct {
	t *btree.Tree[K, Pair[K, V]]
}

// NewMultiMap creates an empty MultiMap from cfg.
func NewMultiMap[K, V any](cfg MapConfig[K, V]) (*MultiMap[K, V], error) {
	t, err := btree.New[K, Pair[K, V]](cfg.toBtree(false))
	if err != nil {
		return nil, err
	}
	return &MultiMap[K, V]{t: t}, nil
}

// Insert always adds a new (k, v) entry, even if k is already present.
func (m *MultiMap[K, V]) Insert(k K, v V) {
	m.t.InsertMulti(Pair[K, V]{Key: k, Value: v})
}

// CountKey returns the number of entries with key k.
func (m *MultiMap[K, V]) CountKey(k K) int { return m.t.CountMulti(k) }

// EraseAll removes every entry with key k, returning the count removed.
func (m *MultiMap[K, V]) EraseAll(k K) int { return m.t.EraseMulti(k) }

// Size returns the number of entries.
func (m *MultiMap[K, V]) Size() int { return m.t.Size() }

// Empty reports whether the map holds no entries.
func (m *MultiMap[K, V]) Empty() bool { return m.t.Empty() }

// Clear removes every entry.
func (m *MultiMap[K, V]) Clear() { m.t.Clear() }

// Begin returns an iterator to the first entry, or End() if empty.
func (m *MultiMap[K, V]) Begin() btree.Iterator[K, Pair[K, V]] { return m.t.Begin() }

// End returns the past-the-end iterator.
func (m *MultiMap[K, V]) End() btree.Iterator[K, Pair[K, V]] { return m.t.End() }

// EqualRange returns [lower_bound(k), upper_bound(k)).
func (m *MultiMap[K, V]) EqualRange(k K) (btree.Iterator[K, Pair[K, V]], btree.Iterator[K, Pair[K, V]]) {
	return m.t.EqualRange(k)
}

// Tree exposes the underlying engine for diagnostics and assembly.
func (m *MultiMap[K, V]) Tree() *btree.Tree[K, Pair[K, V]] { return m.t }

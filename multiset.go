package btreeset

import "github.com/hollowtree/btreeset/btree"

// MultiSet is an ordered collection that permits duplicate keys, backed by
// a B-tree.
type MultiSet[K any] struct {
	t *btree.Tree[K, K]
}

// NewMultiSet creates an empty MultiSet from cfg.
func NewMultiSet[K any](cfg Config[K]) (*MultiSet[K], error) {
	t, err := btree.New[K, K](cfg.toBtree(false))
	if err != nil {
		return nil, err
	}
	return &MultiSet[K]{t: t}, nil
}

// Insert always adds k, even if equal keys are already present.
func (s *MultiSet[K]) Insert(k K) { s.t.InsertMulti(k) }

// Count returns the number of keys equal to k.
func (s *MultiSet[K]) Count(k K) int { return s.t.CountMulti(k) }

// Contains reports whether at least one key equal to k is present.
func (s *MultiSet[K]) Contains(k K) bool { return s.t.CountMulti(k) > 0 }

// EraseAll removes every key equal to k, returning the count removed.
func (s *MultiSet[K]) EraseAll(k K) int { return s.t.EraseMulti(k) }

// Size returns the number of keys in the set.
func (s *MultiSet[K]) Size() int { return s.t.Size() }

// Empty reports whether the set holds no keys.
func (s *MultiSet[K]) Empty() bool { return s.t.Empty() }

// Clear removes every key.
func (s *MultiSet[K]) Clear() { s.t.Clear() }

// Begin returns an iterator to the smallest key, or End() if empty.
func (s *MultiSet[K]) Begin() btree.Iterator[K, K] { return s.t.Begin() }

// End returns the past-the-end iterator.
func (s *MultiSet[K]) End() btree.Iterator[K, K] { return s.t.End() }

// EqualRange returns [lower_bound(k), upper_bound(k)).
func (s *MultiSet[K]) EqualRange(k K) (btree.Iterator[K, K], btree.Iterator[K, K]) {
	return s.t.EqualRange(k)
}

// Tree exposes the underlying engine for diagnostics and assembly.
func (s *MultiSet[K]) Tree() *btree.Tree[K, K] { return s.t }

package btreeset

import "github.com/hollowtree/btreeset/btree"

// Set is an ordered collection of unique keys backed by a B-tree.
type Set[K any] struct {
	t *btree.Tree[K, K]
}

// NewSet creates an empty Set from cfg.
func NewSet[K any](cfg Config[K]) (*Set[K], error) {
	t, err := btree.New[K, K](cfg.toBtree(true))
	if err != nil {
		return nil, err
	}
	return &Set[K]{t: t}, nil
}

// Insert adds k, reporting whether it was not already present.
func (s *Set[K]) Insert(k K) bool {
	_, inserted := s.t.InsertUnique(k)
	return inserted
}

// Contains reports whether k is in the set.
func (s *Set[K]) Contains(k K) bool {
	_, ok := s.t.FindUnique(k)
	return ok
}

// Erase removes k, reporting whether it was present.
func (s *Set[K]) Erase(k K) bool {
	return s.t.EraseUnique(k)
}

// Size returns the number of keys in the set.
func (s *Set[K]) Size() int { return s.t.Size() }

// Empty reports whether the set holds no keys.
func (s *Set[K]) Empty() bool { return s.t.Empty() }

// Clear removes every key.
func (s *Set[K]) Clear() { s.t.Clear() }

// Begin returns an iterator to the smallest key, or End() if empty.
func (s *Set[K]) Begin() btree.Iterator[K, K] { return s.t.Begin() }

// End returns the past-the-end iterator.
func (s *Set[K]) End() btree.Iterator[K, K] { return s.t.End() }

// LowerBound returns an iterator to the smallest key >= k.
func (s *Set[K]) LowerBound(k K) btree.Iterator[K, K] { return s.t.LowerBound(k) }

// Tree exposes the underlying engine for diagnostics (Dump, DumpDOT,
// Verify) and for building other facades (Assign, Swap).
func (s *Set[K]) Tree() *btree.Tree[K, K] { return s.t }

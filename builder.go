package btreeset

import "github.com/hollowtree/btreeset/btree"

// builderCore stages values into a tree and guards against further
// staging once Build has been called, mirroring the teacher's Builder
// done/dirty bookkeeping (builder.go) adapted from chunked text fragments
// to ordered values.
type builderCore[K, V any] struct {
	tree   *btree.Tree[K, V]
	unique bool
	done   bool
}

func newBuilderCore[K, V any](cfg btree.Config[K, V], unique bool) (*builderCore[K, V], error) {
	t, err := btree.New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	return &builderCore[K, V]{tree: t, unique: unique}, nil
}

// add inserts v in no particular order relative to prior calls, paying
// the full O(log n) descent every time.
func (b *builderCore[K, V]) add(v V) error {
	if b.done {
		return ErrBuilderCompleted
	}
	if b.unique {
		b.tree.InsertUnique(v)
	} else {
		b.tree.InsertMulti(v)
	}
	return nil
}

// addSorted inserts v, which the caller guarantees arrives in comparator
// order relative to every prior addSorted call, using the end-hint fast
// path (spec.md §4.3.6) — the same "no comparisons beyond monotonicity
// checks" guarantee the teacher's assign(other) exploits for an
// already-ordered source.
func (b *builderCore[K, V]) addSorted(v V) error {
	if b.done {
		return ErrBuilderCompleted
	}
	hint := b.tree.End()
	if b.unique {
		b.tree.HintedInsertUnique(hint, v)
	} else {
		b.tree.HintedInsertMulti(hint, v)
	}
	return nil
}

func (b *builderCore[K, V]) build() *btree.Tree[K, V] {
	b.done = true
	return b.tree
}

// SetBuilder bulk-loads a Set.
type SetBuilder[K any] struct{ core *builderCore[K, K] }

// NewSetBuilder creates an empty SetBuilder from cfg.
func NewSetBuilder[K any](cfg Config[K]) (*SetBuilder[K], error) {
	core, err := newBuilderCore[K, K](cfg.toBtree(true), true)
	if err != nil {
		return nil, err
	}
	return &SetBuilder[K]{core: core}, nil
}

// Add stages k in no particular order.
func (b *SetBuilder[K]) Add(k K) error { return b.core.add(k) }

// AddSorted stages k, which must arrive in comparator order.
func (b *SetBuilder[K]) AddSorted(k K) error { return b.core.addSorted(k) }

// Build finalizes the set. Calling Add or AddSorted afterward returns
// ErrBuilderCompleted.
func (b *SetBuilder[K]) Build() *Set[K] { return &Set[K]{t: b.core.build()} }

// MultiSetBuilder bulk-loads a MultiSet.
type MultiSetBuilder[K any] struct{ core *builderCore[K, K] }

// NewMultiSetBuilder creates an empty MultiSetBuilder from cfg.
func NewMultiSetBuilder[K any](cfg Config[K]) (*MultiSetBuilder[K], error) {
	core, err := newBuilderCore[K, K](cfg.toBtree(false), false)
	if err != nil {
		return nil, err
	}
	return &MultiSetBuilder[K]{core: core}, nil
}

// Add stages k in no particular order.
func (b *MultiSetBuilder[K]) Add(k K) error { return b.core.add(k) }

// AddSorted stages k, which must arrive in comparator order.
func (b *MultiSetBuilder[K]) AddSorted(k K) error { return b.core.addSorted(k) }

// Build finalizes the multiset.
func (b *MultiSetBuilder[K]) Build() *MultiSet[K] { return &MultiSet[K]{t: b.core.build()} }

// MapBuilder bulk-loads a Map.
type MapBuilder[K, V any] struct{ core *builderCore[K, Pair[K, V]] }

// NewMapBuilder creates an empty MapBuilder from cfg.
func NewMapBuilder[K, V any](cfg MapConfig[K, V]) (*MapBuilder[K, V], error) {
	core, err := newBuilderCore[K, Pair[K, V]](cfg.toBtree(true), true)
	if err != nil {
		return nil, err
	}
	return &MapBuilder[K, V]{core: core}, nil
}

// Add stages the entry (k, v) in no particular order.
func (b *MapBuilder[K, V]) Add(k K, v V) error { return b.core.add(Pair[K, V]{Key: k, Value: v}) }

// AddSorted stages (k, v), which must arrive in key order.
func (b *MapBuilder[K, V]) AddSorted(k K, v V) error {
	return b.core.addSorted(Pair[K, V]{Key: k, Value: v})
}

// Build finalizes the map.
func (b *MapBuilder[K, V]) Build() *Map[K, V] { return &Map[K, V]{t: b.core.build()} }

// MultiMapBuilder bulk-loads a MultiMap.
type MultiMapBuilder[K, V any] struct{ core *builderCore[K, Pair[K, V]] }

// NewMultiMapBuilder creates an empty MultiMapBuilder from cfg.
func NewMultiMapBuilder[K, V any](cfg MapConfig[K, V]) (*MultiMapBuilder[K, V], error) {
	core, err := newBuilderCore[K, Pair[K, V]](cfg.toBtree(false), false)
	if err != nil {
		return nil, err
	}
	return &MultiMapBuilder[K, V]{core: core}, nil
}

// Add stages the entry (k, v) in no particular order.
func (b *MultiMapBuilder[K, V]) Add(k K, v V) error {
	return b.core.add(Pair[K, V]{Key: k, Value: v})
}

// AddSorted stages (k, v), which must arrive in key order.
func (b *MultiMapBuilder[K, V]) AddSorted(k K, v V) error {
	return b.core.addSorted(Pair[K, V]{Key: k, Value: v})
}

// Build finalizes the multimap.
func (b *MultiMapBuilder[K, V]) Build() *MultiMap[K, V] { return &MultiMap[K, V]{t: b.core.build()} }

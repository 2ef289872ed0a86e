package btree

// Iterator is a bidirectional cursor into a Tree, identified by a (node,
// position) pair rather than a path stack (spec.md §4.4). Two iterators
// compare equal iff they reference the same node and position.
type Iterator[K, V any] struct {
	tree *Tree[K, V]
	n    *node[V]
	i    int
}

// end reports whether it is the past-the-end iterator (points at no
// value).
func (it Iterator[K, V]) end() bool {
	return it.n == nil || it.i >= len(it.n.values)
}

// value dereferences the iterator. Calling it on End() panics, mirroring
// the undefined-behavior contract of dereferencing end() in the original
// C++ source.
func (it Iterator[K, V]) value() V {
	return it.n.values[it.i]
}

// Value dereferences the iterator; see value.
func (it Iterator[K, V]) Value() V { return it.value() }

// End reports whether it is the past-the-end iterator.
func (it Iterator[K, V]) End() bool { return it.end() }

// Pointer returns a pointer to the stored value at the iterator's
// position, valid until the next structural mutation of the tree.
// Exported for facades (Map.GetOrInsert) that need to write through to the
// value half of a Pair without a second lookup.
func (it Iterator[K, V]) Pointer() *V { return &it.n.values[it.i] }

// Next returns the iterator to the in-order successor, or End() if it was
// already the last element. Mirrors the climb pattern in spec.md §4.4:
// inside a leaf it simply steps right; at a leaf boundary it climbs
// parent links until it finds a position it came from as a left child,
// landing on the separator one level up; from an internal position it
// descends into the right child's leftmost leaf.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	n, i := it.n, it.i
	if n == nil {
		return it
	}
	if !n.leaf {
		cur := n.children[i+1]
		for !cur.leaf {
			cur = cur.children[0]
		}
		return Iterator[K, V]{tree: it.tree, n: cur, i: 0}
	}
	if i+1 < len(n.values) {
		return Iterator[K, V]{tree: it.tree, n: n, i: i + 1}
	}
	cur := n
	for cur.parent != nil && cur.pos == len(cur.parent.values) {
		cur = cur.parent
	}
	if cur.parent == nil {
		return it.tree.End()
	}
	return Iterator[K, V]{tree: it.tree, n: cur.parent, i: cur.pos}
}

// Prev returns the iterator to the in-order predecessor. Calling it on
// Begin() returns the zero Iterator (n == nil); callers that need to
// detect "no predecessor" should check that directly (see Prev2).
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	n, i := it.n, it.i
	if n == nil {
		// End() with an empty tree: nothing to do.
		return Iterator[K, V]{}
	}
	if !n.leaf {
		cur := n.children[i]
		for !cur.leaf {
			cur = cur.children[len(cur.children)-1]
		}
		return Iterator[K, V]{tree: it.tree, n: cur, i: len(cur.values) - 1}
	}
	if i > 0 {
		return Iterator[K, V]{tree: it.tree, n: n, i: i - 1}
	}
	cur := n
	for cur.parent != nil && cur.pos == 0 {
		cur = cur.parent
	}
	if cur.parent == nil {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{tree: it.tree, n: cur.parent, i: cur.pos - 1}
}

// Prev2 is Prev reinterpreted as an (iterator, ok) pair, for callers (e.g.
// hinted insert) that need to distinguish "no predecessor" from a valid
// zero-like position.
func (it Iterator[K, V]) Prev2() (Iterator[K, V], bool) {
	p := it.Prev()
	return p, p.n != nil
}

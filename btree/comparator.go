package btree

// Comparator adapts a user ordering predicate for the engine's binary
// search. Less is the primitive for every upper-bound bisection step and
// for every lower-bound step in two-way mode; in three-way mode the
// lower-bound bisection calls Compare instead. Either way a node costs
// O(log B) comparator calls.
//
// ThreeWay reports whether the comparator was built from a native three-way
// predicate (FromCompare) rather than a reduced boolean one (FromLess). When
// true, Compare gives a real <0/==0/>0 result in a single call, so a node's
// binary search can detect an exact match for free while it bisects and
// locate can return that match immediately (spec.md §4.1, §4.3.1). When
// false, Compare is still usable (it costs a second Less call to resolve
// "equal" vs "greater") but the engine avoids calling it during bisection;
// instead it re-checks equality with exactly one extra Less call after
// landing on the lower-bound position.
type Comparator[K any] interface {
	Less(a, b K) bool
	Compare(a, b K) int
	ThreeWay() bool
}

// FromCompare builds a three-way Comparator directly from a function
// returning <0, ==0, >0.
func FromCompare[K any](cmp func(a, b K) int) Comparator[K] {
	return compareFn[K]{cmp: cmp}
}

// FromLess builds a two-way Comparator out of a strict less-than predicate.
func FromLess[K any](less func(a, b K) bool) Comparator[K] {
	return lessFn[K]{less: less}
}

type compareFn[K any] struct {
	cmp func(a, b K) int
}

func (c compareFn[K]) Less(a, b K) bool   { return c.cmp(a, b) < 0 }
func (c compareFn[K]) Compare(a, b K) int { return c.cmp(a, b) }
func (c compareFn[K]) ThreeWay() bool     { return true }

type lessFn[K any] struct {
	less func(a, b K) bool
}

func (c lessFn[K]) Less(a, b K) bool { return c.less(a, b) }

// Compare is not used by the engine's hot paths in two-way mode (see the
// Comparator doc comment) but is provided for completeness and for callers
// that want a full ordering outside of the tree (e.g. Tree.Equal).
func (c lessFn[K]) Compare(a, b K) int {
	if c.less(a, b) {
		return -1
	}
	if c.less(b, a) {
		return 1
	}
	return 0
}

func (c lessFn[K]) ThreeWay() bool { return false }

package btreeset

import (
	"github.com/guiguan/caster"
	"github.com/hollowtree/btreeset/btree"
)

// Config configures a Set or MultiSet. Exactly one of Compare or Less must
// be set (mirrors btree.Config; KeyOf is fixed to identity for sets and is
// not exposed here).
type Config[K any] struct {
	Compare func(a, b K) int
	Less    func(a, b K) bool

	// TargetNodeBytes sizes the branching factor B; defaults to
	// btree.DefaultTargetNodeBytes when zero.
	TargetNodeBytes int
	// MinDegree, when non-zero, fixes B directly.
	MinDegree int

	// Events, when set, receives a btree.StructEvent after every
	// structural mutation of the underlying tree.
	Events *caster.Caster
}

func (c Config[K]) toBtree(unique bool) btree.Config[K, K] {
	return btree.Config[K, K]{
		Compare:         c.Compare,
		Less:            c.Less,
		KeyOf:           identity[K],
		TargetNodeBytes: c.TargetNodeBytes,
		MinDegree:       c.MinDegree,
		Events:          c.Events,
		Unique:          unique,
	}
}

func identity[K any](v K) K { return v }

// MapConfig configures a Map or MultiMap: same knobs as Config, ordering
// only the key half of each stored Pair[K, V].
type MapConfig[K, V any] struct {
	Compare func(a, b K) int
	Less    func(a, b K) bool

	TargetNodeBytes int
	MinDegree       int

	Events *caster.Caster
}

func (c MapConfig[K, V]) toBtree(unique bool) btree.Config[K, Pair[K, V]] {
	return btree.Config[K, Pair[K, V]]{
		Compare:         c.Compare,
		Less:            c.Less,
		KeyOf:           func(p Pair[K, V]) K { return p.Key },
		TargetNodeBytes: c.TargetNodeBytes,
		MinDegree:       c.MinDegree,
		Events:          c.Events,
		Unique:          unique,
	}
}

package btree

import (
	"fmt"
	"unsafe"

	"github.com/guiguan/caster"
)

// DefaultTargetNodeBytes is the target in-memory size of one node's value
// array, used to derive the branching factor B when MinDegree is not set.
const DefaultTargetNodeBytes = 4096

// wordSize is one machine word. A node's bookkeeping besides its value
// array (count, a couple of links) is counted as 3 words, both when sizing
// B from a byte budget (degree) and in Tree.BytesUsed.
const wordSize = unsafe.Sizeof(uintptr(0))

// Config configures one Tree instance.
//
// K is the key type used for ordering; V is the stored value type (the key
// itself for set-like facades, a key/value pair for map-like facades).
type Config[K, V any] struct {
	// Compare, if set, is used directly as a three-way Comparator.
	Compare func(a, b K) int
	// Less is used to build a two-way Comparator when Compare is not set.
	// Exactly one of Compare or Less must be non-nil.
	Less func(a, b K) bool

	// KeyOf projects the ordering key out of a stored value. Required.
	KeyOf func(v V) K

	// Unique marks whether this tree forbids duplicate keys (set/map
	// facades) or allows them to coexist (multiset/multimap facades).
	// Verify relaxes the internal-node separator bound from strict to
	// non-strict accordingly (spec.md §3 invariant 4).
	Unique bool

	// TargetNodeBytes sizes the branching factor B when MinDegree is zero.
	// Defaults to DefaultTargetNodeBytes.
	TargetNodeBytes int
	// MinDegree, when non-zero, fixes B directly (mainly for tests that need
	// small, deterministic branching factors to exercise split/merge paths).
	MinDegree int

	// Events, when non-nil, receives a StructEvent after every structural
	// mutation (split, merge, rebalance, root grow/shrink). Fire-and-forget:
	// a slow or absent subscriber never blocks tree mutation.
	Events *caster.Caster
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.TargetNodeBytes <= 0 {
		cfg.TargetNodeBytes = DefaultTargetNodeBytes
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	if cfg.Compare == nil && cfg.Less == nil {
		return fmt.Errorf("%w: one of Compare or Less is required", ErrInvalidConfig)
	}
	if cfg.Compare != nil && cfg.Less != nil {
		return fmt.Errorf("%w: only one of Compare or Less may be set", ErrInvalidConfig)
	}
	if cfg.KeyOf == nil {
		return fmt.Errorf("%w: KeyOf is required", ErrInvalidConfig)
	}
	if cfg.MinDegree != 0 && cfg.MinDegree < 3 {
		return fmt.Errorf("%w: MinDegree must be >= 3", ErrInvalidConfig)
	}
	return nil
}

func (cfg Config[K, V]) comparator() Comparator[K] {
	if cfg.Compare != nil {
		return FromCompare(cfg.Compare)
	}
	return FromLess(cfg.Less)
}

// degree computes B = max(3, floor((target - 3*word) / sizeof(V))), or
// returns MinDegree directly when set.
func (cfg Config[K, V]) degree() int {
	if cfg.MinDegree != 0 {
		return cfg.MinDegree
	}
	var zero V
	valueSize := int(unsafe.Sizeof(zero))
	if valueSize <= 0 {
		valueSize = 1
	}
	b := (cfg.TargetNodeBytes - 3*int(wordSize)) / valueSize
	if b < 3 {
		b = 3
	}
	return b
}

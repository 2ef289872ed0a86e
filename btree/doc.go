/*
Package btree implements an in-memory ordered associative container engine:
a B-tree whose nodes pack many values into a single inline array instead of
the usual one-value-per-node layout of a red-black tree.

The package is not itself a set or map. It is the shared engine consumed by
the four facades in github.com/hollowtree/btreeset (Set, Map, MultiSet,
MultiMap): each facade fixes a key-extraction function and a unique-vs-multi
policy and forwards everything else here.

Node layout:
  - a fixed-capacity inline value array (capacity B, the branching factor),
  - a non-owning parent back-link and position-in-parent index,
  - for internal nodes, an owned array of B+1 children.

Core algorithms (locate, insert, erase, split, merge, rebalance) follow the
classic B-tree described by Bayer & McCreight. A full node is always split,
never first rebalanced into a sibling. The split point depends on the
position of the pending insert: an insert at the far left moves all but one
value to the new right node, an insert at the far right of an internal node
moves none, and every other split, including a leaf split for an insert at
its tail, divides the node in half.

# BSD License

Copyright (c) 2026, the btreeset authors.

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a package-level core tracer, following the same convention as
// every other component in this module: callers may swap the tracer by
// assigning to gtrace.CoreTracer before using the package.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

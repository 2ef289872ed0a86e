/*
Package btreeset provides ordered associative containers — Set, MultiSet,
Map, and MultiMap — backed by a shared B-tree engine (see the btree
subpackage).

Each container is a thin adaptor over btree.Tree: the Set family stores
keys directly, the Map family stores Pair[K, V] and orders by the Key
field. Unique-keyed containers (Set, Map) reject duplicate keys on
Insert; multi containers (MultiSet, MultiMap) never do.

BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package btreeset

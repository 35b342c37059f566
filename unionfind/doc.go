// Package unionfind provides a disjoint-set (union-find) structure over
// arbitrary comparable keys.
//
// What:
//   - UnionFind[K] partitions keys into equivalence classes.
//   - Union(a, b) merges the classes of a and b.
//   - Find(k) returns the class representative; keys never mentioned in a
//     Union are their own representatives and cost nothing to query.
//   - Same(a, b) reports whether two keys share a class.
//
// Why:
//   - Connected components, clustering, and equivalence closure all reduce
//     to union-find.
//   - Keys are interned lazily into a flat arena, so the structure works
//     directly on strings, struct coordinates, or any comparable type
//     without a prior "register all elements" pass.
//
// Complexity:
//   - Union and Find run in O(α(n)) amortized via full path compression,
//     effectively constant for any realistic n.
//   - Memory is O(n) in the number of distinct keys seen by Union.
//
// Errors:
//   - None. Every input is meaningful; queries on unseen keys are valid.
//
// Concurrency:
//   - Not safe for concurrent mutation. Guard with a mutex if shared.
//
// See unionfind.go for the implementation and example_test.go for usage.
package unionfind

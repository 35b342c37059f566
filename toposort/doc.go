// Package toposort linearizes dependency graphs.
//
// What:
//   - Sort takes a mapping from each node to the nodes it depends on and
//     returns one total order containing every node that appears as a key
//     or inside a dependency list.
//   - Convention: a node always precedes its dependencies. For graph
//     {1: [2], 2: [3], 3: []} the output is [1 2 3]; a build target comes
//     first, its raw inputs come last.
//   - Dependency lists keep their declared order in the output whenever
//     the graph allows it; ties between separate subtrees resolve by key
//     order, so results are fully deterministic.
//
// Why:
//   - Build planning, task scheduling, and config resolution all need a
//     stable "what before what" answer from a dependency map.
//   - Nodes referenced only as dependencies (never declared as keys) are
//     treated as leaves and included, so inputs need no padding pass.
//
// Cycles:
//   - Sort always detects cycles structurally during traversal and fails
//     with ErrCycleDetected naming a node on the cycle; it never loops or
//     overflows on cyclic input.
//   - WithCycleCheck adds a post-pass that re-verifies every edge against
//     the produced positions, mirroring the classical output validation.
//
// Complexity:
//   - O(V log V + E) time (the log factor from deterministic key
//     ordering), O(V) extra space.
//
// Options:
//   - WithCancelContext(ctx) - abort a long sort when ctx is done.
//   - WithCycleCheck()       - verify the emitted order edge by edge.
//
// Errors:
//   - ErrCycleDetected - the graph contains a directed cycle.
//
// See example_test.go for runnable scenarios.
package toposort

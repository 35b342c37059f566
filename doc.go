// Package lvlkit is a compact in-memory toolkit of everyday algorithms —
// running statistics, equivalence classes, dependency ordering, dense
// N-dimensional arrays, and grid packing.
//
// 🚀 What is lvlkit?
//
//	A small, deterministic, allocation-conscious library that brings together:
//		• Statistics: mergeable sample accumulators (count/sum/min/max/variance)
//		• Equivalence: union-find with path compression over arbitrary keys
//		• Ordering: topological sort of dependency maps with cycle detection
//		• Arrays: generic dense N-D containers with shift/crop/broadcast helpers
//		• Packing: assemble heterogeneous arrays into one aligned, padded grid
//		• Search: discrete binary search over monotone integer functions
//		• Numbers: prime factorization, extended GCD, modular inverse
//		• Sequences: chunking, windowing and powerset adapters over iter.Seq
//
// ✨ Why choose lvlkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted traversals, fixed loop orders, stable outputs
//   - Pure Go – no cgo, no hidden state, values in / values out
//   - Honest errors – package-prefixed sentinels, errors.Is-friendly
//
// Under the hood, everything is organized under leaf subpackages:
//
//	stats/     — immutable running statistics with associative merge
//	unionfind/ — disjoint-set structure, arena-backed, generic keys
//	toposort/  — dependency-order linearization of a DAG
//	ndarray/   — generic row-major N-D array + grid/string utilities
//	pack/      — FitShape and Assemble: grid packing of arrays
//	search/    — discrete binary search
//	mathx/     — integer mathematics helpers
//	seqs/      — iterator utilities over iter.Seq
//
// Quick taste:
//
//	s := stats.New(3, 4)
//	fmt.Println(s.Mean(), s.StdDev()) // 3.5 0.7071…
//
//	order, _ := toposort.Sort(map[int][]int{1: {2}, 2: {3}, 3: {}})
//	fmt.Println(order) // [1 2 3]
//
// Each subpackage carries its own doc.go with contracts, complexity notes,
// and runnable examples.
//
//	go get github.com/katalvlaran/lvlkit
package lvlkit

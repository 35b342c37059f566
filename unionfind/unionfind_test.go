package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlkit/unionfind"
)

// TestUnionFind_FreshKeysAreSingletons checks queries before any Union:
// every key is its own representative and nothing gets interned.
func TestUnionFind_FreshKeysAreSingletons(t *testing.T) {
	uf := unionfind.New[string]()
	assert.Equal(t, "a", uf.Find("a"))
	assert.True(t, uf.Same("a", "a"))
	assert.False(t, uf.Same("a", "b"))
	assert.Equal(t, 0, uf.Len(), "Find/Same must not intern")
}

// TestUnionFind_ChainedUnions reproduces the canonical string scenario:
// union a-b then b-c makes a and c equivalent, d stays apart.
func TestUnionFind_ChainedUnions(t *testing.T) {
	uf := unionfind.New[string]()
	uf.Union("a", "b")
	uf.Union("b", "c")
	assert.True(t, uf.Same("a", "c"))
	assert.False(t, uf.Same("a", "d"))
	assert.Equal(t, 3, uf.Len())
}

// TestUnionFind_QuerySequence walks the mixed query/union sequence over
// integer keys, asserting symmetry of Same along the way.
func TestUnionFind_QuerySequence(t *testing.T) {
	uf := unionfind.New[int]()
	assert.True(t, uf.Same(1, 1))
	assert.False(t, uf.Same(1, 3))

	uf.Union(1, 3)
	assert.True(t, uf.Same(1, 3))
	assert.True(t, uf.Same(3, 1))
	assert.False(t, uf.Same(1, 2))

	uf.Union(3, 2)
	assert.True(t, uf.Same(1, 2))
	assert.True(t, uf.Same(2, 1))
	assert.False(t, uf.Same(2, 4))
}

// TestUnionFind_RepresentativeWins pins the merge direction: after
// Union(a, b), the representative of a's class represents the result.
func TestUnionFind_RepresentativeWins(t *testing.T) {
	uf := unionfind.New[string]()
	uf.Union("a", "b")
	uf.Union("b", "c")
	assert.Equal(t, "a", uf.Find("a"))
	assert.Equal(t, "a", uf.Find("b"))
	assert.Equal(t, "a", uf.Find("c"))
}

// TestUnionFind_SelfAndRepeatedUnions checks idempotence: self-unions and
// repeated unions neither corrupt classes nor double-intern.
func TestUnionFind_SelfAndRepeatedUnions(t *testing.T) {
	uf := unionfind.New[int]()
	uf.Union(7, 7)
	assert.Equal(t, 1, uf.Len())

	uf.Union(7, 9)
	uf.Union(7, 9)
	uf.Union(9, 7)
	assert.Equal(t, 2, uf.Len())
	assert.True(t, uf.Same(7, 9))
}

// TestUnionFind_StructKeys exercises a composite comparable key type.
func TestUnionFind_StructKeys(t *testing.T) {
	type cell struct{ r, c int }
	uf := unionfind.New[cell]()
	uf.Union(cell{0, 0}, cell{0, 1})
	uf.Union(cell{0, 1}, cell{1, 1})
	assert.True(t, uf.Same(cell{0, 0}, cell{1, 1}))
	assert.False(t, uf.Same(cell{0, 0}, cell{5, 5}))
}

// TestUnionFind_MatchesNaivePartition cross-checks a long random union
// sequence against a brute-force label partition.
func TestUnionFind_MatchesNaivePartition(t *testing.T) {
	const n = 50
	rng := rand.New(rand.NewSource(42))

	uf := unionfind.New[int]()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	for step := 0; step < 200; step++ {
		a, b := rng.Intn(n), rng.Intn(n)
		uf.Union(a, b)
		// Brute force: relabel b's class to a's label.
		la, lb := labels[a], labels[b]
		if la != lb {
			for i := range labels {
				if labels[i] == lb {
					labels[i] = la
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, labels[i] == labels[j], uf.Same(i, j),
				"pair (%d,%d) disagrees with naive partition", i, j)
		}
	}
}

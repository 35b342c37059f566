package toposort_test

import (
	"context"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlkit/toposort"
)

// TestSort_LinearChain checks the smallest nontrivial graph: each node
// precedes its dependency.
func TestSort_LinearChain(t *testing.T) {
	order, err := toposort.Sort(map[int][]int{1: {2}, 2: {3}, 3: {}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order)
}

// TestSort_FuelPipeline reproduces the classic reaction-chain graph:
// the final product first, the raw input last.
func TestSort_FuelPipeline(t *testing.T) {
	graph := map[string][]string{
		"FUEL": {"E", "A", "D"},
		"D":    {"C", "A"},
		"E":    {"D", "C"},
		"C":    {"A", "B"},
		"A":    {"B", "ORE"},
		"B":    {"ORE"},
		"ORE":  {},
	}
	order, err := toposort.Sort(graph)
	require.NoError(t, err)
	assert.Equal(t, []string{"FUEL", "E", "D", "C", "A", "B", "ORE"}, order)
}

// TestSort_DeclaredOrderPreserved checks that a diamond keeps the
// dependency declaration order between unconstrained siblings.
func TestSort_DeclaredOrderPreserved(t *testing.T) {
	graph := map[int][]int{1: {2, 3}, 2: {4}, 3: {4}, 4: {}}
	order, err := toposort.Sort(graph)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, order)
}

// TestSort_DependencyOnlyNodes verifies nodes that never appear as keys
// are still emitted, as leaves.
func TestSort_DependencyOnlyNodes(t *testing.T) {
	order, err := toposort.Sort(map[string][]string{"a": {"x", "y"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x", "y"}, order)
}

// TestSort_MultipleRootsAscending checks unconstrained roots surface in
// key order.
func TestSort_MultipleRootsAscending(t *testing.T) {
	order, err := toposort.Sort(map[string][]string{"b": {"z"}, "a": {"z"}, "z": {}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "z"}, order)

	flat, err := toposort.Sort(map[int][]int{3: {}, 1: {}, 2: {}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, flat)
}

// TestSort_EmptyGraph covers nil and empty maps: empty order, no error.
func TestSort_EmptyGraph(t *testing.T) {
	order, err := toposort.Sort[string](nil)
	require.NoError(t, err)
	assert.Empty(t, order)

	flat, err := toposort.Sort(map[int][]int{})
	require.NoError(t, err)
	assert.Empty(t, flat)
}

// TestSort_CycleDetection covers self-loops, two-node cycles, and cycles
// hanging off an acyclic tail; all must fail with ErrCycleDetected.
func TestSort_CycleDetection(t *testing.T) {
	for name, graph := range map[string]map[int][]int{
		"self loop":      {1: {1}},
		"two node cycle": {1: {2}, 2: {1}},
		"cycle off tail": {1: {2}, 2: {3}, 3: {2}},
		"detached cycle": {1: {}, 2: {3}, 3: {2}},
	} {
		t.Run(name, func(t *testing.T) {
			order, err := toposort.Sort(graph)
			assert.ErrorIs(t, err, toposort.ErrCycleDetected)
			assert.Nil(t, order)
		})
	}
}

// TestSort_WithCycleCheck verifies the post-pass agrees with structural
// detection on both valid and cyclic inputs.
func TestSort_WithCycleCheck(t *testing.T) {
	plain, err := toposort.Sort(map[int][]int{1: {2}, 2: {3}, 3: {}})
	require.NoError(t, err)
	checked, err := toposort.Sort(map[int][]int{1: {2}, 2: {3}, 3: {}}, toposort.WithCycleCheck())
	require.NoError(t, err)
	assert.Equal(t, plain, checked)

	_, err = toposort.Sort(map[int][]int{1: {2}, 2: {1}}, toposort.WithCycleCheck())
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)
}

// TestSort_Cancellation checks a done context aborts the traversal.
func TestSort_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := toposort.Sort(
		map[int][]int{1: {2}, 2: {3}, 3: {}},
		toposort.WithCancelContext(ctx),
	)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSort_Deterministic re-sorts the same graph repeatedly; map
// iteration order must never leak into the result.
func TestSort_Deterministic(t *testing.T) {
	graph := map[int][]int{10: {40}, 20: {40}, 30: {40}, 40: {}}
	first, err := toposort.Sort(graph)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := toposort.Sort(graph)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestSort_RandomDAGProperties generates layered random DAGs and asserts
// the two output invariants: the order is a permutation of all nodes,
// and every node precedes each of its dependencies.
func TestSort_RandomDAGProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		const n = 30
		graph := make(map[int][]int, n)
		for u := 0; u < n; u++ {
			graph[u] = nil
			// Depending only on strictly larger nodes keeps the graph acyclic.
			for v := u + 1; v < n; v++ {
				if rng.Intn(4) == 0 {
					graph[u] = append(graph[u], v)
				}
			}
		}

		order, err := toposort.Sort(graph)
		require.NoError(t, err)
		require.Len(t, order, n)

		pos := make(map[int]int, n)
		for i, node := range order {
			pos[node] = i
		}
		require.Len(t, pos, n, "order must be a permutation")
		for node, deps := range graph {
			for _, dep := range deps {
				require.Less(t, pos[node], pos[dep],
					"node %d must precede its dependency %d", node, dep)
			}
		}
	}
}

// TestSort_YAMLScenarios runs the fixture table in testdata/graphs.yaml.
func TestSort_YAMLScenarios(t *testing.T) {
	raw, err := os.ReadFile("testdata/graphs.yaml")
	require.NoError(t, err)

	var suite struct {
		Cases []struct {
			Name  string              `yaml:"name"`
			Graph map[string][]string `yaml:"graph"`
			Want  []string            `yaml:"want"`
			Cycle bool                `yaml:"cycle"`
		} `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &suite))
	require.NotEmpty(t, suite.Cases)

	for _, tc := range suite.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			order, err := toposort.Sort(tc.Graph)
			if tc.Cycle {
				assert.ErrorIs(t, err, toposort.ErrCycleDetected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Want, order)
		})
	}
}

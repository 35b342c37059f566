package toposort

import (
	"cmp"
	"fmt"
	"slices"
)

// sorter carries traversal state for one Sort call.
type sorter[K cmp.Ordered] struct {
	graph map[K][]K // node -> nodes it depends on
	opts  options   // cancellation and verification settings
	color map[K]int // visitation state: white/gray/black
	order []K       // recorded post-order sequence
}

// Sort returns a linear order of every node in graph (keys plus nodes
// that appear only inside dependency lists) such that each node precedes
// all of its dependencies.
//
// Dependency lists keep their declared order where the graph allows it;
// independent subtrees are taken in key order, so the result is
// deterministic. A nil or empty graph yields an empty order. If the
// graph contains a cycle, Sort fails with ErrCycleDetected.
func Sort[K cmp.Ordered](graph map[K][]K, options ...Option) ([]K, error) {
	// 1. Apply optional settings.
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 2. Mark every node that some other node depends on.
	referenced := make(map[K]bool, len(graph))
	for _, deps := range graph {
		for _, dep := range deps {
			referenced[dep] = true
		}
	}
	// 3. Split keys into candidate roots (never depended upon) and the
	//    rest. Both are driven in descending key order: the final
	//    reversal flips that back, so unconstrained nodes surface in
	//    ascending order and output stays deterministic.
	roots := make([]K, 0, len(graph))
	rest := make([]K, 0, len(graph))
	for node := range graph {
		if referenced[node] {
			rest = append(rest, node)
		} else {
			roots = append(roots, node)
		}
	}
	slices.Sort(roots)
	slices.Reverse(roots)
	slices.Sort(rest)
	slices.Reverse(rest)
	// 4. Initialize sorter state; all nodes start white.
	s := &sorter[K]{
		graph: graph,
		opts:  opts,
		color: make(map[K]int, len(graph)),
		order: make([]K, 0, len(graph)),
	}
	// 5. Drive DFS from the roots first, then from any key the roots do
	//    not reach.
	for _, node := range roots {
		if s.color[node] == white {
			if err := s.visit(node); err != nil {
				return nil, err
			}
		}
	}
	for _, node := range rest {
		if s.color[node] == white {
			if err := s.visit(node); err != nil {
				return nil, err
			}
		}
	}
	// 6. Reverse the post-order so dependencies sink to the end.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}
	// 7. Optional edge-by-edge verification of the emitted order.
	if opts.cycleCheck {
		if err := verify(graph, s.order); err != nil {
			return nil, err
		}
	}

	return s.order, nil
}

// visit performs a DFS from node, recording post-order and detecting
// back edges.
func (s *sorter[K]) visit(node K) error {
	// 1. Cancellation check at entry.
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	// 2. Meeting a gray node again means a back edge, hence a cycle.
	if s.color[node] == gray {
		return fmt.Errorf("%w: at %v", ErrCycleDetected, node)
	}
	// 3. Fully processed nodes need no second visit.
	if s.color[node] == black {
		return nil
	}
	// 4. Mark as in-progress.
	s.color[node] = gray
	// 5. Recurse into dependencies in reverse declaration order; the
	//    final reversal in Sort restores the declared order. Nodes absent
	//    from the map are leaves.
	deps := s.graph[node]
	for i := len(deps) - 1; i >= 0; i-- {
		if err := s.visit(deps[i]); err != nil {
			return err
		}
	}
	// 6. Mark done and record in post-order.
	s.color[node] = black
	s.order = append(s.order, node)

	return nil
}

// verify confirms no node appears after one of its dependencies in
// order. Sort's structural detection makes this redundant on success;
// it exists as an independent cross-check of the emitted positions.
func verify[K cmp.Ordered](graph map[K][]K, order []K) error {
	pos := make(map[K]int, len(order))
	for i, node := range order {
		pos[node] = i
	}
	for node, deps := range graph {
		for _, dep := range deps {
			if pos[node] > pos[dep] {
				return fmt.Errorf("%w: edge %v->%v out of order", ErrCycleDetected, node, dep)
			}
		}
	}

	return nil
}

// Package graph orders workflow node graphs for execution.
package graph

import (
	"errors"
	"fmt"

	"github.com/pressline/pressline/pkg/models"
)

// ErrCycleDetected is returned when the node graph cannot be ordered. A cycle
// is a fatal configuration error: the whole run is aborted, never partially
// executed.
var ErrCycleDetected = errors.New("workflow graph contains a cycle")

const (
	stateVisiting = 1 // on the active traversal path
	stateVisited  = 2
)

// Order returns the nodes in executable order: every producer before all of
// its consumers. Traversal is a depth-first search seeded from trigger nodes,
// appending each node after its downstream targets (post-order) and reversing
// the accumulated list. Nodes unreachable from any trigger are swept
// afterwards in input order. Edges to nonexistent ids and duplicate ids are
// skipped silently; the lookup simply misses.
func Order(nodes []*models.WorkflowNode) ([]*models.WorkflowNode, error) {
	byID := make(map[string]*models.WorkflowNode, len(nodes))
	for _, node := range nodes {
		if _, exists := byID[node.ID]; !exists {
			byID[node.ID] = node
		}
	}

	state := make(map[string]int, len(nodes))
	ordered := make([]*models.WorkflowNode, 0, len(nodes))

	visit := func(root *models.WorkflowNode) error {
		return visitIterative(root, byID, state, &ordered)
	}

	for _, node := range nodes {
		if !node.IsTrigger() {
			continue
		}

		if err := visit(node); err != nil {
			return nil, err
		}
	}

	// Disconnected components, in input order.
	for _, node := range nodes {
		if err := visit(node); err != nil {
			return nil, err
		}
	}

	reverse(ordered)

	return ordered, nil
}

// frame is one level of the explicit DFS stack. An explicit stack avoids
// recursion-depth limits on large graphs while keeping the same two-set
// cycle detection.
type frame struct {
	node *models.WorkflowNode
	next int // index into node.Connected
}

func visitIterative(
	root *models.WorkflowNode,
	byID map[string]*models.WorkflowNode,
	state map[string]int,
	ordered *[]*models.WorkflowNode,
) error {
	if state[root.ID] != 0 {
		return nil
	}

	stack := []frame{{node: root}}
	state[root.ID] = stateVisiting

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next < len(top.node.Connected) {
			targetID := top.node.Connected[top.next]
			top.next++

			target, ok := byID[targetID]
			if !ok {
				continue // dangling edge, known-permissive
			}

			switch state[target.ID] {
			case stateVisiting:
				return fmt.Errorf("%w: node %q revisited via %q", ErrCycleDetected, target.ID, top.node.ID)
			case stateVisited:
				continue
			default:
				state[target.ID] = stateVisiting
				stack = append(stack, frame{node: target})
			}

			continue
		}

		state[top.node.ID] = stateVisited
		*ordered = append(*ordered, top.node)
		stack = stack[:len(stack)-1]
	}

	return nil
}

func reverse(nodes []*models.WorkflowNode) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

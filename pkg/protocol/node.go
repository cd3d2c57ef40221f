// Package protocol defines the contracts between the workflow engine, its
// pluggable node handlers and its external collaborators.
package protocol

import (
	"context"

	"github.com/pressline/pressline/pkg/models"
)

// Node executes one processing step for one branch context. Execute returns
// one of three shapes the fan-out layer distinguishes:
//
//   - []map[string]any — each element becomes an independent branch
//   - map[string]any   — the branch continues with replaced data
//   - nil              — the branch is dropped (not an error)
type Node interface {
	// ID returns the node instance id within its graph
	ID() string

	// Type returns the node type tag this handler serves
	Type() string

	// Execute processes a single branch context
	Execute(ctx context.Context, ectx models.ExecutionContext) (any, error)
}

// NodeFactory creates node instances and provides metadata about the type.
type NodeFactory interface {
	// Create creates a new node instance with the given configuration
	Create(ctx context.Context, id string, config map[string]any) (Node, error)

	// ID returns the unique node type tag
	ID() string

	// Name returns the human-readable name for this node type
	Name() string

	// Description returns a description of what this node does
	Description() string

	// Schema returns the JSON schema for configuring this node
	Schema() map[string]any
}

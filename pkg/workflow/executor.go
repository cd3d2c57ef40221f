// Package workflow implements the execution engine: node dispatch, context
// fan-out and run coordination.
package workflow

import (
	"context"
	"log/slog"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/registry"
)

// Executor dispatches a single node and a single branch context to the
// type-specific handler selected through the registry.
type Executor struct {
	registry *registry.Registry
	logger   *slog.Logger
}

func NewExecutor(reg *registry.Registry, logger *slog.Logger) *Executor {
	return &Executor{
		registry: reg,
		logger:   logger.With("module", "node_executor"),
	}
}

// ExecuteNode runs one node against one context and returns the raw handler
// result: a list (fan-out), a single payload (continue), or nil (drop).
// Unknown node types pass the payload through unchanged; that is a
// diagnostic, never an error.
func (e *Executor) ExecuteNode(ctx context.Context, node *models.WorkflowNode, ectx models.ExecutionContext) (any, error) {
	if !e.registry.IsNodeRegistered(node.Type) {
		e.logger.WarnContext(ctx, "Unknown node type, passing context through",
			"node_id", node.ID,
			"node_type", node.Type,
			"context_id", ectx.ID,
		)

		return models.CloneData(ectx.Data), nil
	}

	handler, err := e.registry.CreateNode(ctx, node.Type, node.ID, node.Config)
	if err != nil {
		return nil, err
	}

	return handler.Execute(ctx, ectx)
}

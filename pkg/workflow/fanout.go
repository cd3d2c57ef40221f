package workflow

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pressline/pressline/pkg/models"
)

const defaultMaxConcurrency = 8

// FanOut advances one generation of branch contexts through a node. Sibling
// contexts are independent: they are processed through a bounded worker pool
// with no ordering guarantee, and a failure in one branch never aborts the
// others.
type FanOut struct {
	executor       *Executor
	logger         *slog.Logger
	maxConcurrency int
}

func NewFanOut(executor *Executor, logger *slog.Logger) *FanOut {
	return &FanOut{
		executor:       executor,
		logger:         logger.With("module", "fanout"),
		maxConcurrency: defaultMaxConcurrency,
	}
}

// WithMaxConcurrency bounds the number of contexts processed in parallel for
// a node. Values below 1 fall back to sequential processing.
func (f *FanOut) WithMaxConcurrency(n int) *FanOut {
	if n < 1 {
		n = 1
	}

	f.maxConcurrency = n

	return f
}

// Advance processes every live context through the node and returns the next
// generation plus the number of branches dropped by isolated failures.
//
// Three executor outcomes are distinguished:
//  1. a list: each element spawns a new context with id
//     {parent}-{nodeID}-{index} and the element recorded in metadata;
//  2. a single payload: the context is reused with replaced data;
//  3. nil: the context is dropped silently.
//
// A handler error drops only the failing branch, exactly like outcome 3,
// after logging it here.
func (f *FanOut) Advance(ctx context.Context, node *models.WorkflowNode, contexts []models.ExecutionContext) ([]models.ExecutionContext, int) {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		next    = make([]models.ExecutionContext, 0, len(contexts))
		dropped int
	)

	sem := make(chan struct{}, f.maxConcurrency)

	for _, ectx := range contexts {
		wg.Add(1)
		sem <- struct{}{}

		go func(ectx models.ExecutionContext) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := f.executor.ExecuteNode(ctx, node, ectx)
			if err != nil {
				f.logger.ErrorContext(ctx, "Node failed for context, dropping branch",
					"node_id", node.ID,
					"node_type", node.Type,
					"context_id", ectx.ID,
					"error", err,
				)

				mu.Lock()
				dropped++
				mu.Unlock()

				return
			}

			spawned := f.expand(node, ectx, result)

			mu.Lock()
			next = append(next, spawned...)
			mu.Unlock()
		}(ectx)
	}

	wg.Wait()

	return next, dropped
}

// expand applies the three-outcome rule to one executor result.
func (f *FanOut) expand(node *models.WorkflowNode, parent models.ExecutionContext, result any) []models.ExecutionContext {
	switch r := result.(type) {
	case nil:
		return nil

	case []map[string]any:
		children := make([]models.ExecutionContext, 0, len(r))
		for i, item := range r {
			children = append(children, models.ExecutionContext{
				ID:         parent.ChildID(node.ID, i),
				WorkflowID: parent.WorkflowID,
				Data:       item,
				Metadata:   extendMetadata(parent.Metadata, node, item),
			})
		}

		return children

	case []any:
		children := make([]models.ExecutionContext, 0, len(r))

		for i, raw := range r {
			item, ok := raw.(map[string]any)
			if !ok {
				f.logger.Warn("Skipping non-object fan-out element",
					"node_id", node.ID, "context_id", parent.ID, "index", i)

				continue
			}

			children = append(children, models.ExecutionContext{
				ID:         parent.ChildID(node.ID, i),
				WorkflowID: parent.WorkflowID,
				Data:       item,
				Metadata:   extendMetadata(parent.Metadata, node, item),
			})
		}

		return children

	case map[string]any:
		parent.Data = r
		parent.Metadata = extendMetadata(parent.Metadata, node, r)

		return []models.ExecutionContext{parent}

	default:
		// Scalar results keep the branch alive under a generic field.
		data := map[string]any{"result": r}
		parent.Data = data
		parent.Metadata = extendMetadata(parent.Metadata, node, r)

		return []models.ExecutionContext{parent}
	}
}

func extendMetadata(parent map[string]any, node *models.WorkflowNode, result any) map[string]any {
	out := make(map[string]any, len(parent)+1)
	for k, v := range parent {
		out[k] = v
	}

	out[models.MetadataKey(node.Type, node.ID)] = result

	return out
}

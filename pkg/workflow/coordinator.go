package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressline/pressline/pkg/eventbus"
	"github.com/pressline/pressline/pkg/events"
	"github.com/pressline/pressline/pkg/graph"
	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/otelhelper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Coordinator owns the run lifecycle: it persists the execution record,
// drives the ordered nodes through the fan-out manager, and records exactly
// one terminal transition.
type Coordinator struct {
	executions persistence
	fanout     *FanOut
	eventBus   eventbus.EventBus // optional; nil disables event publication
	tracer     trace.Tracer
	logger     *slog.Logger
}

// persistence is the minimal execution-record store contract the coordinator
// needs; pkg/persistence.ExecutionRepository satisfies it.
type persistence interface {
	CreateExecution(ctx context.Context, execution *models.WorkflowExecution) error
	UpdateExecution(ctx context.Context, execution *models.WorkflowExecution) error
}

func NewCoordinator(executions persistence, fanout *FanOut, eventBus eventbus.EventBus, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		executions: executions,
		fanout:     fanout,
		eventBus:   eventBus,
		tracer:     otel.Tracer("pressline/workflow"),
		logger:     logger.With("module", "coordinator"),
	}
}

// Run executes the node graph for one workflow and returns the terminal
// execution record. The record is created as running before anything else;
// if that write fails, the run is aborted with no execution attempted.
// Callers see either a completed record (possibly with zero final results)
// or an error after the record was marked failed.
func (c *Coordinator) Run(ctx context.Context, workflowID string, nodes []*models.WorkflowNode, triggerData map[string]any) (*models.WorkflowExecution, error) {
	execution := models.NewWorkflowExecution(workflowID)

	logger := c.logger.With(
		"workflow_id", workflowID,
		"execution_id", execution.ID,
		"correlation_id", execution.CorrelationID,
	)

	ctx, span := otelhelper.StartSpan(ctx, c.tracer, "workflow.run",
		attribute.String(otelhelper.WorkflowIDKey, workflowID),
		attribute.String(otelhelper.ExecutionIDKey, execution.ID),
	)
	defer span.End()

	if err := c.executions.CreateExecution(ctx, execution); err != nil {
		otelhelper.SetError(span, err)

		return nil, fmt.Errorf("failed to create execution record: %w", err)
	}

	logger.InfoContext(ctx, "Starting workflow execution", "node_count", len(nodes))
	c.publish(ctx, execution.CorrelationID, events.ExecutionStarted{
		BaseEvent:     c.baseEvent(events.ExecutionStartedEvent, workflowID),
		ExecutionID:   execution.ID,
		CorrelationID: execution.CorrelationID,
		TriggerData:   triggerData,
	})

	// A cycle is a configuration error, but the record already exists, so it
	// is closed out as failed rather than left dangling.
	ordered, err := graph.Order(nodes)
	if err != nil {
		return execution, c.fail(ctx, span, execution, err)
	}

	generation := []models.ExecutionContext{c.seedContext(execution, triggerData)}
	totalDropped := 0

	for _, node := range ordered {
		nodeCtx, nodeSpan := otelhelper.StartSpan(ctx, c.tracer, "workflow.node",
			attribute.String(otelhelper.NodeIDKey, node.ID),
			attribute.String(otelhelper.NodeTypeKey, node.Type),
			attribute.Int(otelhelper.ContextCountKey, len(generation)),
		)

		next, dropped := c.fanout.Advance(nodeCtx, node, generation)
		totalDropped += dropped

		nodeSpan.SetAttributes(attribute.Int(otelhelper.ContextCountKey, len(next)))
		nodeSpan.End()

		logger.DebugContext(ctx, "Node finished",
			"node_id", node.ID,
			"node_type", node.Type,
			"context_count", len(next),
			"dropped", dropped,
		)
		c.publish(ctx, execution.CorrelationID, events.NodeFinished{
			BaseEvent:    c.baseEvent(events.NodeFinishedEvent, workflowID),
			ExecutionID:  execution.ID,
			NodeID:       node.ID,
			NodeType:     node.Type,
			ContextCount: len(next),
			DroppedCount: dropped,
		})

		generation = next
		if len(generation) == 0 {
			// Every branch died; the remaining nodes are skipped and the run
			// still completes normally.
			logger.InfoContext(ctx, "All contexts exhausted, stopping early", "node_id", node.ID)

			break
		}
	}

	result := &models.ExecutionResult{
		ContextCount: len(generation),
		DroppedCount: totalDropped,
		Outputs:      make([]map[string]any, 0, len(generation)),
	}
	for _, ectx := range generation {
		result.Outputs = append(result.Outputs, ectx.Data)
	}

	execution.MarkCompleted(result)

	if err := c.executions.UpdateExecution(ctx, execution); err != nil {
		otelhelper.SetError(span, err)

		return execution, fmt.Errorf("failed to record execution completion: %w", err)
	}

	logger.InfoContext(ctx, "Workflow execution completed",
		"context_count", result.ContextCount,
		"dropped_count", result.DroppedCount,
	)
	c.publish(ctx, execution.CorrelationID, events.ExecutionCompleted{
		BaseEvent:   c.baseEvent(events.ExecutionCompletedEvent, workflowID),
		ExecutionID: execution.ID,
		Result:      result,
		Duration:    execution.Duration(),
	})

	return execution, nil
}

// seedContext creates the single root branch. Its id doubles as the parent
// segment of every fanned-out child id.
func (c *Coordinator) seedContext(execution *models.WorkflowExecution, triggerData map[string]any) models.ExecutionContext {
	data := triggerData
	if data == nil {
		data = map[string]any{}
	}

	return models.ExecutionContext{
		ID:         execution.ID,
		WorkflowID: execution.WorkflowID,
		Data:       data,
		Metadata:   map[string]any{},
	}
}

// fail records the terminal failed transition and returns the original error
// for the caller.
func (c *Coordinator) fail(ctx context.Context, span trace.Span, execution *models.WorkflowExecution, cause error) error {
	otelhelper.SetError(span, cause)
	execution.MarkFailed(cause.Error())

	if err := c.executions.UpdateExecution(ctx, execution); err != nil {
		c.logger.ErrorContext(ctx, "Failed to record execution failure",
			"execution_id", execution.ID, "error", err)
	}

	c.publish(ctx, execution.CorrelationID, events.ExecutionFailed{
		BaseEvent:   c.baseEvent(events.ExecutionFailedEvent, execution.WorkflowID),
		ExecutionID: execution.ID,
		Error:       cause.Error(),
		Duration:    execution.Duration(),
	})

	return cause
}

func (c *Coordinator) baseEvent(eventType events.EventType, workflowID string) events.BaseEvent {
	id := "evt"
	if c.eventBus != nil {
		id = c.eventBus.GenerateID()
	}

	return events.BaseEvent{
		ID:         id,
		Type:       eventType,
		Timestamp:  time.Now().UTC(),
		WorkflowID: workflowID,
	}
}

func (c *Coordinator) publish(ctx context.Context, key string, event eventbus.Event) {
	if c.eventBus == nil {
		return
	}

	if err := c.eventBus.Publish(ctx, key, event); err != nil {
		c.logger.ErrorContext(ctx, "Failed to publish event",
			"event_type", event.GetType(), "error", err)
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// ExecutionStatus represents the lifecycle state of a workflow run.
type ExecutionStatus string

const (
	ExecutionStatusPending   ExecutionStatus = "pending"
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusFailed    ExecutionStatus = "failed"
)

// ExecutionResult summarizes the final generation of a completed run. The
// output list is order-insensitive: sibling branches carry no ordering
// guarantee between each other.
type ExecutionResult struct {
	ContextCount int              `json:"context_count"`
	DroppedCount int              `json:"dropped_count"`
	Outputs      []map[string]any `json:"outputs"`
}

// WorkflowExecution is the persisted lifecycle record for one run. It is
// written exactly twice: once at creation (running) and once on the single
// terminal transition (completed or failed).
type WorkflowExecution struct {
	ID            string           `json:"id"`
	WorkflowID    string           `json:"workflow_id"`
	CorrelationID string           `json:"correlation_id"`
	Status        ExecutionStatus  `json:"status"`
	StartedAt     time.Time        `json:"started_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	Result        *ExecutionResult `json:"result,omitempty"`
	ErrorMessage  string           `json:"error_message,omitempty"`
}

// NewWorkflowExecution creates a running execution record with fresh ids.
func NewWorkflowExecution(workflowID string) *WorkflowExecution {
	return &WorkflowExecution{
		ID:            "exec-" + uuid.NewString()[:8],
		WorkflowID:    workflowID,
		CorrelationID: uuid.NewString(),
		Status:        ExecutionStatusRunning,
		StartedAt:     time.Now().UTC(),
	}
}

// IsTerminal reports whether the record has reached a final state.
func (e *WorkflowExecution) IsTerminal() bool {
	return e.Status == ExecutionStatusCompleted || e.Status == ExecutionStatusFailed
}

// MarkCompleted records the single terminal completed transition.
func (e *WorkflowExecution) MarkCompleted(result *ExecutionResult) {
	now := time.Now().UTC()
	e.Status = ExecutionStatusCompleted
	e.CompletedAt = &now
	e.Result = result
}

// MarkFailed records the single terminal failed transition.
func (e *WorkflowExecution) MarkFailed(message string) {
	now := time.Now().UTC()
	e.Status = ExecutionStatusFailed
	e.CompletedAt = &now
	e.ErrorMessage = message
}

// Duration returns the elapsed run time, up to now for live runs.
func (e *WorkflowExecution) Duration() time.Duration {
	if e.CompletedAt != nil {
		return e.CompletedAt.Sub(e.StartedAt)
	}

	return time.Since(e.StartedAt)
}

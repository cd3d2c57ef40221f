// Package web provides HTTP request and response types for the workflow API.
package web

import "github.com/pressline/pressline/pkg/models"

// CreateWorkflowRequest represents the request body for creating a new workflow.
type CreateWorkflowRequest struct {
	Name        string                 `json:"name"        validate:"required,min=3"`
	Description string                 `json:"description"`
	Nodes       []*models.WorkflowNode `json:"nodes"       validate:"required,dive"`
	Variables   map[string]any         `json:"variables,omitempty"`
	Owner       string                 `json:"owner"       validate:"required"`
}

// RunWorkflowRequest represents the request body for starting a run. The
// trigger data seeds the root branch context and may be empty.
type RunWorkflowRequest struct {
	TriggerData map[string]any `json:"trigger_data,omitempty"`
}

// RunWorkflowResponse reports the terminal execution record of a run.
type RunWorkflowResponse struct {
	Execution *models.WorkflowExecution `json:"execution"`
}

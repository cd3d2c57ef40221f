package models

import "fmt"

// ExecutionContext is one independent branch of data flowing through the
// pipeline. Data holds the current payload; Metadata accumulates the raw
// result captured at each node for audit purposes and is never read back by
// downstream handlers.
type ExecutionContext struct {
	ID         string         `json:"id"`
	WorkflowID string         `json:"workflow_id"`
	Data       map[string]any `json:"data"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// ChildID derives the id for a fanned-out branch: parent id, node id and the
// element's position in the node's result list.
func (c ExecutionContext) ChildID(nodeID string, index int) string {
	return fmt.Sprintf("%s-%s-%d", c.ID, nodeID, index)
}

// MetadataKey names the audit-trail entry recorded for a node execution.
func MetadataKey(nodeType, nodeID string) string {
	return fmt.Sprintf("%s_%s", nodeType, nodeID)
}

// CloneData returns a shallow copy of a payload map. Handlers merge into
// copies so sibling branches never share mutable state.
func CloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}

	return out
}

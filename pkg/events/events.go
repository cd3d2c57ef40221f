// Package events defines the lifecycle events published during workflow
// execution.
package events

import (
	"time"

	"github.com/pressline/pressline/pkg/models"
)

type EventType string

// Topic carries all execution lifecycle events.
const Topic = "pressline.executions"

const EventKeyMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	ExecutionStartedEvent   EventType = "execution.started"
	NodeFinishedEvent       EventType = "execution.node.finished"
	ExecutionCompletedEvent EventType = "execution.completed"
	ExecutionFailedEvent    EventType = "execution.failed"
)

type BaseEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	WorkflowID string    `json:"workflow_id"`
}

type ExecutionStarted struct {
	BaseEvent

	ExecutionID   string         `json:"execution_id"`
	CorrelationID string         `json:"correlation_id"`
	TriggerData   map[string]any `json:"trigger_data,omitempty"`
}

func (e ExecutionStarted) GetType() EventType {
	return ExecutionStartedEvent
}

// NodeFinished reports generation advancement through one node.
type NodeFinished struct {
	BaseEvent

	ExecutionID  string `json:"execution_id"`
	NodeID       string `json:"node_id"`
	NodeType     string `json:"node_type"`
	ContextCount int    `json:"context_count"` // live branches after the node
	DroppedCount int    `json:"dropped_count"` // branches dropped by isolated failures at the node
}

func (e NodeFinished) GetType() EventType {
	return NodeFinishedEvent
}

type ExecutionCompleted struct {
	BaseEvent

	ExecutionID string                  `json:"execution_id"`
	Result      *models.ExecutionResult `json:"result,omitempty"`
	Duration    time.Duration           `json:"duration"`
}

func (e ExecutionCompleted) GetType() EventType {
	return ExecutionCompletedEvent
}

type ExecutionFailed struct {
	BaseEvent

	ExecutionID string        `json:"execution_id"`
	Error       string        `json:"error"`
	Duration    time.Duration `json:"duration"`
}

func (e ExecutionFailed) GetType() EventType {
	return ExecutionFailedEvent
}

// Package trigger provides the graph entry-point node.
package trigger

import (
	"context"

	"github.com/pressline/pressline/pkg/models"
)

// TriggerNode marks a graph entry point. Execution is an identity
// pass-through: the trigger payload was already seeded into the root context
// by the coordinator. A `cron` config entry, when present, is read by the
// schedule receiver, not by this handler.
type TriggerNode struct {
	id string
}

func NewTriggerNode(id string, _ map[string]any) (*TriggerNode, error) {
	return &TriggerNode{id: id}, nil
}

func (n *TriggerNode) ID() string {
	return n.id
}

func (n *TriggerNode) Type() string {
	return models.NodeTypeTrigger
}

func (n *TriggerNode) Execute(_ context.Context, ectx models.ExecutionContext) (any, error) {
	return models.CloneData(ectx.Data), nil
}

package trigger

import (
	"context"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/protocol"
)

type TriggerNodeFactory struct{}

func NewTriggerNodeFactory() protocol.NodeFactory {
	return &TriggerNodeFactory{}
}

func (f *TriggerNodeFactory) Create(_ context.Context, id string, config map[string]any) (protocol.Node, error) {
	return NewTriggerNode(id, config)
}

func (f *TriggerNodeFactory) ID() string {
	return models.NodeTypeTrigger
}

func (f *TriggerNodeFactory) Name() string {
	return "Trigger"
}

func (f *TriggerNodeFactory) Description() string {
	return "Entry point of a workflow graph; passes the trigger payload through unchanged"
}

func (f *TriggerNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cron": map[string]any{
				"type":        "string",
				"description": "Optional cron expression used by the schedule receiver to launch runs",
			},
		},
	}
}

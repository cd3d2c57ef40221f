package filter

import (
	"context"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/protocol"
)

type FilterNodeFactory struct{}

func NewFilterNodeFactory() protocol.NodeFactory {
	return &FilterNodeFactory{}
}

func (f *FilterNodeFactory) Create(_ context.Context, id string, config map[string]any) (protocol.Node, error) {
	return NewFilterNode(id, config)
}

func (f *FilterNodeFactory) ID() string {
	return models.NodeTypeFilter
}

func (f *FilterNodeFactory) Name() string {
	return "Filter"
}

func (f *FilterNodeFactory) Description() string {
	return "Drops branches whose payload fails any configured rule (keyword, date, score)"
}

func (f *FilterNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"rules": map[string]any{
				"type":        "array",
				"description": "Ordered rule list; the first rejecting rule drops the branch",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":     map[string]any{"type": "string"},
						"operator": map[string]any{"type": "string"},
						"value":    map[string]any{},
					},
					"required": []string{"type"},
				},
			},
		},
	}
}

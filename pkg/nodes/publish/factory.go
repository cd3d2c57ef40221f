package publish

import (
	"context"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/protocol"
)

type PublishNodeFactory struct {
	publisher protocol.ArticlePublisher
}

func NewPublishNodeFactory(publisher protocol.ArticlePublisher) protocol.NodeFactory {
	return &PublishNodeFactory{publisher: publisher}
}

func (f *PublishNodeFactory) Create(_ context.Context, id string, config map[string]any) (protocol.Node, error) {
	return NewPublishNode(id, config, f.publisher)
}

func (f *PublishNodeFactory) ID() string {
	return models.NodeTypePublish
}

func (f *PublishNodeFactory) Name() string {
	return "Publish"
}

func (f *PublishNodeFactory) Description() string {
	return "Composes an article from the branch payload and sends it to the publish service"
}

func (f *PublishNodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"publish_immediately": map[string]any{
				"type":        "boolean",
				"description": "Publish directly instead of creating a draft",
			},
			"category_id": map[string]any{
				"type":        "string",
				"description": "Target category for the created article",
			},
			"author_id": map[string]any{
				"type":        "string",
				"description": "Optional attribution id",
			},
		},
	}
}

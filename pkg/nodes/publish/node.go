// Package publish provides the terminal side-effecting publish node.
package publish

import (
	"context"
	"fmt"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/protocol"
)

// Body-text preference: prior AI output first, then raw content.
var bodyFields = []string{"generated_content", "synthesis", "research_findings", "content"}

// Summary preference for the composed document.
var summaryFields = []string{"summary", "description"}

// PublishNode composes a document from the accumulated branch payload and
// hands it to the remote publish collaborator. The branch continues with the
// prior payload merged with the publish result. Errors propagate.
type PublishNode struct {
	id         string
	immediate  bool
	categoryID string
	authorID   string

	publisher protocol.ArticlePublisher
}

func NewPublishNode(id string, config map[string]any, publisher protocol.ArticlePublisher) (*PublishNode, error) {
	if publisher == nil {
		return nil, fmt.Errorf("node %q: article publisher is not configured", id)
	}

	immediate, _ := config["publish_immediately"].(bool)

	return &PublishNode{
		id:         id,
		immediate:  immediate,
		categoryID: models.AsString(config, "category_id"),
		authorID:   models.AsString(config, "author_id"),
		publisher:  publisher,
	}, nil
}

func (n *PublishNode) ID() string {
	return n.id
}

func (n *PublishNode) Type() string {
	return models.NodeTypePublish
}

func (n *PublishNode) Execute(ctx context.Context, ectx models.ExecutionContext) (any, error) {
	status := "draft"
	if n.immediate {
		status = "published"
	}

	created, err := n.publisher.Publish(ctx, protocol.PublishRequest{
		Title:      models.AsString(ectx.Data, "title"),
		Summary:    firstString(ectx.Data, summaryFields),
		Content:    firstString(ectx.Data, bodyFields),
		CategoryID: n.categoryID,
		Status:     status,
		AuthorID:   n.authorID,
	})
	if err != nil {
		return nil, fmt.Errorf("node %q: publish failed: %w", n.id, err)
	}

	out := models.CloneData(ectx.Data)
	for k, v := range created {
		out[k] = v
	}

	return out, nil
}

func firstString(data map[string]any, fields []string) string {
	for _, field := range fields {
		if s := models.AsString(data, field); s != "" {
			return s
		}
	}

	return ""
}

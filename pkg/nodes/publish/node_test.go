package publish

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/protocol"
)

type fakePublisher struct {
	created map[string]any
	err     error
	req     protocol.PublishRequest
	calls   int
}

func (f *fakePublisher) Publish(_ context.Context, req protocol.PublishRequest) (map[string]any, error) {
	f.req = req
	f.calls++

	return f.created, f.err
}

func TestPublishNode_ComposesDocument(t *testing.T) {
	publisher := &fakePublisher{created: map[string]any{"article_id": "art-1"}}
	node, err := NewPublishNode("p1", map[string]any{
		"category_id": "tech",
		"author_id":   "bot",
	}, publisher)
	require.NoError(t, err)

	result, err := node.Execute(context.Background(), models.ExecutionContext{
		Data: map[string]any{
			"title":             "Headline",
			"summary":           "short version",
			"generated_content": "full article body",
			"content":           "raw source text",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Headline", publisher.req.Title)
	assert.Equal(t, "short version", publisher.req.Summary)
	// Prior AI output wins over raw content.
	assert.Equal(t, "full article body", publisher.req.Content)
	assert.Equal(t, "tech", publisher.req.CategoryID)
	assert.Equal(t, "bot", publisher.req.AuthorID)

	out := result.(map[string]any)
	assert.Equal(t, "art-1", out["article_id"])
	assert.Equal(t, "Headline", out["title"])
}

func TestPublishNode_StatusFromConfig(t *testing.T) {
	publisher := &fakePublisher{created: map[string]any{}}

	draft, err := NewPublishNode("p1", map[string]any{}, publisher)
	require.NoError(t, err)
	_, err = draft.Execute(context.Background(), models.ExecutionContext{Data: map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, "draft", publisher.req.Status)

	immediate, err := NewPublishNode("p1", map[string]any{"publish_immediately": true}, publisher)
	require.NoError(t, err)
	_, err = immediate.Execute(context.Background(), models.ExecutionContext{Data: map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, "published", publisher.req.Status)
}

func TestPublishNode_BodyPreferenceOrder(t *testing.T) {
	publisher := &fakePublisher{created: map[string]any{}}
	node, err := NewPublishNode("p1", nil, publisher)
	require.NoError(t, err)

	_, err = node.Execute(context.Background(), models.ExecutionContext{
		Data: map[string]any{"synthesis": "combined", "content": "raw"},
	})
	require.NoError(t, err)
	assert.Equal(t, "combined", publisher.req.Content)

	_, err = node.Execute(context.Background(), models.ExecutionContext{
		Data: map[string]any{"content": "raw"},
	})
	require.NoError(t, err)
	assert.Equal(t, "raw", publisher.req.Content)
}

func TestPublishNode_OneCallPerExecution(t *testing.T) {
	publisher := &fakePublisher{created: map[string]any{}}
	node, err := NewPublishNode("p1", nil, publisher)
	require.NoError(t, err)

	_, err = node.Execute(context.Background(), models.ExecutionContext{Data: map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, 1, publisher.calls)
}

func TestPublishNode_ServiceErrorPropagates(t *testing.T) {
	node, err := NewPublishNode("p1", nil, &fakePublisher{err: errors.New("cms rejected")})
	require.NoError(t, err)

	_, err = node.Execute(context.Background(), models.ExecutionContext{Data: map[string]any{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish failed")
}

func TestNewPublishNode_RequiresPublisher(t *testing.T) {
	_, err := NewPublishNode("p1", nil, nil)
	assert.Error(t, err)
}

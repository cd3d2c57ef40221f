package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressline/pressline/pkg/models"
)

func newNode(t *testing.T, rules []any) *FilterNode {
	t.Helper()

	node, err := NewFilterNode("f1", map[string]any{"rules": rules})
	require.NoError(t, err)

	return node
}

func execute(t *testing.T, node *FilterNode, data map[string]any) any {
	t.Helper()

	result, err := node.Execute(context.Background(), models.ExecutionContext{Data: data})
	require.NoError(t, err)

	return result
}

func TestFilterNode_KeywordMatchesTitleOrContent(t *testing.T) {
	node := newNode(t, []any{
		map[string]any{"type": "keyword", "value": "Climate"},
	})

	assert.NotNil(t, execute(t, node, map[string]any{"title": "CLIMATE summit opens"}))
	assert.NotNil(t, execute(t, node, map[string]any{"content": "the climate crisis"}))
	assert.Nil(t, execute(t, node, map[string]any{"title": "sports roundup"}))
	assert.Nil(t, execute(t, node, map[string]any{}))
}

func TestFilterNode_DateComparisonsAreStrict(t *testing.T) {
	after := newNode(t, []any{
		map[string]any{"type": "date", "operator": "after", "value": "2026-01-10"},
	})

	assert.NotNil(t, execute(t, after, map[string]any{"published_at": "2026-01-11"}))
	assert.Nil(t, execute(t, after, map[string]any{"published_at": "2026-01-10"}))
	assert.Nil(t, execute(t, after, map[string]any{"published_at": "2026-01-09"}))

	before := newNode(t, []any{
		map[string]any{"type": "date", "operator": "before", "value": "2026-01-10"},
	})

	assert.NotNil(t, execute(t, before, map[string]any{"published_at": "2026-01-09"}))
	assert.Nil(t, execute(t, before, map[string]any{"published_at": "2026-01-10"}))
}

func TestFilterNode_DateMissingOrUnparsableRejects(t *testing.T) {
	node := newNode(t, []any{
		map[string]any{"type": "date", "operator": "after", "value": "2026-01-10"},
	})

	assert.Nil(t, execute(t, node, map[string]any{}))
	assert.Nil(t, execute(t, node, map[string]any{"published_at": "yesterday"}))
}

func TestFilterNode_ScoreThresholds(t *testing.T) {
	node := newNode(t, []any{
		map[string]any{"type": "score", "operator": "gt", "value": float64(5)},
	})

	assert.NotNil(t, execute(t, node, map[string]any{"priority_score": float64(5.5)}))
	assert.Nil(t, execute(t, node, map[string]any{"priority_score": float64(5)}))

	// Missing score counts as zero.
	assert.Nil(t, execute(t, node, map[string]any{}))

	lt := newNode(t, []any{
		map[string]any{"type": "score", "operator": "lt", "value": float64(5)},
	})
	assert.NotNil(t, execute(t, lt, map[string]any{}))
}

func TestFilterNode_FirstRejectingRuleShortCircuits(t *testing.T) {
	node := newNode(t, []any{
		map[string]any{"type": "keyword", "value": "nope"},
		map[string]any{"type": "score", "operator": "gt", "value": float64(0)},
	})

	assert.Nil(t, execute(t, node, map[string]any{
		"title":          "irrelevant",
		"priority_score": float64(9),
	}))
}

func TestFilterNode_UnknownRuleKindIsNoOp(t *testing.T) {
	node := newNode(t, []any{
		map[string]any{"type": "sentiment", "value": "positive"},
	})

	data := map[string]any{"title": "anything"}
	result := execute(t, node, data)
	assert.Equal(t, data, result)
}

func TestFilterNode_NoRulesPassesEverything(t *testing.T) {
	node, err := NewFilterNode("f1", map[string]any{})
	require.NoError(t, err)

	data := map[string]any{"title": "x"}
	result, err := node.Execute(context.Background(), models.ExecutionContext{Data: data})
	require.NoError(t, err)
	assert.Equal(t, data, result)
}

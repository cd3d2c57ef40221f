package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressline/pressline/pkg/models"
)

func TestExecuteNode_UnknownTypePassesThrough(t *testing.T) {
	reg := testRegistry(&fakeDiscoverer{}, &fakeGenerator{}, &fakePublisher{})
	executor := NewExecutor(reg, testLogger())

	node := &models.WorkflowNode{ID: "x1", Type: "sentiment_analysis"}
	data := map[string]any{"title": "kept"}

	result, err := executor.ExecuteNode(context.Background(), node, models.ExecutionContext{Data: data})
	require.NoError(t, err)

	out, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, data, out)

	// Pass-through hands downstream a copy.
	out["title"] = "mutated"
	assert.Equal(t, "kept", data["title"])
}

func TestExecuteNode_RegisteredTypeRuns(t *testing.T) {
	reg := testRegistry(&fakeDiscoverer{}, &fakeGenerator{}, &fakePublisher{})
	executor := NewExecutor(reg, testLogger())

	node := &models.WorkflowNode{ID: "t1", Type: models.NodeTypeTrigger}
	result, err := executor.ExecuteNode(context.Background(), node, models.ExecutionContext{
		Data: map[string]any{"seed": true},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"seed": true}, result)
}

func TestExecuteNode_InvalidConfigFails(t *testing.T) {
	reg := testRegistry(&fakeDiscoverer{}, &fakeGenerator{}, &fakePublisher{})
	executor := NewExecutor(reg, testLogger())

	node := &models.WorkflowNode{
		ID:     "n1",
		Type:   models.NodeTypeNewsSearch,
		Config: map[string]any{"limit": "ten"},
	}

	_, err := executor.ExecuteNode(context.Background(), node, models.ExecutionContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

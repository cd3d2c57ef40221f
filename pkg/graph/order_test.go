package graph

import (
	"testing"

	"github.com/pressline/pressline/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id, nodeType string, connected ...string) *models.WorkflowNode {
	return &models.WorkflowNode{
		ID:        id,
		Type:      nodeType,
		Connected: connected,
	}
}

func indexOf(t *testing.T, ordered []*models.WorkflowNode, id string) int {
	t.Helper()

	for i, n := range ordered {
		if n.ID == id {
			return i
		}
	}

	t.Fatalf("node %q not in ordered result", id)

	return -1
}

func TestOrder_ProducersBeforeConsumers(t *testing.T) {
	nodes := []*models.WorkflowNode{
		node("publish", models.NodeTypePublish),
		node("filter", models.NodeTypeFilter, "publish"),
		node("search", models.NodeTypeNewsSearch, "filter"),
		node("start", models.NodeTypeTrigger, "search"),
	}

	ordered, err := Order(nodes)
	require.NoError(t, err)
	require.Len(t, ordered, 4)

	assert.Less(t, indexOf(t, ordered, "start"), indexOf(t, ordered, "search"))
	assert.Less(t, indexOf(t, ordered, "search"), indexOf(t, ordered, "filter"))
	assert.Less(t, indexOf(t, ordered, "filter"), indexOf(t, ordered, "publish"))
}

func TestOrder_DiamondGraph(t *testing.T) {
	nodes := []*models.WorkflowNode{
		node("start", models.NodeTypeTrigger, "left", "right"),
		node("left", models.NodeTypeResearch, "join"),
		node("right", models.NodeTypeSynthesize, "join"),
		node("join", models.NodeTypePublish),
	}

	ordered, err := Order(nodes)
	require.NoError(t, err)
	require.Len(t, ordered, 4)

	join := indexOf(t, ordered, "join")
	assert.Less(t, indexOf(t, ordered, "start"), indexOf(t, ordered, "left"))
	assert.Less(t, indexOf(t, ordered, "left"), join)
	assert.Less(t, indexOf(t, ordered, "right"), join)
}

func TestOrder_CycleIsFatal(t *testing.T) {
	nodes := []*models.WorkflowNode{
		node("start", models.NodeTypeTrigger, "a"),
		node("a", models.NodeTypeResearch, "b"),
		node("b", models.NodeTypeSynthesize, "a"),
	}

	ordered, err := Order(nodes)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCycleDetected)
	assert.Nil(t, ordered)
}

func TestOrder_SelfLoopIsFatal(t *testing.T) {
	nodes := []*models.WorkflowNode{
		node("a", models.NodeTypeResearch, "a"),
	}

	_, err := Order(nodes)
	assert.ErrorIs(t, err, ErrCycleDetected)
}

func TestOrder_DanglingEdgesAreSkipped(t *testing.T) {
	nodes := []*models.WorkflowNode{
		node("start", models.NodeTypeTrigger, "missing", "search"),
		node("search", models.NodeTypeNewsSearch, "also-missing"),
	}

	ordered, err := Order(nodes)
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	assert.Less(t, indexOf(t, ordered, "start"), indexOf(t, ordered, "search"))
}

func TestOrder_DisconnectedComponentsAreIncluded(t *testing.T) {
	nodes := []*models.WorkflowNode{
		node("start", models.NodeTypeTrigger, "search"),
		node("search", models.NodeTypeNewsSearch),
		node("orphan", models.NodeTypeFilter),
	}

	ordered, err := Order(nodes)
	require.NoError(t, err)
	assert.Len(t, ordered, 3)
	indexOf(t, ordered, "orphan")
}

func TestOrder_DuplicateIDsKeepFirst(t *testing.T) {
	first := node("dup", models.NodeTypeResearch)
	second := node("dup", models.NodeTypeSynthesize)
	nodes := []*models.WorkflowNode{
		node("start", models.NodeTypeTrigger, "dup"),
		first,
		second,
	}

	ordered, err := Order(nodes)
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	assert.Same(t, first, ordered[indexOf(t, ordered, "dup")])
}

func TestOrder_EmptyGraph(t *testing.T) {
	ordered, err := Order(nil)
	require.NoError(t, err)
	assert.Empty(t, ordered)
}

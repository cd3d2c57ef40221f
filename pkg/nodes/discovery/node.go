// Package discovery provides the content-discovery source nodes (news
// search, RSS aggregation, scholar search).
package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/protocol"
)

const defaultLimit = 10

// DiscoveryNode calls a remote content-retrieval collaborator and fans each
// discovered item out as an independent branch. Zero items yields an empty
// result list, letting the branch die without error; transport failures
// propagate untouched.
type DiscoveryNode struct {
	id       string
	nodeType string
	source   string
	keywords []string
	feeds    []string
	limit    int
	config   map[string]any

	discoverer protocol.ContentDiscoverer
}

func NewDiscoveryNode(id, nodeType, source string, config map[string]any, discoverer protocol.ContentDiscoverer) (*DiscoveryNode, error) {
	if discoverer == nil {
		return nil, fmt.Errorf("node %q: content discoverer is not configured", id)
	}

	return &DiscoveryNode{
		id:         id,
		nodeType:   nodeType,
		source:     source,
		keywords:   models.AsStringSlice(config["keywords"]),
		feeds:      models.AsStringSlice(config["feeds"]),
		limit:      models.AsInt(config["limit"], defaultLimit),
		config:     config,
		discoverer: discoverer,
	}, nil
}

func (n *DiscoveryNode) ID() string {
	return n.id
}

func (n *DiscoveryNode) Type() string {
	return n.nodeType
}

// Execute resolves the time window against the wall clock at execution time,
// issues one discovery call, and returns one result per item.
func (n *DiscoveryNode) Execute(ctx context.Context, _ models.ExecutionContext) (any, error) {
	window, err := models.ResolveTimeWindow(n.config, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", n.id, err)
	}

	items, err := n.discoverer.Discover(ctx, protocol.DiscoveryQuery{
		Source:   n.source,
		Keywords: n.keywords,
		Feeds:    n.feeds,
		Window:   window,
		Limit:    n.limit,
	})
	if err != nil {
		return nil, fmt.Errorf("node %q: discovery failed: %w", n.id, err)
	}

	// Each item becomes its own branch. The empty (non-nil) list on zero
	// items is what distinguishes "nothing found" from "drop this branch".
	results := make([]map[string]any, 0, len(items))
	results = append(results, items...)

	return results, nil
}

package discovery

import (
	"context"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/protocol"
)

// nodeFactory parameterizes the shared discovery handler per source kind.
type nodeFactory struct {
	nodeType    string
	source      string
	name        string
	description string
	discoverer  protocol.ContentDiscoverer
}

func NewNewsSearchNodeFactory(discoverer protocol.ContentDiscoverer) protocol.NodeFactory {
	return &nodeFactory{
		nodeType:    models.NodeTypeNewsSearch,
		source:      protocol.DiscoverySourceNews,
		name:        "News Search",
		description: "Searches a news service by keyword and time window; each article becomes an independent branch",
		discoverer:  discoverer,
	}
}

func NewRSSFeedNodeFactory(discoverer protocol.ContentDiscoverer) protocol.NodeFactory {
	return &nodeFactory{
		nodeType:    models.NodeTypeRSSFeed,
		source:      protocol.DiscoverySourceRSS,
		name:        "RSS Feed",
		description: "Aggregates configured RSS feeds; each entry becomes an independent branch",
		discoverer:  discoverer,
	}
}

func NewScholarSearchNodeFactory(discoverer protocol.ContentDiscoverer) protocol.NodeFactory {
	return &nodeFactory{
		nodeType:    models.NodeTypeScholarSearch,
		source:      protocol.DiscoverySourceScholar,
		name:        "Scholar Search",
		description: "Searches an academic index by keyword and time window; each paper becomes an independent branch",
		discoverer:  discoverer,
	}
}

func (f *nodeFactory) Create(_ context.Context, id string, config map[string]any) (protocol.Node, error) {
	return NewDiscoveryNode(id, f.nodeType, f.source, config, f.discoverer)
}

func (f *nodeFactory) ID() string {
	return f.nodeType
}

func (f *nodeFactory) Name() string {
	return f.name
}

func (f *nodeFactory) Description() string {
	return f.description
}

func (f *nodeFactory) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"keywords": map[string]any{
				"description": "Keyword filters, a list of strings or a single string",
			},
			"feeds": map[string]any{
				"description": "Feed URLs (RSS source only)",
			},
			"limit": map[string]any{
				"type":        "number",
				"description": "Maximum number of items to retrieve",
			},
			"time_range": map[string]any{
				"description": "Relative preset (hour, day, week, month) or {from_date, to_date}",
			},
		},
	}
}

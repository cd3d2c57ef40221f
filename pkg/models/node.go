// Package models defines the core domain models for content workflow execution.
package models

// Node type tags. The set is closed: the registry only knows these types,
// and anything else passes through the executor untouched.
const (
	NodeTypeTrigger         = "trigger"
	NodeTypeNewsSearch      = "news_search"
	NodeTypeRSSFeed         = "rss_feed"
	NodeTypeScholarSearch   = "scholar_search"
	NodeTypeResearch        = "research"
	NodeTypeSynthesize      = "synthesize"
	NodeTypeGenerateContent = "generate_content"
	NodeTypeFilter          = "filter"
	NodeTypePublish         = "publish"
)

// WorkflowNode is one configurable processing step in a workflow graph.
// Nodes are authored externally and immutable during a run.
type WorkflowNode struct {
	ID        string         `json:"id"    validate:"required"`
	Type      string         `json:"type"  validate:"required"`
	Label     string         `json:"label"`
	Config    map[string]any `json:"config"`
	Connected []string       `json:"connected"` // downstream node ids, the graph's edges
}

// IsTrigger reports whether the node is a graph entry point.
func (n *WorkflowNode) IsTrigger() bool {
	return n.Type == NodeTypeTrigger
}

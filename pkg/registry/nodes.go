// Package registry provides node factory registration for the built-in
// content pipeline nodes.
package registry

import (
	"github.com/pressline/pressline/pkg/nodes/discovery"
	"github.com/pressline/pressline/pkg/nodes/filter"
	"github.com/pressline/pressline/pkg/nodes/generate"
	"github.com/pressline/pressline/pkg/nodes/publish"
	"github.com/pressline/pressline/pkg/nodes/trigger"
	"github.com/pressline/pressline/pkg/protocol"
)

// Collaborators are the remote services the built-in nodes call.
type Collaborators struct {
	Discoverer protocol.ContentDiscoverer
	Generator  protocol.ContentGenerator
	Publisher  protocol.ArticlePublisher
}

// RegisterDefaultNodes registers the built-in node factories, binding the
// remote-calling ones to the given collaborators.
func (r *Registry) RegisterDefaultNodes(c Collaborators) {
	r.RegisterNode(trigger.NewTriggerNodeFactory())

	// Content discovery sources
	r.RegisterNode(discovery.NewNewsSearchNodeFactory(c.Discoverer))
	r.RegisterNode(discovery.NewRSSFeedNodeFactory(c.Discoverer))
	r.RegisterNode(discovery.NewScholarSearchNodeFactory(c.Discoverer))

	// AI processing
	r.RegisterNode(generate.NewResearchNodeFactory(c.Generator))
	r.RegisterNode(generate.NewSynthesizeNodeFactory(c.Generator))
	r.RegisterNode(generate.NewGenerateContentNodeFactory(c.Generator))

	r.RegisterNode(filter.NewFilterNodeFactory())
	r.RegisterNode(publish.NewPublishNodeFactory(c.Publisher))
}

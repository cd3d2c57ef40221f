package protocol

import (
	"context"

	"github.com/pressline/pressline/pkg/models"
)

// Discovery source identifiers.
const (
	DiscoverySourceNews    = "news"
	DiscoverySourceRSS     = "rss"
	DiscoverySourceScholar = "scholar"
)

// DiscoveryQuery describes one content-discovery call.
type DiscoveryQuery struct {
	Source   string             `json:"source"`
	Keywords []string           `json:"keywords,omitempty"`
	Feeds    []string           `json:"feeds,omitempty"` // RSS only
	Window   *models.TimeWindow `json:"window,omitempty"`
	Limit    int                `json:"limit,omitempty"`
}

// ContentDiscoverer retrieves content items from a remote discovery service.
// Implementations issue exactly one outbound call per invocation and do not
// retry; retry policy belongs to the collaborator.
type ContentDiscoverer interface {
	Discover(ctx context.Context, query DiscoveryQuery) ([]map[string]any, error)
}

// GenerationRequest describes one AI generation or analysis call.
type GenerationRequest struct {
	Prompt    string `json:"prompt"`
	Mode      string `json:"mode"`
	Tone      string `json:"tone,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
}

// ContentGenerator produces or analyzes text through a remote AI service.
type ContentGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// PublishRequest is the composed document handed to the publish service.
type PublishRequest struct {
	Title      string `json:"title"`
	Summary    string `json:"summary,omitempty"`
	Content    string `json:"content"`
	CategoryID string `json:"category_id,omitempty"`
	Status     string `json:"status"` // "draft" or "published"
	AuthorID   string `json:"author_id,omitempty"`
}

// ArticlePublisher creates an article through a remote publish service and
// returns the created record.
type ArticlePublisher interface {
	Publish(ctx context.Context, req PublishRequest) (map[string]any, error)
}

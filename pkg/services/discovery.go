package services

import (
	"context"
	"net/http"
	"time"

	"github.com/pressline/pressline/pkg/protocol"
)

// HTTPDiscoverer calls a remote content-discovery service. The source kind
// (news, rss, scholar) selects the endpoint path.
type HTTPDiscoverer struct {
	baseURL string
	client  *http.Client
}

func NewHTTPDiscoverer(baseURL string, timeout time.Duration) *HTTPDiscoverer {
	return &HTTPDiscoverer{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

type discoveryResponse struct {
	Items []map[string]any `json:"items"`
}

func (d *HTTPDiscoverer) Discover(ctx context.Context, query protocol.DiscoveryQuery) ([]map[string]any, error) {
	var resp discoveryResponse

	err := postJSON(ctx, d.client, d.baseURL+"/v1/discover/"+query.Source, query, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Items == nil {
		return []map[string]any{}, nil
	}

	return resp.Items, nil
}

package services

import (
	"context"
	"net/http"
	"time"

	"github.com/pressline/pressline/pkg/protocol"
)

// HTTPPublisher calls the remote publish service that owns article storage.
type HTTPPublisher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPPublisher(baseURL string, timeout time.Duration) *HTTPPublisher {
	return &HTTPPublisher{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

func (p *HTTPPublisher) Publish(ctx context.Context, req protocol.PublishRequest) (map[string]any, error) {
	created := map[string]any{}

	err := postJSON(ctx, p.client, p.baseURL+"/v1/articles", req, &created)
	if err != nil {
		return nil, err
	}

	return created, nil
}

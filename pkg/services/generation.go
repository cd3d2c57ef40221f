package services

import (
	"context"
	"net/http"
	"time"

	"github.com/pressline/pressline/pkg/protocol"
)

// HTTPGenerator calls a remote AI generation/analysis service.
type HTTPGenerator struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGenerator(baseURL string, timeout time.Duration) *HTTPGenerator {
	return &HTTPGenerator{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

type generationResponse struct {
	Content string `json:"content"`
}

func (g *HTTPGenerator) Generate(ctx context.Context, req protocol.GenerationRequest) (string, error) {
	var resp generationResponse

	err := postJSON(ctx, g.client, g.baseURL+"/v1/generate", req, &resp)
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}

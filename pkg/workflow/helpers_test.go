package workflow

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/pressline/pressline/pkg/protocol"
	"github.com/pressline/pressline/pkg/registry"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// fakeDiscoverer returns a fixed item list for every call.
type fakeDiscoverer struct {
	items []map[string]any
	err   error
}

func (f *fakeDiscoverer) Discover(context.Context, protocol.DiscoveryQuery) ([]map[string]any, error) {
	return f.items, f.err
}

// fakeGenerator echoes the prompt, failing when it matches failOn.
type fakeGenerator struct {
	failOn string
}

func (f *fakeGenerator) Generate(_ context.Context, req protocol.GenerationRequest) (string, error) {
	if f.failOn != "" && req.Prompt == f.failOn {
		return "", errors.New("generation refused")
	}

	return "generated: " + req.Prompt, nil
}

// fakePublisher records every published request.
type fakePublisher struct {
	mu   sync.Mutex
	reqs []protocol.PublishRequest
}

func (f *fakePublisher) Publish(_ context.Context, req protocol.PublishRequest) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.reqs = append(f.reqs, req)

	return map[string]any{"article_id": "art-1"}, nil
}

func (f *fakePublisher) published() []protocol.PublishRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]protocol.PublishRequest(nil), f.reqs...)
}

func testRegistry(disc protocol.ContentDiscoverer, gen protocol.ContentGenerator, pub protocol.ArticlePublisher) *registry.Registry {
	reg := registry.NewRegistry(testLogger())
	reg.RegisterDefaultNodes(registry.Collaborators{
		Discoverer: disc,
		Generator:  gen,
		Publisher:  pub,
	})

	return reg
}

// Package cmd provides common initialization functions for command-line applications.
package cmd

import (
	"log/slog"
	"time"

	"github.com/pressline/pressline/pkg/registry"
	"github.com/pressline/pressline/pkg/services"
)

// ServiceConfig points the built-in nodes at their remote collaborators.
type ServiceConfig struct {
	DiscoveryURL  string
	GenerationURL string
	PublishURL    string
	Timeout       time.Duration
}

// NewRegistry creates a node registry with all built-in nodes bound to
// HTTP-backed collaborator services.
func NewRegistry(logger *slog.Logger, config ServiceConfig) *registry.Registry {
	reg := registry.NewRegistry(logger)

	reg.RegisterDefaultNodes(registry.Collaborators{
		Discoverer: services.NewHTTPDiscoverer(config.DiscoveryURL, config.Timeout),
		Generator:  services.NewHTTPGenerator(config.GenerationURL, config.Timeout),
		Publisher:  services.NewHTTPPublisher(config.PublishURL, config.Timeout),
	})

	return reg
}

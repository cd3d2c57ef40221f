// Package registry provides explicit node factory registration and creation.
// A registry is constructed and passed in by the caller; there is no
// process-wide instance, which keeps runs testable with fake handlers.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressline/pressline/pkg/protocol"
	"github.com/xeipuuv/gojsonschema"
)

type Registry struct {
	logger        *slog.Logger
	nodeFactories map[string]protocol.NodeFactory
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger:        logger,
		nodeFactories: make(map[string]protocol.NodeFactory),
	}
}

func (r *Registry) RegisterNode(factory protocol.NodeFactory) {
	r.nodeFactories[factory.ID()] = factory
}

// IsNodeRegistered reports whether a handler exists for the node type.
func (r *Registry) IsNodeRegistered(nodeType string) bool {
	_, exists := r.nodeFactories[nodeType]

	return exists
}

// GetAvailableNodes returns all registered node factories.
func (r *Registry) GetAvailableNodes() []protocol.NodeFactory {
	factories := make([]protocol.NodeFactory, 0, len(r.nodeFactories))
	for _, factory := range r.nodeFactories {
		factories = append(factories, factory)
	}

	return factories
}

// CreateNode instantiates a handler for the node type after validating the
// configuration against the factory's JSON schema.
func (r *Registry) CreateNode(ctx context.Context, nodeType, id string, config map[string]any) (protocol.Node, error) {
	factory, ok := r.nodeFactories[nodeType]
	if !ok {
		return nil, fmt.Errorf("node type %q not registered", nodeType)
	}

	if err := validateConfig(factory.Schema(), config); err != nil {
		return nil, fmt.Errorf("invalid configuration for node %q: %w", id, err)
	}

	return factory.Create(ctx, id, config)
}

func validateConfig(schema, config map[string]any) error {
	if schema == nil {
		return nil
	}

	if config == nil {
		config = map[string]any{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(config),
	)
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}

	return fmt.Errorf("schema validation failed: %s", strings.Join(details, "; "))
}

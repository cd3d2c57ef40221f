package generate

import (
	"context"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/protocol"
)

type nodeFactory struct {
	nodeType    string
	mode        string
	name        string
	description string
	generator   protocol.ContentGenerator
}

func NewResearchNodeFactory(generator protocol.ContentGenerator) protocol.NodeFactory {
	return &nodeFactory{
		nodeType:    models.NodeTypeResearch,
		mode:        ModeResearch,
		name:        "Research",
		description: "Runs deep research on the branch topic and records findings on the payload",
		generator:   generator,
	}
}

func NewSynthesizeNodeFactory(generator protocol.ContentGenerator) protocol.NodeFactory {
	return &nodeFactory{
		nodeType:    models.NodeTypeSynthesize,
		mode:        ModeSynthesize,
		name:        "Synthesize",
		description: "Synthesizes accumulated branch content into a condensed form",
		generator:   generator,
	}
}

func NewGenerateContentNodeFactory(generator protocol.ContentGenerator) protocol.NodeFactory {
	return &nodeFactory{
		nodeType:    models.NodeTypeGenerateContent,
		mode:        ModeGenerate,
		name:        "Generate Content",
		description: "Generates article content from the branch payload",
		generator:   generator,
	}
}

func (f *nodeFactory) Create(_ context.Context, id string, config map[string]any) (protocol.Node, error) {
	return NewGenerateNode(id, f.nodeType, f.mode, config, f.generator)
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
			"tone": map[string]any{
				"type":        "string",
				"description": "Writing tone passed to the generation service",
			},
			"strategy": map[string]any{
				"type":        "string",
				"description": "Synthesis strategy hint",
			},
			"length": map[string]any{
				"type":        "number",
				"description": "Maximum output length",
			},
		},
	}
}

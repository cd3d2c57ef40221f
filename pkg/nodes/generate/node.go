// Package generate provides the AI-processing nodes (research, synthesis,
// content generation).
package generate

import (
	"context"
	"fmt"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/protocol"
)

// Generation modes and the payload field each mode writes its result to.
const (
	ModeResearch   = "research"
	ModeSynthesize = "synthesize"
	ModeGenerate   = "generate"
)

var resultFields = map[string]string{
	ModeResearch:   "research_findings",
	ModeSynthesize: "synthesis",
	ModeGenerate:   "generated_content",
}

// Source-text preference when building the prompt from the branch payload.
var promptFields = []string{"title", "content", "description"}

// GenerateNode calls a remote generation/analysis collaborator and returns a
// single result: the prior payload shallow-merged with one new named field.
// Everything already accumulated in the branch is preserved. Errors propagate.
type GenerateNode struct {
	id       string
	nodeType string
	mode     string
	tone     string
	strategy string
	length   int

	generator protocol.ContentGenerator
}

func NewGenerateNode(id, nodeType, mode string, config map[string]any, generator protocol.ContentGenerator) (*GenerateNode, error) {
	if generator == nil {
		return nil, fmt.Errorf("node %q: content generator is not configured", id)
	}

	return &GenerateNode{
		id:        id,
		nodeType:  nodeType,
		mode:      mode,
		tone:      models.AsString(config, "tone"),
		strategy:  models.AsString(config, "strategy"),
		length:    models.AsInt(config["length"], 0),
		generator: generator,
	}, nil
}

func (n *GenerateNode) ID() string {
	return n.id
}

func (n *GenerateNode) Type() string {
	return n.nodeType
}

func (n *GenerateNode) Execute(ctx context.Context, ectx models.ExecutionContext) (any, error) {
	generated, err := n.generator.Generate(ctx, protocol.GenerationRequest{
		Prompt:    promptFrom(ectx.Data),
		Mode:      n.mode,
		Tone:      n.tone,
		Strategy:  n.strategy,
		MaxLength: n.length,
	})
	if err != nil {
		return nil, fmt.Errorf("node %q: generation failed: %w", n.id, err)
	}

	out := models.CloneData(ectx.Data)
	out[resultFields[n.mode]] = generated

	return out, nil
}

// promptFrom picks the prompt source from the payload: title, content or
// description, in that preference order.
func promptFrom(data map[string]any) string {
	for _, field := range promptFields {
		if s := models.AsString(data, field); s != "" {
			return s
		}
	}

	return ""
}

package assistant

import (
	"context"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/content"
)

// Turn is one prior exchange handed to the inference capability as
// conversational context. Error entries never appear here.
type Turn struct {
	Role Role
	Text string
}

// Request is the full input of one inference call.
type Request struct {
	SystemInstruction string
	History           []Turn
	Input             string
	Language          content.Language
}

// Result is a successful generation. Text may be empty; the orchestrator
// substitutes a fallback in that case. Citations are raw and may contain
// duplicates or entries without a URI.
type Result struct {
	Text      string
	Citations []Citation
}

// InferenceClient is the boundary to the external text-generation
// capability. Implementations need not distinguish failure modes beyond
// returning an error.
type InferenceClient interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

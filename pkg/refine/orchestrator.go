package refine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-summarizer-be/internal/constant"
	"ai-summarizer-be/pkg/llm"
)

// ErrEmptyInstruction is returned when the refinement instruction is empty
// after trimming whitespace. Rejected before any gateway call.
var ErrEmptyInstruction = errors.New("refinement instruction is required")

// Orchestrator turns one refinement instruction plus the current working
// text into the next working text by a single gateway call. It does no
// retries, no caching and no post-processing: the gateway's output is
// returned verbatim.
type Orchestrator struct {
	provider llm.LLMProvider
}

func NewOrchestrator(provider llm.LLMProvider) *Orchestrator {
	return &Orchestrator{provider: provider}
}

// Refine builds the editor prompt from the literal working text and the
// literal instruction and forwards it to the gateway. The working text may
// be empty (degenerate case, still forwarded).
func (o *Orchestrator) Refine(ctx context.Context, workingText, instruction string) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", ErrEmptyInstruction
	}

	prompt := fmt.Sprintf(constant.RefinePromptTemplateV1, workingText, instruction)
	return o.provider.Generate(ctx, prompt)
}

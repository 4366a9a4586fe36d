package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/regsentry/regsentry/pkg/models"
)

const questionSystemPrompt = `You are a senior regulatory compliance auditor preparing an on-site review.

Given one regulation reference and the audit findings that cited it, write 3 to 5 prioritized questions a human reviewer should ask the organization. Priority 1 is the most urgent, 10 the least.

Respond with a JSON object: {"questions": [{"question": "...", "priority": <1-10>, "rationale": "..."}]}. No other fields, no markdown.`

// GenerateQuestions asks the LLM for reviewer questions about one cited
// regulation reference. It satisfies the question-generator hook; the caller
// falls back to heuristic questions on error.
func (c *LLMClient) GenerateQuestions(ctx context.Context, reference string, findings []string) ([]models.GeneratedQuestion, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Regulation reference: %s\n\nFindings that cited it:\n", reference)
	for i, f := range findings {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, f)
	}

	messages := []chatMessage{
		{Role: "system", Content: questionSystemPrompt},
		{Role: "user", Content: sb.String()},
	}

	content, tokens, status, _, err := c.complete(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("question generation failed (status %d): %w", status, err)
	}
	if obs := usageObserver(ctx); obs != nil && tokens > 0 {
		obs.TokensUsed(tokens)
	}

	var parsed struct {
		Questions []models.GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse question response: %w", err)
	}

	out := parsed.Questions[:0]
	for _, q := range parsed.Questions {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		if q.Priority < 1 {
			q.Priority = 1
		}
		if q.Priority > 10 {
			q.Priority = 10
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("question response contained no questions")
	}
	return out, nil
}

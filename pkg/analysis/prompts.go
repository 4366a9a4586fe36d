package analysis

import (
	"fmt"
	"strings"

	"github.com/regsentry/regsentry/pkg/models"
	"github.com/regsentry/regsentry/pkg/retrieval"
)

const systemPrompt = `You are a senior regulatory compliance auditor reviewing an organization's procedural manual against the applicable regulations and guidance material.

Assess ONLY the section under review. Use the provided regulation, guidance, and evidence context; do not invent requirements.

Respond with a single JSON object containing exactly these fields:
{
  "flag": "RED" | "YELLOW" | "GREEN",
  "severity_score": <integer 0-100>,
  "regulation_references": [<strings>],
  "findings": "<non-empty summary of the assessment>",
  "gaps": [<strings describing missing or deficient provisions>],
  "citations": {"manual_section": <string or null>, "regulation_sections": [<strings>]},
  "recommendations": [<strings>],
  "needs_additional_context": <bool>,
  "context_query": <string or null>
}

RED means a likely non-compliance with regulatory requirements. YELLOW means a weakness or ambiguity worth reviewer attention. GREEN means compliant.
Set needs_additional_context to true and fill context_query only when a specific, searchable piece of missing context would change your assessment.
Return the JSON object only. No other fields, no markdown.`

// userPrompt renders the analysis request for one chunk.
func userPrompt(chunk *models.ChunkRecord, bundle *retrieval.Bundle) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Section under review: %s\n", chunk.HeadingPath())
	fmt.Fprintf(&sb, "Chunk id: %s (index %d)\n\n", chunk.ChunkID, chunk.ChunkIndex)
	fmt.Fprintf(&sb, "Context supplied: %d manual, %d regulation, %d guidance, %d evidence slices (%d tokens total).\n\n",
		len(bundle.Manual), len(bundle.Regulation), len(bundle.Guidance), len(bundle.Evidence),
		bundle.TotalTokens)
	sb.WriteString(bundle.RenderText())
	sb.WriteString("\nAssess the section under review for compliance and respond with the JSON object described in the system prompt.")

	return sb.String()
}

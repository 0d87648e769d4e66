// Package extraction turns free-text procurement needs into structured RFP
// drafts using LLM extraction with strict schema validation.
package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/rfp-manager/internal/llm"
	"github.com/jonathan/rfp-manager/internal/types"
)

// systemInstruction is the fixed extraction contract sent with every request.
// The response must be exactly one JSON object with the six draft keys.
const systemInstruction = `You are an expert procurement assistant. Always respond with a single JSON object only.
Keys: title (string), requirements (array of strings), budget (number or null), deliveryTime (string or null), paymentTerms (string or null), warranty (string or null).
Do not include any extra keys. Do not include markdown, explanations, or code blocks.`

// ExtractRFP extracts a structured RFP draft from a free-text description.
// It performs exactly one call to the text-generation service and validates
// the response strictly before returning it. Nothing is persisted.
func ExtractRFP(ctx context.Context, description, apiKey string) (*types.RFPDraft, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Message: "API key is required"}
	}
	if strings.TrimSpace(description) == "" {
		return nil, &ValidationError{Field: "description", Message: "description is required"}
	}

	config := llm.DefaultConfig()
	client, err := llm.NewClient(ctx, config, apiKey)
	if err != nil {
		return nil, &ConfigurationError{
			Message: "failed to create LLM client",
			Cause:   err,
		}
	}
	defer func() { _ = client.Close() }()

	return extractWithClient(ctx, client, description)
}

// extractWithClient runs the extraction against an already-constructed client.
// Split out so tests can inject a fake client.
func extractWithClient(ctx context.Context, client llm.Client, description string) (*types.RFPDraft, error) {
	prompt := buildExtractionPrompt(description)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &TransportError{
			Message: "failed to generate structured output",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	if err := ValidateDraftJSON(responseText); err != nil {
		return nil, err
	}

	var draft types.RFPDraft
	if err := json.Unmarshal([]byte(responseText), &draft); err != nil {
		return nil, &ExtractionError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	// Keep requirements a concrete slice so callers and renderers never see nil.
	if draft.Requirements == nil {
		draft.Requirements = []string{}
	}

	return &draft, nil
}

// buildExtractionPrompt constructs the prompt for structured extraction
func buildExtractionPrompt(description string) string {
	var sb strings.Builder
	sb.WriteString(systemInstruction)
	sb.WriteString("\n\nProcurement need:\n\"\"\"\n")
	sb.WriteString(description)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// Package llm provides the text generation service consumed by the
// pipeline: plain completions and structured (JSON) completions, backed by
// a configurable provider.
package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrGeneration marks a text generation failure: a provider error or a
// response whose structured payload could not be parsed. Callers contain it
// at the component boundary and substitute a degraded value.
var ErrGeneration = eris.New("generation error")

// Generator is the text generation service. GenerateStructured appends a
// strict-JSON instruction, extracts an embedded JSON payload from
// surrounding prose or markdown fencing, and parses it.
type Generator interface {
	Generate(ctx context.Context, prompt, systemPrompt string) (string, error)
	GenerateStructured(ctx context.Context, prompt, systemPrompt string) (map[string]any, error)
}

const jsonInstruction = "\n\nRespond ONLY with valid JSON. Do not include any explanation or markdown formatting."

// generateStructured implements GenerateStructured on top of a provider's
// Generate. Shared by all providers.
func generateStructured(ctx context.Context, g Generator, prompt, systemPrompt string) (map[string]any, error) {
	text, err := g.Generate(ctx, prompt+jsonInstruction, systemPrompt)
	if err != nil {
		return nil, err
	}
	parsed, err := ParseJSONPayload(text)
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

// ParseJSONPayload extracts and parses a JSON object from raw model output.
// Handles ```json fences, bare ``` fences, and unfenced output.
func ParseJSONPayload(raw string) (map[string]any, error) {
	payload := extractJSON(raw)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		snippet := payload
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, eris.Wrapf(ErrGeneration, "unparseable structured response: %s", snippet)
	}
	return parsed, nil
}

func extractJSON(raw string) string {
	if idx := strings.Index(raw, "```json"); idx >= 0 {
		rest := raw[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(raw, "```"); idx >= 0 {
		rest := raw[idx+3:]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(raw)
}

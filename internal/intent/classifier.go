// Package intent maps free-form user text to a discovery intent.
package intent

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/axlewave/leadgen-cli/internal/llm"
	"github.com/axlewave/leadgen-cli/internal/model"
	"github.com/axlewave/leadgen-cli/internal/prompts"
)

// ErrClassification marks malformed classifier output. It never reaches the
// orchestrator: Classify always returns a usable Intent.
var ErrClassification = eris.New("classification error")

const systemPrompt = "You are an intent classification system. Always respond with valid JSON."

// Classifier determines discovery intent from natural language input.
type Classifier struct {
	gen     llm.Generator
	prompts *prompts.Provider
}

// NewClassifier creates an intent classifier.
func NewClassifier(gen llm.Generator, promptProvider *prompts.Provider) *Classifier {
	return &Classifier{gen: gen, prompts: promptProvider}
}

// Classify returns the intent for userInput. Failures of any kind degrade
// to an unclear intent with zero confidence; the caller treats unclear as a
// terminal signal, not an error.
func (c *Classifier) Classify(ctx context.Context, userInput string) model.Intent {
	log := zap.L().With(zap.String("component", "intent"))

	prompt := c.prompts.Render(prompts.IntentClassifier, map[string]string{"user_input": userInput})
	resp, err := c.gen.GenerateStructured(ctx, prompt, systemPrompt)
	if err != nil {
		log.Error("classification failed", zap.Error(err))
		return fallbackIntent()
	}

	result, err := parseIntent(resp)
	if err != nil {
		log.Error("malformed classifier output", zap.Error(err))
		return fallbackIntent()
	}

	log.Info("classified intent",
		zap.String("intent", string(result.Type)),
		zap.Float64("confidence", result.Confidence),
	)
	return result
}

// parseIntent validates the structured response: all three fields must be
// present; an out-of-vocabulary intent value is coerced to unclear with
// confidence 0.3.
func parseIntent(resp map[string]any) (model.Intent, error) {
	rawIntent, okIntent := resp["intent"].(string)
	confidence, okConf := resp["confidence"].(float64)
	reasoning, okReason := resp["reasoning"].(string)
	if !okIntent || !okConf || !okReason {
		return model.Intent{}, eris.Wrapf(ErrClassification, "missing required fields in %v", resp)
	}

	intentType := model.IntentType(rawIntent)
	if !intentType.Valid() {
		zap.L().Warn("invalid intent value, coercing to unclear", zap.String("intent", rawIntent))
		return model.Intent{Type: model.IntentUnclear, Confidence: 0.3, Reasoning: reasoning}, nil
	}

	return model.Intent{Type: intentType, Confidence: confidence, Reasoning: reasoning}, nil
}

func fallbackIntent() model.Intent {
	return model.Intent{
		Type:       model.IntentUnclear,
		Confidence: 0.0,
		Reasoning:  "Failed to classify intent due to error",
	}
}

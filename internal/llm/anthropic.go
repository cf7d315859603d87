package llm

import (
	"context"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"

	"github.com/axlewave/leadgen-cli/internal/resilience"
)

const defaultAnthropicModel = "claude-haiku-4-5-20251001"

// AnthropicGenerator implements Generator using the official SDK.
type AnthropicGenerator struct {
	client      sdk.Client
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
	retry       resilience.RetryConfig
}

// NewAnthropic creates an Anthropic-backed Generator.
func NewAnthropic(cfg Config) *AnthropicGenerator {
	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2048
	}
	retry := resilience.DefaultRetryConfig()
	retry.OnRetry = resilience.RetryLogger("anthropic", "generate")
	return &AnthropicGenerator{
		client:      sdk.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       model,
		maxTokens:   int64(cfg.MaxTokens),
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout(),
		retry:       retry,
	}
}

func (g *AnthropicGenerator) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	params := sdk.MessageNewParams{
		Model:       sdk.Model(g.model),
		MaxTokens:   g.maxTokens,
		Temperature: sdk.Float(g.temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []sdk.TextBlockParam{{Text: systemPrompt}}
	}

	msg, err := resilience.DoVal(ctx, g.retry, func(ctx context.Context) (*sdk.Message, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()
		return g.client.Messages.New(callCtx, params)
	})
	if err != nil {
		return "", eris.Wrapf(ErrGeneration, "anthropic: %v", err)
	}

	var out strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	return out.String(), nil
}

func (g *AnthropicGenerator) GenerateStructured(ctx context.Context, prompt, systemPrompt string) (map[string]any, error) {
	return generateStructured(ctx, g, prompt, systemPrompt)
}

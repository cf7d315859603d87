package llm

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	openai "github.com/sashabaranov/go-openai"

	"github.com/axlewave/leadgen-cli/internal/resilience"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAIGenerator implements Generator via the OpenAI chat completions API.
// With a custom BaseURL it also serves OpenAI-compatible local runtimes
// such as Ollama.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	retry       resilience.RetryConfig
}

// NewOpenAI creates an OpenAI-compatible Generator.
func NewOpenAI(cfg Config) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2048
	}
	retry := resilience.DefaultRetryConfig()
	retry.OnRetry = resilience.RetryLogger("openai", "generate")
	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout(),
		retry:       retry,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   g.maxTokens,
		Temperature: float32(g.temperature),
	}

	resp, err := resilience.DoVal(ctx, g.retry, func(ctx context.Context) (openai.ChatCompletionResponse, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()
		return g.client.CreateChatCompletion(callCtx, req)
	})
	if err != nil {
		return "", eris.Wrapf(ErrGeneration, "openai: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", eris.Wrap(ErrGeneration, "openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *OpenAIGenerator) GenerateStructured(ctx context.Context, prompt, systemPrompt string) (map[string]any, error) {
	return generateStructured(ctx, g, prompt, systemPrompt)
}

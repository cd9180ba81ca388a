package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using the OpenAI Chat Completions
// API. The same client backs OpenRouter through its OpenAI-compatible
// endpoint.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	name   string
}

// NewOpenAIProvider creates a provider talking to api.openai.com.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
		name:   "openai",
	}
}

// NewOpenRouterProvider creates a provider talking to OpenRouter's
// OpenAI-compatible API.
func NewOpenRouterProvider(apiKey, model string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = "https://openrouter.ai/api/v1"
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		name:   "openrouter",
	}
}

func (p *OpenAIProvider) Name() string { return p.name }

func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2048
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: float32(req.Temperature),
	}
	if req.JSONMode {
		apiReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, err
	}

	out := &CompletionResponse{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		out.FinishReason = string(resp.Choices[0].FinishReason)
	}
	return out, nil
}

// OpenAIImageProvider implements ImageProvider using the OpenAI image
// generation API.
type OpenAIImageProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIImageProvider creates an image provider with the given
// default model (e.g. dall-e-3).
func NewOpenAIImageProvider(apiKey, model string) *OpenAIImageProvider {
	return &OpenAIImageProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *OpenAIImageProvider) Name() string { return "openai" }

func (p *OpenAIImageProvider) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}
	size := req.Size
	if size == "" {
		size = openai.CreateImageSize1024x1024
	}

	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt: req.Prompt,
		Model:  model,
		N:      1,
		Size:   size,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation: %w", err)
	}
	if len(resp.Data) == 0 {
		return &ImageResult{}, nil
	}
	return &ImageResult{URL: resp.Data[0].URL}, nil
}

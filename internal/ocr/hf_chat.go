package ocr

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// HFChatProvider asks a vision chat model on the Hugging Face router to
// transcribe the image. The router speaks the OpenAI chat completions API.
type HFChatProvider struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func NewHFChatProvider(cfg ProviderConfig, logger *slog.Logger) (*HFChatProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HFToken == "" {
		return nil, errors.New("hf-chat: HF_TOKEN is not set")
	}
	if cfg.HFChatModel == "" {
		cfg.HFChatModel = "google/gemma-3-27b-it:featherless-ai"
	}

	config := openai.DefaultConfig(cfg.HFToken)
	if cfg.HFBaseURL != "" {
		config.BaseURL = strings.TrimRight(cfg.HFBaseURL, "/")
	}
	config.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &HFChatProvider{
		client: openai.NewClientWithConfig(config),
		model:  routedModel(cfg.HFChatModel, cfg.HFProvider),
		logger: logger,
	}, nil
}

// routedModel accepts either "org/model:provider" or a bare model plus a
// separate provider name.
func routedModel(model, provider string) string {
	if provider == "" || strings.Contains(model, ":") {
		return model
	}
	return model + ":" + provider
}

func (p *HFChatProvider) Name() string { return ProviderHFChat }

func (p *HFChatProvider) Extract(ctx context.Context, image []byte, mimeType string) (Extraction, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: extractPrompt},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
				},
			},
		},
	})
	if err != nil {
		return Extraction{}, p.mapError(err)
	}
	if len(resp.Choices) == 0 {
		return Extraction{}, newProviderError(p.Name(), KindMalformed, errors.New("no choices in response"))
	}

	return Extraction{
		Text:       messageText(resp.Choices[0].Message),
		Confidence: entity.Confidence{State: entity.ConfidenceNotProvided},
	}, nil
}

// messageText reads content delivered either as a string or as typed parts.
func messageText(m openai.ChatCompletionMessage) string {
	if m.Content != "" {
		return strings.TrimSpace(m.Content)
	}
	for _, part := range m.MultiContent {
		if part.Type == openai.ChatMessagePartTypeText && part.Text != "" {
			return strings.TrimSpace(part.Text)
		}
	}
	return ""
}

func (p *HFChatProvider) mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: p.Name(), Kind: KindStatus, StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &ProviderError{Provider: p.Name(), Kind: KindStatus, StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return transportError(p.Name(), err)
}

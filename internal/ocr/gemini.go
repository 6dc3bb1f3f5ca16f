package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// GeminiProvider transcribes images with Gemini generateContent.
type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewGeminiProvider(cfg ProviderConfig, logger *slog.Logger) (*GeminiProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini: GEMINI_API_KEY is not set")
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-1.5-flash"
	}
	if cfg.GeminiBaseURL == "" {
		cfg.GeminiBaseURL = "https://generativelanguage.googleapis.com/v1"
	}
	return &GeminiProvider{
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.GeminiModel,
		baseURL: strings.TrimRight(cfg.GeminiBaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}, nil
}

func (p *GeminiProvider) Name() string { return ProviderGemini }

// Gemini REST API request/response structures
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *GeminiProvider) Extract(ctx context.Context, image []byte, mimeType string) (Extraction, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{Text: extractPrompt},
				{InlineData: &geminiInlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
			},
		}},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return Extraction{}, newProviderError(p.Name(), KindMalformed, fmt.Errorf("failed to marshal request: %w", err))
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return Extraction{}, newProviderError(p.Name(), KindNetwork, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return Extraction{}, transportError(p.Name(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Extraction{}, transportError(p.Name(), fmt.Errorf("failed to read response: %w", err))
	}

	var gr geminiResponse
	parseErr := json.Unmarshal(body, &gr)
	if resp.StatusCode != http.StatusOK {
		if parseErr == nil && gr.Error != nil {
			return Extraction{}, statusError(p.Name(), resp.StatusCode, gr.Error.Message)
		}
		return Extraction{}, statusError(p.Name(), resp.StatusCode, string(body))
	}
	if parseErr != nil {
		return Extraction{}, newProviderError(p.Name(), KindMalformed, fmt.Errorf("failed to parse response: %w", parseErr))
	}
	if len(gr.Candidates) == 0 {
		return Extraction{}, newProviderError(p.Name(), KindEmpty, errors.New("no candidates in response"))
	}

	var b strings.Builder
	for _, part := range gr.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return Extraction{
		Text:       strings.TrimSpace(b.String()),
		Confidence: entity.Confidence{State: entity.ConfidenceNotProvided},
	}, nil
}

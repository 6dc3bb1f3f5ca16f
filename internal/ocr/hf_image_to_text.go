package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// HFImageToTextProvider posts raw image bytes to a dedicated recognition
// model (TrOCR by default) on the Hugging Face inference endpoint.
type HFImageToTextProvider struct {
	endpoint string
	token    string
	client   *http.Client
	logger   *slog.Logger
}

func NewHFImageToTextProvider(cfg ProviderConfig, logger *slog.Logger) (*HFImageToTextProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HFToken == "" {
		return nil, errors.New("hf-image-to-text: HF_TOKEN is not set")
	}
	if cfg.HFImageToTextURL == "" {
		return nil, errors.New("hf-image-to-text: inference URL is not set")
	}
	if cfg.HFImageToTextModel == "" {
		cfg.HFImageToTextModel = "microsoft/trocr-base-printed"
	}
	return &HFImageToTextProvider{
		endpoint: strings.TrimRight(cfg.HFImageToTextURL, "/") + "/" + cfg.HFImageToTextModel,
		token:    cfg.HFToken,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}, nil
}

func (p *HFImageToTextProvider) Name() string { return ProviderHFImageToText }

type imageToTextItem struct {
	GeneratedText string `json:"generated_text"`
}

type imageToTextError struct {
	Error string `json:"error"`
}

func (p *HFImageToTextProvider) Extract(ctx context.Context, image []byte, mimeType string) (Extraction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(image))
	if err != nil {
		return Extraction{}, newProviderError(p.Name(), KindNetwork, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Extraction{}, transportError(p.Name(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Extraction{}, transportError(p.Name(), fmt.Errorf("failed to read response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr imageToTextError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return Extraction{}, statusError(p.Name(), resp.StatusCode, apiErr.Error)
		}
		return Extraction{}, statusError(p.Name(), resp.StatusCode, string(body))
	}

	text, err := parseGeneratedText(body)
	if err != nil {
		return Extraction{}, newProviderError(p.Name(), KindMalformed, err)
	}
	return Extraction{
		Text:       strings.TrimSpace(text),
		Confidence: entity.Confidence{State: entity.ConfidenceNotProvided},
	}, nil
}

// parseGeneratedText accepts both [{"generated_text": ...}] and a bare object.
func parseGeneratedText(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []imageToTextItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return "", fmt.Errorf("failed to parse response: %w", err)
		}
		if len(items) == 0 {
			return "", nil
		}
		return items[0].GeneratedText, nil
	}
	var item imageToTextItem
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return item.GeneratedText, nil
}

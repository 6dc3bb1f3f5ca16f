package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// serviceResponseSchema is the contract of the recognition service's /ocr
// endpoint. Extra fields (processed_image, ...) are allowed and ignored.
const serviceResponseSchema = `{
  "type": "object",
  "required": ["text"],
  "properties": {
    "text": {"type": "string"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "boxes": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {"type": "string"},
          "confidence": {"type": "number"},
          "coordinates": {
            "type": "array",
            "items": {"type": "array", "minItems": 2, "items": {"type": "number"}}
          }
        }
      }
    }
  }
}`

// ServiceProvider calls an HTTP recognition service that returns text,
// word boxes and a page confidence.
type ServiceProvider struct {
	url    string
	client *http.Client
	schema *jsonschema.Schema
	logger *slog.Logger
}

func NewServiceProvider(cfg ProviderConfig, logger *slog.Logger) (*ServiceProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ServiceURL == "" {
		return nil, errors.New("ocr-service: OCR_SERVICE_URL is not set")
	}
	schema, err := compileSchema(serviceResponseSchema)
	if err != nil {
		return nil, err
	}
	return &ServiceProvider{
		url:    strings.TrimRight(cfg.ServiceURL, "/") + "/ocr",
		client: &http.Client{Timeout: cfg.Timeout},
		schema: schema,
		logger: logger,
	}, nil
}

func compileSchema(src string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(src)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func (p *ServiceProvider) Name() string { return ProviderService }

type serviceBox struct {
	Text        string      `json:"text"`
	Coordinates [][]float64 `json:"coordinates"`
	Confidence  float64     `json:"confidence"`
}

type serviceResponse struct {
	Text       string       `json:"text"`
	Boxes      []serviceBox `json:"boxes"`
	Confidence *float64     `json:"confidence"`
}

func (p *ServiceProvider) Extract(ctx context.Context, image []byte, mimeType string) (Extraction, error) {
	body, contentType, err := multipartImage(image, mimeType)
	if err != nil {
		return Extraction{}, newProviderError(p.Name(), KindMalformed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, body)
	if err != nil {
		return Extraction{}, newProviderError(p.Name(), KindNetwork, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := p.client.Do(req)
	if err != nil {
		return Extraction{}, transportError(p.Name(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Extraction{}, transportError(p.Name(), fmt.Errorf("failed to read response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return Extraction{}, statusError(p.Name(), resp.StatusCode, string(raw))
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Extraction{}, newProviderError(p.Name(), KindMalformed, fmt.Errorf("unmarshal response: %w", err))
	}
	if err := p.schema.Validate(doc); err != nil {
		return Extraction{}, newProviderError(p.Name(), KindMalformed, fmt.Errorf("json does not match schema: %w", err))
	}
	var sr serviceResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return Extraction{}, newProviderError(p.Name(), KindMalformed, fmt.Errorf("unmarshal response: %w", err))
	}

	out := Extraction{
		Text:  sr.Text,
		Boxes: make([]entity.BoundingBox, 0, len(sr.Boxes)),
	}
	if sr.Confidence != nil {
		out.Confidence = entity.ProvidedConfidence(*sr.Confidence)
	}
	for _, b := range sr.Boxes {
		poly := make([]entity.Point, 0, len(b.Coordinates))
		for _, c := range b.Coordinates {
			poly = append(poly, entity.Point{X: c[0], Y: c[1]})
		}
		out.Boxes = append(out.Boxes, entity.BoundingBox{Text: b.Text, Polygon: poly, Confidence: b.Confidence})
	}
	return out, nil
}

func multipartImage(image []byte, mimeType string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="page.%s"`, extFor(mimeType)))
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(image); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func extFor(mimeType string) string {
	switch constants.NormalizeMime(mimeType) {
	case constants.MimeJPEG:
		return "jpg"
	case constants.MimeWebP:
		return "webp"
	case constants.MimeGIF:
		return "gif"
	case constants.MimeBMP:
		return "bmp"
	case constants.MimeTIFF:
		return "tiff"
	default:
		return "png"
	}
}

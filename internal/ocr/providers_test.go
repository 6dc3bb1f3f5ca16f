package ocr

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

func TestServiceProviderParsesBoxesAndConfidence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ocr", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		b, _ := io.ReadAll(file)
		assert.Equal(t, []byte("png-bytes"), b)
		assert.Equal(t, "page.png", header.Filename)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"text": "Hello",
			"boxes": []map[string]any{
				{"text": "Hello", "coordinates": [][]float64{{1, 2}, {10, 2}, {10, 8}, {1, 8}}, "confidence": 0.97},
			},
			"confidence":      0.9,
			"processed_image": "ignored",
		})
	}))
	defer srv.Close()

	p, err := NewServiceProvider(ProviderConfig{ServiceURL: srv.URL + "/", Timeout: time.Second}, nil)
	require.NoError(t, err)

	out, err := p.Extract(t.Context(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out.Text)
	assert.Equal(t, entity.ProvidedConfidence(0.9), out.Confidence)
	require.Len(t, out.Boxes, 1)
	assert.Equal(t, entity.Point{X: 10, Y: 8}, out.Boxes[0].Polygon[2])
	assert.InDelta(t, 0.97, out.Boxes[0].Confidence, 1e-9)
}

func TestServiceProviderMissingConfidence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":"no score"}`))
	}))
	defer srv.Close()

	p, err := NewServiceProvider(ProviderConfig{ServiceURL: srv.URL}, nil)
	require.NoError(t, err)
	out, err := p.Extract(t.Context(), []byte("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, entity.ConfidenceNotProvided, out.Confidence.State)
	assert.Empty(t, out.Boxes)
}

func TestServiceProviderFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   FailureKind
	}{
		{"status", http.StatusBadGateway, `upstream down`, KindStatus},
		{"not json", http.StatusOK, `<html>`, KindMalformed},
		{"schema mismatch", http.StatusOK, `{"text": 42}`, KindMalformed},
		{"bad coordinates", http.StatusOK, `{"text":"a","boxes":[{"coordinates":[[1]]}]}`, KindMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p, err := NewServiceProvider(ProviderConfig{ServiceURL: srv.URL}, nil)
			require.NoError(t, err)
			_, err = p.Extract(t.Context(), []byte("x"), "image/png")

			var pe *ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, ProviderService, pe.Provider)
			if tt.kind == KindStatus {
				assert.Equal(t, tt.status, pe.StatusCode)
			}
		})
	}
}

func TestServiceProviderTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	p, err := NewServiceProvider(ProviderConfig{ServiceURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
	require.NoError(t, err)
	_, err = p.Extract(t.Context(), []byte("x"), "image/png")

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindTimeout, pe.Kind)
}

func TestHFImageToTextProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/microsoft/trocr-base-printed", r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`[{"generated_text":"  TOTAL 12.50 \n"}]`))
	}))
	defer srv.Close()

	p, err := NewHFImageToTextProvider(ProviderConfig{HFToken: "hf_test", HFImageToTextURL: srv.URL}, nil)
	require.NoError(t, err)
	out, err := p.Extract(t.Context(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL 12.50", out.Text)
	assert.Equal(t, entity.ConfidenceNotProvided, out.Confidence.State)
}

func TestHFImageToTextProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Model is currently loading"}`))
	}))
	defer srv.Close()

	p, err := NewHFImageToTextProvider(ProviderConfig{HFToken: "hf_test", HFImageToTextURL: srv.URL, HFImageToTextModel: "m"}, nil)
	require.NoError(t, err)
	_, err = p.Extract(t.Context(), []byte("img"), "image/png")

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusServiceUnavailable, pe.StatusCode)
	assert.Contains(t, pe.Error(), "currently loading")
}

func TestParseGeneratedText(t *testing.T) {
	got, err := parseGeneratedText([]byte(`{"generated_text":"abc"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	got, err = parseGeneratedText([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseGeneratedText([]byte(`nope`))
	assert.Error(t, err)
}

func chatServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "google/gemma-3-27b-it:featherless-ai", req["model"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestHFChatProviderStringContent(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  Hello World \n"}}]}`)
	defer srv.Close()

	p, err := NewHFChatProvider(ProviderConfig{HFToken: "hf_test", HFBaseURL: srv.URL, HFChatModel: "google/gemma-3-27b-it", HFProvider: "featherless-ai"}, nil)
	require.NoError(t, err)
	out, err := p.Extract(t.Context(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", out.Text)
	assert.Equal(t, entity.ConfidenceNotProvided, out.Confidence.State)
}

func TestHFChatProviderPartsContent(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":[{"type":"text","text":"from parts"}]}}]}`)
	defer srv.Close()

	p, err := NewHFChatProvider(ProviderConfig{HFToken: "hf_test", HFBaseURL: srv.URL}, nil)
	require.NoError(t, err)
	out, err := p.Extract(t.Context(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "from parts", out.Text)
}

func TestHFChatProviderStatusError(t *testing.T) {
	srv := chatServer(t, http.StatusServiceUnavailable, `{"error":{"message":"provider overloaded","type":"server_error"}}`)
	defer srv.Close()

	p, err := NewHFChatProvider(ProviderConfig{HFToken: "hf_test", HFBaseURL: srv.URL}, nil)
	require.NoError(t, err)
	_, err = p.Extract(t.Context(), []byte("img"), "image/png")

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindStatus, pe.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, pe.StatusCode)
}

func TestGeminiProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 2)
		assert.Equal(t, "image/jpeg", req.Contents[0].Parts[1].InlineData.MimeType)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"வணக்கம் "},{"text":"உலகம்"}]}}]}`))
	}))
	defer srv.Close()

	p, err := NewGeminiProvider(ProviderConfig{GeminiAPIKey: "key", GeminiBaseURL: srv.URL}, nil)
	require.NoError(t, err)
	out, err := p.Extract(t.Context(), []byte("img"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "வணக்கம் உலகம்", out.Text)
}

func TestRoutedModel(t *testing.T) {
	assert.Equal(t, "org/m:prov", routedModel("org/m", "prov"))
	assert.Equal(t, "org/m:own", routedModel("org/m:own", "prov"))
	assert.Equal(t, "org/m", routedModel("org/m", ""))
}

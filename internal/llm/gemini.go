package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// GeminiName is the display name used in error replies
const GeminiName = "Gemini"

// GeminiConfig configures the Gemini REST client
type GeminiConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// DefaultGeminiConfig returns the public endpoint settings without a key
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		BaseURL: "https://generativelanguage.googleapis.com",
		Model:   "gemini-1.5-flash",
		Timeout: 60 * time.Second,
	}
}

// Gemini calls the generateContent endpoint of the Gemini API
type Gemini struct {
	cfg  GeminiConfig
	http *http.Client
}

// NewGemini creates a Gemini client, filling unset config from the defaults
func NewGemini(cfg GeminiConfig) *Gemini {
	def := DefaultGeminiConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &Gemini{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (g *Gemini) Name() string {
	return GeminiName
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate returns the text of the first candidate
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g.cfg.APIKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrNotConfigured)
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini encode: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.cfg.BaseURL, g.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", classify(err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if resp.StatusCode >= 400 {
			return "", &statusError{status: resp.StatusCode}
		}
		return "", fmt.Errorf("gemini decode: %w", classify(err))
	}
	if resp.StatusCode >= 400 {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("%d: %s", resp.StatusCode, out.Error.Message)
		}
		return "", &statusError{status: resp.StatusCode}
	}

	var text strings.Builder
	if len(out.Candidates) > 0 {
		for _, part := range out.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(text.String()), nil
}

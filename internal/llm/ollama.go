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

// OllamaName is the display name used in error replies
const OllamaName = "Ollama"

// OllamaConfig configures the local Ollama client
type OllamaConfig struct {
	URL         string
	Model       string
	Timeout     time.Duration
	Temperature float64
	NumCtx      int
}

// DefaultOllamaConfig returns the settings for a stock local install
func DefaultOllamaConfig() OllamaConfig {
	return OllamaConfig{
		URL:         "http://127.0.0.1:11434",
		Model:       "llama3",
		Timeout:     180 * time.Second,
		Temperature: 0.7,
		NumCtx:      4096,
	}
}

// Ollama calls the Ollama chat API
type Ollama struct {
	cfg  OllamaConfig
	http *http.Client
}

// NewOllama creates an Ollama client, filling unset config from the defaults
func NewOllama(cfg OllamaConfig) *Ollama {
	def := DefaultOllamaConfig()
	if cfg.URL == "" {
		cfg.URL = def.URL
	}
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = def.Temperature
	}
	if cfg.NumCtx == 0 {
		cfg.NumCtx = def.NumCtx
	}
	cfg.URL = strings.TrimSuffix(cfg.URL, "/")

	return &Ollama{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (o *Ollama) Name() string {
	return OllamaName
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumCtx      int     `json:"num_ctx"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

// Generate sends prompt as a single user message and returns the trimmed reply
func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaChatRequest{
		Model:    o.cfg.Model,
		Messages: []ollamaMessage{{Role: "user", Content: prompt}},
		Stream:   false,
		Options: ollamaOptions{
			Temperature: o.cfg.Temperature,
			NumCtx:      o.cfg.NumCtx,
		},
	})
	if err != nil {
		return "", fmt.Errorf("ollama encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.URL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.http.Do(req)
	if err != nil {
		return "", classify(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return "", &statusError{status: resp.StatusCode}
	}

	var out ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("ollama decode: %w", classify(err))
	}
	return strings.TrimSpace(out.Message.Content), nil
}

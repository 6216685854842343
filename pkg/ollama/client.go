package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/journey-explainer/pkg/config"
)

// Model is one entry of the Ollama model listing
type Model struct {
	Name       string `json:"name"`
	ModifiedAt string `json:"modified_at,omitempty"`
	Size       int64  `json:"size,omitempty"`
}

type RetryPauses struct {
	Status  time.Duration
	Timeout time.Duration
}

type Client struct {
	Host  string
	Model string

	ListTimeout     time.Duration
	GenerateTimeout time.Duration

	MaxAttempts int
	RetryPauses RetryPauses

	HTTPClient *http.Client

	newTimer func() backoff.Timer
}

func NewClient(ollamaConfig config.OllamaConfig) *Client {
	return &Client{
		Host:            ollamaConfig.Host,
		Model:           ollamaConfig.Model,
		ListTimeout:     ollamaConfig.ListTimeout,
		GenerateTimeout: ollamaConfig.GenerateTimeout,
		MaxAttempts:     2,
		RetryPauses: RetryPauses{
			Status:  1 * time.Second,
			Timeout: 2 * time.Second,
		},
		HTTPClient: &http.Client{},
	}
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.Host, "/") + path
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

// ListModels returns the models loaded in the Ollama instance
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	ctx, cancel := context.WithTimeout(ctx, c.ListTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/tags"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("ollama tags returned status %d", resp.StatusCode)
	}

	var tags struct {
		Models []Model `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("decode ollama tags: %w", err)
	}

	return tags.Models, nil
}

// IsLive is true only when Ollama answers and one of its models contains the configured model name
func (c *Client) IsLive(ctx context.Context) bool {
	models, err := c.ListModels(ctx)
	if err != nil {
		log.Warn().Err(err).Str("host", c.Host).Msg("Ollama not available")
		return false
	}

	for _, model := range models {
		if strings.Contains(model.Name, c.Model) {
			log.Debug().Str("model", model.Name).Msg("Ollama available")
			return true
		}
	}

	log.Warn().Str("model", c.Model).Int("models", len(models)).Msg("Model not found in Ollama")
	return false
}

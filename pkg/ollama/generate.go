package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/journey-explainer/pkg/util"
)

const (
	generateTemperature = 0.3
	generateMaxTokens   = 300
)

var errGenerateTimeout = errors.New("ollama generate timed out")

type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("ollama generate returned status %d: %s", e.StatusCode, e.Body)
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// generateBackOff allows a fixed number of attempts and picks the pause from the last failure
type generateBackOff struct {
	maxAttempts int
	attempts    int
	pauses      RetryPauses
	lastErr     error
}

func (b *generateBackOff) Reset() {
	b.attempts = 0
	b.lastErr = nil
}

func (b *generateBackOff) NextBackOff() time.Duration {
	if b.attempts >= b.maxAttempts {
		return backoff.Stop
	}

	if errors.Is(b.lastErr, errGenerateTimeout) {
		return b.pauses.Timeout
	}

	return b.pauses.Status
}

// Generate returns the model's text for prompt, or an empty string when generation is unavailable.
// Non-200 responses and timeouts are retried, any other failure gives up straight away.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	body, err := json.Marshal(generateRequest{
		Model:  c.Model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: generateTemperature,
			NumPredict:  generateMaxTokens,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode Ollama request")
		return ""
	}

	maxAttempts := c.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	policy := &generateBackOff{
		maxAttempts: maxAttempts,
		pauses:      c.RetryPauses,
	}

	operation := func() (string, error) {
		policy.attempts++

		text, err := c.generateOnce(ctx, body)
		policy.lastErr = err

		return text, err
	}

	notify := func(err error, pause time.Duration) {
		log.Warn().
			Err(err).
			Int("attempt", policy.attempts).
			Int("max_attempts", policy.maxAttempts).
			Str("pause", pause.String()).
			Msg("Ollama generation failed, retrying")
	}

	var timer backoff.Timer
	if c.newTimer != nil {
		timer = c.newTimer()
	}

	text, err := backoff.RetryNotifyWithTimerAndData(operation, backoff.WithContext(policy, ctx), notify, timer)
	if err != nil {
		log.Warn().Err(err).Int("attempts", policy.attempts).Msg("Ollama generation unavailable")
		return ""
	}

	return text
}

func (c *Client) generateOnce(ctx context.Context, body []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.GenerateTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/generate"), bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		if util.IsTimeout(err) {
			return "", fmt.Errorf("%w: %v", errGenerateTimeout, err)
		}
		return "", backoff.Permanent(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &statusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(responseBody))}
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if util.IsTimeout(err) {
			return "", fmt.Errorf("%w: %v", errGenerateTimeout, err)
		}
		return "", backoff.Permanent(fmt.Errorf("decode ollama response: %w", err))
	}

	return strings.TrimSpace(result.Response), nil
}

package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/journey-explainer/pkg/config"
)

// recordingTimer fires immediately and remembers every pause it was asked for
type recordingTimer struct {
	pauses []time.Duration
	c      chan time.Time
}

func (r *recordingTimer) Start(duration time.Duration) {
	r.pauses = append(r.pauses, duration)
	r.c = make(chan time.Time, 1)
	r.c <- time.Now()
}

func (r *recordingTimer) Stop() {}

func (r *recordingTimer) C() <-chan time.Time {
	return r.c
}

func testConfig(host string) config.OllamaConfig {
	return config.OllamaConfig{
		Host:            host,
		Model:           "llama2:7b",
		ListTimeout:     time.Second,
		GenerateTimeout: time.Second,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingTimer) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	timer := &recordingTimer{}

	client := &Client{
		Host:            server.URL,
		Model:           "llama2:7b",
		ListTimeout:     time.Second,
		GenerateTimeout: time.Second,
		MaxAttempts:     2,
		RetryPauses:     RetryPauses{Status: time.Second, Timeout: 2 * time.Second},
		HTTPClient:      server.Client(),
		newTimer:        func() backoff.Timer { return timer },
	}

	return client, timer
}

func TestIsLive(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected bool
	}{
		{name: "model present", status: http.StatusOK, body: `{"models":[{"name":"mistral:latest"},{"name":"llama2:7b"}]}`, expected: true},
		{name: "model name is a substring", status: http.StatusOK, body: `{"models":[{"name":"library/llama2:7b-chat"}]}`, expected: true},
		{name: "model absent", status: http.StatusOK, body: `{"models":[{"name":"mistral:latest"}]}`, expected: false},
		{name: "no models", status: http.StatusOK, body: `{"models":[]}`, expected: false},
		{name: "non-200", status: http.StatusInternalServerError, body: `{}`, expected: false},
		{name: "bad body", status: http.StatusOK, body: `not json`, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/tags", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			assert.Equal(t, tt.expected, client.IsLive(context.Background()))
		})
	}
}

func TestIsLiveUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	host := server.URL
	server.Close()

	client := NewClient(testConfig(host))
	assert.False(t, client.IsLive(context.Background()))
}

func TestListModels(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models":[{"name":"llama2:7b","size":3825819519}]}`))
	})

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "llama2:7b", models[0].Name)
}

func TestGenerateSendsFixedOptions(t *testing.T) {
	var request generateRequest

	client, timer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		w.Write([]byte(`{"response":"  A sensible route.  \n"}`))
	})

	text := client.Generate(context.Background(), "Explain this")

	assert.Equal(t, "A sensible route.", text)
	assert.Equal(t, "llama2:7b", request.Model)
	assert.Equal(t, "Explain this", request.Prompt)
	assert.False(t, request.Stream)
	assert.Equal(t, 0.3, request.Options.Temperature)
	assert.Equal(t, 300, request.Options.NumPredict)
	assert.Empty(t, timer.pauses)
}

func TestGenerateRetriesNonSuccessStatus(t *testing.T) {
	var attempts atomic.Int32

	client, timer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("model loading"))
	})

	text := client.Generate(context.Background(), "Explain this")

	assert.Equal(t, "", text)
	assert.Equal(t, int32(2), attempts.Load())
	assert.Equal(t, []time.Duration{time.Second}, timer.pauses)
}

func TestGenerateRecoversOnSecondAttempt(t *testing.T) {
	var attempts atomic.Int32

	client, timer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"response":"Second time lucky"}`))
	})

	assert.Equal(t, "Second time lucky", client.Generate(context.Background(), "Explain this"))
	assert.Equal(t, int32(2), attempts.Load())
	assert.Equal(t, []time.Duration{time.Second}, timer.pauses)
}

func TestGenerateRetriesTimeoutWithLongerPause(t *testing.T) {
	var attempts atomic.Int32

	client, timer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	client.GenerateTimeout = 50 * time.Millisecond

	assert.Equal(t, "", client.Generate(context.Background(), "Explain this"))
	assert.Equal(t, int32(2), attempts.Load())
	assert.Equal(t, []time.Duration{2 * time.Second}, timer.pauses)
}

func TestGenerateDoesNotRetryOtherErrors(t *testing.T) {
	var attempts atomic.Int32

	client, timer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte(`{"response":`))
	})

	assert.Equal(t, "", client.Generate(context.Background(), "Explain this"))
	assert.Equal(t, int32(1), attempts.Load())
	assert.Empty(t, timer.pauses)
}

func TestGenerateUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	host := server.URL
	server.Close()

	timer := &recordingTimer{}
	client := NewClient(testConfig(host))
	client.newTimer = func() backoff.Timer { return timer }

	assert.Equal(t, "", client.Generate(context.Background(), "Explain this"))
	assert.Empty(t, timer.pauses)
}

func TestGenerateEmptyResponseIsNotRetried(t *testing.T) {
	var attempts atomic.Int32

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte(`{"done":true}`))
	})

	assert.Equal(t, "", client.Generate(context.Background(), "Explain this"))
	assert.Equal(t, int32(1), attempts.Load())
}

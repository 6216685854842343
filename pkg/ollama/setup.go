package ollama

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/journey-explainer/pkg/config"
	"github.com/travigo/journey-explainer/pkg/redis_client"
)

// Service is what the rest of the application needs from the model host
type Service interface {
	IsLive(ctx context.Context) bool
	Generate(ctx context.Context, prompt string) string
	ListModels(ctx context.Context) ([]Model, error)
}

// Setup builds the model client, wrapping it in the liveness cache when one is configured
func Setup(ctx context.Context, cfg *config.Config) (Service, error) {
	client := NewClient(cfg.Ollama)

	if cfg.Ollama.LivenessTTL <= 0 {
		return client, nil
	}

	if !cfg.Redis.Enabled() {
		log.Warn().Msg("Liveness TTL set without a Redis address, liveness will be checked on every call")
		return client, nil
	}

	redisClient, err := redis_client.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect to redis for liveness cache: %w", err)
	}

	log.Info().
		Str("address", cfg.Redis.Address).
		Str("ttl", cfg.Ollama.LivenessTTL.String()).
		Msg("Ollama liveness cache enabled")

	return NewCachedClient(client, redisClient, cfg.Ollama.LivenessTTL), nil
}

package planner

import (
	"context"

	"github.com/travigo/journey-explainer/pkg/config"
	"github.com/travigo/journey-explainer/pkg/dataaggregator/global"
	"github.com/travigo/journey-explainer/pkg/explainer"
	"github.com/travigo/journey-explainer/pkg/ollama"
)

// Setup wires the pipeline from configuration and returns the model service alongside it
func Setup(ctx context.Context, cfg *config.Config) (*Planner, ollama.Service, error) {
	model, err := ollama.Setup(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return &Planner{
		Aggregator: global.Setup(cfg),
		Explainer:  &explainer.Explainer{Model: model},
	}, model, nil
}

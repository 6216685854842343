package global

import (
	"github.com/travigo/journey-explainer/pkg/config"
	"github.com/travigo/journey-explainer/pkg/dataaggregator"
	"github.com/travigo/journey-explainer/pkg/dataaggregator/source/tfl"
)

func Setup(cfg *config.Config) *dataaggregator.Aggregator {
	aggregator := &dataaggregator.Aggregator{}

	aggregator.RegisterSource(tfl.NewSource(cfg.TfL))

	return aggregator
}

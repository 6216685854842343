package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/journey-explainer/pkg/ctdf"
	"github.com/travigo/journey-explainer/pkg/dataaggregator"
	"github.com/travigo/journey-explainer/pkg/dataaggregator/query"
	"github.com/travigo/journey-explainer/pkg/explainer"
)

type Planner struct {
	Aggregator *dataaggregator.Aggregator
	Explainer  *explainer.Explainer
}

type JourneyResults struct {
	From string
	To   string

	FromStation *ctdf.Station
	ToStation   *ctdf.Station

	Journeys []ctdf.JourneyPlan
}

type ExplainedJourney struct {
	Index       int
	Journey     ctdf.JourneyPlan
	Explanation explainer.Explanation

	Results *JourneyResults
}

func validateStations(from string, to string) error {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return validationError("Both 'from_' and 'to' parameters are required")
	}

	return nil
}

// PlanJourney resolves both names, one after the other, then fetches the journeys between them
func (p *Planner) PlanJourney(ctx context.Context, from string, to string) (*JourneyResults, error) {
	if err := validateStations(from, to); err != nil {
		return nil, err
	}

	fromStation, err := dataaggregator.Lookup[*ctdf.Station](ctx, p.Aggregator, query.StationSearch{Name: from})
	if err != nil {
		return nil, err
	}

	toStation, err := dataaggregator.Lookup[*ctdf.Station](ctx, p.Aggregator, query.StationSearch{Name: to})
	if err != nil {
		return nil, err
	}

	journeys, err := dataaggregator.Lookup[[]ctdf.JourneyPlan](ctx, p.Aggregator, query.JourneyPlan{
		OriginIdentifier:      fromStation.PrimaryIdentifier,
		DestinationIdentifier: toStation.PrimaryIdentifier,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("from", fromStation.PrimaryIdentifier).
		Str("to", toStation.PrimaryIdentifier).
		Int("journeys", len(journeys)).
		Msg("Planned journey")

	return &JourneyResults{
		From:        from,
		To:          to,
		FromStation: fromStation,
		ToStation:   toStation,
		Journeys:    journeys,
	}, nil
}

// ExplainJourney validates every input it can before fetching, then checks the index against what came back
func (p *Planner) ExplainJourney(ctx context.Context, from string, to string, index int) (*ExplainedJourney, error) {
	if err := validateStations(from, to); err != nil {
		return nil, err
	}

	if index < 0 {
		return nil, validationError("Index must be 0 or greater")
	}

	results, err := p.PlanJourney(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if index >= len(results.Journeys) {
		return nil, validationError(fmt.Sprintf("Journey index %d out of range. Only %d available.", index, len(results.Journeys)))
	}

	journey := results.Journeys[index]
	explanation := p.Explainer.Explain(ctx, &journey, from, to)

	return &ExplainedJourney{
		Index:       index,
		Journey:     journey,
		Explanation: explanation,
		Results:     results,
	}, nil
}

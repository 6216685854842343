package tfl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/travigo/journey-explainer/pkg/ctdf"
	"github.com/travigo/journey-explainer/pkg/dataaggregator/query"
	"github.com/travigo/journey-explainer/pkg/dataaggregator/source"
)

// JourneyPlanQuery fetches the ranked journeys between two resolved identifiers.
// The upstream ranking is kept and journeys without legs are dropped.
func (s *Source) JourneyPlanQuery(ctx context.Context, q query.JourneyPlan) ([]ctdf.JourneyPlan, error) {
	params := url.Values{}
	params.Set("mode", Modes)
	params.Set("timeIs", "departing")
	params.Set("nationalSearch", "true")

	path := fmt.Sprintf(
		"/Journey/JourneyResults/%s/to/%s",
		url.PathEscape(q.OriginIdentifier),
		url.PathEscape(q.DestinationIdentifier),
	)

	var journeyResults journeyResultsResponse
	if err := s.getJSON(ctx, s.JourneyTimeout, path, params, &journeyResults); err != nil {
		return nil, err
	}

	journeyPlans := []ctdf.JourneyPlan{}

	for _, journey := range journeyResults.Journeys {
		if len(journey.Legs) == 0 {
			continue
		}

		journeyPlan := ctdf.JourneyPlan{
			Duration:    journey.Duration,
			StartTime:   journey.StartDateTime,
			ArrivalTime: journey.ArrivalDateTime,
		}

		for _, leg := range journey.Legs {
			duration := leg.Duration
			if duration < 0 {
				duration = 0
			}

			journeyPlan.Legs = append(journeyPlan.Legs, &ctdf.JourneyPlanLeg{
				Mode:             leg.Mode.Name,
				Departure:        leg.DeparturePoint.CommonName,
				Arrival:          leg.ArrivalPoint.CommonName,
				Duration:         duration,
				DepartureStopRef: leg.DeparturePoint.NaptanID,
				ArrivalStopRef:   leg.ArrivalPoint.NaptanID,
			})
		}

		journeyPlans = append(journeyPlans, journeyPlan)
	}

	if len(journeyPlans) == 0 {
		return nil, source.ErrNoJourneys
	}

	log.Debug().
		Str("origin", q.OriginIdentifier).
		Str("destination", q.DestinationIdentifier).
		Int("journeys", len(journeyPlans)).
		Msg("Fetched TfL journey plans")

	return journeyPlans, nil
}

package tfl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/journey-explainer/pkg/ctdf"
	"github.com/travigo/journey-explainer/pkg/dataaggregator/query"
	"github.com/travigo/journey-explainer/pkg/dataaggregator/source"
)

const maxSearchResults = 5

// StationSearchQuery resolves a free text name to the first match TfL ranks for it.
// Every failure is reported as source.ErrStationNotFound.
func (s *Source) StationSearchQuery(ctx context.Context, q query.StationSearch) (*ctdf.Station, error) {
	name := strings.TrimSpace(q.Name)
	if name == "" {
		return nil, source.ErrStationNotFound
	}

	params := url.Values{}
	params.Set("modes", Modes)
	params.Set("maxResults", fmt.Sprint(maxSearchResults))

	var searchResponse stopPointSearchResponse
	err := s.getJSON(ctx, s.SearchTimeout, "/StopPoint/Search/"+url.PathEscape(name), params, &searchResponse)
	if err != nil {
		log.Error().Err(err).Str("station", name).Msg("Error searching for station")
		return nil, fmt.Errorf("%w: %s", source.ErrStationNotFound, name)
	}

	if len(searchResponse.Matches) == 0 {
		log.Debug().Str("station", name).Msg("TfL search returned no matches")
		return nil, fmt.Errorf("%w: %s", source.ErrStationNotFound, name)
	}

	bestMatch := searchResponse.Matches[0]

	station := &ctdf.Station{
		PrimaryIdentifier:    bestMatch.IcsID,
		StopID:               bestMatch.ID,
		InterchangeClusterID: bestMatch.IcsID,
		Name:                 bestMatch.Name,
		Modes:                bestMatch.Modes,
	}

	// The interchange cluster groups every platform under one planning node so gives wider results
	if station.PrimaryIdentifier == "" {
		station.PrimaryIdentifier = bestMatch.ID
	}

	if station.PrimaryIdentifier == "" {
		return nil, fmt.Errorf("%w: %s", source.ErrStationNotFound, name)
	}

	log.Debug().
		Str("station", name).
		Str("identifier", station.PrimaryIdentifier).
		Str("name", station.Name).
		Msg("Resolved station")

	return station, nil
}

package tfl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/journey-explainer/pkg/config"
	"github.com/travigo/journey-explainer/pkg/ctdf"
	"github.com/travigo/journey-explainer/pkg/dataaggregator/query"
	"github.com/travigo/journey-explainer/pkg/dataaggregator/source"
	"github.com/travigo/journey-explainer/pkg/util"
)

// Modes is the candidate mode filter used for both station search and journey planning
const Modes = "tube,dlr,overground,tram,national-rail,bus"

const userAgent = "journey-explainer/1.0"

type Source struct {
	BaseURL string
	AppID   string
	AppKey  string

	SearchTimeout  time.Duration
	JourneyTimeout time.Duration

	HTTPClient *http.Client
}

func NewSource(tflConfig config.TfLConfig) *Source {
	return &Source{
		BaseURL:        tflConfig.BaseURL,
		AppID:          tflConfig.AppID,
		AppKey:         tflConfig.AppKey,
		SearchTimeout:  tflConfig.SearchTimeout,
		JourneyTimeout: tflConfig.JourneyTimeout,
		HTTPClient:     &http.Client{},
	}
}

func (s *Source) GetName() string {
	return "Transport for London API"
}

func (s *Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.Station{}),
		reflect.TypeOf([]ctdf.JourneyPlan{}),
	}
}

func (s *Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.StationSearch:
		station, err := s.StationSearchQuery(ctx, q)
		if err != nil {
			return nil, err
		}
		return station, nil
	case query.JourneyPlan:
		journeyPlans, err := s.JourneyPlanQuery(ctx, q)
		if err != nil {
			return nil, err
		}
		return journeyPlans, nil
	default:
		return nil, source.UnsupportedSourceError
	}
}

// getJSON performs one GET against the TfL API and decodes a 200 response into out
func (s *Source) getJSON(ctx context.Context, timeout time.Duration, path string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if s.AppID != "" && s.AppKey != "" {
		params.Set("app_id", s.AppID)
		params.Set("app_key", s.AppKey)
	}

	requestURL := fmt.Sprintf("%s%s?%s", strings.TrimRight(s.BaseURL, "/"), path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent) // TfL is protected by cloudflare and it gets angry when no user agent is set

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		if util.IsTimeout(err) {
			return fmt.Errorf("%w: %s", source.ErrUpstreamTimeout, path)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)

		log.Error().Int("status", resp.StatusCode).Str("path", path).Msg("TfL API error")
		return &source.UpstreamError{Source: "TfL API", StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if util.IsTimeout(err) {
			return fmt.Errorf("%w: %s", source.ErrUpstreamTimeout, path)
		}
		return fmt.Errorf("decode TfL response for %s: %w", path, err)
	}

	return nil
}

package source

import (
	"errors"
	"fmt"
)

var UnsupportedSourceError = errors.New("unsupported source for lookup query")

var (
	ErrStationNotFound     = errors.New("station could not be resolved")
	ErrNoJourneys          = errors.New("no journeys found")
	ErrUpstreamTimeout     = errors.New("upstream request timed out")
	ErrUpstreamUnavailable = errors.New("upstream returned a non-success status")
)

// UpstreamError carries the status code of a failed upstream call
type UpstreamError struct {
	Source     string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Source, e.StatusCode)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

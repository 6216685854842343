package ctdf

import "github.com/travigo/journey-explainer/pkg/util"

// JourneyPlan is one ranked route option between two stations
type JourneyPlan struct {
	Duration    int               `groups:"basic" json:"duration"`
	StartTime   string            `groups:"basic" json:"startTime"`
	ArrivalTime string            `groups:"basic" json:"arrivalTime"`
	Legs        []*JourneyPlanLeg `groups:"basic" json:"legs"`
}

// JourneyPlanLeg is one uninterrupted segment of a journey on a single mode
type JourneyPlanLeg struct {
	Mode      string `groups:"basic" json:"mode"`
	Departure string `groups:"basic" json:"departure"`
	Arrival   string `groups:"basic" json:"arrival"`
	Duration  int    `groups:"basic" json:"duration"`

	DepartureStopRef string `groups:"internal" json:"departureStopRef,omitempty"`
	ArrivalStopRef   string `groups:"internal" json:"arrivalStopRef,omitempty"`
}

// Changes is the number of interchanges, legs are never empty for a valid plan
func (j *JourneyPlan) Changes() int {
	if len(j.Legs) == 0 {
		return 0
	}

	return len(j.Legs) - 1
}

// Modes returns the distinct transport modes used, in sorted order
func (j *JourneyPlan) Modes() []string {
	modes := make([]string, 0, len(j.Legs))
	for _, leg := range j.Legs {
		modes = append(modes, leg.Mode)
	}

	sorted := util.SortedSet(modes)
	if sorted == nil {
		return []string{}
	}

	return sorted
}

package tfl

type stopPointSearchResponse struct {
	Query   string           `json:"query"`
	Total   int              `json:"total"`
	Matches []stopPointMatch `json:"matches"`
}

type stopPointMatch struct {
	ID    string   `json:"id"`
	IcsID string   `json:"icsId"`
	Name  string   `json:"name"`
	Modes []string `json:"modes"`
}

type journeyResultsResponse struct {
	Journeys []journeyResult `json:"journeys"`
}

type journeyResult struct {
	StartDateTime   string       `json:"startDateTime"`
	ArrivalDateTime string       `json:"arrivalDateTime"`
	Duration        int          `json:"duration"`
	Legs            []journeyLeg `json:"legs"`
}

type journeyLeg struct {
	Duration int `json:"duration"`

	Mode struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"mode"`

	DeparturePoint journeyPoint `json:"departurePoint"`
	ArrivalPoint   journeyPoint `json:"arrivalPoint"`
}

type journeyPoint struct {
	CommonName string `json:"commonName"`
	NaptanID   string `json:"naptanId"`
}

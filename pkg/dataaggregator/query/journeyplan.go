package query

type JourneyPlan struct {
	OriginIdentifier      string
	DestinationIdentifier string
}

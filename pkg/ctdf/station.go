package ctdf

// Station is the outcome of resolving a free text place name
type Station struct {
	// PrimaryIdentifier is what journey planning should use: the interchange cluster when known
	PrimaryIdentifier string

	StopID               string
	InterchangeClusterID string

	Name  string
	Modes []string
}

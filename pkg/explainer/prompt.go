package explainer

import (
	"fmt"
	"strings"

	"github.com/travigo/journey-explainer/pkg/ctdf"
)

const promptTemplate = `You are a London transport expert. Analyze this journey plan:

%s

Provide a concise analysis with:
1. Is this an efficient route? (consider time and changes)
2. Any potential issues or tricky interchanges?
3. One practical tip for this specific journey
4. Alternative options to consider

Keep response under 200 words. Be specific about London transport.`

// Prompt asks the model for an analysis of the journey written out as prose
func Prompt(journey *ctdf.JourneyPlan, fromLabel string, toLabel string) string {
	return fmt.Sprintf(promptTemplate, journeyText(journey, fromLabel, toLabel))
}

func journeyText(journey *ctdf.JourneyPlan, fromLabel string, toLabel string) string {
	var text strings.Builder

	text.WriteString("JOURNEY PLAN:\n")
	fmt.Fprintf(&text, "- From: %s\n", fromLabel)
	fmt.Fprintf(&text, "- To: %s\n", toLabel)
	fmt.Fprintf(&text, "- Total duration: %d minutes\n", journey.Duration)
	fmt.Fprintf(&text, "- Departure: %s\n", valueOrNotAvailable(journey.StartTime))
	fmt.Fprintf(&text, "- Arrival: %s\n", valueOrNotAvailable(journey.ArrivalTime))
	fmt.Fprintf(&text, "- Number of changes: %d\n", journey.Changes())
	text.WriteString("\nROUTE DETAILS:")

	for i, leg := range journey.Legs {
		fmt.Fprintf(&text, "\n%d. Take %s from %s to %s", i+1, leg.Mode, leg.Departure, leg.Arrival)
		text.WriteString(durationSuffix(leg))
	}

	return strings.TrimSpace(text.String())
}

func valueOrNotAvailable(value string) string {
	if value == "" {
		return "N/A"
	}

	return value
}

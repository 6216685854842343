package explainer

import (
	"fmt"
	"strings"

	"github.com/travigo/journey-explainer/pkg/ctdf"
)

var generalTips = []string{
	"Check TfL service status before traveling",
	"Allow extra time during peak hours (7-9 AM, 5-7 PM)",
	"Use contactless payment or Oyster card for best fares",
}

// Summary is the deterministic part of every explanation
func Summary(journey *ctdf.JourneyPlan, fromLabel string, toLabel string) string {
	var summary strings.Builder

	summary.WriteString("## Journey Summary\n\n")
	fmt.Fprintf(&summary, "**Route:** %s → %s\n", fromLabel, toLabel)
	fmt.Fprintf(&summary, "**Total time:** %d minutes\n", journey.Duration)
	fmt.Fprintf(&summary, "**Changes required:** %d\n", journey.Changes())
	fmt.Fprintf(&summary, "**Transport modes:** %s\n", strings.Join(journey.Modes(), ", "))
	summary.WriteString("\n**Step-by-step route:**\n")

	for i, leg := range journey.Legs {
		fmt.Fprintf(&summary, "\n%d. **%s** from %s to %s", i+1, leg.Mode, leg.Departure, leg.Arrival)
		summary.WriteString(durationSuffix(leg))
	}

	summary.WriteString("\n\n**General tips:**")
	for _, tip := range generalTips {
		summary.WriteString("\n• " + tip)
	}

	return summary.String()
}

// durationSuffix is only shown for legs lasting at least a minute
func durationSuffix(leg *ctdf.JourneyPlanLeg) string {
	if leg.Duration > 0 {
		return fmt.Sprintf(" (%d minutes)", leg.Duration)
	}

	return ""
}

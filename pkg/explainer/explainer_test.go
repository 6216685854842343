package explainer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/journey-explainer/pkg/ctdf"
)

type fakeModel struct {
	live     bool
	response string
	panics   bool

	prompts []string
}

func (f *fakeModel) IsLive(ctx context.Context) bool {
	return f.live
}

func (f *fakeModel) Generate(ctx context.Context, prompt string) string {
	f.prompts = append(f.prompts, prompt)
	if f.panics {
		panic("model exploded")
	}
	return f.response
}

func paddingtonToOxfordCircus() *ctdf.JourneyPlan {
	return &ctdf.JourneyPlan{
		Duration:    21,
		StartTime:   "2025-03-01T09:00:00",
		ArrivalTime: "2025-03-01T09:21:00",
		Legs: []*ctdf.JourneyPlanLeg{
			{Mode: "walking", Departure: "Paddington", Arrival: "Paddington Underground Station", Duration: 0},
			{Mode: "tube", Departure: "Paddington Underground Station", Arrival: "Oxford Circus Underground Station", Duration: 18},
			{Mode: "walking", Departure: "Oxford Circus Underground Station", Arrival: "Oxford Circus", Duration: 1},
		},
	}
}

func TestSummary(t *testing.T) {
	expected := "## Journey Summary\n\n" +
		"**Route:** Paddington → Oxford Circus\n" +
		"**Total time:** 21 minutes\n" +
		"**Changes required:** 2\n" +
		"**Transport modes:** tube, walking\n" +
		"\n**Step-by-step route:**\n" +
		"\n1. **walking** from Paddington to Paddington Underground Station" +
		"\n2. **tube** from Paddington Underground Station to Oxford Circus Underground Station (18 minutes)" +
		"\n3. **walking** from Oxford Circus Underground Station to Oxford Circus (1 minutes)" +
		"\n\n**General tips:**" +
		"\n• Check TfL service status before traveling" +
		"\n• Allow extra time during peak hours (7-9 AM, 5-7 PM)" +
		"\n• Use contactless payment or Oyster card for best fares"

	assert.Equal(t, expected, Summary(paddingtonToOxfordCircus(), "Paddington", "Oxford Circus"))
}

func TestSummaryIsReproducible(t *testing.T) {
	journey := paddingtonToOxfordCircus()

	first := Summary(journey, "Paddington", "Oxford Circus")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Summary(journey, "Paddington", "Oxford Circus"))
	}
}

func TestDurationThreshold(t *testing.T) {
	assert.Equal(t, "", durationSuffix(&ctdf.JourneyPlanLeg{Duration: 0}))
	assert.Equal(t, " (1 minutes)", durationSuffix(&ctdf.JourneyPlanLeg{Duration: 1}))
	assert.Equal(t, " (45 minutes)", durationSuffix(&ctdf.JourneyPlanLeg{Duration: 45}))
}

func TestPrompt(t *testing.T) {
	prompt := Prompt(paddingtonToOxfordCircus(), "Paddington", "Oxford Circus")

	assert.True(t, strings.HasPrefix(prompt, "You are a London transport expert."))
	assert.Contains(t, prompt, "- From: Paddington\n- To: Oxford Circus\n- Total duration: 21 minutes")
	assert.Contains(t, prompt, "- Departure: 2025-03-01T09:00:00")
	assert.Contains(t, prompt, "- Number of changes: 2\n\nROUTE DETAILS:\n1. Take walking from Paddington to Paddington Underground Station\n")
	assert.Contains(t, prompt, "2. Take tube from Paddington Underground Station to Oxford Circus Underground Station (18 minutes)")
	assert.Contains(t, prompt, "1. Is this an efficient route?")
	assert.Contains(t, prompt, "4. Alternative options to consider")
	assert.Contains(t, prompt, "Keep response under 200 words.")
}

func TestPromptMissingTimes(t *testing.T) {
	journey := paddingtonToOxfordCircus()
	journey.StartTime = ""

	assert.Contains(t, Prompt(journey, "A", "B"), "- Departure: N/A")
}

func TestExplainWithModel(t *testing.T) {
	model := &fakeModel{live: true, response: "An efficient route."}
	explainer := Explainer{Model: model}
	journey := paddingtonToOxfordCircus()

	explanation := explainer.Explain(context.Background(), journey, "Paddington", "Oxford Circus")

	assert.True(t, explanation.ModelUsed)
	assert.True(t, strings.HasPrefix(explanation.Text, Summary(journey, "Paddington", "Oxford Circus")))
	assert.Contains(t, explanation.Text, "\n---\n")
	assert.Contains(t, explanation.Text, "AI Analysis")
	assert.True(t, strings.HasSuffix(explanation.Text, "An efficient route."))
	assert.NotContains(t, explanation.Text, "AI analysis is currently unavailable")
	assert.Len(t, model.prompts, 1)
}

func TestExplainFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		model ModelClient
	}{
		{name: "no model", model: nil},
		{name: "not live", model: &fakeModel{live: false, response: "unused"}},
		{name: "empty generation", model: &fakeModel{live: true, response: ""}},
		{name: "panicking model", model: &fakeModel{live: true, panics: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explainer := Explainer{Model: tt.model}
			journey := paddingtonToOxfordCircus()

			explanation := explainer.Explain(context.Background(), journey, "Paddington", "Oxford Circus")

			assert.False(t, explanation.ModelUsed)
			assert.Equal(t, Summary(journey, "Paddington", "Oxford Circus")+"\n\n*Note: AI analysis is currently unavailable.*", explanation.Text)
			assert.NotContains(t, explanation.Text, "---")
			assert.NotContains(t, explanation.Text, "AI Analysis")
		})
	}
}

func TestExplainDoesNotGenerateWhenNotLive(t *testing.T) {
	model := &fakeModel{live: false}
	explainer := Explainer{Model: model}

	explainer.Explain(context.Background(), paddingtonToOxfordCircus(), "A", "B")

	assert.Empty(t, model.prompts)
}

package explainer

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/panics"
	"github.com/travigo/journey-explainer/pkg/ctdf"
)

const (
	modelDivider    = "\n\n---\n\n**🤖 AI Analysis:**\n\n"
	unavailableNote = "\n\n*Note: AI analysis is currently unavailable.*"
)

// ModelClient is the part of the model host the explainer depends on
type ModelClient interface {
	IsLive(ctx context.Context) bool
	Generate(ctx context.Context, prompt string) string
}

type Explanation struct {
	Text      string
	ModelUsed bool
}

type Explainer struct {
	Model ModelClient
}

// Explain always returns the deterministic summary, followed by either the model's analysis or a note that it is unavailable
func (e *Explainer) Explain(ctx context.Context, journey *ctdf.JourneyPlan, fromLabel string, toLabel string) Explanation {
	summary := Summary(journey, fromLabel, toLabel)

	if analysis := e.analyse(ctx, journey, fromLabel, toLabel); analysis != "" {
		return Explanation{
			Text:      summary + modelDivider + analysis,
			ModelUsed: true,
		}
	}

	return Explanation{
		Text:      summary + unavailableNote,
		ModelUsed: false,
	}
}

func (e *Explainer) analyse(ctx context.Context, journey *ctdf.JourneyPlan, fromLabel string, toLabel string) string {
	if e.Model == nil || !e.Model.IsLive(ctx) {
		return ""
	}

	var analysis string
	var catcher panics.Catcher

	catcher.Try(func() {
		analysis = e.Model.Generate(ctx, Prompt(journey, fromLabel, toLabel))
	})

	if recovered := catcher.Recovered(); recovered != nil {
		log.Error().Err(recovered.AsError()).Msg("AI generation failed")
		return ""
	}

	return analysis
}

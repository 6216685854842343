package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/journey-explainer/pkg/config"
	"github.com/travigo/journey-explainer/pkg/planner"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey planning web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8000",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					journeyPlanner, model, err := planner.Setup(c.Context, cfg)
					if err != nil {
						return err
					}

					if model.IsLive(c.Context) {
						log.Info().Str("host", cfg.Ollama.Host).Str("model", cfg.Ollama.Model).Msg("Ollama connected")
					} else {
						log.Warn().Str("host", cfg.Ollama.Host).Msg("Ollama not available, explanations will use the fallback summary")
					}

					if cfg.TfL.HasCredentials() {
						log.Info().Msg("TfL API credentials configured")
					} else {
						log.Warn().Msg("No TfL API credentials. Using public access (rate limited)")
					}

					log.Info().Str("listen", c.String("listen")).Msg("Starting web API")

					return SetupServer(c.String("listen"), cfg, journeyPlanner, model)
				},
			},
		},
	}
}

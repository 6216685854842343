package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/journey-explainer/pkg/api"
	"github.com/travigo/journey-explainer/pkg/planner"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is normal outside local development
	_ = godotenv.Load()

	if os.Getenv("EXPLAINER_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("EXPLAINER_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "journey-explainer",
		Description: "London journey planning with plain language explanations",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML configuration file",
				EnvVars: []string{"EXPLAINER_CONFIG"},
			},
		},

		Commands: []*cli.Command{
			api.RegisterCLI(),
			planner.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

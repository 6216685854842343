package planner

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/travigo/journey-explainer/pkg/config"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Plan a journey once and print the results",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "origin place name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "destination place name",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "explain",
				Usage: "explain one of the journeys instead of listing them",
			},
			&cli.IntFlag{
				Name:  "index",
				Value: 0,
				Usage: "journey to explain",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			journeyPlanner, _, err := Setup(c.Context, cfg)
			if err != nil {
				return err
			}

			if c.Bool("explain") {
				explained, err := journeyPlanner.ExplainJourney(c.Context, c.String("from"), c.String("to"), c.Int("index"))
				if err != nil {
					return err
				}

				fmt.Fprintln(c.App.Writer, explained.Explanation.Text)
				return nil
			}

			results, err := journeyPlanner.PlanJourney(c.Context, c.String("from"), c.String("to"))
			if err != nil {
				return err
			}

			pretty.Fprintf(c.App.Writer, "%# v\n", results.Journeys)

			return nil
		},
	}
}

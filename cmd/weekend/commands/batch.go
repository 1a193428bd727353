package commands

import (
	"github.com/beetlebot/weekend-cli/internal/core"
	"github.com/beetlebot/weekend-cli/internal/logging"
	"github.com/beetlebot/weekend-cli/internal/output"
	"github.com/spf13/cobra"
)

func BatchCmd() *cobra.Command {
	var (
		dates []string
		top   int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate query URLs for catalog destinations across dates",
		Example: `  weekend batch
  weekend batch --top 3 --origin 广州南
  weekend batch --dates 2026-02-27,2026-02-28`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			if len(dates) == 0 {
				now, err := today(cmd)
				if err != nil {
					return err
				}
				w := core.NextWeekend(now)
				dates = []string{w.Friday, w.Saturday}
			}

			dests := e.catalog.Destinations
			if top > 0 {
				ranked := core.GenerateRecommendations(dests, core.Preferences{}, top)
				dests = make([]core.Destination, len(ranked))
				for i, r := range ranked {
					dests[i] = r.Destination
				}
			}

			queries := core.GenerateBatchQueries(dests, e.cfg.Origin, dates)
			logging.Log.Debugf("batch: %d queries from %s", len(queries), e.cfg.Origin.Name)
			return output.JSON(queries)
		},
	}

	cmd.Flags().StringSliceVar(&dates, "dates", nil, "Comma-separated dates (default: next Friday and Saturday)")
	cmd.Flags().IntVar(&top, "top", 0, "Only the N best-scored destinations (0 = all)")
	cmd.Flags().String("today", "", "Pretend today is this date YYYY-MM-DD")

	return cmd
}

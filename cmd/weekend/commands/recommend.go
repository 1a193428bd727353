package commands

import (
	"strings"

	"github.com/beetlebot/weekend-cli/internal/core"
	"github.com/beetlebot/weekend-cli/internal/logging"
	"github.com/beetlebot/weekend-cli/internal/output"
	"github.com/spf13/cobra"
)

type RecommendResult struct {
	Intent          *core.Intent             `json:"intent,omitempty"`
	Origin          core.Station             `json:"origin"`
	Weekend         core.WeekendDates        `json:"weekend"`
	Match           *core.ScoredDestination  `json:"match,omitempty"`
	Recommendations []core.ScoredDestination `json:"recommendations"`
}

func RecommendCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   `recommend ["<user input>"]`,
		Short: "Rank catalog destinations for the coming weekend",
		Example: `  weekend recommend
  weekend recommend "下周末推荐个地方" --limit 3
  weekend recommend "我想去厦门玩"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			e.cfg.WithLimit(limit)

			now, err := today(cmd)
			if err != nil {
				return err
			}

			res := RecommendResult{Origin: e.cfg.Origin}
			var prefs core.Preferences

			if text := strings.Join(args, " "); text != "" {
				intent := core.ParseIntent(text)
				logging.Log.Debugf("intent: %+v", intent)
				res.Intent = &intent
				prefs = intent.Preferences()

				if intent.Date == core.DateNextWeekend {
					now = now.AddDate(0, 0, 7)
				}
				if intent.Type == core.IntentQuerySpecific {
					if d, ok := e.catalog.Find(intent.Destination); ok {
						res.Match = &core.ScoredDestination{Destination: d, Score: core.ScoreDestination(d)}
					} else {
						logging.Log.Infof("destination %q is not in the catalog", intent.Destination)
					}
				}
			}

			res.Weekend = core.NextWeekend(now)
			res.Recommendations = core.GenerateRecommendations(e.catalog.Destinations, prefs, e.cfg.Limit)

			return output.JSON(res)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum recommendations (default from config, 5)")
	cmd.Flags().String("today", "", "Pretend today is this date YYYY-MM-DD")

	return cmd
}

package commands

import "github.com/spf13/cobra"

// NewRoot builds the command tree. Running it without a subcommand prints
// the help listing.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "weekend",
		Short: "12306 weekend query helper",
		Long: `Works out next weekend's dates, builds 12306 left-ticket query URLs,
reads simple trip intent from Chinese text and ranks weekend destinations.`,
		Example: `  weekend next-weekend
  weekend build-url %E6%B7%B1%E5%9C%B3%E5%8C%97 IOQ %E8%B5%A3%E5%B7%9E%E8%A5%BF GZQ 2026-02-28
  weekend parse "这周末去哪玩"`,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().String("config", "", "Config file (default $WEEKEND_CONFIG or ~/.config/beetlebot/weekend.yaml)")
	root.PersistentFlags().String("catalog", "", "Destination catalog YAML (default: built-in list)")
	root.PersistentFlags().String("origin", "", "Origin station name from the catalog (default from config)")
	root.PersistentFlags().StringP("loglevel", "l", "", "Log level: debug, info, warn, error")

	root.AddCommand(NextWeekendCmd())
	root.AddCommand(BuildURLCmd())
	root.AddCommand(ParseCmd())
	root.AddCommand(RecommendCmd())
	root.AddCommand(BatchCmd())
	root.AddCommand(DestinationsCmd())
	root.AddCommand(DoctorCmd())

	return root
}

package commands

import (
	"strings"

	"github.com/beetlebot/weekend-cli/internal/core"
	"github.com/beetlebot/weekend-cli/internal/output"
	"github.com/spf13/cobra"
)

func NextWeekendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next-weekend",
		Short: "Calculate next weekend dates (Friday to Monday)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := today(cmd)
			if err != nil {
				return err
			}
			return output.JSON(core.NextWeekend(now))
		},
	}

	cmd.Flags().String("today", "", "Pretend today is this date YYYY-MM-DD")

	return cmd
}

func BuildURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-url <from-encoded> <from-code> <to-encoded> <to-code> <date>",
		Short: "Build a 12306 left-ticket query URL",
		Example: `  weekend build-url %E6%B7%B1%E5%9C%B3%E5%8C%97 IOQ %E8%B5%A3%E5%B7%9E%E8%A5%BF GZQ 2026-02-28`,
		Args:    cobra.MinimumNArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.Line(core.BuildQueryURL(args[0], args[1], args[2], args[3], args[4]))
		},
	}
}

func ParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     `parse "<user input>"`,
		Short:   "Parse trip intent from user text",
		Example: `  weekend parse "这周末去哪玩"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.JSON(core.ParseIntent(strings.Join(args, " ")))
		},
	}
}

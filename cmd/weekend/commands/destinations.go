package commands

import (
	"github.com/beetlebot/weekend-cli/internal/output"
	"github.com/spf13/cobra"
)

func DestinationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destinations",
		Short: "List the destination catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return output.JSON(e.catalog)
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/beetlebot/weekend-cli/cmd/weekend/commands"
	"github.com/spf13/cobra"
)

func main() {
	root := commands.NewRoot()
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print weekend CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("weekend v0.1.0")
		},
	}
}

package commands

import (
	"fmt"
	"strings"

	"github.com/beetlebot/weekend-cli/internal/core"
	"github.com/beetlebot/weekend-cli/internal/output"
	"github.com/spf13/cobra"
)

type DoctorReport struct {
	Origin       core.Station `json:"origin"`
	Catalog      string       `json:"catalog"`
	Destinations int          `json:"destinations"`
	Limit        int          `json:"limit"`
	Healthy      bool         `json:"healthy"`
	Issues       []string     `json:"issues,omitempty"`
	Summary      string       `json:"summary"`
}

func DoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate configuration and the destination catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				output.JSONError("load failed", err.Error())
				return err
			}

			var issues []string
			if e.cfg.Origin.Code == "" || e.cfg.Origin.Encoded == "" {
				issues = append(issues, "origin station is incomplete")
			}
			if e.cfg.Limit <= 0 {
				issues = append(issues, fmt.Sprintf("limit %d returns no recommendations", e.cfg.Limit))
			}
			for _, d := range e.catalog.Destinations {
				issues = append(issues, core.CheckDestination(d)...)
			}

			source := e.cfg.CatalogPath
			if source == "" {
				source = "built-in"
			}

			summary := fmt.Sprintf("%d destinations from %s (origin=%s)", len(e.catalog.Destinations), source, e.cfg.Origin.Name)
			if len(issues) > 0 {
				summary += " | issues: " + strings.Join(issues, "; ")
			}

			return output.JSON(DoctorReport{
				Origin:       e.cfg.Origin,
				Catalog:      source,
				Destinations: len(e.catalog.Destinations),
				Limit:        e.cfg.Limit,
				Healthy:      len(issues) == 0,
				Issues:       issues,
				Summary:      summary,
			})
		},
	}
	return cmd
}

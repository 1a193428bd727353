package commands

import (
	"fmt"
	"time"

	"github.com/beetlebot/weekend-cli/internal/catalog"
	"github.com/beetlebot/weekend-cli/internal/config"
	"github.com/beetlebot/weekend-cli/internal/core"
	"github.com/beetlebot/weekend-cli/internal/logging"
	"github.com/spf13/cobra"
)

type env struct {
	cfg     *config.Config
	catalog *catalog.Catalog
}

// loadEnv resolves config, log level, catalog and origin from flags, the
// config file and the environment, in that order of precedence.
func loadEnv(cmd *cobra.Command) (*env, error) {
	configFlag, _ := cmd.Flags().GetString("config")
	catalogFlag, _ := cmd.Flags().GetString("catalog")
	originFlag, _ := cmd.Flags().GetString("origin")
	levelFlag, _ := cmd.Flags().GetString("loglevel")

	var cfg *config.Config
	if configFlag != "" {
		cfg = config.LoadFrom(configFlag)
	} else {
		cfg = config.Load()
	}
	cfg.WithCatalog(catalogFlag).WithLogLevel(levelFlag)

	if err := logging.SetLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	logging.Log.Debugf("catalog: %d destinations, %d origins", len(cat.Destinations), len(cat.Origins))

	if originFlag != "" {
		origin, ok := cat.Origin(originFlag)
		if !ok {
			return nil, fmt.Errorf("unknown origin station %q", originFlag)
		}
		cfg.WithOrigin(origin)
	}

	return &env{cfg: cfg, catalog: cat}, nil
}

// today honours a --today override so date-dependent output is reproducible.
func today(cmd *cobra.Command) (time.Time, error) {
	s, _ := cmd.Flags().GetString("today")
	if s == "" {
		return time.Now(), nil
	}
	t, err := core.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

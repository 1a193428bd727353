package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/beetlebot/weekend-cli/internal/core"
	"github.com/beetlebot/weekend-cli/internal/logging"
)

type Config struct {
	Origin      core.Station `yaml:"origin"`
	CatalogPath string       `yaml:"catalog,omitempty"`
	Limit       int          `yaml:"limit"`
	LogLevel    string       `yaml:"logLevel"`
}

func DefaultConfig() *Config {
	return &Config{
		Origin: core.Station{
			Name:    "深圳北",
			Code:    "IOQ",
			Encoded: "%E6%B7%B1%E5%9C%B3%E5%8C%97",
		},
		Limit:    core.DefaultLimit,
		LogLevel: "warn",
	}
}

// Load builds the config from defaults, then the YAML file, then the
// environment. An unreadable or malformed file is logged and skipped.
func Load() *Config {
	return LoadFrom(configPath())
}

func LoadFrom(path string) *Config {
	cfg := DefaultConfig()

	if path != "" {
		if data, err := os.ReadFile(path); err != nil {
			logging.Log.Warnf("config: cannot read %s: %v", path, err)
		} else {
			var file Config
			if err := yaml.Unmarshal(data, &file); err != nil {
				logging.Log.Warnf("config: ignoring %s: %v", path, err)
			} else {
				cfg.merge(file)
				logging.Log.Debugf("config: loaded %s", path)
			}
		}
	}

	if cfg.Origin.Encoded == "" {
		cfg.Origin.Encoded = url.QueryEscape(cfg.Origin.Name)
	}

	if p := os.Getenv("WEEKEND_CATALOG"); p != "" {
		cfg.CatalogPath = p
	}
	if v := os.Getenv("WEEKEND_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limit = n
		} else {
			logging.Log.Warnf("config: WEEKEND_LIMIT=%q is not a number", v)
		}
	}
	if lvl := os.Getenv("WEEKEND_LOGLEVEL"); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
	}

	return cfg
}

func (c *Config) merge(o Config) {
	c.WithOrigin(o.Origin).WithCatalog(o.CatalogPath).WithLimit(o.Limit).WithLogLevel(o.LogLevel)
}

func (c *Config) WithCatalog(path string) *Config {
	if path != "" {
		c.CatalogPath = path
	}
	return c
}

func (c *Config) WithLimit(limit int) *Config {
	if limit != 0 {
		c.Limit = limit
	}
	return c
}

func (c *Config) WithLogLevel(level string) *Config {
	if level != "" {
		c.LogLevel = strings.ToLower(level)
	}
	return c
}

func (c *Config) WithOrigin(s core.Station) *Config {
	if s.Code != "" {
		c.Origin = s
	}
	return c
}

func configPath() string {
	if p := os.Getenv("WEEKEND_CONFIG"); p != "" {
		return p
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "beetlebot", "weekend.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

package cli

import (
	"errors"
	"fmt"
	"io/fs"
		"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	tvdberrors "github.com/matzehuels/tvdb/pkg/errors"
	"github.com/matzehuels/tvdb/pkg/integrations/tvdb"
)

const (
	configFile      = "config.toml"
	envPrefix       = "TVDB_"
	defaultCacheTTL = 24 * time.Hour
)

// Config is the on-disk configuration. Every key can be overridden by the
// TVDB_-prefixed environment variable named in its env tag.
//
//	base_url   = "https://api.thetvdb.com"
//	language   = "en"
//	token      = "..."
//	cache_ttl  = "24h"
//	redis_addr = "localhost:6379"
type Config struct {
	BaseURL   string        `env:"BASE_URL"   toml:"base_url"`
	Language  string        `env:"LANGUAGE"   toml:"language"`
	Token     string        `env:"TOKEN"      toml:"token"`
	CacheTTL  time.Duration `env:"CACHE_TTL"  toml:"cache_ttl"`
	RedisAddr string        `env:"REDIS_ADDR" toml:"redis_addr"`
}

func defaultConfig() Config {
	return Config{
		BaseURL:  tvdb.DefaultBaseURL,
		Language: tvdb.DefaultLanguage,
		CacheTTL: defaultCacheTTL,
	}
}

// loadConfig reads the config file over the defaults, then applies
// environment overrides. A missing default file is not an error; a missing
// file named with --config is.
func (c *CLI) loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, explicit, err := c.resolveConfigPath()
	if err != nil {
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return cfg, tvdberrors.Wrap(tvdberrors.ErrCodeConfig, err, "read %s", path)
		}
	} else {
		c.Logger.Debug("loaded config", "path", path)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return cfg, tvdberrors.Wrap(tvdberrors.ErrCodeConfig, err, "read environment")
	}
	return cfg, nil
}

func (c *CLI) resolveConfigPath() (path string, explicit bool, err error) {
	if c.configPath != "" {
		return c.configPath, true, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", false, tvdberrors.Wrap(tvdberrors.ErrCodeConfig, err, "locate config dir")
	}
	return filepath.Join(dir, configFile), false, nil
}

// redacted returns a copy safe to print.
func (cfg Config) redacted() Config {
	if cfg.Token != "" {
		cfg.Token = "********"
	}
	return cfg
}

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (token redacted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg.redacted())
		},
	})

	return cmd
}

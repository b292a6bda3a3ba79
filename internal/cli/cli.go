// Package cli implements the tvdb command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. Commands:
//   - languages list / get: query the language catalog
//   - serve: expose the catalog over a read-only HTTP API
//   - cache: manage the on-disk response cache
//   - config: inspect the configuration file
//   - completion: generate shell completions
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tvdb/pkg/buildinfo"
	"github.com/matzehuels/tvdb/pkg/cache"
	"github.com/matzehuels/tvdb/pkg/integrations/tvdb"
	"github.com/matzehuels/tvdb/pkg/languages"
)

// appName is used for cache and config directories.
const appName = "tvdb"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	refresh    bool
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Query TheTVDB language catalog",
		Long:         `tvdb fetches the languages supported by TheTVDB and caches them, in memory for the lifetime of a command and on disk between runs.`,
		Version:      buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tvdb/config.toml)")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the on-disk response cache")
	flags.BoolVar(&c.refresh, "refresh", false, "ignore cached responses and fetch fresh data")

	root.AddCommand(c.languagesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCatalog builds a catalog backed by the configured response cache.
// The returned close function releases the cache backend.
func (c *CLI) newCatalog(ctx context.Context) (*languages.Catalog, func() error, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	backend, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	client := tvdb.NewClient(backend, tvdb.Options{
		BaseURL:  cfg.BaseURL,
		Language: cfg.Language,
		Token:    cfg.Token,
		CacheTTL: cfg.CacheTTL,
		Refresh:  c.refresh,
	})
	return languages.New(client), backend.Close, nil
}

func (c *CLI) newCache(ctx context.Context, cfg Config) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisAddr != "" {
		c.Logger.Debug("using redis response cache", "addr", cfg.RedisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: cfg.RedisAddr})
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	c.Logger.Debug("using file response cache", "dir", dir)
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/tvdb/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/tvdb/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

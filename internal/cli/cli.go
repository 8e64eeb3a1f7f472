// Package cli implements the stackbox command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/buildinfo"
	"github.com/matzehuels/stackbox/pkg/cache"
	"github.com/matzehuels/stackbox/pkg/observability"
	"github.com/matzehuels/stackbox/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "stackbox"

	// envRedisAddr selects the Redis cache backend when set.
	envRedisAddr = "STACKBOX_REDIS_ADDR"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	config     Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level. At debug level pipeline and cache
// events are logged too.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := &logHooks{logger: c.Logger}
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stackbox lays out boxes and text in pages",
		Long:         `Stackbox reads a layout document (JSON or TOML), stacks its content into one or more pages and writes the positioned boxes as a text dump, JSON, SVG, PDF or PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.configPath != "" {
				cfg, err := LoadConfig(c.configPath)
				if err != nil {
					return err
				}
				c.config = cfg
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML file with default settings")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the layout and artifact cache")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, c.keyer(), c.Logger), nil
}

// keyer returns the default keyer, scoped when the config sets a prefix.
func (c *CLI) keyer() cache.Keyer {
	if c.config.Cache.Prefix == "" {
		return nil
	}
	return cache.NewScopedKeyer(nil, c.config.Cache.Prefix)
}

// newCache picks the cache backend: none with --no-cache, Redis when an
// address is configured, the file cache otherwise. A file cache that cannot
// be created disables caching instead of failing the command.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache || c.config.Cache.Disabled {
		return cache.NewNullCache(), nil
	}

	addr := os.Getenv(envRedisAddr)
	if addr == "" {
		addr = c.config.Cache.RedisAddr
	}
	if addr != "" {
		rc, err := cache.NewRedisCache(ctx, addr)
		if err != nil {
			return nil, err
		}
		return rc, nil
	}

	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/stackbox/).
func cacheDir() (string, error) {
	return cache.DefaultDir()
}

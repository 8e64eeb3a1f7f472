package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/pipeline"
)

// Config holds defaults read from a --config file. Flags given on the
// command line take precedence.
//
//	format = "svg"
//	scale = 3.0
//
//	[page]
//	width = 420
//	height = 595
//
//	[cache]
//	redis_addr = "localhost:6379"
//
//	[serve]
//	addr = ":9090"
type Config struct {
	Format     string      `toml:"format"`
	Scale      float64     `toml:"scale"`
	NoDebug    bool        `toml:"no_debug"`
	Horizontal bool        `toml:"horizontal"`
	Page       PageConfig  `toml:"page"`
	Cache      CacheConfig `toml:"cache"`
	Serve      ServeConfig `toml:"serve"`
}

// PageConfig is the fallback page for documents without spaces.
type PageConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Disabled  bool   `toml:"disabled"`
	RedisAddr string `toml:"redis_addr"`
	// Prefix scopes every key, so deployments can share one Redis.
	Prefix string `toml:"prefix"`
}

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// defaultServeAddr is the listen address of the serve command.
const defaultServeAddr = ":8080"

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Scale: pipeline.DefaultScale,
		Page: PageConfig{
			Width:  pipeline.DefaultWidth,
			Height: pipeline.DefaultHeight,
		},
		Serve: ServeConfig{Addr: defaultServeAddr},
	}
}

// LoadConfig reads a TOML config file on top of the defaults.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// renderFlags are the pipeline flags shared by layout, render and serve.
type renderFlags struct {
	width      float64
	height     float64
	format     string
	scale      float64
	noDebug    bool
	horizontal bool
	fresh      bool
}

// register adds the flags to cmd. withFormat is false for commands with a
// fixed output format. A format preset on f becomes the flag default.
func (f *renderFlags) register(cmd *cobra.Command, withFormat bool) {
	cmd.Flags().Float64Var(&f.width, "width", pipeline.DefaultWidth, "fallback page width in points")
	cmd.Flags().Float64Var(&f.height, "height", pipeline.DefaultHeight, "fallback page height in points")
	cmd.Flags().BoolVar(&f.fresh, "fresh", false, "ignore cached results")
	if withFormat {
		def := f.format
		if def == "" {
			def = pipeline.DefaultFormat
		}
		cmd.Flags().StringVarP(&f.format, "format", "f", def, "output format: dump, json, svg, pdf, png")
		cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
		cmd.Flags().BoolVar(&f.noDebug, "no-debug", false, "omit debug box outlines (svg, pdf, png)")
		cmd.Flags().BoolVar(&f.horizontal, "horizontal", false, "place pages side by side (svg, pdf, png)")
	}
}

// options merges the flags with cfg. A flag the user did not set takes its
// value from cfg.
func (f *renderFlags) options(cmd *cobra.Command, cfg Config) pipeline.Options {
	changed := cmd.Flags().Changed
	opts := pipeline.Options{
		Width:      f.width,
		Height:     f.height,
		Format:     f.format,
		Scale:      f.scale,
		NoDebug:    f.noDebug,
		Horizontal: f.horizontal,
		Fresh:      f.fresh,
	}
	if !changed("width") {
		opts.Width = cfg.Page.Width
	}
	if !changed("height") {
		opts.Height = cfg.Page.Height
	}
	if !changed("format") && cfg.Format != "" {
		opts.Format = cfg.Format
	}
	if !changed("scale") {
		opts.Scale = cfg.Scale
	}
	if !changed("no-debug") {
		opts.NoDebug = cfg.NoDebug
	}
	if !changed("horizontal") {
		opts.Horizontal = cfg.Horizontal
	}
	return opts
}

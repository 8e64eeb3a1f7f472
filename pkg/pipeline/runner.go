package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stackbox/pkg/cache"
	"github.com/matzehuels/stackbox/pkg/content"
	"github.com/matzehuels/stackbox/pkg/document"
	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/fonts"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner does not store pipeline results. Multiple goroutines can
// safely use the same Runner with different options; they share the
// default font loader, which is read-only during layout.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	fontsOnce sync.Once
	fonts     *fonts.Loader
	fontsErr  error
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Fonts returns the loader with the bundled fonts, loading it on first use.
func (r *Runner) Fonts() (*fonts.Loader, error) {
	r.fontsOnce.Do(func() {
		l := fonts.NewLoader()
		if err := l.LoadDefault(); err != nil {
			r.fontsErr = errors.Wrap(errors.ErrCodeFont, err, "load default fonts")
			return
		}
		r.fonts = l
	})
	return r.fonts, r.fontsErr
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, doc *document.Document, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		PassID:  uuid.NewString(),
		DocHash: doc.Hash(),
	}
	logger := opts.Logger.With("pass", result.PassID[:8])

	// Stage 1: Build
	buildStart := time.Now()
	root, lctx, err := r.Prepare(doc, opts)
	if err != nil {
		return nil, err
	}
	result.Root = root
	result.Stats.BuildTime = time.Since(buildStart)
	_ = content.Walk(root, func(content.Node, int) error {
		result.Stats.Nodes++
		return nil
	})

	logger.Debug("built content tree",
		"nodes", result.Stats.Nodes,
		"spaces", len(lctx.Spaces),
		"fonts", lctx.Loader.Len())

	// Stage 2: Layout
	layoutStart := time.Now()
	ml, layoutHit, err := r.LayoutWithCacheInfo(ctx, result.DocHash, root, lctx, result.PassID, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = ml
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Pages = ml.Len()
	result.Stats.Actions = ml.ActionCount()
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"pages", result.Stats.Pages,
		"actions", result.Stats.Actions,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifact, renderHit, err := r.RenderWithCacheInfo(ctx, ml, lctx.Loader, result.PassID, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifact = artifact
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(artifact),
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Prepare builds the document's content tree and layout context. Documents
// that declare fonts get a loader of their own; all others share the
// runner's default loader.
func (r *Runner) Prepare(doc *document.Document, opts Options) (content.Node, layout.Context, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, layout.Context{}, err
	}

	loader, err := r.Fonts()
	if err != nil {
		return nil, layout.Context{}, err
	}
	if len(doc.Fonts) > 0 {
		loader = fonts.NewLoader()
		if err := loader.LoadDefault(); err != nil {
			return nil, layout.Context{}, errors.Wrap(errors.ErrCodeFont, err, "load default fonts")
		}
	}

	return doc.Build(document.BuildConfig{Loader: loader, Page: opts.Page()})
}

// LayoutWithCacheInfo lays root out with caching and returns cache hit info.
// docHash identifies the document the tree was built from.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, docHash string, root content.Node, lctx layout.Context, passID string, opts Options) (layout.MultiLayout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.MultiLayout{}, false, err
	}

	cacheKey := r.Keyer.LayoutKey(docHash, opts.LayoutKeyOpts(fontNames(lctx.Loader)))

	if !opts.Fresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.MultiLayout
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeLayout)
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		} else if err != nil {
			opts.Logger.Debug("layout cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeLayout)
	}

	ml, err := GenerateLayout(ctx, root, lctx, passID)
	if err != nil {
		return layout.MultiLayout{}, false, err
	}

	if data, err := json.Marshal(ml); err == nil {
		r.store(ctx, opts.Logger, keyTypeLayout, cacheKey, data, cache.LayoutTTL)
	}
	return ml, false, nil
}

// RenderWithCacheInfo renders ml with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, ml layout.MultiLayout, loader *fonts.Loader, passID string, opts Options) ([]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	layoutData, err := json.Marshal(ml)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	cacheKey := r.Keyer.ArtifactKey(cache.Hash(layoutData), opts.ArtifactKeyOpts())

	if !opts.Fresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			return data, true, nil
		} else if err != nil {
			opts.Logger.Debug("artifact cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
	}

	data, err := RenderFromLayout(ctx, ml, loader, passID, opts)
	if err != nil {
		return nil, false, err
	}

	r.store(ctx, opts.Logger, keyTypeArtifact, cacheKey, data, cache.ArtifactTTL)
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// store writes a cache entry. Cache failures never fail a run.
func (r *Runner) store(ctx context.Context, logger *log.Logger, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Debug("cache write failed", "type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func fontNames(l *fonts.Loader) []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, l.Len())
	for i := range l.Len() {
		if f, ok := l.Face(i); ok {
			names = append(names, f.Name)
		}
	}
	return names
}

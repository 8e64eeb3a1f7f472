package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/pkg/buildinfo"
	"github.com/matzehuels/stackbox/pkg/document"
	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/observability"
	"github.com/matzehuels/stackbox/pkg/pipeline"
)

const (
	// maxDocumentBytes bounds the size of a posted document.
	maxDocumentBytes = 1 << 20

	// requestTimeout bounds a single layout request.
	requestTimeout = 30 * time.Second

	// shutdownTimeout is how long in-flight requests get on shutdown.
	shutdownTimeout = 10 * time.Second
)

// Response headers set by the layout endpoint.
const (
	headerPassID = "X-Stackbox-Pass"
	headerCache  = "X-Stackbox-Cache"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout pipeline over HTTP",
		Long: `Serve the layout pipeline over HTTP.

Endpoints:
  POST /v1/layout   lay out the posted document (JSON, or TOML with
                    Content-Type application/toml); query parameters
                    format, width, height, scale, no_debug, horizontal
  GET  /healthz     liveness probe
  GET  /version     build information

Documents posted to the server cannot load font files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && c.config.Serve.Addr != "" {
				addr = c.config.Serve.Addr
			}
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           newServer(runner, c.config, c.Logger),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return listenAndServe(ctx, srv, c.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	return cmd
}

// listenAndServe runs srv until ctx is cancelled, then shuts it down.
func listenAndServe(ctx context.Context, srv *http.Server, logger *log.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// server handles the HTTP API.
type server struct {
	runner *pipeline.Runner
	config Config
	logger *log.Logger
}

// newServer builds the API router.
func newServer(runner *pipeline.Runner, cfg Config, logger *log.Logger) http.Handler {
	s := &server{runner: runner, config: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(observe)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Post("/layout", s.handleLayout)
	})
	return r
}

// observe reports requests and responses to the HTTP hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := queryOptions(r.URL.Query(), s.config)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts.Logger = s.logger.With("request", middleware.GetReqID(ctx))

	format := document.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "toml") {
		format = document.FormatTOML
	}
	doc, err := pipeline.Decode(ctx, http.MaxBytesReader(w, r.Body, maxDocumentBytes), format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.runner.Execute(ctx, doc, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cacheStatus := "miss"
	if result.CacheInfo.RenderHit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentType(opts.Format))
	w.Header().Set(headerPassID, result.PassID)
	w.Header().Set(headerCache, cacheStatus)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifact)
}

// queryOptions reads pipeline options from query parameters, falling back
// to cfg.
func queryOptions(q url.Values, cfg Config) (pipeline.Options, error) {
	opts := pipeline.Options{
		Width:      cfg.Page.Width,
		Height:     cfg.Page.Height,
		Format:     cfg.Format,
		Scale:      cfg.Scale,
		NoDebug:    cfg.NoDebug,
		Horizontal: cfg.Horizontal,
	}
	if v := q.Get("format"); v != "" {
		opts.Format = v
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"scale", &opts.Scale},
	}
	for _, f := range floats {
		if v := q.Get(f.name); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "%s must be a number (got %q)", f.name, v)
			}
			*f.dst = n
		}
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"no_debug", &opts.NoDebug},
		{"horizontal", &opts.Horizontal},
		{"fresh", &opts.Fresh},
	}
	for _, b := range bools {
		if v := q.Get(b.name); v != "" {
			x, err := strconv.ParseBool(v)
			if err != nil {
				return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean (got %q)", b.name, v)
			}
			*b.dst = x
		}
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := errors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "error", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

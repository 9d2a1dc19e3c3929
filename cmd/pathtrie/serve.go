package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"
	"github.com/vitalvas/pathtrie/internal/logging"
	"github.com/vitalvas/pathtrie/mux"
	"github.com/vitalvas/pathtrie/muxhandlers"
	"github.com/vitalvas/pathtrie/routetable"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the route table over HTTP, answering with match details",
		Flags: []cli.Flag{
			routesFlag(),
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "Address to listen on",
				Value:   ":8080",
				Sources: cli.EnvVars("PATHTRIE_LISTEN"),
			},
			&cli.StringFlag{
				Name:    "metrics-path",
				Usage:   "Path of the Prometheus endpoint, empty to disable",
				Value:   "/metrics",
				Sources: cli.EnvVars("PATHTRIE_METRICS_PATH"),
			},
			&cli.BoolFlag{
				Name:    "skip-clean",
				Usage:   "Match request paths as received, without removing dot segments or empty segments",
				Sources: cli.EnvVars("PATHTRIE_SKIP_CLEAN"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("PATHTRIE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Value:   "text",
				Sources: cli.EnvVars("PATHTRIE_LOG_FORMAT"),
			},
		},
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	logger, err := logging.New(cmd.String("log-level"), cmd.String("log-format"), cmd.Root().ErrWriter)
	if err != nil {
		return err
	}

	table, err := loadTable(cmd)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler, err := newServeHandler(table, logger, reg, serveOptions{
		MetricsPath: cmd.String("metrics-path"),
		SkipClean:   cmd.Bool("skip-clean"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              cmd.String("listen"),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr, "routes", len(table.Routes))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}

type serveResponse struct {
	Pattern   string            `json:"pattern"`
	Value     string            `json:"value"`
	Path      string            `json:"path"`
	Vars      map[string]string `json:"vars,omitempty"`
	Captures  []string          `json:"captures,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

type serveOptions struct {
	// MetricsPath is the exact path of the Prometheus endpoint. Empty
	// disables it.
	MetricsPath string
	SkipClean   bool
}

// newServeHandler routes every table entry to a handler describing the match.
// Only a request for exactly opts.MetricsPath bypasses the trie; every other
// path reaches the router unmodified.
func newServeHandler(table *routetable.Table, logger *slog.Logger, reg *prometheus.Registry, opts serveOptions) (http.Handler, error) {
	router := mux.NewRouter()
	router.SkipClean(opts.SkipClean)
	router.MaxCaptures = table.Captures()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ResponseJSON(w, http.StatusNotFound, map[string]string{
			"error": "no route",
			"path":  r.URL.Path,
		})
	})

	metrics, err := muxhandlers.MetricsMiddleware(muxhandlers.MetricsConfig{Registry: reg})
	if err != nil {
		return nil, err
	}

	router.Use(
		muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{}),
		muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{Logger: logger}),
		muxhandlers.AccessLogMiddleware(muxhandlers.AccessLogConfig{Logger: logger}),
		metrics,
	)

	for _, route := range table.Routes {
		value := route.Value
		_, err := router.HandleFunc(route.Pattern, func(w http.ResponseWriter, r *http.Request) {
			mux.ResponseJSON(w, http.StatusOK, serveResponse{
				Pattern:   mux.CurrentPattern(r),
				Value:     value,
				Path:      r.URL.Path,
				Vars:      mux.Vars(r),
				Captures:  mux.Captures(r),
				RequestID: muxhandlers.RequestIDFromContext(r.Context()),
			})
		})
		if err != nil {
			return nil, err
		}
	}

	if opts.MetricsPath == "" {
		return router, nil
	}

	metricsHandler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == opts.MetricsPath {
			metricsHandler.ServeHTTP(w, r)
			return
		}
		router.ServeHTTP(w, r)
	}), nil
}

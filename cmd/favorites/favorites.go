package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clambin/favorites/internal/app"
	"github.com/clambin/favorites/internal/auth"
	"github.com/clambin/favorites/internal/config"
	"github.com/clambin/favorites/internal/transport"
	"github.com/clambin/favorites/pkg/tmdb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var version = "change-me"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, describe(err))
		cancel()
		os.Exit(1)
	}
}

// cli holds what the subcommands share. It's set up by the root command's PersistentPreRunE.
type cli struct {
	configFile string
	cfg        config.Config
	logger     *slog.Logger
	client     *tmdb.Client
	app        *app.App
	metrics    *http.Server
}

func newRootCmd() *cobra.Command {
	var c cli
	root := cobra.Command{
		Use:               "favorites",
		Short:             "Manage your favorite movies on TMDB",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initialize,
		PersistentPostRun: func(*cobra.Command, []string) { c.shutdown() },
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default is ./config.yaml)")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentFlags().String("username", "", "TMDB username")
	root.PersistentFlags().String("password", "", "TMDB password")
	root.PersistentFlags().String("metrics.addr", "", "Prometheus metric listener address (disabled if empty)")

	root.AddCommand(
		c.loginCmd(),
		c.listCmd(),
		c.setFavoriteCmd("add", "Add a movie to your favorites", true),
		c.setFavoriteCmd("remove", "Remove a movie from your favorites", false),
		c.toggleCmd(),
		c.showCmd(),
		c.posterCmd(),
	)
	return &root
}

func (c *cli) initialize(cmd *cobra.Command, _ []string) error {
	var err error
	if c.cfg, err = config.Load(c.configFile, cmd.Flags()); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var opts slog.HandlerOptions
	if c.cfg.Debug {
		opts.Level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &opts))
	c.logger.Debug("starting", "version", version, "base_url", c.cfg.BaseURL)

	tp, err := transport.New(transport.Options{
		Timeout:               c.cfg.Timeout,
		MaxConcurrentRequests: c.cfg.MaxConcurrentRequests,
		PosterCacheTTL:        c.cfg.PosterCache.TTL,
		ImageBaseURL:          c.cfg.ImageBaseURL,
	}, nil)
	if err != nil {
		return fmt.Errorf("transport: %w", err)
	}

	c.client = tmdb.New(c.cfg.APIKey, tp.Client)
	c.client.BaseURL = c.cfg.BaseURL
	c.client.ImageBaseURL = c.cfg.ImageBaseURL
	c.app = app.New(c.client, c.logger)
	c.app.Favorites.FavoriteTimeout = c.cfg.FavoriteTimeout

	if c.cfg.Metrics.Addr != "" {
		c.serveMetrics(tp)
	}
	return nil
}

func (c *cli) serveMetrics(collector prometheus.Collector) {
	r := prometheus.NewRegistry()
	r.MustRegister(collector)
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(r, promhttp.HandlerOpts{}))
	c.metrics = &http.Server{Addr: c.cfg.Metrics.Addr, Handler: m}
	go func() {
		if err := c.metrics.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			c.logger.Error("failed to start Prometheus metrics server", "err", err)
		}
	}()
}

func (c *cli) shutdown() {
	if c.metrics == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = c.metrics.Shutdown(ctx)
}

// login authenticates the configured user. It's the first step of every command that needs a session.
func (c *cli) login(ctx context.Context) (auth.Snapshot, error) {
	if err := <-c.app.BeginAuthentication(ctx, c.cfg.Username, c.cfg.Password); err != nil {
		return auth.Snapshot{}, err
	}
	session, _ := c.app.CurrentSession()
	return session, nil
}

// describe turns an error into the message shown to the user.
func describe(err error) string {
	var authErr *auth.Error
	switch {
	case errors.As(err, &authErr):
		return authErr.Message() + " " + authErr.Err.Error()
	case errors.Is(err, auth.ErrMissingCredentials):
		return "Username or Password Empty."
	default:
		return err.Error()
	}
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

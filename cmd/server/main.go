package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpapi "quoridor/internal/api/http"
	"quoridor/internal/api/ws"
	"quoridor/internal/config"
	"quoridor/internal/room"
	"quoridor/internal/store"

	// swagger packages
	_ "quoridor/docs"
)

const (
	releaseVersion  = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

// @title Quoridor Session API
// @version 1.0
// @description Realtime two-player wall maze sessions over WebSocket, with a small read-only REST surface (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg := config.Default()
	cobra.CheckErr(newCmd(&cfg).Execute())
}

func newCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quoridor",
		Short:   "Realtime two-player Quoridor session server.",
		Args:    cobra.ExactArgs(0),
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), *cfg)
		},
	}

	config.BindFlags(cmd.Flags(), cfg)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("quoridor v{{.Version}}\n")
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func serve(parent context.Context, cfg config.Config) error {
	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg.Rules(), log.Named("rooms"))
	hub := ws.NewHub(rm, ws.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		PongTimeout:    cfg.PongTimeout,
	}, log.Named("ws"))
	rm.SetBroadcaster(hub)

	r := httpapi.NewRouter(httpapi.Deps{
		Rooms:     rm,
		Hub:       hub,
		PublicURL: cfg.PublicURL,
		Log:       log.Named("http"),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       10 * time.Minute,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("version", releaseVersion),
			zap.Int("gridSize", cfg.GridSize),
			zap.Int("wallsPerPlayer", cfg.WallsPerPlayer),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Hijacked websocket connections are not tracked by Shutdown.
	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errs
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/s3gate/s3gate/config"
	gatehttp "github.com/s3gate/s3gate/http"
	"github.com/s3gate/s3gate/metrics"
	"github.com/s3gate/s3gate/s3"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway",
	Long:  `Start the s3gate HTTP server.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("host", "0.0.0.0", "bind address")
	serveCmd.Flags().Int("port", 8080, "HTTP server port")
	serveCmd.Flags().String("url-prefix", "", "fixed URL prefix segment for all routes")
	serveCmd.Flags().Int64("workers", 0, "max concurrently served requests (0 = unlimited)")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.url_prefix", serveCmd.Flags().Lookup("url-prefix"))
	_ = viper.BindPFlag("server.workers", serveCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configFile, _ := cmd.Flags().GetString("config")
	var configFiles []string
	if configFile != "" {
		configFiles = []string{configFile}
	}

	cfg, err := config.Load(configFiles, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := s3.New(s3.Config{
		Endpoint:  cfg.Store.Endpoint,
		Region:    cfg.Store.Region,
		AccessKey: cfg.Store.AccessKey,
		SecretKey: cfg.Store.SecretKey,
		UseSSL:    cfg.Store.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("create store client: %w", err)
	}

	if cfg.Store.Bucket != "" {
		slog.Info("hosting content from bucket", "bucket", cfg.Store.Bucket)
	} else {
		slog.Info("bucket taken from first URL path segment")
	}

	handlerConfig := gatehttp.HandlerConfig{
		Bucket:    cfg.Store.Bucket,
		URLPrefix: cfg.Server.URLPrefix,
		Workers:   cfg.Server.Workers,
		CORS:      cfg.CORS,
	}
	handler := gatehttp.NewHandler(&handlerConfig, store)

	r := chi.NewRouter()
	if cfg.Metrics.Enabled {
		r.Use(metrics.Middleware)
		r.Handle(cfg.Metrics.Path, metrics.Handler())
	}
	r.Mount("/", handler.Router())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	// WriteTimeout stays unset: a fixed deadline would cut off large
	// objects streaming to slow clients.
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 20 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	eg.Go(func() error {
		slog.Info("starting server", "addr", addr, "url_prefix", cfg.Server.URLPrefix)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	return eg.Wait()
}

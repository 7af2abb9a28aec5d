package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bangdash/bangsuggest/internal/bang"
	"github.com/bangdash/bangsuggest/internal/config"
	"github.com/bangdash/bangsuggest/internal/corpus"
	"github.com/bangdash/bangsuggest/internal/external"
	"github.com/bangdash/bangsuggest/internal/healthserver"
	"github.com/bangdash/bangsuggest/internal/httpapi"
	"github.com/bangdash/bangsuggest/internal/logging"
	"github.com/bangdash/bangsuggest/internal/predict"
	"github.com/bangdash/bangsuggest/internal/suggest"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bangsuggestd HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(&cfg.Logging)
	defer logger.Sync() //nolint:errcheck

	extraCorpus, err := corpus.LoadExtra(cfg.CorpusExtraPath)
	if err != nil {
		logger.Warn("failed to load extra corpus", zap.Error(err), zap.String("path", cfg.CorpusExtraPath))
	}

	pairs := make([][2]string, len(bang.Registry))
	for i, b := range bang.Registry {
		pairs[i] = [2]string{b.Trigger, b.Name}
	}
	extensions := append(corpus.BangExtensions(pairs), extraCorpus...)

	engine := predict.New(corpus.Base, extensions...)

	extClient := external.New(external.Config{
		UpstreamURL: cfg.UpstreamSuggestURL,
		TTL:         cfg.CacheTTL,
		Capacity:    cfg.CacheCapacity,
		Timeout:     cfg.ExternalTimeout,
	}, logger)

	suggestSvc := suggest.New(engine, extClient)
	api := httpapi.New(suggestSvc, logger)

	mainSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var ready atomic.Bool
	health := healthserver.Start(logger, cfg.HealthAddr, ready.Load)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting bangsuggestd", zap.String("addr", cfg.ListenAddr))
		ready.Store(true)
		if err := mainSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	ready.Store(false)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mainSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main server shutdown error", zap.Error(err))
	}
	if err := health.Shutdown(shutdownCtx); err != nil {
		logger.Error("health server shutdown error", zap.Error(err))
	}
	return nil
}

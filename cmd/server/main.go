// Package main runs the promo generation HTTP service: token resolution,
// website scraping, logo management, and the generation pipeline behind a
// single POST endpoint.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"token-promo-lab/internal/config"
	"token-promo-lab/internal/generation"
	"token-promo-lab/internal/logo"
	"token-promo-lab/internal/observability"
	"token-promo-lab/internal/orchestrator"
	"token-promo-lab/internal/scrape"
	"token-promo-lab/internal/server"
	"token-promo-lab/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet.
		println("config:", err.Error())
		os.Exit(1)
	}

	listenAddr := flag.String("listen-addr", cfg.ListenAddr, "HTTP listen address")
	jobTimeout := flag.Duration("job-timeout", cfg.JobTimeout, "Per-job deadline")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log, err := buildLogger(*debug)
	if err != nil {
		println("logger:", err.Error())
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	metrics := observability.NewMetrics("token_promo")

	marketClient := token.NewMarketClient(cfg.MarketAPIBase, token.WithHTTPClient(httpClient), token.WithMetrics(metrics))
	renderClient := generation.NewRenderClient(cfg.RenderAPIBase, generation.WithHTTPClient(httpClient), generation.WithRenderMetrics(metrics))
	anthropicClient := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))

	orch := orchestrator.New(orchestrator.Options{
		TokenResolver:   token.NewResolver(marketClient, log),
		WebsiteScraper:  scrape.NewScraper(log, scrape.WithHTTPClient(httpClient), scrape.WithMetrics(metrics)),
		LogoManager:     logo.NewManager(log, logo.WithHTTPClient(httpClient), logo.WithMetrics(metrics)),
		PostGenerator:   generation.NewTextGenerator(anthropicClient, cfg.AnthropicModel, log, generation.WithTextMetrics(metrics)),
		BannerGenerator: generation.NewBannerGenerator(renderClient, log),
		VideoGenerator:  generation.NewVideoGenerator(renderClient, log),
		Logger:          log,
		Metrics:         metrics,
	})

	api := server.New(server.Options{
		Runner:     orch,
		Logger:     log,
		JobTimeout: *jobTimeout,
	})

	httpServer := &http.Server{
		Addr:              *listenAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", *listenAddr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("shutdown complete")
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

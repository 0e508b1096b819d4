// Package main runs a single promo job from the command line and prints
// the resulting report as JSON. With -stub the job runs against canned
// collaborators, which is useful for trying the pipeline without any
// remote services.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"token-promo-lab/internal/config"
	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/generation"
	"token-promo-lab/internal/logo"
	"token-promo-lab/internal/orchestrator"
	"token-promo-lab/internal/scrape"
	"token-promo-lab/internal/stage/stub"
	"token-promo-lab/internal/token"
)

func main() {
	ticker := flag.String("ticker", "", "Token ticker symbol")
	address := flag.String("address", "", "Token contract address")
	intent := flag.String("intent", "", "Requested intent (hype, launch, community)")
	theme := flag.String("theme", "", "Requested visual theme")
	useStub := flag.Bool("stub", false, "Run against canned collaborators, no remote calls")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *ticker == "" && *address == "" {
		println("at least one of -ticker or -address is required")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *debug {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			println("logger:", err.Error())
			os.Exit(1)
		}
	}

	orch, err := buildOrchestrator(*useStub, *ticker, log)
	if err != nil {
		println("setup:", err.Error())
		os.Exit(1)
	}

	output := orch.Run(context.Background(), domain.JobInput{
		Ticker:          *ticker,
		ContractAddress: *address,
		Intent:          *intent,
		Theme:           *theme,
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		println("encode:", err.Error())
		os.Exit(1)
	}
}

func buildOrchestrator(useStub bool, ticker string, log *zap.Logger) (*orchestrator.Orchestrator, error) {
	if useStub {
		if ticker == "" {
			ticker = "TOKEN"
		}
		set := stub.HealthySet(ticker)
		return orchestrator.New(orchestrator.Options{
			TokenResolver:   set.Tokens,
			WebsiteScraper:  set.Scraper,
			LogoManager:     set.Logos,
			PostGenerator:   set.Posts,
			BannerGenerator: set.Banners,
			VideoGenerator:  set.Videos,
			Logger:          log,
		}), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	marketClient := token.NewMarketClient(cfg.MarketAPIBase, token.WithHTTPClient(httpClient))
	renderClient := generation.NewRenderClient(cfg.RenderAPIBase, generation.WithHTTPClient(httpClient))
	anthropicClient := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))

	return orchestrator.New(orchestrator.Options{
		TokenResolver:   token.NewResolver(marketClient, log),
		WebsiteScraper:  scrape.NewScraper(log, scrape.WithHTTPClient(httpClient)),
		LogoManager:     logo.NewManager(log, logo.WithHTTPClient(httpClient)),
		PostGenerator:   generation.NewTextGenerator(anthropicClient, cfg.AnthropicModel, log),
		BannerGenerator: generation.NewBannerGenerator(renderClient, log),
		VideoGenerator:  generation.NewVideoGenerator(renderClient, log),
		Logger:          log,
	}), nil
}

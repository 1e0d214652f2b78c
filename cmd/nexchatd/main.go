package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"nexchat/internal/chat"
	"nexchat/internal/config"
	"nexchat/internal/enrich"
	"nexchat/internal/market"
	"nexchat/internal/metrics"
	"nexchat/internal/server"
	"nexchat/internal/server/handler"
	"nexchat/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Env == "local" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	logger, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	enricher, err := buildEnricher(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("enrichment client init failed", zap.Error(err))
	}
	defer func() { _ = enricher.Close() }()
	logger.Info("enrichment client ready", zap.String("client", enricher.Name()))

	m := metrics.New(prometheus.DefaultRegisterer)

	store := session.NewStore(chat.NewSeed(time.Now()), nil, logger)
	svc := session.NewService(store, enricher, m, logger)

	marketClient, err := market.NewClient(cfg.Market.BaseURL, m, logger)
	if err != nil {
		logger.Fatal("marketplace client init failed", zap.Error(err))
	}

	router := server.NewRouter(
		handler.NewChatHandler(svc, logger),
		handler.NewEnrichHandler(enricher, logger),
		handler.NewMarketHandler(market.NewCatalog(), marketClient, logger),
		handler.NewSessionWSHandler(svc, logger),
	)

	srv := server.New(cfg.Port, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown incomplete", zap.Error(err))
		}
	}
}

func buildEnricher(ctx context.Context, cfg *config.Config, logger *zap.Logger) (enrich.Client, error) {
	if cfg.Enrich.Provider == "gemini" {
		return enrich.NewGeminiClient(ctx, cfg.Enrich.Model, cfg.Enrich.RPS, cfg.Enrich.Burst, logger)
	}
	return enrich.NewFakeClient(), nil
}

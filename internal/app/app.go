package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/landed-cost/internal/classification"
	"github.com/denmor86/landed-cost/internal/client"
	"github.com/denmor86/landed-cost/internal/config"
	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/denmor86/landed-cost/internal/network/router"
	"github.com/denmor86/landed-cost/internal/services"
	"github.com/denmor86/landed-cost/internal/storage"
	"github.com/denmor86/landed-cost/internal/worker"
	"github.com/shopspring/decimal"
)

// OpenStorage - хранилище задач: PostgreSQL при заданном DSN, иначе в памяти
func OpenStorage(ctx context.Context, cfg config.ServerConfig) (storage.JobsStorage, func(), error) {
	if cfg.DatabaseDSN == "" {
		logger.Warn("Database DSN is empty, jobs are kept in memory")
		return storage.NewMemoryStorage(), func() {}, nil
	}
	db, err := storage.NewDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Initialize(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	closer := func() {
		if err := db.Close(); err != nil {
			logger.Error("error close database", "error", err)
		}
	}
	return storage.NewJobsStorage(db), closer, nil
}

func upstreamConfig(name string, cfg config.UpstreamConfig) services.UpstreamConfig {
	return services.UpstreamConfig{
		Name:       name,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryBase:  cfg.RetryBase,
	}
}

// NewPipeline - конвейер расчёта со всеми внешними сервисами
func NewPipeline(cfg config.Config, jobs storage.JobsStorage, rules *classification.Source) *services.Pipeline {
	httpClient := &http.Client{}
	products := services.NewProductService(
		client.NewClient(cfg.Upstream.ProductAddr, httpClient, client.NewRateLimiter(cfg.Upstream.RPS)),
		services.NewUpstream(upstreamConfig("product-service", cfg.Upstream)),
	)
	inference := services.NewInferenceService(
		client.NewClient(cfg.Upstream.InferenceAddr, httpClient, client.NewRateLimiter(cfg.Upstream.RPS)),
		services.NewUpstream(upstreamConfig("inference-service", cfg.Upstream)),
	)
	calculator := services.NewCalculatorService(cfg.Rates.ExchangeRates(), cfg.White.Fees())
	return services.NewPipeline(jobs, products, inference, inference, rules, calculator, cfg.Worker.ResultTTL)
}

func Run(config config.Config) error {
	decimal.MarshalJSONWithoutQuotes = true

	identity := services.NewIdentity(config.Server.JWTSecret)
	if config.Server.IssueToken != "" {
		token, err := identity.GenerateJWT(config.Server.IssueToken)
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}
		fmt.Println(token)
		return nil
	}

	rules, err := classification.NewSource(config.Rules.File)
	if err != nil {
		return fmt.Errorf("failed to load classification rules: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := OpenStorage(ctx, config.Server)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer closeStore()

	jobs := services.NewJobs(store, config.Worker.ResultTTL, config.Worker.StaleAfter)
	pipeline := NewPipeline(config, store, rules)
	calculator := services.NewCalculatorService(config.Rates.ExchangeRates(), config.White.Fees())
	r := router.NewRouter(identity, jobs, calculator, rules)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: r.HandleRouter(),
	}
	// Создание и запуск воркера
	w := worker.NewJobWorker(jobs, pipeline, config.Worker.Count, config.Worker.BatchSize, config.Worker.PollInterval)
	if config.Worker.MaintainInterval > 0 {
		w.MaintainInterval = config.Worker.MaintainInterval
	}
	w.Start(ctx)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		logger.Info("Starting server", "address", config.Server.ListenAddr, "workers", config.Worker.Count,
			"rules_version", rules.Current().Version)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", "error", err)
		}
	}()

	// SIGHUP перечитывает правила красной зоны, остальные сигналы останавливают сервис
	for sig := range signals {
		if sig != syscall.SIGHUP {
			break
		}
		_ = rules.Reload()
	}

	logger.Info("Shutdown server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", "error", err)
	}
	w.Stop()
	logger.Info("Server stopped")
	return nil
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/denmor86/landed-cost/internal/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr  string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"secret"`

	WorkerCount        int           `env:"WORKER_COUNT" envDefault:"4"`
	WorkerBatchSize    int           `env:"WORKER_BATCH_SIZE" envDefault:"10"`
	WorkerPollInterval time.Duration `env:"WORKER_POLL_INTERVAL" envDefault:"1s"`
	WorkerStaleAfter   time.Duration `env:"WORKER_STALE_AFTER" envDefault:"10m"`
	WorkerMaintain     time.Duration `env:"WORKER_MAINTAIN_INTERVAL" envDefault:"1m"`
	JobResultTTL       time.Duration `env:"JOB_RESULT_TTL" envDefault:"24h"`

	USDToRUB float64 `env:"EXCHANGE_RATE_USD_RUB" envDefault:"100"`
	USDToCNY float64 `env:"EXCHANGE_RATE_USD_CNY" envDefault:"7.2"`
	EURToRUB float64 `env:"EXCHANGE_RATE_EUR_RUB" envDefault:"110"`

	WhiteLogisticsUSD    float64 `env:"WHITE_LOGISTICS_USD" envDefault:"1850"`
	WhiteDocsRUB         float64 `env:"WHITE_DOCS_RUB" envDefault:"15000"`
	WhiteBrokerRUB       float64 `env:"WHITE_BROKER_RUB" envDefault:"25000"`
	WhiteVATLogisticsUSD float64 `env:"WHITE_VAT_LOGISTICS_USD" envDefault:"925"`

	ProductAddr        string        `env:"PRODUCT_SERVICE_ADDRESS" envDefault:"http://localhost:8081"`
	InferenceAddr      string        `env:"INFERENCE_SERVICE_ADDRESS" envDefault:"http://localhost:8082"`
	UpstreamTimeout    time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
	UpstreamMaxRetries int           `env:"UPSTREAM_MAX_RETRIES" envDefault:"3"`
	UpstreamRetryBase  time.Duration `env:"UPSTREAM_RETRY_BASE" envDefault:"200ms"`
	UpstreamRPS        int           `env:"UPSTREAM_RPS" envDefault:"10"`

	RulesFile string `env:"RULES_FILE" envDefault:""`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
	// IssueToken - выпустить токен для клиента и завершить работу
	IssueToken  string
}

// WorkerConfig модель настроек обработчиков очереди расчётов
type WorkerConfig struct {
	Count            int
	BatchSize        int
	PollInterval     time.Duration
	MaintainInterval time.Duration
	StaleAfter       time.Duration
	ResultTTL        time.Duration
}

// WhiteConfig фиксированные сборы белой логистики
type WhiteConfig struct {
	LogisticsUSD    float64
	DocsRUB         float64
	BrokerRUB       float64
	VATLogisticsUSD float64
}

// RatesConfig курсы валют по умолчанию
type RatesConfig struct {
	USDToRUB float64
	USDToCNY float64
	EURToRUB float64
}

// UpstreamConfig модель настроек работы с внешними сервисами товара и подбора
type UpstreamConfig struct {
	ProductAddr   string
	InferenceAddr string
	Timeout       time.Duration
	MaxRetries    int
	RetryBase     time.Duration
	RPS           int
}

// RulesConfig источник правил красной зоны
type RulesConfig struct {
	File string
}

// Config модель настроек сервиса
type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Rates    RatesConfig
	White    WhiteConfig
	Upstream UpstreamConfig
	Rules    RulesConfig
}

// ExchangeRates - снимок курсов по умолчанию
func (c RatesConfig) ExchangeRates() models.ExchangeRateSet {
	return models.ExchangeRateSet{
		USDToRUB: decimal.NewFromFloat(c.USDToRUB),
		USDToCNY: decimal.NewFromFloat(c.USDToCNY),
		EURToRUB: decimal.NewFromFloat(c.EURToRUB),
	}
}

// Fees - сборы белой логистики
func (c WhiteConfig) Fees() models.WhiteFees {
	return models.WhiteFees{
		LogisticsUSD:    decimal.NewFromFloat(c.LogisticsUSD),
		DocsRUB:         decimal.NewFromFloat(c.DocsRUB),
		BrokerRUB:       decimal.NewFromFloat(c.BrokerRUB),
		VATLogisticsUSD: decimal.NewFromFloat(c.VATLogisticsUSD),
	}
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server    = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN       = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN, empty for in-memory store")
		secret    = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		workers   = pflag.IntP("workers", "w", args.WorkerCount, "Number of calculation workers")
		product   = pflag.StringP("product", "p", args.ProductAddr, "Product lookup service address.")
		inference = pflag.StringP("inference", "i", args.InferenceAddr, "Inference service address.")
		rules     = pflag.StringP("rules", "r", args.RulesFile, "Classification rules JSON file, empty for embedded rules")
		issue     = pflag.StringP("issue-token", "t", "", "Print JWT for the given client id and exit")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
			IssueToken:  *issue,
		},
		Worker: WorkerConfig{
			Count:            *workers,
			BatchSize:        args.WorkerBatchSize,
			PollInterval:     args.WorkerPollInterval,
			MaintainInterval: args.WorkerMaintain,
			StaleAfter:       args.WorkerStaleAfter,
			ResultTTL:        args.JobResultTTL,
		},
		Rates: RatesConfig{
			USDToRUB: args.USDToRUB,
			USDToCNY: args.USDToCNY,
			EURToRUB: args.EURToRUB,
		},
		White: WhiteConfig{
			LogisticsUSD:    args.WhiteLogisticsUSD,
			DocsRUB:         args.WhiteDocsRUB,
			BrokerRUB:       args.WhiteBrokerRUB,
			VATLogisticsUSD: args.WhiteVATLogisticsUSD,
		},
		Upstream: UpstreamConfig{
			ProductAddr:   *product,
			InferenceAddr: *inference,
			Timeout:       args.UpstreamTimeout,
			MaxRetries:    args.UpstreamMaxRetries,
			RetryBase:     args.UpstreamRetryBase,
			RPS:           args.UpstreamRPS,
		},
		Rules: RulesConfig{
			File: *rules,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Worker: WorkerConfig{
			Count:            4,
			BatchSize:        10,
			PollInterval:     time.Second,
			MaintainInterval: time.Minute,
			StaleAfter:       10 * time.Minute,
			ResultTTL:        24 * time.Hour,
		},
		Rates: RatesConfig{
			USDToRUB: 100,
			USDToCNY: 7.2,
			EURToRUB: 110,
		},
		White: WhiteConfig{
			LogisticsUSD:    1850,
			DocsRUB:         15000,
			BrokerRUB:       25000,
			VATLogisticsUSD: 925,
		},
		Upstream: UpstreamConfig{
			ProductAddr:   "http://localhost:8081",
			InferenceAddr: "http://localhost:8082",
			Timeout:       10 * time.Second,
			MaxRetries:    3,
			RetryBase:     200 * time.Millisecond,
			RPS:           10,
		},
	}
}

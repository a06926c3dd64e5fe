package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	rates := cfg.Rates.ExchangeRates()
	if err := rates.Validate(); err != nil {
		t.Fatalf("Default rates must be valid: %v", err)
	}
	if !rates.USDToCNY.Equal(decimal.RequireFromString("7.2")) {
		t.Errorf("Expected USD/CNY 7.2, got: %s", rates.USDToCNY)
	}

	fees := cfg.White.Fees()
	if !fees.VATLogisticsUSD.Equal(decimal.NewFromInt(925)) || !fees.LogisticsUSD.Equal(decimal.NewFromInt(1850)) {
		t.Errorf("Unexpected white fees: %+v", fees)
	}
	if cfg.Server.DatabaseDSN != "" {
		t.Errorf("Expected in-memory store by default")
	}
	if cfg.Worker.Count <= 0 || cfg.Worker.PollInterval <= 0 || cfg.Worker.MaintainInterval <= 0 {
		t.Errorf("Unexpected worker defaults: %+v", cfg.Worker)
	}
}

package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency - код валюты
type Currency string

// Поддерживаемые валюты
const (
	CurrencyUSD Currency = "USD"
	CurrencyCNY Currency = "CNY"
	CurrencyRUB Currency = "RUB"
)

// ParseCurrency - разбор кода валюты, регистр не важен
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.Supported() {
		return "", NewCalcError(KindUnsupportedCurrency, "currency", "unsupported currency %q", code)
	}
	return c, nil
}

// Supported - валюта входит в USD/CNY/RUB
func (c Currency) Supported() bool {
	switch c {
	case CurrencyUSD, CurrencyCNY, CurrencyRUB:
		return true
	}
	return false
}

// MonetaryAmount - сумма в одной из поддерживаемых валют
type MonetaryAmount struct {
	Value    decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewAmount - вспомогательный конструктор суммы
func NewAmount(value float64, currency Currency) MonetaryAmount {
	return MonetaryAmount{Value: decimal.NewFromFloat(value), Currency: currency}
}

// Mul - сумма, умноженная на коэффициент, в той же валюте
func (m MonetaryAmount) Mul(k decimal.Decimal) MonetaryAmount {
	return MonetaryAmount{Value: m.Value.Mul(k), Currency: m.Currency}
}

// ExchangeRateSet - снимок курсов валют на момент расчёта
type ExchangeRateSet struct {
	USDToRUB decimal.Decimal `json:"usd_rub"`
	USDToCNY decimal.Decimal `json:"usd_cny"`
	EURToRUB decimal.Decimal `json:"eur_rub"`
}

// Validate - все курсы должны быть строго положительными
func (r ExchangeRateSet) Validate() error {
	errs := &CalcError{}
	if !r.USDToRUB.IsPositive() {
		errs.Add(KindValidation, "usd_rub", "exchange rate must be > 0")
	}
	if !r.USDToCNY.IsPositive() {
		errs.Add(KindValidation, "usd_cny", "exchange rate must be > 0")
	}
	if !r.EURToRUB.IsPositive() {
		errs.Add(KindValidation, "eur_rub", "exchange rate must be > 0")
	}
	return errs.ErrOrNil()
}

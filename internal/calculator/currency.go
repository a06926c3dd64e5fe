package calculator

import (
	"github.com/denmor86/landed-cost/internal/models"
	"github.com/shopspring/decimal"
)

// ToBase - перевод суммы в базовую валюту (USD) по снимку курсов
func ToBase(amount models.MonetaryAmount, rates models.ExchangeRateSet) (decimal.Decimal, error) {
	switch amount.Currency {
	case models.CurrencyUSD:
		return amount.Value, nil
	case models.CurrencyCNY:
		if !rates.USDToCNY.IsPositive() {
			return decimal.Zero, models.NewCalcError(models.KindValidation, "usd_cny", "exchange rate must be > 0")
		}
		return amount.Value.Div(rates.USDToCNY), nil
	case models.CurrencyRUB:
		if !rates.USDToRUB.IsPositive() {
			return decimal.Zero, models.NewCalcError(models.KindValidation, "usd_rub", "exchange rate must be > 0")
		}
		return amount.Value.Div(rates.USDToRUB), nil
	}
	return decimal.Zero, models.NewCalcError(models.KindUnsupportedCurrency, "currency", "unsupported currency %q", amount.Currency)
}

// FromBase - перевод суммы из USD в указанную валюту
func FromBase(usd decimal.Decimal, currency models.Currency, rates models.ExchangeRateSet) (decimal.Decimal, error) {
	switch currency {
	case models.CurrencyUSD:
		return usd, nil
	case models.CurrencyCNY:
		return usd.Mul(rates.USDToCNY), nil
	case models.CurrencyRUB:
		return usd.Mul(rates.USDToRUB), nil
	}
	return decimal.Zero, models.NewCalcError(models.KindUnsupportedCurrency, "currency", "unsupported currency %q", currency)
}

// round2 - округление денежных сумм до копеек, половина от нуля
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

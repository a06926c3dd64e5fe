package calculator

import (
	"errors"
	"fmt"

	"github.com/denmor86/landed-cost/internal/models"
	"github.com/shopspring/decimal"
)

func validateWhite(in models.WhiteLogisticsInput, rates models.ExchangeRateSet) error {
	errs := &models.CalcError{}
	if !in.WeightKg.IsPositive() {
		errs.Add(models.KindValidation, models.FieldWeight, "weight must be > 0")
	}
	if !in.GoodsValueCNY.IsPositive() {
		errs.Add(models.KindValidation, "goods_value_cny", "goods value must be > 0")
	}
	if in.DutySchedule.DutyRate.IsNegative() {
		errs.Add(models.KindValidation, "duty_rate", "duty rate must be >= 0")
	}
	if in.DutySchedule.VATRatePercent.IsNegative() {
		errs.Add(models.KindValidation, "vat_rate", "vat rate must be >= 0")
	}
	errs.Merge(models.AsCalcError(rates.Validate()))
	return errs.ErrOrNil()
}

// CalculateWhite - расчёт белой логистики: фиксированная логистика, товар, документы и брокер, пошлина и НДС
func CalculateWhite(in models.WhiteLogisticsInput, rates models.ExchangeRateSet) (models.WhiteLogisticsResult, error) {
	if err := validateWhite(in, rates); err != nil {
		return models.WhiteLogisticsResult{}, err
	}
	if in.QuantityUnits <= 0 {
		return models.WhiteLogisticsResult{}, models.NewCalcError(models.KindInvalidQuantity, "quantity_units",
			"quantity must be > 0 to compute cost per unit, got %d", in.QuantityUnits)
	}

	var warnings []string
	qty := in.QuantityUnits
	duty, err := CalculateDuty(in.DutySchedule, in.WeightKg, &qty, rates.EURToRUB)
	if errors.Is(err, ErrUnknownDutyType) {
		warnings = append(warnings, fmt.Sprintf("unknown duty type %q, duty assumed 0", in.DutySchedule.DutyType))
	}

	goodsUSD, err := ToBase(models.MonetaryAmount{Value: in.GoodsValueCNY, Currency: models.CurrencyCNY}, rates)
	if err != nil {
		return models.WhiteLogisticsResult{}, err
	}
	vat := CalculateVAT(goodsUSD, duty, in.DutySchedule.VATRatePercent, in.Fees.VATLogisticsUSD, rates.USDToRUB)

	res := models.WhiteLogisticsResult{
		LogisticsRUB:  round2(in.Fees.LogisticsUSD.Mul(rates.USDToRUB)),
		GoodsValueUSD: round2(goodsUSD),
		GoodsValueRUB: round2(goodsUSD.Mul(rates.USDToRUB)),
		DocsRUB:       round2(in.Fees.DocsRUB),
		BrokerRUB:     round2(in.Fees.BrokerRUB),
		DutyRUB:       round2(duty),
		VATRUB:        round2(vat),
		Warnings:      warnings,
	}
	res.TotalRUB = res.LogisticsRUB.
		Add(res.GoodsValueRUB).
		Add(res.DocsRUB).
		Add(res.BrokerRUB).
		Add(res.DutyRUB).
		Add(res.VATRUB)
	res.CostPerUnitRUB = round2(res.TotalRUB.Div(decimal.NewFromInt(int64(qty))))
	res.CostPerKgRUB = round2(res.TotalRUB.Div(in.WeightKg))
	return res, nil
}

package calculator

import (
	"fmt"

	"github.com/denmor86/landed-cost/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Density - плотность груза, кг/м³
func Density(weightKg, volumeM3 decimal.Decimal) (decimal.Decimal, error) {
	if !weightKg.IsPositive() || !volumeM3.IsPositive() {
		return decimal.Zero, models.NewCalcError(models.KindInvalidQuantity, "volume_m3",
			"density is undefined for weight %s and volume %s", weightKg, volumeM3)
	}
	return weightKg.Div(volumeM3), nil
}

func validateCargo(in models.CargoInput, rates models.ExchangeRateSet) error {
	errs := &models.CalcError{}
	if !in.WeightKg.IsPositive() {
		errs.Add(models.KindValidation, models.FieldWeight, "weight must be > 0")
	}
	if !in.VolumeM3.IsPositive() {
		errs.Add(models.KindValidation, models.FieldVolume, "volume must be > 0")
	}
	if !in.GoodsValue.Value.IsPositive() {
		errs.Add(models.KindValidation, "goods_value", "goods value must be > 0")
	}
	if !in.GoodsValue.Currency.Supported() {
		errs.Add(models.KindUnsupportedCurrency, "currency", fmt.Sprintf("unsupported currency %q", in.GoodsValue.Currency))
	}
	if in.QuantityUnits != nil && *in.QuantityUnits < 0 {
		errs.Add(models.KindValidation, "quantity_units", "quantity must be positive")
	}
	if !rates.USDToRUB.IsPositive() {
		errs.Add(models.KindValidation, "usd_rub", "exchange rate must be > 0")
	}
	if !rates.USDToCNY.IsPositive() {
		errs.Add(models.KindValidation, "usd_cny", "exchange rate must be > 0")
	}
	return errs.ErrOrNil()
}

// CalculateCargo - полный расчёт стоимости доставки карго.
// При ошибке результат не формируется.
func CalculateCargo(in models.CargoInput, rates models.ExchangeRateSet) (models.CargoResult, error) {
	if err := validateCargo(in, rates); err != nil {
		return models.CargoResult{}, err
	}

	goodsUSD, err := ToBase(in.GoodsValue, rates)
	if err != nil {
		return models.CargoResult{}, err
	}
	goodsCNY := goodsUSD.Mul(rates.USDToCNY)
	if in.GoodsValue.Currency == models.CurrencyCNY {
		goodsCNY = in.GoodsValue.Value
	}
	goodsRUB := goodsUSD.Mul(rates.USDToRUB)
	if in.GoodsValue.Currency == models.CurrencyRUB {
		goodsRUB = in.GoodsValue.Value
	}

	density, err := Density(in.WeightKg, in.VolumeM3)
	if err != nil {
		return models.CargoResult{}, err
	}

	tariffType, tariffRate := ResolveTariff(density)
	freight := tariffRate.Mul(in.WeightKg)
	if tariffType == models.TariffPerM3 {
		freight = tariffRate.Mul(in.VolumeM3)
	}

	specificValue := goodsUSD.Div(in.WeightKg)
	insuranceRate := ResolveInsuranceRate(specificValue)
	insurance := goodsUSD.Mul(insuranceRate)

	commissionRate := ResolveCommissionRate(goodsCNY)
	commissionCNY := goodsCNY.Mul(commissionRate)
	commissionUSD := commissionCNY.Div(rates.USDToCNY)

	res := models.CargoResult{
		DensityKgM3:           round2(density),
		TariffType:            tariffType,
		TariffRateUSD:         tariffRate,
		SpecificValueUSDPerKg: round2(specificValue),
		InsuranceRate:         insuranceRate,
		BuyerCommissionRate:   commissionRate,
		GoodsValueUSD:         round2(goodsUSD),
		GoodsValueCNY:         round2(goodsCNY),
		GoodsValueRUB:         round2(goodsRUB),
		FreightUSD:            round2(freight),
		InsuranceUSD:          round2(insurance),
		BuyerCommissionCNY:    round2(commissionCNY),
		BuyerCommissionUSD:    round2(commissionUSD),
	}
	res.TotalUSD = res.FreightUSD.Add(res.InsuranceUSD).Add(res.BuyerCommissionUSD)
	res.TotalRUB = round2(res.TotalUSD.Mul(rates.USDToRUB))
	res.CostPerKgUSD = round2(res.TotalUSD.Div(in.WeightKg))
	res.CostPerKgRUB = round2(res.TotalRUB.Div(in.WeightKg))

	if in.QuantityUnits != nil && *in.QuantityUnits > 0 {
		qty := decimal.NewFromInt(int64(*in.QuantityUnits))
		perUnitUSD := round2(res.TotalUSD.Div(qty))
		perUnitRUB := round2(res.TotalRUB.Div(qty))
		res.CostPerUnitUSD = &perUnitUSD
		res.CostPerUnitRUB = &perUnitRUB
	}
	res.Summary = cargoSummary(res)
	return res, nil
}

func cargoSummary(res models.CargoResult) string {
	unit := "кг"
	if res.TariffType == models.TariffPerM3 {
		unit = "м³"
	}
	s := fmt.Sprintf("Итоговая стоимость карго: %s USD (%s ₽), за кг: %s USD (%s ₽)",
		res.TotalUSD.StringFixed(2), res.TotalRUB.StringFixed(2),
		res.CostPerKgUSD.StringFixed(2), res.CostPerKgRUB.StringFixed(2))
	if res.CostPerUnitUSD != nil {
		s += fmt.Sprintf(", за штуку: %s USD (%s ₽)",
			res.CostPerUnitUSD.StringFixed(2), res.CostPerUnitRUB.StringFixed(2))
	}
	s += fmt.Sprintf(". Плотность: %s кг/м³, тариф: %s (%s USD/%s), страховка: %s%%, комиссия байера: %s%%.",
		res.DensityKgM3.StringFixed(1), res.TariffType, res.TariffRateUSD.StringFixed(2), unit,
		res.InsuranceRate.Mul(hundred).StringFixed(0), res.BuyerCommissionRate.Mul(hundred).StringFixed(0))
	return s
}

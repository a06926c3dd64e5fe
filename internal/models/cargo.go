package models

import "github.com/shopspring/decimal"

// TariffType - способ тарификации карго
type TariffType string

const (
	TariffPerKg TariffType = "per_kg"
	TariffPerM3 TariffType = "per_m3"
)

// CargoInput - входные данные расчёта карго по всей партии
type CargoInput struct {
	WeightKg      decimal.Decimal `json:"weight_kg"`
	VolumeM3      decimal.Decimal `json:"volume_m3"`
	QuantityUnits *int            `json:"quantity_units,omitempty"`
	GoodsValue    MonetaryAmount  `json:"goods_value"`
}

// CargoResult - разбивка стоимости карго
type CargoResult struct {
	DensityKgM3           decimal.Decimal  `json:"density_kg_m3"`
	TariffType            TariffType       `json:"tariff_type"`
	TariffRateUSD         decimal.Decimal  `json:"tariff_rate_usd"`
	SpecificValueUSDPerKg decimal.Decimal  `json:"specific_value_usd_per_kg"`
	InsuranceRate         decimal.Decimal  `json:"insurance_rate"`
	BuyerCommissionRate   decimal.Decimal  `json:"buyer_commission_rate"`
	GoodsValueUSD         decimal.Decimal  `json:"goods_value_usd"`
	GoodsValueCNY         decimal.Decimal  `json:"goods_value_cny"`
	GoodsValueRUB         decimal.Decimal  `json:"goods_value_rub"`
	FreightUSD            decimal.Decimal  `json:"freight_usd"`
	InsuranceUSD          decimal.Decimal  `json:"insurance_usd"`
	BuyerCommissionCNY    decimal.Decimal  `json:"buyer_commission_cny"`
	BuyerCommissionUSD    decimal.Decimal  `json:"buyer_commission_usd"`
	TotalUSD              decimal.Decimal  `json:"total_usd"`
	TotalRUB              decimal.Decimal  `json:"total_rub"`
	CostPerKgUSD          decimal.Decimal  `json:"cost_per_kg_usd"`
	CostPerKgRUB          decimal.Decimal  `json:"cost_per_kg_rub"`
	CostPerUnitUSD        *decimal.Decimal `json:"cost_per_unit_usd"`
	CostPerUnitRUB        *decimal.Decimal `json:"cost_per_unit_rub"`
	Summary               string           `json:"summary"`
}

package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DutyType - тип пошлины по коду ТН ВЭД
type DutyType string

const (
	DutyByWeight DutyType = "by_weight"
	DutyByUnit   DutyType = "by_unit"
	DutyByPair   DutyType = "by_pair"
)

// ParseDutyType - приводит тип пошлины к каноническому виду.
// Понимает как коды (by_weight), так и русские названия (по весу).
// Неизвестный тип возвращается как есть с ok=false.
func ParseDutyType(raw string) (DutyType, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case string(DutyByWeight), "по весу", "weight":
		return DutyByWeight, true
	case string(DutyByUnit), "по единице", "unit":
		return DutyByUnit, true
	case string(DutyByPair), "по паре", "pair":
		return DutyByPair, true
	}
	return DutyType(s), false
}

// TnvedDutySchedule - пошлина и НДС, привязанные к коду ТН ВЭД
type TnvedDutySchedule struct {
	DutyType       DutyType        `json:"duty_type"`
	DutyRate       decimal.Decimal `json:"duty_rate"`
	VATRatePercent decimal.Decimal `json:"vat_rate"`
}

// WhiteFees - фиксированные сборы белой логистики
type WhiteFees struct {
	LogisticsUSD    decimal.Decimal `json:"fixed_logistics_usd"`
	DocsRUB         decimal.Decimal `json:"fixed_docs_rub"`
	BrokerRUB       decimal.Decimal `json:"fixed_broker_rub"`
	VATLogisticsUSD decimal.Decimal `json:"vat_logistics_usd"`
}

// WhiteLogisticsInput - входные данные расчёта белой логистики
type WhiteLogisticsInput struct {
	WeightKg      decimal.Decimal   `json:"weight_kg"`
	QuantityUnits int               `json:"quantity_units"`
	GoodsValueCNY decimal.Decimal   `json:"goods_value_cny"`
	DutySchedule  TnvedDutySchedule `json:"duty_schedule"`
	Fees          WhiteFees         `json:"fees"`
}

// WhiteLogisticsResult - разбивка стоимости белой логистики в рублях
type WhiteLogisticsResult struct {
	LogisticsRUB   decimal.Decimal `json:"logistics_rub"`
	GoodsValueUSD  decimal.Decimal `json:"goods_value_usd"`
	GoodsValueRUB  decimal.Decimal `json:"goods_value_rub"`
	DocsRUB        decimal.Decimal `json:"docs_rub"`
	BrokerRUB      decimal.Decimal `json:"broker_rub"`
	DutyRUB        decimal.Decimal `json:"duty_rub"`
	VATRUB         decimal.Decimal `json:"vat_rub"`
	TotalRUB       decimal.Decimal `json:"total_rub"`
	CostPerUnitRUB decimal.Decimal `json:"cost_per_unit_rub"`
	CostPerKgRUB   decimal.Decimal `json:"cost_per_kg_rub"`
	Warnings       []string        `json:"warnings,omitempty"`
}

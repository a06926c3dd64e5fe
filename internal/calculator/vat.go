package calculator

import "github.com/shopspring/decimal"

// CalculateVAT - НДС в рублях.
// База: таможенная стоимость товара, логистика для НДС (отдельная константа) и пошлина.
func CalculateVAT(goodsValueUSD, dutyRUB, vatRatePercent, vatLogisticsUSD, usdToRub decimal.Decimal) decimal.Decimal {
	base := goodsValueUSD.Mul(usdToRub).
		Add(vatLogisticsUSD.Mul(usdToRub)).
		Add(dutyRUB)
	return base.Mul(vatRatePercent).Div(hundred)
}

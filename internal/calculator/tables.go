package calculator

import (
	"sort"

	"github.com/denmor86/landed-cost/internal/models"
	"github.com/shopspring/decimal"
)

// band - полоса таблицы: значение действует до upTo включительно
type band struct {
	upTo  decimal.Decimal
	value decimal.Decimal
}

// thresholdTable - упорядоченная по возрастанию границ таблица порогов
type thresholdTable struct {
	bands []band
	above decimal.Decimal
}

func newTable(above string, pairs ...string) thresholdTable {
	t := thresholdTable{above: decimal.RequireFromString(above)}
	for i := 0; i+1 < len(pairs); i += 2 {
		t.bands = append(t.bands, band{
			upTo:  decimal.RequireFromString(pairs[i]),
			value: decimal.RequireFromString(pairs[i+1]),
		})
	}
	return t
}

// lookup - первая полоса, верхняя граница которой не меньше x
func (t thresholdTable) lookup(x decimal.Decimal) decimal.Decimal {
	i := sort.Search(len(t.bands), func(i int) bool {
		return x.LessThanOrEqual(t.bands[i].upTo)
	})
	if i == len(t.bands) {
		return t.above
	}
	return t.bands[i].value
}

var (
	// MinPerKgDensity - ниже этой плотности груз тарифицируется по объёму
	MinPerKgDensity = decimal.NewFromInt(100)
	// PerM3Rate - тариф за кубометр для лёгких грузов, USD
	PerM3Rate = decimal.NewFromInt(500)

	// тариф USD/кг по плотности, кг/м³
	densityTable = newTable("3.1",
		"110", "4.9",
		"120", "4.8",
		"130", "4.7",
		"140", "4.6",
		"150", "4.5",
		"160", "4.4",
		"170", "4.3",
		"180", "4.2",
		"190", "4.1",
		"200", "4.0",
		"250", "3.9",
		"300", "3.8",
		"350", "3.7",
		"400", "3.6",
		"500", "3.5",
		"600", "3.4",
		"800", "3.3",
		"1000", "3.2",
	)

	// ставка страховки по удельной стоимости, USD/кг
	insuranceTable = newTable("0.10",
		"30", "0.01",
		"50", "0.02",
		"100", "0.03",
		"200", "0.05",
	)

	// комиссия байера по сумме партии в юанях
	commissionTable = newTable("0.01",
		"1000", "0.05",
		"5000", "0.04",
		"10000", "0.03",
		"50000", "0.02",
	)
)

// ResolveTariff - тип и ставка тарифа по плотности груза
func ResolveTariff(density decimal.Decimal) (models.TariffType, decimal.Decimal) {
	if density.LessThan(MinPerKgDensity) {
		return models.TariffPerM3, PerM3Rate
	}
	return models.TariffPerKg, densityTable.lookup(density)
}

// ResolveInsuranceRate - ставка страховки по удельной стоимости.
// Вызывающий отвечает за ненулевой вес.
func ResolveInsuranceRate(specificValueUSDPerKg decimal.Decimal) decimal.Decimal {
	return insuranceTable.lookup(specificValueUSDPerKg)
}

// ResolveCommissionRate - комиссия байера по стоимости партии в юанях
func ResolveCommissionRate(goodsValueCNY decimal.Decimal) decimal.Decimal {
	return commissionTable.lookup(goodsValueCNY)
}

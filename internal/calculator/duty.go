package calculator

import (
	"errors"

	"github.com/denmor86/landed-cost/internal/models"
	"github.com/shopspring/decimal"
)

// ErrUnknownDutyType - тип пошлины не распознан, пошлина принята равной нулю
var ErrUnknownDutyType = errors.New("unknown duty type")

// CalculateDuty - пошлина в рублях по графику кода ТН ВЭД.
// Для неизвестного типа возвращает ноль и ErrUnknownDutyType, чтобы вызывающий выдал предупреждение.
func CalculateDuty(schedule models.TnvedDutySchedule, weightKg decimal.Decimal, quantityUnits *int, eurToRub decimal.Decimal) (decimal.Decimal, error) {
	dutyType, ok := models.ParseDutyType(string(schedule.DutyType))
	if !ok {
		return decimal.Zero, ErrUnknownDutyType
	}
	switch dutyType {
	case models.DutyByWeight:
		return weightKg.Mul(schedule.DutyRate).Mul(eurToRub), nil
	case models.DutyByUnit, models.DutyByPair:
		qty := int64(1)
		if quantityUnits != nil {
			qty = int64(*quantityUnits)
		}
		return decimal.NewFromInt(qty).Mul(schedule.DutyRate).Mul(eurToRub), nil
	}
	return decimal.Zero, ErrUnknownDutyType
}

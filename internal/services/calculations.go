package services

import (
	"github.com/denmor86/landed-cost/internal/calculator"
	"github.com/denmor86/landed-cost/internal/models"
)

// CalculatorService - синхронные расчёты карго и белой логистики с курсами и сборами по умолчанию
type CalculatorService struct {
	Rates models.ExchangeRateSet
	Fees  models.WhiteFees
}

func NewCalculatorService(rates models.ExchangeRateSet, fees models.WhiteFees) *CalculatorService {
	return &CalculatorService{Rates: rates, Fees: fees}
}

func (s *CalculatorService) rates(override *models.ExchangeRateSet) models.ExchangeRateSet {
	if override != nil {
		return *override
	}
	return s.Rates
}

func (s *CalculatorService) Cargo(req models.CargoRequest) (models.CargoResult, error) {
	return calculator.CalculateCargo(models.CargoInput{
		WeightKg:      req.WeightKg,
		VolumeM3:      req.VolumeM3,
		QuantityUnits: req.QuantityUnits,
		GoodsValue:    req.GoodsValue,
	}, s.rates(req.Rates))
}

func (s *CalculatorService) White(req models.WhiteRequest) (models.WhiteLogisticsResult, error) {
	return calculator.CalculateWhite(models.WhiteLogisticsInput{
		WeightKg:      req.WeightKg,
		QuantityUnits: req.QuantityUnits,
		GoodsValueCNY: req.GoodsValueCNY,
		DutySchedule:  req.DutySchedule,
		Fees:          s.Fees,
	}, s.rates(req.Rates))
}

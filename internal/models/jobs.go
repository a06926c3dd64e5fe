package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus - статус задачи расчёта
type JobStatus string

const (
	StatusQueued         JobStatus = "QUEUED"
	StatusFetching       JobStatus = "FETCHING"
	StatusAwaitingFields JobStatus = "AWAITING_FIELDS"
	StatusClassifying    JobStatus = "CLASSIFYING"
	StatusRiskChecked    JobStatus = "RISK_CHECKED"
	StatusComputing      JobStatus = "COMPUTING"
	StatusDone           JobStatus = "DONE"
	StatusFailed         JobStatus = "FAILED"
)

var statusRank = map[JobStatus]int{
	StatusQueued:         0,
	StatusFetching:       1,
	StatusAwaitingFields: 2,
	StatusClassifying:    3,
	StatusRiskChecked:    4,
	StatusComputing:      5,
	StatusDone:           6,
}

// Valid - известный статус
func (s JobStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok || s == StatusFailed
}

// IsTerminal - DONE и FAILED неизменяемы
func (s JobStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusFailed
}

// CanTransition - переходы только вперёд, FAILED достижим из любого нетерминального статуса
func (s JobStatus) CanTransition(to JobStatus) bool {
	if s.IsTerminal() || !to.Valid() {
		return false
	}
	if to == StatusFailed {
		return true
	}
	return statusRank[to] > statusRank[s]
}

// ActiveStatuses - статусы, в которых задача удерживается обработчиком
func ActiveStatuses() []JobStatus {
	return []JobStatus{StatusFetching, StatusAwaitingFields, StatusClassifying, StatusRiskChecked, StatusComputing}
}

// CalculationPath - какие направления логистики считать
type CalculationPath string

const (
	PathCargo CalculationPath = "cargo"
	PathWhite CalculationPath = "white"
	PathBoth  CalculationPath = "both"
)

// IncludesCargo - нужен расчёт карго
func (p CalculationPath) IncludesCargo() bool {
	return p == PathCargo || p == PathBoth || p == ""
}

// IncludesWhite - нужен расчёт белой логистики
func (p CalculationPath) IncludesWhite() bool {
	return p == PathWhite || p == PathBoth || p == ""
}

// JobPayload - исходные данные задачи
type JobPayload struct {
	Article       string           `json:"article,omitempty"`
	Product       *ProductRecord   `json:"product,omitempty"`
	QuantityUnits *int             `json:"quantity_units,omitempty"`
	Path          CalculationPath  `json:"path"`
	Rates         *ExchangeRateSet `json:"rates,omitempty"`
}

// JobResult - сохранённый результат задачи
type JobResult struct {
	Outcome
	Blocked        bool                    `json:"blocked,omitempty"`
	Decision       *ClassificationDecision `json:"decision,omitempty"`
	Product        *ProductRecord          `json:"product,omitempty"`
	Classification *TnvedData              `json:"classification,omitempty"`
	Cargo          *CargoResult            `json:"cargo,omitempty"`
	White          *WhiteLogisticsResult   `json:"white,omitempty"`
	Warnings       []string                `json:"warnings,omitempty"`
}

// CalculationJob - задача расчёта в очереди
type CalculationJob struct {
	ID              string     `json:"job_id"`
	ClientID        string     `json:"-"`
	Status          JobStatus  `json:"status"`
	Payload         JobPayload `json:"payload"`
	Result          *JobResult `json:"result,omitempty"`
	CancelRequested bool       `json:"cancel_requested,omitempty"`
	Attempts        int        `json:"attempts"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

// CalculationRequest - запрос на постановку задачи
type CalculationRequest struct {
	JobID         string           `json:"job_id" validate:"omitempty,uuid"`
	Article       string           `json:"article" validate:"required_without=Product,omitempty,article"`
	Product       *ProductRecord   `json:"product" validate:"required_without=Article"`
	QuantityUnits *int             `json:"quantity_units" validate:"omitempty,gt=0"`
	Path          CalculationPath  `json:"path" validate:"omitempty,oneof=cargo white both"`
	Rates         *ExchangeRateSet `json:"rates"`
}

// Payload - данные задачи из запроса
func (r CalculationRequest) Payload() JobPayload {
	path := r.Path
	if path == "" {
		path = PathBoth
	}
	return JobPayload{
		Article:       r.Article,
		Product:       r.Product,
		QuantityUnits: r.QuantityUnits,
		Path:          path,
		Rates:         r.Rates,
	}
}

// CargoRequest - синхронный расчёт карго
type CargoRequest struct {
	WeightKg      decimal.Decimal  `json:"weight_kg"`
	VolumeM3      decimal.Decimal  `json:"volume_m3"`
	QuantityUnits *int             `json:"quantity_units" validate:"omitempty,gt=0"`
	GoodsValue    MonetaryAmount   `json:"goods_value"`
	Rates         *ExchangeRateSet `json:"rates"`
}

// WhiteRequest - синхронный расчёт белой логистики
type WhiteRequest struct {
	WeightKg      decimal.Decimal   `json:"weight_kg"`
	QuantityUnits int               `json:"quantity_units"`
	GoodsValueCNY decimal.Decimal   `json:"goods_value_cny"`
	DutySchedule  TnvedDutySchedule `json:"duty_schedule"`
	Rates         *ExchangeRateSet  `json:"rates"`
}

// ClassificationRequest - проверка кода по правилам
type ClassificationRequest struct {
	Code string `json:"code" validate:"required,max=32"`
}

// CalculationResponse - конверт ответа синхронных расчётов
type CalculationResponse struct {
	Outcome
	Result interface{} `json:"result,omitempty"`
}

// OutcomeResult - результат задачи, состоящий только из ошибки
func OutcomeResult(err error) JobResult {
	return JobResult{Outcome: OutcomeFromError(err)}
}

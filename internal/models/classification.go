package models

import "github.com/shopspring/decimal"

// Decision - решение проверки кода ТН ВЭД по красной зоне
type Decision string

const (
	DecisionBlock Decision = "BLOCK"
	DecisionRisk  Decision = "RISK"
	DecisionAllow Decision = "ALLOW"
)

// Valid - решение входит в BLOCK/RISK/ALLOW
func (d Decision) Valid() bool {
	return d == DecisionBlock || d == DecisionRisk || d == DecisionAllow
}

// ClassificationDecision - результат проверки кода правилами.
// ALLOW без совпадения не содержит причины и индекса правила.
type ClassificationDecision struct {
	Decision         Decision `json:"decision"`
	Code             string   `json:"code"`
	Reason           *string  `json:"reason,omitempty"`
	MatchedRuleIndex *int     `json:"matched_rule_index,omitempty"`
	MatchedRuleID    string   `json:"matched_rule_id,omitempty"`
	RulesVersion     string   `json:"rules_version,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

// TnvedData - ответ сервиса подбора кода ТН ВЭД
type TnvedData struct {
	Code           string          `json:"code"`
	DutyType       string          `json:"duty_type"`
	DutyRate       decimal.Decimal `json:"duty_rate"`
	VATRatePercent decimal.Decimal `json:"vat_rate"`
}

// Schedule - график пошлин по данным подбора
func (t TnvedData) Schedule() TnvedDutySchedule {
	dutyType, _ := ParseDutyType(t.DutyType)
	return TnvedDutySchedule{
		DutyType:       dutyType,
		DutyRate:       t.DutyRate,
		VATRatePercent: t.VATRatePercent,
	}
}

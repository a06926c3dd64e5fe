package classification

import (
	"fmt"

	"github.com/denmor86/landed-cost/internal/models"
)

// ConditionType - вид условия правила
type ConditionType string

const (
	ConditionPrefix ConditionType = "prefix"
	ConditionRange  ConditionType = "range"
	ConditionExact  ConditionType = "exact"
)

// Condition - условие совпадения кода
type Condition interface {
	Type() ConditionType
	Match(code Code) bool
}

// PrefixCondition - первые Length цифр равны Value
type PrefixCondition struct {
	Length int
	Value  string
}

func (c PrefixCondition) Type() ConditionType { return ConditionPrefix }

func (c PrefixCondition) Match(code Code) bool {
	if c.Length < 1 || c.Length > len(code) {
		return false
	}
	return string(code[:c.Length]) == c.Value
}

// RangeCondition - первые Length цифр лежат в [Low, High] при строковом сравнении
type RangeCondition struct {
	Length int
	Low    string
	High   string
}

func (c RangeCondition) Type() ConditionType { return ConditionRange }

func (c RangeCondition) Match(code Code) bool {
	if c.Length < 1 || c.Length > len(code) {
		return false
	}
	p := string(code[:c.Length])
	return c.Low <= p && p <= c.High
}

// ExactCondition - полное совпадение 10-значного кода
type ExactCondition struct {
	Value Code
}

func (c ExactCondition) Type() ConditionType { return ConditionExact }

func (c ExactCondition) Match(code Code) bool {
	return code == c.Value
}

// Rule - правило красной зоны, приоритет задаётся позицией в списке
type Rule struct {
	ID         string
	Decision   models.Decision
	Conditions []Condition
	Reason     string
}

// Matches - совпадение хотя бы одного условия
func (r Rule) Matches(code Code) bool {
	for _, c := range r.Conditions {
		if c.Match(code) {
			return true
		}
	}
	return false
}

// Validate - проверка решения и условий правила
func (r Rule) Validate() error {
	if !r.Decision.Valid() {
		return fmt.Errorf("rule %q: unknown decision %q", r.ID, r.Decision)
	}
	if len(r.Conditions) == 0 {
		return fmt.Errorf("rule %q: no conditions", r.ID)
	}
	for i, c := range r.Conditions {
		if err := validateCondition(c); err != nil {
			return fmt.Errorf("rule %q condition %d: %w", r.ID, i, err)
		}
	}
	return nil
}

func validateCondition(c Condition) error {
	switch c := c.(type) {
	case PrefixCondition:
		if c.Length < 1 || c.Length > CodeLength || len(c.Value) != c.Length || !isDigits(c.Value) {
			return fmt.Errorf("%w: prefix %q of length %d", ErrInvalidRule, c.Value, c.Length)
		}
	case RangeCondition:
		if c.Length < 1 || c.Length > CodeLength || len(c.Low) != c.Length || len(c.High) != c.Length ||
			!isDigits(c.Low) || !isDigits(c.High) || c.Low > c.High {
			return fmt.Errorf("%w: range [%q, %q] of length %d", ErrInvalidRule, c.Low, c.High, c.Length)
		}
	case ExactCondition:
		if len(c.Value) != CodeLength || !isDigits(string(c.Value)) {
			return fmt.Errorf("%w: exact %q", ErrInvalidRule, c.Value)
		}
	default:
		return fmt.Errorf("%w: unsupported condition %T", ErrInvalidRule, c)
	}
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Evaluate - первое совпавшее правило по порядку списка, иначе ALLOW без причины
func Evaluate(code Code, rules []Rule) models.ClassificationDecision {
	if len(code) != CodeLength {
		code = Normalize(string(code))
	}
	for i, rule := range rules {
		if !rule.Matches(code) {
			continue
		}
		idx := i
		reason := rule.Reason
		return models.ClassificationDecision{
			Decision:         rule.Decision,
			Code:             string(code),
			Reason:           &reason,
			MatchedRuleIndex: &idx,
			MatchedRuleID:    rule.ID,
		}
	}
	return models.ClassificationDecision{Decision: models.DecisionAllow, Code: string(code)}
}

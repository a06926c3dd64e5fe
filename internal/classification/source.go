package classification

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/denmor86/landed-cost/internal/models"
)

var ErrInvalidRule = errors.New("invalid classification rule")

//go:embed default_rules.json
var defaultRules []byte

// RuleSet - версионированный упорядоченный список правил, только для чтения
type RuleSet struct {
	Version string
	Rules   []Rule
}

type conditionDTO struct {
	Type   ConditionType   `json:"type"`
	Length int             `json:"length"`
	Value  json.RawMessage `json:"value"`
}

type ruleDTO struct {
	ID         string          `json:"id"`
	Decision   models.Decision `json:"decision"`
	Reason     string          `json:"reason"`
	Conditions []conditionDTO  `json:"conditions"`
}

type ruleSetDTO struct {
	Version string    `json:"version"`
	Rules   []ruleDTO `json:"rules"`
}

func (c conditionDTO) toCondition() (Condition, error) {
	switch c.Type {
	case ConditionPrefix:
		var v string
		if err := json.Unmarshal(c.Value, &v); err != nil {
			return nil, fmt.Errorf("%w: prefix value: %v", ErrInvalidRule, err)
		}
		return PrefixCondition{Length: c.Length, Value: v}, nil
	case ConditionRange:
		var v []string
		if err := json.Unmarshal(c.Value, &v); err != nil || len(v) != 2 {
			return nil, fmt.Errorf("%w: range value must be [low, high]", ErrInvalidRule)
		}
		return RangeCondition{Length: c.Length, Low: v[0], High: v[1]}, nil
	case ConditionExact:
		var v string
		if err := json.Unmarshal(c.Value, &v); err != nil {
			return nil, fmt.Errorf("%w: exact value: %v", ErrInvalidRule, err)
		}
		return ExactCondition{Value: Code(v)}, nil
	}
	return nil, fmt.Errorf("%w: unknown condition type %q", ErrInvalidRule, c.Type)
}

// LoadRuleSet - разбор и проверка набора правил из JSON
func LoadRuleSet(r io.Reader) (*RuleSet, error) {
	var dto ruleSetDTO
	dec := json.NewDecoder(r)
	if err := dec.Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	set := &RuleSet{Version: dto.Version, Rules: make([]Rule, 0, len(dto.Rules))}
	for i, rd := range dto.Rules {
		rule := Rule{ID: rd.ID, Decision: rd.Decision, Reason: rd.Reason}
		if rule.ID == "" {
			rule.ID = fmt.Sprintf("rule-%d", i)
		}
		for _, cd := range rd.Conditions {
			cond, err := cd.toCondition()
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", rule.ID, err)
			}
			rule.Conditions = append(rule.Conditions, cond)
		}
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		set.Rules = append(set.Rules, rule)
	}
	return set, nil
}

// LoadRuleFile - набор правил из файла, пустой путь означает встроенный набор
func LoadRuleFile(path string) (*RuleSet, error) {
	if path == "" {
		return LoadRuleSet(bytes.NewReader(defaultRules))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rules file: %w", err)
	}
	defer f.Close()
	return LoadRuleSet(f)
}

// Source - активный набор правил с атомарной подменой при перезагрузке
type Source struct {
	path    string
	current atomic.Pointer[RuleSet]
}

// NewSource - загружает набор правил из файла или встроенный
func NewSource(path string) (*Source, error) {
	set, err := LoadRuleFile(path)
	if err != nil {
		return nil, err
	}
	s := &Source{path: path}
	s.current.Store(set)
	logger.Info("Classification rules loaded", "version", set.Version, "rules", len(set.Rules))
	return s, nil
}

// NewStaticSource - источник с заданным набором правил
func NewStaticSource(set *RuleSet) *Source {
	s := &Source{}
	s.current.Store(set)
	return s
}

// Current - снимок активного набора
func (s *Source) Current() *RuleSet {
	return s.current.Load()
}

// Reload - перечитывает файл правил, при ошибке остаётся прежний набор
func (s *Source) Reload() error {
	set, err := LoadRuleFile(s.path)
	if err != nil {
		logger.Error("Failed to reload classification rules", "error", err)
		return err
	}
	prev := s.current.Swap(set)
	logger.Info("Classification rules reloaded", "version", set.Version, "previous", prev.Version, "rules", len(set.Rules))
	return nil
}

// Check - нормализация кода и оценка по активному набору
func (s *Source) Check(raw string) models.ClassificationDecision {
	n := Inspect(raw)
	set := s.Current()
	decision := Evaluate(n.Code, set.Rules)
	decision.RulesVersion = set.Version
	decision.Warnings = n.Warnings()
	return decision
}

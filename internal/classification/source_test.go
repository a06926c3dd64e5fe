package classification

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/denmor86/landed-cost/internal/config"
	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/denmor86/landed-cost/internal/models"
)

const telecomRules = `{
  "version": "v1",
  "rules": [
    {"id": "telecom", "decision": "RISK", "reason": "radio equipment",
     "conditions": [{"type": "prefix", "length": 4, "value": "8517"}]},
    {"id": "electronics", "decision": "ALLOW", "reason": "electronics",
     "conditions": [{"type": "range", "length": 2, "value": ["84", "85"]}]}
  ]
}`

func initLogger(t *testing.T) {
	t.Helper()
	if err := logger.Initialize(config.DefaultConfig().Server.LogLevel); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
}

func TestLoadRuleSet(t *testing.T) {
	testCases := []struct {
		Name          string
		Body          string
		ExpectedRules int
		ExpectedError error
	}{
		{Name: "Success. Prefix and range #1", Body: telecomRules, ExpectedRules: 2},
		{Name: "Error. Range with single bound #2", Body: `{"rules":[{"decision":"RISK","conditions":[{"type":"range","length":2,"value":["01"]}]}]}`, ExpectedError: ErrInvalidRule},
		{Name: "Error. Unknown condition type #3", Body: `{"rules":[{"decision":"RISK","conditions":[{"type":"regex","value":"85.*"}]}]}`, ExpectedError: ErrInvalidRule},
		{Name: "Error. Broken JSON #4", Body: `{"rules":`, ExpectedError: ErrInvalidRule},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			set, err := LoadRuleSet(strings.NewReader(tc.Body))
			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if len(set.Rules) != tc.ExpectedRules {
				t.Errorf("Expected %d rules, got: %d", tc.ExpectedRules, len(set.Rules))
			}
		})
	}
}

func TestDefaultRules(t *testing.T) {
	set, err := LoadRuleFile("")
	if err != nil {
		t.Fatalf("embedded rules must load: %v", err)
	}
	if set.Version == "" || len(set.Rules) == 0 {
		t.Errorf("Expected versioned non-empty rule set")
	}
}

func TestSource_CheckTelecomIsRisk(t *testing.T) {
	initLogger(t)
	set, err := LoadRuleSet(strings.NewReader(telecomRules))
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	got := NewStaticSource(set).Check("8517120000")
	if got.Decision != models.DecisionRisk {
		t.Fatalf("Expected RISK, got: %s", got.Decision)
	}
	if got.Reason == nil || *got.Reason != "radio equipment" {
		t.Errorf("Expected rule reason, got: %v", got.Reason)
	}
	if got.RulesVersion != "v1" {
		t.Errorf("Expected version v1, got: %s", got.RulesVersion)
	}
}

func TestSource_Reload(t *testing.T) {
	initLogger(t)
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(telecomRules), 0o600); err != nil {
		t.Fatal(err)
	}
	src, err := NewSource(path)
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}

	blocked := strings.Replace(strings.Replace(telecomRules, `"RISK"`, `"BLOCK"`, 1), `"v1"`, `"v2"`, 1)
	if err := os.WriteFile(path, []byte(blocked), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := src.Reload(); err != nil {
		t.Fatalf("unexpected reload error '%v'", err)
	}
	if got := src.Check("8517120000"); got.Decision != models.DecisionBlock || got.RulesVersion != "v2" {
		t.Errorf("Expected BLOCK from v2, got: %s from %s", got.Decision, got.RulesVersion)
	}

	// битый файл не затирает активный набор
	if err := os.WriteFile(path, []byte(`{"rules": [`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := src.Reload(); err == nil {
		t.Errorf("Expected reload error")
	}
	if src.Current().Version != "v2" {
		t.Errorf("Expected v2 to stay active, got: %s", src.Current().Version)
	}
}

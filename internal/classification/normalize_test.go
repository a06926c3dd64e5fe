package classification

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInspect(t *testing.T) {
	testCases := []struct {
		Name     string
		Raw      string
		Expected Normalized
	}{
		{Name: "Success. Already canonical #1", Raw: "8517120000", Expected: Normalized{Code: "8517120000", Digits: 10}},
		{Name: "Success. Separators stripped #2", Raw: "8517 12.00-00", Expected: Normalized{Code: "8517120000", Digits: 10}},
		{Name: "Success. Short code left-padded #3", Raw: "6109", Expected: Normalized{Code: "0000006109", Digits: 4, Padded: true}},
		{Name: "Success. Long code truncated #4", Raw: "851712000099", Expected: Normalized{Code: "8517120000", Digits: 12, Truncated: true}},
		{Name: "Success. No digits #5", Raw: "н/д", Expected: Normalized{Code: "0000000000", Padded: true}},
		{Name: "Success. Non-ASCII digits ignored #6", Raw: "٨٥١٧8517120000", Expected: Normalized{Code: "8517120000", Digits: 10}},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := Inspect(tc.Raw)
			if diff := cmp.Diff(tc.Expected, got); diff != "" {
				t.Errorf("normalized mismatch:\n %s", diff)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, raw := range []string{"", "1", "85-17", "8517120000", "12345678901234", "abc 0101 21 000 0"} {
		once := Normalize(raw)
		twice := Normalize(string(once))
		if once != twice {
			t.Errorf("%q: %q != %q", raw, once, twice)
		}
		if len(once) != CodeLength {
			t.Errorf("%q: expected %d digits, got %q", raw, CodeLength, once)
		}
	}
}

func TestNormalized_Warnings(t *testing.T) {
	if w := Inspect("8517120000").Warnings(); len(w) != 0 {
		t.Errorf("Expected no warnings, got: %v", w)
	}
	if w := Inspect("85171200001").Warnings(); len(w) != 1 {
		t.Errorf("Expected truncation warning, got: %v", w)
	}
	if w := Inspect("85").Warnings(); len(w) != 1 {
		t.Errorf("Expected padding warning, got: %v", w)
	}
}

package models

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOutcomeFromError(t *testing.T) {
	multi := &CalcError{}
	multi.Add(KindValidation, "weight_kg", "must be > 0")
	multi.Add(KindUnsupportedCurrency, "currency", `unsupported currency "EUR"`)

	testCases := []struct {
		Name     string
		Err      error
		Expected Outcome
	}{
		{
			Name:     "Success. No error #1",
			Expected: Outcome{OK: true},
		},
		{
			Name: "Success. All field errors are kept #2",
			Err:  fmt.Errorf("cargo: %w", multi),
			Expected: Outcome{Errors: []FieldError{
				{Kind: KindValidation, Field: "weight_kg", Message: "must be > 0"},
				{Kind: KindUnsupportedCurrency, Field: "currency", Message: `unsupported currency "EUR"`},
			}},
		},
		{
			Name: "Success. Upstream unavailable is retryable #3",
			Err:  fmt.Errorf("products: %w", ErrUpstreamUnavailable),
			Expected: Outcome{
				Errors:    []FieldError{{Kind: KindUpstreamUnavailable, Message: "products: upstream unavailable"}},
				Retryable: true,
			},
		},
		{
			Name:     "Success. Deadline is treated as unavailable #4",
			Err:      context.DeadlineExceeded,
			Expected: Outcome{Errors: []FieldError{{Kind: KindUpstreamUnavailable, Message: "context deadline exceeded"}}, Retryable: true},
		},
		{
			Name:     "Success. Unknown error is internal #5",
			Err:      errors.New("boom"),
			Expected: Outcome{Errors: []FieldError{{Kind: KindInternal, Message: "boom"}}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if diff := cmp.Diff(tc.Expected, OutcomeFromError(tc.Err)); diff != "" {
				t.Errorf("Outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalcError_Is(t *testing.T) {
	err := NewCalcError(KindInvalidQuantity, "quantity_units", "must be > 0")
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected errors.Is to match kind sentinel")
	}
	if errors.Is(err, ErrValidation) {
		t.Errorf("Unexpected match with another kind")
	}
	if (&CalcError{}).ErrOrNil() != nil {
		t.Errorf("Expected empty set to be nil")
	}
	mixed := NewCalcError(KindUpstreamUnavailable, "", "down")
	mixed.Add(KindValidation, "name", "required")
	if mixed.Retryable() {
		t.Errorf("Expected mixed set to be not retryable")
	}
}

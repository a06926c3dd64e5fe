package calculator

import (
	"errors"
	"testing"

	"github.com/denmor86/landed-cost/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(v int) *int {
	return &v
}

func testRates() models.ExchangeRateSet {
	return models.ExchangeRateSet{USDToRUB: dec("100"), USDToCNY: dec("7.2"), EURToRUB: dec("110")}
}

func TestCalculateCargo(t *testing.T) {
	testCases := []struct {
		Name          string
		Input         models.CargoInput
		Rates         models.ExchangeRateSet
		ExpectedKinds []models.ErrorKind
		Expected      models.CargoResult
	}{
		{
			Name: "Success. Dense goods paid in USD #1",
			Input: models.CargoInput{
				WeightKg:   dec("500"),
				VolumeM3:   dec("2"),
				GoodsValue: models.MonetaryAmount{Value: dec("10000"), Currency: models.CurrencyUSD},
			},
			Rates: testRates(),
			Expected: models.CargoResult{
				DensityKgM3:           dec("250"),
				TariffType:            models.TariffPerKg,
				TariffRateUSD:         dec("3.9"),
				SpecificValueUSDPerKg: dec("20"),
				InsuranceRate:         dec("0.01"),
				BuyerCommissionRate:   dec("0.01"),
				GoodsValueUSD:         dec("10000"),
				GoodsValueCNY:         dec("72000"),
				GoodsValueRUB:         dec("1000000"),
				FreightUSD:            dec("1950"),
				InsuranceUSD:          dec("100"),
				BuyerCommissionCNY:    dec("720"),
				BuyerCommissionUSD:    dec("100"),
				TotalUSD:              dec("2150"),
				TotalRUB:              dec("215000"),
				CostPerKgUSD:          dec("4.3"),
				CostPerKgRUB:          dec("430"),
			},
		},
		{
			Name: "Success. Light goods tariffed per cubic meter with quantity #2",
			Input: models.CargoInput{
				WeightKg:      dec("50"),
				VolumeM3:      dec("1"),
				QuantityUnits: intPtr(10),
				GoodsValue:    models.MonetaryAmount{Value: dec("720"), Currency: models.CurrencyCNY},
			},
			Rates: testRates(),
			Expected: models.CargoResult{
				DensityKgM3:           dec("50"),
				TariffType:            models.TariffPerM3,
				TariffRateUSD:         dec("500"),
				SpecificValueUSDPerKg: dec("2"),
				InsuranceRate:         dec("0.01"),
				BuyerCommissionRate:   dec("0.05"),
				GoodsValueUSD:         dec("100"),
				GoodsValueCNY:         dec("720"),
				GoodsValueRUB:         dec("10000"),
				FreightUSD:            dec("500"),
				InsuranceUSD:          dec("1"),
				BuyerCommissionCNY:    dec("36"),
				BuyerCommissionUSD:    dec("5"),
				TotalUSD:              dec("506"),
				TotalRUB:              dec("50600"),
				CostPerKgUSD:          dec("10.12"),
				CostPerKgRUB:          dec("1012"),
				CostPerUnitUSD:        decPtr("50.6"),
				CostPerUnitRUB:        decPtr("5060"),
			},
		},
		{
			Name: "Error. Zero volume #3",
			Input: models.CargoInput{
				WeightKg:   dec("500"),
				VolumeM3:   dec("0"),
				GoodsValue: models.MonetaryAmount{Value: dec("10000"), Currency: models.CurrencyUSD},
			},
			Rates:         testRates(),
			ExpectedKinds: []models.ErrorKind{models.KindValidation},
		},
		{
			Name: "Error. Unsupported currency #4",
			Input: models.CargoInput{
				WeightKg:   dec("10"),
				VolumeM3:   dec("1"),
				GoodsValue: models.MonetaryAmount{Value: dec("100"), Currency: "EUR"},
			},
			Rates:         testRates(),
			ExpectedKinds: []models.ErrorKind{models.KindUnsupportedCurrency},
		},
		{
			Name: "Error. Every missing field reported #5",
			Input: models.CargoInput{
				GoodsValue: models.MonetaryAmount{Currency: models.CurrencyUSD},
			},
			Rates:         testRates(),
			ExpectedKinds: []models.ErrorKind{models.KindValidation, models.KindValidation, models.KindValidation},
		},
		{
			Name: "Error. Zero exchange rate #6",
			Input: models.CargoInput{
				WeightKg:   dec("10"),
				VolumeM3:   dec("1"),
				GoodsValue: models.MonetaryAmount{Value: dec("100"), Currency: models.CurrencyCNY},
			},
			Rates:         models.ExchangeRateSet{USDToRUB: dec("100")},
			ExpectedKinds: []models.ErrorKind{models.KindValidation},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			res, err := CalculateCargo(tc.Input, tc.Rates)
			if len(tc.ExpectedKinds) > 0 {
				var ce *models.CalcError
				if !errors.As(err, &ce) {
					t.Fatalf("Expected calculation error, got: '%v'", err)
				}
				kinds := make([]models.ErrorKind, 0, len(ce.Errors))
				for _, fe := range ce.Errors {
					kinds = append(kinds, fe.Kind)
				}
				if diff := cmp.Diff(tc.ExpectedKinds, kinds); diff != "" {
					t.Errorf("error kinds mismatch:\n %s", diff)
				}
				if diff := cmp.Diff(models.CargoResult{}, res); diff != "" {
					t.Errorf("expected empty result on error:\n %s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if diff := cmp.Diff(tc.Expected, res, cmpopts.IgnoreFields(models.CargoResult{}, "Summary")); diff != "" {
				t.Errorf("cargo result mismatch:\n %s", diff)
			}
			if res.Summary == "" {
				t.Errorf("Expected manager summary")
			}
		})
	}
}

func TestCalculateCargo_ZeroVolumeNamesField(t *testing.T) {
	in := models.CargoInput{
		WeightKg:   dec("500"),
		VolumeM3:   decimal.Zero,
		GoodsValue: models.MonetaryAmount{Value: dec("10000"), Currency: models.CurrencyUSD},
	}
	_, err := CalculateCargo(in, testRates())
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("Expected validation error, got: '%v'", err)
	}
	outcome := models.OutcomeFromError(err)
	if outcome.OK {
		t.Fatalf("Expected ok=false")
	}
	if len(outcome.Errors) != 1 || outcome.Errors[0].Field != models.FieldVolume {
		t.Errorf("Expected single error for %s, got: %+v", models.FieldVolume, outcome.Errors)
	}
}

func TestCalculateCargo_TotalIsSumOfComponents(t *testing.T) {
	weights := []string{"0.7", "13.3", "99.99", "250", "1234.567"}
	volumes := []string{"0.003", "0.1", "1.7", "3"}
	values := []models.MonetaryAmount{
		{Value: dec("33.33"), Currency: models.CurrencyUSD},
		{Value: dec("12345.67"), Currency: models.CurrencyCNY},
		{Value: dec("987654.32"), Currency: models.CurrencyRUB},
	}
	for _, w := range weights {
		for _, v := range volumes {
			for _, g := range values {
				res, err := CalculateCargo(models.CargoInput{WeightKg: dec(w), VolumeM3: dec(v), GoodsValue: g}, testRates())
				if err != nil {
					t.Fatalf("weight %s volume %s: unexpected error '%v'", w, v, err)
				}
				sum := res.FreightUSD.Add(res.InsuranceUSD).Add(res.BuyerCommissionUSD)
				if !res.TotalUSD.Equal(sum) {
					t.Errorf("weight %s volume %s: total %s != %s", w, v, res.TotalUSD, sum)
				}
				if res.CostPerUnitUSD != nil || res.CostPerUnitRUB != nil {
					t.Errorf("Expected absent per unit cost without quantity")
				}
			}
		}
	}
}

func TestDensity(t *testing.T) {
	if _, err := Density(dec("10"), decimal.Zero); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("Expected invalid quantity, got: '%v'", err)
	}
	d, err := Density(dec("500"), dec("2"))
	if err != nil || !d.Equal(dec("250")) {
		t.Errorf("Expected 250, got: %s '%v'", d, err)
	}
}

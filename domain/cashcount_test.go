package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"teller-ledger/domain"
)

// Helper to create decimals in tests, panics on error
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDenomination_Value(t *testing.T) {
	cases := []struct {
		denom domain.Denomination
		want  string
	}{
		{domain.DenomOne, "1"},
		{domain.DenomFive, "5"},
		{domain.DenomTen, "10"},
		{domain.DenomTwenty, "20"},
		{domain.DenomFifty, "50"},
		{domain.DenomHundred, "100"},
	}
	for _, tc := range cases {
		v, err := tc.denom.Value()
		if err != nil {
			t.Errorf("Value(%s) failed: %v", tc.denom, err)
		}
		if !v.Equal(dec(tc.want)) {
			t.Errorf("Value(%s) = %s, want %s", tc.denom, v, tc.want)
		}
	}
}

func TestDenomination_Unknown(t *testing.T) {
	bad := domain.Denomination("2")
	if bad.IsValid() {
		t.Errorf("expected %q to be invalid", bad)
	}
	_, err := bad.Value()
	if !errors.Is(err, domain.ErrUnknownDenomination) {
		t.Errorf("expected ErrUnknownDenomination, got %v", err)
	}
	if !domain.IsValidation(err) {
		t.Errorf("expected validation-class error, got %v", err)
	}
}

func TestDenominations_CoversFixedSet(t *testing.T) {
	all := domain.Denominations()
	if len(all) != 6 {
		t.Fatalf("expected 6 denominations, got %d", len(all))
	}
	for _, d := range all {
		if !d.IsValid() {
			t.Errorf("listed denomination %q is not valid", d)
		}
	}
}

func TestCashCount_Total(t *testing.T) {
	count := domain.CashCount{
		{Denomination: domain.DenomTwenty, Count: 5},
		{Denomination: domain.DenomTen, Count: 10},
	}
	total, err := count.Total()
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	if !total.Equal(dec("200")) {
		t.Errorf("expected total 200, got %s", total)
	}
}

func TestCashCount_TotalOrderIrrelevant(t *testing.T) {
	forward := domain.CashCount{
		{Denomination: domain.DenomOne, Count: 7},
		{Denomination: domain.DenomFifty, Count: 2},
		{Denomination: domain.DenomHundred, Count: 1},
	}
	reversed := domain.CashCount{
		{Denomination: domain.DenomHundred, Count: 1},
		{Denomination: domain.DenomFifty, Count: 2},
		{Denomination: domain.DenomOne, Count: 7},
	}

	a, err := forward.Total()
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	b, err := reversed.Total()
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("line order changed the total: %s vs %s", a, b)
	}
	if !a.Equal(dec("207")) {
		t.Errorf("expected total 207, got %s", a)
	}
}

func TestCashCount_ZeroCountLines(t *testing.T) {
	count := domain.CashCount{
		{Denomination: domain.DenomTwenty, Count: 0},
		{Denomination: domain.DenomTen, Count: 0},
	}
	if err := count.Validate(); err != nil {
		t.Errorf("zero-count lines should be valid: %v", err)
	}
	total, err := count.Total()
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	if !total.IsZero() {
		t.Errorf("expected zero total, got %s", total)
	}
}

func TestCashCount_Validate(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		err := domain.CashCount{}.Validate()
		if !errors.Is(err, domain.ErrEmptyCashCount) {
			t.Errorf("expected ErrEmptyCashCount, got %v", err)
		}
	})

	t.Run("NegativeCount", func(t *testing.T) {
		count := domain.CashCount{{Denomination: domain.DenomTen, Count: -1}}
		err := count.Validate()
		if !errors.Is(err, domain.ErrNegativeCount) {
			t.Errorf("expected ErrNegativeCount, got %v", err)
		}
	})

	t.Run("UnknownDenomination", func(t *testing.T) {
		count := domain.CashCount{{Denomination: "7", Count: 3}}
		err := count.Validate()
		if !errors.Is(err, domain.ErrUnknownDenomination) {
			t.Errorf("expected ErrUnknownDenomination, got %v", err)
		}
	})
}

func TestCashCount_TotalUnknownDenomination(t *testing.T) {
	count := domain.CashCount{
		{Denomination: domain.DenomTen, Count: 1},
		{Denomination: "500", Count: 1},
	}
	_, err := count.Total()
	if !errors.Is(err, domain.ErrUnknownDenomination) {
		t.Errorf("expected ErrUnknownDenomination, got %v", err)
	}
}

func TestCashCount_CloneIsIndependent(t *testing.T) {
	original := domain.CashCount{{Denomination: domain.DenomTen, Count: 1}}
	clone := original.Clone()
	clone[0].Count = 99
	if original[0].Count != 1 {
		t.Errorf("mutating the clone changed the original")
	}
}

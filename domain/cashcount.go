package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DenominationLine is one (denomination, count) pair of a physical
// cash count. A zero count is legal; a negative one is not.
type DenominationLine struct {
	Denomination Denomination `json:"denomination"`
	Count        int          `json:"count"`
}

// LineTotal returns count x unit value for this line.
func (l DenominationLine) LineTotal() (decimal.Decimal, error) {
	v, err := l.Denomination.Value()
	if err != nil {
		return decimal.Zero, err
	}
	return v.Mul(decimal.NewFromInt(int64(l.Count))), nil
}

// CashCount is a denomination-by-denomination physical count of bills
// and coins. Line order is irrelevant to its total.
type CashCount []DenominationLine

// Validate checks the count against the opening/closing/transaction
// input rules: at least one line, no negative counts, no unknown
// denominations.
func (c CashCount) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCashCount
	}
	for _, line := range c {
		if !line.Denomination.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownDenomination, string(line.Denomination))
		}
		if line.Count < 0 {
			return fmt.Errorf("%w: %d x %s", ErrNegativeCount, line.Count, line.Denomination)
		}
	}
	return nil
}

// Total sums count x unit value over all lines.
func (c CashCount) Total() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range c {
		lineTotal, err := line.LineTotal()
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(lineTotal)
	}
	return total, nil
}

// Clone returns an independent copy so stored counts cannot be mutated
// through a retained caller slice.
func (c CashCount) Clone() CashCount {
	if c == nil {
		return nil
	}
	out := make(CashCount, len(c))
	copy(out, c)
	return out
}

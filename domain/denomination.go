package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Denomination identifies one bill or coin face value. The set is
// fixed; identifiers outside it are rejected, never defaulted.
type Denomination string

const (
	DenomOne     Denomination = "1"
	DenomFive    Denomination = "5"
	DenomTen     Denomination = "10"
	DenomTwenty  Denomination = "20"
	DenomFifty   Denomination = "50"
	DenomHundred Denomination = "100"
)

var denominationValues = map[Denomination]decimal.Decimal{
	DenomOne:     decimal.NewFromInt(1),
	DenomFive:    decimal.NewFromInt(5),
	DenomTen:     decimal.NewFromInt(10),
	DenomTwenty:  decimal.NewFromInt(20),
	DenomFifty:   decimal.NewFromInt(50),
	DenomHundred: decimal.NewFromInt(100),
}

func (d Denomination) IsValid() bool {
	_, ok := denominationValues[d]
	return ok
}

// Value returns the monetary unit value of the denomination.
func (d Denomination) Value() (decimal.Decimal, error) {
	v, ok := denominationValues[d]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownDenomination, string(d))
	}
	return v, nil
}

// Denominations returns the fixed set, smallest first.
func Denominations() []Denomination {
	return []Denomination{DenomOne, DenomFive, DenomTen, DenomTwenty, DenomFifty, DenomHundred}
}

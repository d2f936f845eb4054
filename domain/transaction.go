package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"teller-ledger/shared"
)

// TransactionEntry is one deposit or withdrawal posted against an open
// shift. Entries are immutable once appended and are never deleted;
// the ledger is append-only.
type TransactionEntry struct {
	ID         string                 `json:"id"`
	Code       string                 `json:"code"`
	ShiftID    string                 `json:"shiftId"`
	ShiftCode  string                 `json:"shiftCode"`
	TellerID   string                 `json:"tellerId"`
	TellerCode string                 `json:"tellerCode"`
	TillCode   string                 `json:"tillCode"`
	Kind       shared.TransactionKind `json:"kind"`

	Amount decimal.Decimal `json:"amount"`
	Count  CashCount       `json:"count"`

	ClientID      string `json:"clientId,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	Note          string `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// SignedAmount is the entry's effect on cash in the till: deposits add,
// withdrawals subtract.
func (e *TransactionEntry) SignedAmount() decimal.Decimal {
	if e.Kind == shared.Withdrawal {
		return e.Amount.Neg()
	}
	return e.Amount
}

func (e *TransactionEntry) Clone() *TransactionEntry {
	if e == nil {
		return nil
	}
	out := *e
	out.Count = e.Count.Clone()
	return &out
}

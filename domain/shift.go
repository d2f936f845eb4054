package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"teller-ledger/shared"
)

// Shift is the aggregate tracking one teller's cash-handling period
// from open to close. The reconciliation engine is the only writer;
// everything else reads it or calls the engine.
//
// ExpectedBalance, DeclaredBalance and Discrepancy are only meaningful
// once State is CLOSED. The ledger, not the shift, is the source of
// truth for in-flight balances: nothing here is incrementally
// maintained while the shift is open.
type Shift struct {
	ID         string            `json:"id"`
	Code       string            `json:"code"`
	TellerID   string            `json:"tellerId"`
	TellerCode string            `json:"tellerCode"`
	TillCode   string            `json:"tillCode"`
	Branch     string            `json:"branch"`
	State      shared.ShiftState `json:"state"`

	OpenedAt time.Time  `json:"openedAt"`
	ClosedAt *time.Time `json:"closedAt,omitempty"`

	OpeningCount CashCount `json:"openingCount"`
	ClosingCount CashCount `json:"closingCount,omitempty"`

	ExpectedBalance decimal.Decimal `json:"expectedBalance"`
	DeclaredBalance decimal.Decimal `json:"declaredBalance"`
	Discrepancy     decimal.Decimal `json:"discrepancy"`
	Alert           bool            `json:"alert"`

	Notes string `json:"notes,omitempty"`

	// Version supports optimistic updates in the shift store.
	Version int `json:"version"`
}

func (s *Shift) IsOpen() bool {
	return s.State == shared.ShiftOpen
}

// OpeningTotal is the derived value of the opening cash count.
func (s *Shift) OpeningTotal() (decimal.Decimal, error) {
	return s.OpeningCount.Total()
}

// AppendNote joins a new note onto the existing ones instead of
// overwriting, preserving the open-time observations after close.
func (s *Shift) AppendNote(prefix, note string) {
	if note == "" {
		return
	}
	if s.Notes == "" {
		s.Notes = prefix + note
		return
	}
	s.Notes = s.Notes + " | " + prefix + note
}

// Clone returns a deep copy so store reads cannot leak mutable state.
func (s *Shift) Clone() *Shift {
	if s == nil {
		return nil
	}
	out := *s
	out.OpeningCount = s.OpeningCount.Clone()
	out.ClosingCount = s.ClosingCount.Clone()
	if s.ClosedAt != nil {
		t := *s.ClosedAt
		out.ClosedAt = &t
	}
	return &out
}

package store_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"teller-ledger/domain"
	"teller-ledger/shared"
	"teller-ledger/store"
)

func newEntry(id, shiftID string, kind shared.TransactionKind, at time.Time) *domain.TransactionEntry {
	return &domain.TransactionEntry{
		ID:        id,
		Code:      "TXN-" + id,
		ShiftID:   shiftID,
		TellerID:  "t-1",
		Kind:      kind,
		Amount:    decimal.NewFromInt(10),
		Count:     domain.CashCount{{Denomination: domain.DenomTen, Count: 1}},
		CreatedAt: at,
	}
}

func TestLedgerStore_AppendAndFind(t *testing.T) {
	s := store.NewInMemoryLedgerStore()
	entry := newEntry("e-1", "s-1", shared.Deposit, time.Now().UTC())

	if err := s.Append(entry); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	byID, err := s.FindByID("e-1")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if byID.Code != "TXN-e-1" {
		t.Errorf("code mismatch: %s", byID.Code)
	}

	byCode, err := s.FindByCode("TXN-e-1")
	if err != nil {
		t.Fatalf("FindByCode failed: %v", err)
	}
	if byCode.ID != "e-1" {
		t.Errorf("id mismatch: %s", byCode.ID)
	}

	if _, err := s.FindByID("missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLedgerStore_DuplicateRejected(t *testing.T) {
	s := store.NewInMemoryLedgerStore()
	now := time.Now().UTC()
	if err := s.Append(newEntry("e-1", "s-1", shared.Deposit, now)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := s.Append(newEntry("e-1", "s-1", shared.Deposit, now)); !errors.Is(err, store.ErrDuplicateCode) {
		t.Errorf("expected ErrDuplicateCode for duplicate id, got %v", err)
	}

	clash := newEntry("e-2", "s-1", shared.Deposit, now)
	clash.Code = "TXN-e-1"
	if err := s.Append(clash); !errors.Is(err, store.ErrDuplicateCode) {
		t.Errorf("expected ErrDuplicateCode for duplicate code, got %v", err)
	}
}

func TestLedgerStore_ListByShiftNewestFirst(t *testing.T) {
	s := store.NewInMemoryLedgerStore()
	base := time.Now().UTC()

	// Appended out of timestamp order on purpose.
	for i, offset := range []time.Duration{2 * time.Minute, 0, time.Minute} {
		entry := newEntry(fmt.Sprintf("e-%d", i), "s-1", shared.Deposit, base.Add(offset))
		if err := s.Append(entry); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	entries, err := s.ListByShift("s-1")
	if err != nil {
		t.Fatalf("ListByShift failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].CreatedAt.After(entries[i-1].CreatedAt) {
			t.Errorf("entries not in newest-first order at index %d", i)
		}
	}
	if entries[0].ID != "e-0" {
		t.Errorf("expected e-0 (latest timestamp) first, got %s", entries[0].ID)
	}
}

func TestLedgerStore_ListByShiftAndKind(t *testing.T) {
	s := store.NewInMemoryLedgerStore()
	now := time.Now().UTC()
	_ = s.Append(newEntry("e-1", "s-1", shared.Deposit, now))
	_ = s.Append(newEntry("e-2", "s-1", shared.Withdrawal, now))
	_ = s.Append(newEntry("e-3", "s-1", shared.Deposit, now))

	deposits, err := s.ListByShiftAndKind("s-1", shared.Deposit)
	if err != nil {
		t.Fatalf("ListByShiftAndKind failed: %v", err)
	}
	if len(deposits) != 2 {
		t.Errorf("expected 2 deposits, got %d", len(deposits))
	}
	for _, entry := range deposits {
		if entry.Kind != shared.Deposit {
			t.Errorf("unexpected kind %s", entry.Kind)
		}
	}
}

func TestLedgerStore_ListByTellerAndClient(t *testing.T) {
	s := store.NewInMemoryLedgerStore()
	now := time.Now().UTC()

	first := newEntry("e-1", "s-1", shared.Deposit, now)
	first.ClientID = "CLI-9"
	second := newEntry("e-2", "s-2", shared.Deposit, now)
	second.TellerID = "t-2"
	_ = s.Append(first)
	_ = s.Append(second)

	byTeller, err := s.ListByTeller("t-1")
	if err != nil {
		t.Fatalf("ListByTeller failed: %v", err)
	}
	if len(byTeller) != 1 || byTeller[0].ID != "e-1" {
		t.Errorf("expected only e-1 for teller t-1")
	}

	byClient, err := s.ListByClient("CLI-9")
	if err != nil {
		t.Fatalf("ListByClient failed: %v", err)
	}
	if len(byClient) != 1 || byClient[0].ID != "e-1" {
		t.Errorf("expected only e-1 for client CLI-9")
	}
}

func TestLedgerStore_ReadsReturnCopies(t *testing.T) {
	s := store.NewInMemoryLedgerStore()
	_ = s.Append(newEntry("e-1", "s-1", shared.Deposit, time.Now().UTC()))

	read, _ := s.FindByID("e-1")
	read.Count[0].Count = 999

	again, _ := s.FindByID("e-1")
	if again.Count[0].Count != 1 {
		t.Errorf("store state was mutated through a read copy")
	}
}

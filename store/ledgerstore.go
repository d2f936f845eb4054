package store

import (
	"fmt"
	"sort"
	"sync"

	"teller-ledger/domain"
	"teller-ledger/shared"
)

// LedgerStore is the append-only persistence collaborator for
// transaction entries. Entries are never updated or deleted.
type LedgerStore interface {
	Append(entry *domain.TransactionEntry) error

	FindByID(id string) (*domain.TransactionEntry, error)

	FindByCode(code string) (*domain.TransactionEntry, error)

	// ListByShift returns the shift's entries ordered by creation
	// timestamp, newest first.
	ListByShift(shiftID string) ([]*domain.TransactionEntry, error)

	ListByShiftAndKind(shiftID string, kind shared.TransactionKind) ([]*domain.TransactionEntry, error)

	ListByTeller(tellerID string) ([]*domain.TransactionEntry, error)

	ListByClient(clientID string) ([]*domain.TransactionEntry, error)
}

type InMemoryLedgerStore struct {
	sync.RWMutex
	byID     map[string]*domain.TransactionEntry
	idByCode map[string]string
	byShift  map[string][]string // shift ID -> entry IDs in append order
	order    []string
}

func NewInMemoryLedgerStore() *InMemoryLedgerStore {
	return &InMemoryLedgerStore{
		byID:     make(map[string]*domain.TransactionEntry),
		idByCode: make(map[string]string),
		byShift:  make(map[string][]string),
	}
}

func (s *InMemoryLedgerStore) Append(entry *domain.TransactionEntry) error {
	s.Lock()
	defer s.Unlock()

	if _, exists := s.byID[entry.ID]; exists {
		return fmt.Errorf("%w: entry id %s", ErrDuplicateCode, entry.ID)
	}
	if _, exists := s.idByCode[entry.Code]; exists {
		return fmt.Errorf("%w: entry code %s", ErrDuplicateCode, entry.Code)
	}

	stored := entry.Clone()
	s.byID[stored.ID] = stored
	s.idByCode[stored.Code] = stored.ID
	s.byShift[stored.ShiftID] = append(s.byShift[stored.ShiftID], stored.ID)
	s.order = append(s.order, stored.ID)
	return nil
}

func (s *InMemoryLedgerStore) FindByID(id string) (*domain.TransactionEntry, error) {
	s.RLock()
	defer s.RUnlock()

	entry, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: entry id %s", ErrNotFound, id)
	}
	return entry.Clone(), nil
}

func (s *InMemoryLedgerStore) FindByCode(code string) (*domain.TransactionEntry, error) {
	s.RLock()
	defer s.RUnlock()

	id, ok := s.idByCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: entry code %s", ErrNotFound, code)
	}
	return s.byID[id].Clone(), nil
}

func (s *InMemoryLedgerStore) ListByShift(shiftID string) ([]*domain.TransactionEntry, error) {
	s.RLock()
	defer s.RUnlock()

	ids := s.byShift[shiftID]
	result := make([]*domain.TransactionEntry, 0, len(ids))
	// Walk append order backwards so equal timestamps keep
	// newest-appended-first after the stable sort.
	for i := len(ids) - 1; i >= 0; i-- {
		result = append(result, s.byID[ids[i]].Clone())
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *InMemoryLedgerStore) ListByShiftAndKind(shiftID string, kind shared.TransactionKind) ([]*domain.TransactionEntry, error) {
	entries, err := s.ListByShift(shiftID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.TransactionEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Kind == kind {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (s *InMemoryLedgerStore) ListByTeller(tellerID string) ([]*domain.TransactionEntry, error) {
	s.RLock()
	defer s.RUnlock()

	result := make([]*domain.TransactionEntry, 0)
	for _, id := range s.order {
		entry := s.byID[id]
		if entry.TellerID == tellerID {
			result = append(result, entry.Clone())
		}
	}
	return result, nil
}

func (s *InMemoryLedgerStore) ListByClient(clientID string) ([]*domain.TransactionEntry, error) {
	s.RLock()
	defer s.RUnlock()

	result := make([]*domain.TransactionEntry, 0)
	for _, id := range s.order {
		entry := s.byID[id]
		if entry.ClientID == clientID {
			result = append(result, entry.Clone())
		}
	}
	return result, nil
}

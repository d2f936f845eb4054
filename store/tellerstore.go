package store

import (
	"fmt"
	"sync"

	"teller-ledger/domain"
)

// TellerDirectory is the collaborator the engine uses to resolve the
// cashier opening a shift. Active/inactive interpretation is the
// engine's job; the directory only stores and finds records.
type TellerDirectory interface {
	Create(teller *domain.Teller) error

	Update(teller *domain.Teller) error

	FindByID(id string) (*domain.Teller, error)

	FindByCode(code string) (*domain.Teller, error)

	ListByBranch(branch string) ([]*domain.Teller, error)

	ListActive() ([]*domain.Teller, error)
}

type InMemoryTellerDirectory struct {
	sync.RWMutex
	byID     map[string]*domain.Teller
	idByCode map[string]string
	order    []string
}

func NewInMemoryTellerDirectory() *InMemoryTellerDirectory {
	return &InMemoryTellerDirectory{
		byID:     make(map[string]*domain.Teller),
		idByCode: make(map[string]string),
	}
}

func (s *InMemoryTellerDirectory) Create(teller *domain.Teller) error {
	s.Lock()
	defer s.Unlock()

	if _, exists := s.byID[teller.ID]; exists {
		return fmt.Errorf("%w: teller id %s", ErrDuplicateCode, teller.ID)
	}
	if _, exists := s.idByCode[teller.Code]; exists {
		return fmt.Errorf("%w: teller code %s", ErrDuplicateCode, teller.Code)
	}

	stored := teller.Clone()
	s.byID[stored.ID] = stored
	s.idByCode[stored.Code] = stored.ID
	s.order = append(s.order, stored.ID)
	return nil
}

func (s *InMemoryTellerDirectory) Update(teller *domain.Teller) error {
	s.Lock()
	defer s.Unlock()

	current, ok := s.byID[teller.ID]
	if !ok {
		return fmt.Errorf("%w: teller id %s", ErrNotFound, teller.ID)
	}
	if teller.Code != current.Code {
		if _, exists := s.idByCode[teller.Code]; exists {
			return fmt.Errorf("%w: teller code %s", ErrDuplicateCode, teller.Code)
		}
		delete(s.idByCode, current.Code)
		s.idByCode[teller.Code] = teller.ID
	}
	s.byID[teller.ID] = teller.Clone()
	return nil
}

func (s *InMemoryTellerDirectory) FindByID(id string) (*domain.Teller, error) {
	s.RLock()
	defer s.RUnlock()

	teller, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: teller id %s", ErrNotFound, id)
	}
	return teller.Clone(), nil
}

func (s *InMemoryTellerDirectory) FindByCode(code string) (*domain.Teller, error) {
	s.RLock()
	defer s.RUnlock()

	id, ok := s.idByCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: teller code %s", ErrNotFound, code)
	}
	return s.byID[id].Clone(), nil
}

func (s *InMemoryTellerDirectory) ListByBranch(branch string) ([]*domain.Teller, error) {
	s.RLock()
	defer s.RUnlock()

	result := make([]*domain.Teller, 0)
	for _, id := range s.order {
		teller := s.byID[id]
		if teller.Branch == branch {
			result = append(result, teller.Clone())
		}
	}
	return result, nil
}

func (s *InMemoryTellerDirectory) ListActive() ([]*domain.Teller, error) {
	s.RLock()
	defer s.RUnlock()

	result := make([]*domain.Teller, 0)
	for _, id := range s.order {
		teller := s.byID[id]
		if teller.Active {
			result = append(result, teller.Clone())
		}
	}
	return result, nil
}

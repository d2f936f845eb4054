package store

import (
	"fmt"
	"sync"

	"teller-ledger/domain"
	"teller-ledger/shared"
)

// ShiftStore is the persistence collaborator for shifts. Create must be
// an atomic check-and-insert: code uniqueness and the single open shift
// per teller are its responsibility, not the caller's.
type ShiftStore interface {
	Create(shift *domain.Shift) error

	FindByID(id string) (*domain.Shift, error)

	FindByCode(code string) (*domain.Shift, error)

	// FindOpenByTeller returns the teller's open shift if one exists.
	FindOpenByTeller(tellerID string) (*domain.Shift, bool, error)

	// Update persists a modified shift. The shift's Version must match
	// the stored one; on success the version is bumped.
	Update(shift *domain.Shift) error

	ListByBranch(branch string, state shared.ShiftState) ([]*domain.Shift, error)

	ListByTeller(tellerID string) ([]*domain.Shift, error)

	ListWithAlert() ([]*domain.Shift, error)
}

type InMemoryShiftStore struct {
	sync.RWMutex
	byID         map[string]*domain.Shift
	idByCode     map[string]string
	openByTeller map[string]string // tellerID -> shift ID of the open shift
	order        []string          // insertion order of shift IDs
}

func NewInMemoryShiftStore() *InMemoryShiftStore {
	return &InMemoryShiftStore{
		byID:         make(map[string]*domain.Shift),
		idByCode:     make(map[string]string),
		openByTeller: make(map[string]string),
	}
}

func (s *InMemoryShiftStore) Create(shift *domain.Shift) error {
	s.Lock()
	defer s.Unlock()

	if _, exists := s.byID[shift.ID]; exists {
		return fmt.Errorf("%w: shift id %s", ErrDuplicateCode, shift.ID)
	}
	if _, exists := s.idByCode[shift.Code]; exists {
		return fmt.Errorf("%w: shift code %s", ErrDuplicateCode, shift.Code)
	}
	if shift.IsOpen() {
		if openID, exists := s.openByTeller[shift.TellerID]; exists {
			return fmt.Errorf("%w: teller %s has open shift %s", ErrOpenShiftExists, shift.TellerID, openID)
		}
	}

	stored := shift.Clone()
	if stored.Version == 0 {
		stored.Version = 1
	}
	s.byID[stored.ID] = stored
	s.idByCode[stored.Code] = stored.ID
	if stored.IsOpen() {
		s.openByTeller[stored.TellerID] = stored.ID
	}
	s.order = append(s.order, stored.ID)

	shift.Version = stored.Version
	return nil
}

func (s *InMemoryShiftStore) FindByID(id string) (*domain.Shift, error) {
	s.RLock()
	defer s.RUnlock()

	shift, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: shift id %s", ErrNotFound, id)
	}
	return shift.Clone(), nil
}

func (s *InMemoryShiftStore) FindByCode(code string) (*domain.Shift, error) {
	s.RLock()
	defer s.RUnlock()

	id, ok := s.idByCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: shift code %s", ErrNotFound, code)
	}
	return s.byID[id].Clone(), nil
}

func (s *InMemoryShiftStore) FindOpenByTeller(tellerID string) (*domain.Shift, bool, error) {
	s.RLock()
	defer s.RUnlock()

	id, ok := s.openByTeller[tellerID]
	if !ok {
		return nil, false, nil
	}
	return s.byID[id].Clone(), true, nil
}

func (s *InMemoryShiftStore) Update(shift *domain.Shift) error {
	s.Lock()
	defer s.Unlock()

	current, ok := s.byID[shift.ID]
	if !ok {
		return fmt.Errorf("%w: shift id %s", ErrNotFound, shift.ID)
	}
	if current.Version != shift.Version {
		return fmt.Errorf("%w: expected version %d, but current version is %d for shift %s",
			ErrOptimisticLock, shift.Version, current.Version, shift.ID)
	}

	stored := shift.Clone()
	stored.Version = current.Version + 1
	s.byID[stored.ID] = stored

	if stored.IsOpen() {
		s.openByTeller[stored.TellerID] = stored.ID
	} else if s.openByTeller[stored.TellerID] == stored.ID {
		delete(s.openByTeller, stored.TellerID)
	}

	shift.Version = stored.Version
	return nil
}

func (s *InMemoryShiftStore) ListByBranch(branch string, state shared.ShiftState) ([]*domain.Shift, error) {
	s.RLock()
	defer s.RUnlock()

	result := make([]*domain.Shift, 0)
	for _, id := range s.order {
		shift := s.byID[id]
		if shift.Branch != branch {
			continue
		}
		if state != "" && shift.State != state {
			continue
		}
		result = append(result, shift.Clone())
	}
	return result, nil
}

func (s *InMemoryShiftStore) ListByTeller(tellerID string) ([]*domain.Shift, error) {
	s.RLock()
	defer s.RUnlock()

	result := make([]*domain.Shift, 0)
	for _, id := range s.order {
		shift := s.byID[id]
		if shift.TellerID == tellerID {
			result = append(result, shift.Clone())
		}
	}
	return result, nil
}

func (s *InMemoryShiftStore) ListWithAlert() ([]*domain.Shift, error) {
	s.RLock()
	defer s.RUnlock()

	result := make([]*domain.Shift, 0)
	for _, id := range s.order {
		shift := s.byID[id]
		if shift.Alert {
			result = append(result, shift.Clone())
		}
	}
	return result, nil
}

package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"teller-ledger/domain"
	"teller-ledger/shared"
	"teller-ledger/store"
)

// ShiftService is the reconciliation engine. It owns shift and ledger
// writes: it opens shifts against a counted cash float, admits
// transactions while a shift is open, and closes shifts by comparing
// the declared closing count against the balance expected from the
// ledger. External callers only read records or invoke these
// operations.
type ShiftService struct {
	shifts  store.ShiftStore
	ledger  store.LedgerStore
	tellers store.TellerDirectory
	log     zerolog.Logger
}

func NewShiftService(shifts store.ShiftStore, ledger store.LedgerStore, tellers store.TellerDirectory, log zerolog.Logger) *ShiftService {
	if shifts == nil || ledger == nil || tellers == nil {
		panic("ShiftService requires non-nil shift, ledger and teller stores")
	}
	return &ShiftService{
		shifts:  shifts,
		ledger:  ledger,
		tellers: tellers,
		log:     log,
	}
}

// --- Teller management ---

func (s *ShiftService) RegisterTeller(cmd RegisterTellerCommand) (*domain.Teller, error) {
	if cmd.Code == "" {
		return nil, fmt.Errorf("register teller: %w", domain.NewDomainError(domain.ClassValidation, "teller code is required"))
	}
	if cmd.TillCode == "" {
		return nil, fmt.Errorf("register teller: %w", domain.NewDomainError(domain.ClassValidation, "till code is required"))
	}

	now := time.Now().UTC()
	teller := &domain.Teller{
		ID:        uuid.NewString(),
		Code:      cmd.Code,
		TillCode:  cmd.TillCode,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
		Branch:    cmd.Branch,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.tellers.Create(teller); err != nil {
		if errors.Is(err, store.ErrDuplicateCode) {
			return nil, fmt.Errorf("register teller: %w",
				domain.NewDomainError(domain.ClassConflict, "teller code %s already registered", cmd.Code))
		}
		return nil, fmt.Errorf("register teller %s: %w", cmd.Code, err)
	}

	s.log.Info().Str("teller", teller.Code).Str("branch", teller.Branch).Msg("teller registered")
	return teller, nil
}

func (s *ShiftService) DeactivateTeller(code string) (*domain.Teller, error) {
	teller, err := s.tellers.FindByCode(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("deactivate teller: %w: %s", domain.ErrTellerNotFound, code)
		}
		return nil, fmt.Errorf("deactivate teller %s: %w", code, err)
	}

	teller.Active = false
	teller.UpdatedAt = time.Now().UTC()
	if err := s.tellers.Update(teller); err != nil {
		return nil, fmt.Errorf("deactivate teller %s: %w", code, err)
	}

	s.log.Info().Str("teller", code).Msg("teller deactivated")
	return teller, nil
}

func (s *ShiftService) GetTeller(code string) (*domain.Teller, error) {
	teller, err := s.tellers.FindByCode(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTellerNotFound, code)
		}
		return nil, fmt.Errorf("get teller %s: %w", code, err)
	}
	return teller, nil
}

func (s *ShiftService) ListTellersByBranch(branch string) ([]*domain.Teller, error) {
	return s.tellers.ListByBranch(branch)
}

func (s *ShiftService) ListActiveTellers() ([]*domain.Teller, error) {
	return s.tellers.ListActive()
}

// --- Shift lifecycle ---

// OpenShift starts a new shift for the teller with the counted opening
// float. The teller must exist and be active, must not already hold an
// open shift, and the opening count must be a valid cash count.
func (s *ShiftService) OpenShift(cmd OpenShiftCommand) (*domain.Shift, error) {
	s.log.Info().Str("teller", cmd.TellerCode).Msg("opening shift")

	teller, err := s.resolveActiveTeller(cmd.TellerCode)
	if err != nil {
		return nil, fmt.Errorf("open shift: %w", err)
	}

	if err := cmd.OpeningCount.Validate(); err != nil {
		return nil, fmt.Errorf("open shift: invalid opening count: %w", err)
	}

	if _, found, err := s.shifts.FindOpenByTeller(teller.ID); err != nil {
		return nil, fmt.Errorf("open shift: checking open shift for teller %s: %w", teller.Code, err)
	} else if found {
		return nil, fmt.Errorf("open shift: %w: teller %s", domain.ErrShiftAlreadyOpen, teller.Code)
	}

	now := time.Now().UTC()
	shift := &domain.Shift{
		ID:              uuid.NewString(),
		Code:            shiftCode(teller.TillCode, teller.Code, now),
		TellerID:        teller.ID,
		TellerCode:      teller.Code,
		TillCode:        teller.TillCode,
		Branch:          teller.Branch,
		State:           shared.ShiftOpen,
		OpenedAt:        now,
		OpeningCount:    cmd.OpeningCount.Clone(),
		ExpectedBalance: decimal.Zero,
		DeclaredBalance: decimal.Zero,
		Discrepancy:     decimal.Zero,
		Alert:           false,
		Notes:           cmd.Note,
	}

	if err := s.shifts.Create(shift); err != nil {
		// The store re-checks the invariant inside its critical
		// section; the earlier lookup only produces a friendlier
		// error for the common case.
		if errors.Is(err, store.ErrOpenShiftExists) {
			return nil, fmt.Errorf("open shift: %w: teller %s", domain.ErrShiftAlreadyOpen, teller.Code)
		}
		return nil, fmt.Errorf("open shift: persisting shift %s: %w", shift.Code, err)
	}

	s.log.Info().Str("shift", shift.Code).Str("teller", teller.Code).Msg("shift opened")
	return shift, nil
}

// PostTransaction appends a deposit or withdrawal to an open shift's
// ledger. The shift record itself is untouched: the expected balance
// is computed from the ledger at close time, so the shift caches
// nothing that could drift.
func (s *ShiftService) PostTransaction(cmd PostTransactionCommand) (*domain.TransactionEntry, error) {
	s.log.Info().Str("shift_id", cmd.ShiftID).Str("kind", string(cmd.Kind)).Msg("posting transaction")

	shift, err := s.shifts.FindByID(cmd.ShiftID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("post transaction: %w: %s", domain.ErrShiftNotFound, cmd.ShiftID)
		}
		return nil, fmt.Errorf("post transaction: loading shift %s: %w", cmd.ShiftID, err)
	}
	if !shift.IsOpen() {
		return nil, fmt.Errorf("post transaction: %w: shift %s is %s", domain.ErrShiftNotOpen, shift.Code, shift.State)
	}

	if !cmd.Kind.IsValid() {
		return nil, fmt.Errorf("post transaction: %w: %q", domain.ErrInvalidTransactionKind, string(cmd.Kind))
	}
	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("post transaction: %w: %s", domain.ErrNonPositiveAmount, cmd.Amount)
	}
	if err := cmd.Count.Validate(); err != nil {
		return nil, fmt.Errorf("post transaction: invalid cash count: %w", err)
	}

	counted, err := cmd.Count.Total()
	if err != nil {
		return nil, fmt.Errorf("post transaction: %w", err)
	}
	if !counted.Equal(cmd.Amount) {
		return nil, fmt.Errorf("post transaction: %w: declared %s, counted %s",
			domain.ErrAmountMismatch, cmd.Amount, counted)
	}

	now := time.Now().UTC()
	entry := &domain.TransactionEntry{
		ID:            uuid.NewString(),
		Code:          transactionCode(shift.TellerCode, now),
		ShiftID:       shift.ID,
		ShiftCode:     shift.Code,
		TellerID:      shift.TellerID,
		TellerCode:    shift.TellerCode,
		TillCode:      shift.TillCode,
		Kind:          cmd.Kind,
		Amount:        cmd.Amount,
		Count:         cmd.Count.Clone(),
		ClientID:      cmd.ClientID,
		AccountNumber: cmd.AccountNumber,
		Note:          cmd.Note,
		CreatedAt:     now,
	}

	if err := s.ledger.Append(entry); err != nil {
		return nil, fmt.Errorf("post transaction: appending entry %s: %w", entry.Code, err)
	}

	s.log.Info().Str("entry", entry.Code).Str("shift", shift.Code).
		Str("kind", string(cmd.Kind)).Str("amount", cmd.Amount.String()).
		Msg("transaction posted")
	return entry, nil
}

// CloseShift reconciles the declared closing count against the balance
// expected from the opening float and the ledger, then closes the
// shift. A discrepancy never blocks the close: it is recorded with the
// alert flag set and reported, not corrected.
func (s *ShiftService) CloseShift(cmd CloseShiftCommand) (*domain.Shift, error) {
	s.log.Info().Str("shift", cmd.ShiftCode).Msg("closing shift")

	shift, err := s.shifts.FindByCode(cmd.ShiftCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("close shift: %w: %s", domain.ErrShiftNotFound, cmd.ShiftCode)
		}
		return nil, fmt.Errorf("close shift: loading shift %s: %w", cmd.ShiftCode, err)
	}
	if !shift.IsOpen() {
		return nil, fmt.Errorf("close shift: %w: shift %s is %s", domain.ErrShiftNotOpen, shift.Code, shift.State)
	}

	if err := cmd.ClosingCount.Validate(); err != nil {
		return nil, fmt.Errorf("close shift: invalid closing count: %w", err)
	}

	declared, err := cmd.ClosingCount.Total()
	if err != nil {
		return nil, fmt.Errorf("close shift: %w", err)
	}

	expected, err := s.expectedBalance(shift)
	if err != nil {
		return nil, fmt.Errorf("close shift: %w", err)
	}

	discrepancy := declared.Sub(expected)
	now := time.Now().UTC()

	shift.State = shared.ShiftClosed
	shift.ClosedAt = &now
	shift.ClosingCount = cmd.ClosingCount.Clone()
	shift.ExpectedBalance = expected
	shift.DeclaredBalance = declared
	shift.Discrepancy = discrepancy
	shift.Alert = !discrepancy.IsZero()
	shift.AppendNote("close: ", cmd.Note)

	if err := s.shifts.Update(shift); err != nil {
		return nil, fmt.Errorf("close shift: persisting shift %s: %w", shift.Code, err)
	}

	if shift.Alert {
		s.log.Warn().Str("shift", shift.Code).
			Str("expected", expected.String()).
			Str("declared", declared.String()).
			Str("discrepancy", discrepancy.String()).
			Msg("shift closed with discrepancy")
	} else {
		s.log.Info().Str("shift", shift.Code).Str("balance", declared.String()).Msg("shift closed")
	}
	return shift, nil
}

// expectedBalance is the opening total plus deposits minus withdrawals
// over all ledger entries belonging to the shift.
func (s *ShiftService) expectedBalance(shift *domain.Shift) (decimal.Decimal, error) {
	opening, err := shift.OpeningTotal()
	if err != nil {
		return decimal.Zero, fmt.Errorf("computing opening total for shift %s: %w", shift.Code, err)
	}

	entries, err := s.ledger.ListByShift(shift.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("listing ledger entries for shift %s: %w", shift.Code, err)
	}

	expected := opening
	for _, entry := range entries {
		expected = expected.Add(entry.SignedAmount())
	}
	return expected, nil
}

// --- Read accessors ---

func (s *ShiftService) GetShift(code string) (*domain.Shift, error) {
	shift, err := s.shifts.FindByCode(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrShiftNotFound, code)
		}
		return nil, fmt.Errorf("get shift %s: %w", code, err)
	}
	return shift, nil
}

func (s *ShiftService) GetShiftByID(id string) (*domain.Shift, error) {
	shift, err := s.shifts.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrShiftNotFound, id)
		}
		return nil, fmt.Errorf("get shift %s: %w", id, err)
	}
	return shift, nil
}

// OpenShiftForTeller returns the teller's currently open shift, if any.
func (s *ShiftService) OpenShiftForTeller(tellerCode string) (*domain.Shift, bool, error) {
	teller, err := s.GetTeller(tellerCode)
	if err != nil {
		return nil, false, err
	}
	return s.shifts.FindOpenByTeller(teller.ID)
}

func (s *ShiftService) ListShifts(query ListShiftsQuery) ([]*domain.Shift, error) {
	shifts, err := s.shifts.ListByBranch(query.Branch, query.State)
	if err != nil {
		return nil, fmt.Errorf("list shifts for branch %s: %w", query.Branch, err)
	}
	return paginate(shifts, query.Limit, query.Skip), nil
}

func (s *ShiftService) ListShiftsByTeller(query ListShiftsByTellerQuery) ([]*domain.Shift, error) {
	teller, err := s.GetTeller(query.TellerCode)
	if err != nil {
		return nil, err
	}
	shifts, err := s.shifts.ListByTeller(teller.ID)
	if err != nil {
		return nil, fmt.Errorf("list shifts for teller %s: %w", query.TellerCode, err)
	}
	return paginate(shifts, query.Limit, query.Skip), nil
}

func (s *ShiftService) ListAlertShifts(query ListAlertShiftsQuery) ([]*domain.Shift, error) {
	shifts, err := s.shifts.ListWithAlert()
	if err != nil {
		return nil, fmt.Errorf("list alert shifts: %w", err)
	}
	return paginate(shifts, query.Limit, query.Skip), nil
}

func (s *ShiftService) GetEntry(code string) (*domain.TransactionEntry, error) {
	entry, err := s.ledger.FindByCode(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, code)
		}
		return nil, fmt.Errorf("get entry %s: %w", code, err)
	}
	return entry, nil
}

func (s *ShiftService) ListEntries(query ListEntriesQuery) ([]*domain.TransactionEntry, error) {
	shift, err := s.GetShift(query.ShiftCode)
	if err != nil {
		return nil, err
	}

	var entries []*domain.TransactionEntry
	if query.Kind != "" {
		if !query.Kind.IsValid() {
			return nil, fmt.Errorf("list entries: %w: %q", domain.ErrInvalidTransactionKind, string(query.Kind))
		}
		entries, err = s.ledger.ListByShiftAndKind(shift.ID, query.Kind)
	} else {
		entries, err = s.ledger.ListByShift(shift.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("list entries for shift %s: %w", query.ShiftCode, err)
	}
	return paginate(entries, query.Limit, query.Skip), nil
}

func (s *ShiftService) ListEntriesByTeller(query ListEntriesByTellerQuery) ([]*domain.TransactionEntry, error) {
	teller, err := s.GetTeller(query.TellerCode)
	if err != nil {
		return nil, err
	}
	entries, err := s.ledger.ListByTeller(teller.ID)
	if err != nil {
		return nil, fmt.Errorf("list entries for teller %s: %w", query.TellerCode, err)
	}
	return paginate(entries, query.Limit, query.Skip), nil
}

func (s *ShiftService) ListEntriesByClient(query ListEntriesByClientQuery) ([]*domain.TransactionEntry, error) {
	entries, err := s.ledger.ListByClient(query.ClientID)
	if err != nil {
		return nil, fmt.Errorf("list entries for client %s: %w", query.ClientID, err)
	}
	return paginate(entries, query.Limit, query.Skip), nil
}

// --- Helpers ---

func (s *ShiftService) resolveActiveTeller(code string) (*domain.Teller, error) {
	teller, err := s.tellers.FindByCode(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTellerNotFound, code)
		}
		return nil, fmt.Errorf("resolving teller %s: %w", code, err)
	}
	if !teller.Active {
		return nil, fmt.Errorf("%w: %s", domain.ErrTellerInactive, code)
	}
	return teller, nil
}

// shiftCode builds the human-legible shift code: till, teller and date,
// plus a random suffix so a same-day reopen after close never collides.
// The shift store's uniqueness constraint is the final guarantee.
func shiftCode(tillCode, tellerCode string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%s", tillCode, tellerCode, t.Format("20060102"), codeSuffix())
}

func transactionCode(tellerCode string, t time.Time) string {
	return fmt.Sprintf("TXN-%s-%s-%s-%s", tellerCode, t.Format("20060102"), t.Format("150405"), codeSuffix())
}

func codeSuffix() string {
	return uuid.NewString()[:8]
}

func paginate[T any](items []T, limit, skip int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return items[skip:end]
}

package app

import (
	"github.com/shopspring/decimal"

	"teller-ledger/domain"
	"teller-ledger/shared"
)

// --- Command Struct Definitions ---
// Commands represent the intent to perform an action or change state in the system.

type RegisterTellerCommand struct {
	Code      string
	TillCode  string
	FirstName string
	LastName  string
	Email     string
	Branch    string
}

type OpenShiftCommand struct {
	TellerCode   string
	OpeningCount domain.CashCount
	Note         string
}

type PostTransactionCommand struct {
	ShiftID       string
	Kind          shared.TransactionKind
	Amount        decimal.Decimal
	Count         domain.CashCount
	ClientID      string
	AccountNumber string
	Note          string
}

type CloseShiftCommand struct {
	ShiftCode    string
	ClosingCount domain.CashCount
	Note         string
}

// --- Query Structures (Input for Read Operations) ---
// Limit <= 0 means no limit; Skip < 0 is treated as 0.

type ListShiftsQuery struct {
	Branch string
	State  shared.ShiftState
	Limit  int
	Skip   int
}

type ListShiftsByTellerQuery struct {
	TellerCode string
	Limit      int
	Skip       int
}

type ListAlertShiftsQuery struct {
	Limit int
	Skip  int
}

type ListEntriesQuery struct {
	ShiftCode string
	Kind      shared.TransactionKind // empty means all kinds
	Limit     int
	Skip      int
}

type ListEntriesByTellerQuery struct {
	TellerCode string
	Limit      int
	Skip       int
}

type ListEntriesByClientQuery struct {
	ClientID string
	Limit    int
	Skip     int
}

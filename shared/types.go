package shared

// TransactionKind is the closed set of cash-affecting transaction types
// a teller can post against an open shift.
type TransactionKind string

const (
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
)

func (k TransactionKind) IsValid() bool {
	return k == Deposit || k == Withdrawal
}

// ShiftState is the lifecycle state of a teller shift. The only legal
// transition is OPEN -> CLOSED; a closed shift is immutable history.
type ShiftState string

const (
	ShiftOpen   ShiftState = "OPEN"
	ShiftClosed ShiftState = "CLOSED"
)

func (s ShiftState) IsValid() bool {
	return s == ShiftOpen || s == ShiftClosed
}

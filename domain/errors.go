package domain

import "fmt"

// ErrorClass buckets domain failures the way the transport layer needs
// to map them: absent records, bad input, and illegal state transitions.
type ErrorClass string

const (
	ClassNotFound   ErrorClass = "not_found"
	ClassValidation ErrorClass = "validation"
	ClassConflict   ErrorClass = "conflict"
)

type DomainError struct {
	class   ErrorClass
	message string
}

func NewDomainError(class ErrorClass, format string, args ...interface{}) *DomainError {
	return &DomainError{class: class, message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.message
}

func (e *DomainError) Class() ErrorClass {
	return e.class
}

var (
	ErrTellerNotFound = NewDomainError(ClassNotFound, "teller not found")
	ErrTellerInactive = NewDomainError(ClassConflict, "teller is inactive")
	ErrShiftNotFound  = NewDomainError(ClassNotFound, "shift not found")
	ErrEntryNotFound  = NewDomainError(ClassNotFound, "ledger entry not found")

	ErrShiftAlreadyOpen = NewDomainError(ClassConflict, "teller already has an open shift")
	ErrShiftNotOpen     = NewDomainError(ClassConflict, "shift is not open")

	ErrUnknownDenomination    = NewDomainError(ClassValidation, "unknown denomination")
	ErrEmptyCashCount         = NewDomainError(ClassValidation, "cash count has no denomination lines")
	ErrNegativeCount          = NewDomainError(ClassValidation, "denomination count cannot be negative")
	ErrAmountMismatch         = NewDomainError(ClassValidation, "declared amount does not match cash count total")
	ErrInvalidTransactionKind = NewDomainError(ClassValidation, "invalid transaction kind")
	ErrNonPositiveAmount      = NewDomainError(ClassValidation, "amount must be positive")
)

func classOf(err error) (ErrorClass, bool) {
	for err != nil {
		if de, ok := err.(*DomainError); ok {
			return de.class, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return "", false
		}
		err = u.Unwrap()
	}
	return "", false
}

// IsNotFound reports whether err (or anything it wraps) is a
// record-absent failure.
func IsNotFound(err error) bool {
	c, ok := classOf(err)
	return ok && c == ClassNotFound
}

// IsValidation reports whether err is an invalid-input failure.
func IsValidation(err error) bool {
	c, ok := classOf(err)
	return ok && c == ClassValidation
}

// IsConflict reports whether err is an illegal-state failure.
func IsConflict(err error) bool {
	c, ok := classOf(err)
	return ok && c == ClassConflict
}

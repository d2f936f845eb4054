package store

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")

	// ErrOptimisticLock is returned when an update carries a stale
	// version. The caller must re-read and retry if it wants to.
	ErrOptimisticLock = errors.New("optimistic lock error: version conflict")

	// ErrDuplicateCode is the storage-level uniqueness constraint on
	// generated shift and transaction codes.
	ErrDuplicateCode = errors.New("code already exists")

	// ErrOpenShiftExists is the storage-level guard for the
	// one-open-shift-per-teller invariant. It is enforced inside the
	// store's critical section so a read-then-insert race cannot
	// produce two open shifts.
	ErrOpenShiftExists = errors.New("teller already has an open shift")
)

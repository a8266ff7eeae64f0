package model

import "errors"

// Account-level domain errors. The ledger propagates these unchanged;
// callers match with errors.Is.
var (
	// ErrInvalidAmount rejects non-positive deposit/withdrawal amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrWithdrawalLimit rejects a single withdrawal above the
	// account's withdrawal limit.
	ErrWithdrawalLimit = errors.New("withdrawal limit exceeded")

	// ErrInsufficientFunds rejects a withdrawal that would take the
	// balance below the account's floor (overdraft limit for
	// checking, zero for savings).
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAccountType rejects an unknown account kind.
	ErrInvalidAccountType = errors.New("invalid account type")
)

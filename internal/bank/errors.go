// Package bank implements the in-memory ledger: it owns all accounts
// and the append-only transaction log, and issues every balance
// mutation. Account-policy errors surface unchanged from
// internal/model; the errors below are the ledger's own.
package bank

import "errors"

var (
	// ErrAccountNotFound means the given account id is unknown to
	// this ledger.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccount rejects a transfer whose source and target are
	// the same account.
	ErrSameAccount = errors.New("cannot transfer to the same account")

	// ErrMissingParameter means CreateAccount was called without the
	// parameter struct the requested kind needs, or with a required
	// field unset.
	ErrMissingParameter = errors.New("missing account parameter")
)

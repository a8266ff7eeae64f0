package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountKind classifies accounts held by the ledger.
type AccountKind string

const (
	KindChecking AccountKind = "checking"
	KindSavings  AccountKind = "savings"
)

// ParseAccountKind converts user input to an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(s) {
	case KindChecking:
		return KindChecking, nil
	case KindSavings:
		return KindSavings, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountType, s)
	}
}

// CheckingDetails holds the checking-specific policy fields.
type CheckingDetails struct {
	WithdrawalLimit decimal.Decimal // max single withdrawal
	OverdraftLimit  decimal.Decimal // minimum balance, typically <= 0
}

// SavingsDetails holds the savings-specific policy fields.
type SavingsDetails struct {
	PeriodsPerYear  int             // capitalization periods per year
	AnnualRate      decimal.Decimal // percent
	WithdrawalLimit decimal.Decimal // max single withdrawal
}

// Account is a ledger account. Kind selects which details pointer is
// set: exactly one of Checking or Savings is non-nil. Balance changes
// only through Deposit and Withdraw; a rejected call leaves it as-is.
type Account struct {
	ID       int
	Owner    string
	Balance  decimal.Decimal
	Kind     AccountKind
	Checking *CheckingDetails
	Savings  *SavingsDetails
}

// Deposit adds a positive amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw removes amount from the balance, enforcing the kind's
// policy. Checks run in a fixed order (amount validity, then the
// withdrawal limit, then funds) so the reported error is deterministic.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	switch a.Kind {
	case KindChecking:
		if amount.GreaterThan(a.Checking.WithdrawalLimit) {
			return ErrWithdrawalLimit
		}
		if a.Balance.Sub(amount).LessThan(a.Checking.OverdraftLimit) {
			return ErrInsufficientFunds
		}
	case KindSavings:
		if amount.GreaterThan(a.Savings.WithdrawalLimit) {
			return ErrWithdrawalLimit
		}
		if amount.GreaterThan(a.Balance) {
			return ErrInsufficientFunds
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAccountType, a.Kind)
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Clone returns a deep copy the caller may inspect freely.
func (a *Account) Clone() Account {
	cp := *a
	if a.Checking != nil {
		d := *a.Checking
		cp.Checking = &d
	}
	if a.Savings != nil {
		d := *a.Savings
		cp.Savings = &d
	}
	return cp
}

// String renders the multi-line account summary shown by the CLI.
func (a *Account) String() string {
	switch a.Kind {
	case KindSavings:
		return fmt.Sprintf(
			"=== Savings Account ===\n"+
				"ID: %d\n"+
				"Owner: %s\n"+
				"Balance: %s\n"+
				"Capitalization periods per year: %d\n"+
				"Annual interest rate: %s\n"+
				"Withdrawal limit: %s",
			a.ID, a.Owner, a.Balance.StringFixed(2),
			a.Savings.PeriodsPerYear, a.Savings.AnnualRate,
			a.Savings.WithdrawalLimit)
	case KindChecking:
		return fmt.Sprintf(
			"=== Checking Account ===\n"+
				"ID: %d\n"+
				"Owner: %s\n"+
				"Balance: %s\n"+
				"Withdrawal limit: %s\n"+
				"Overdraft limit: %s",
			a.ID, a.Owner, a.Balance.StringFixed(2),
			a.Checking.WithdrawalLimit, a.Checking.OverdraftLimit)
	default:
		return fmt.Sprintf(
			"=== Account ===\nID: %d\nOwner: %s\nBalance: %s",
			a.ID, a.Owner, a.Balance.StringFixed(2))
	}
}

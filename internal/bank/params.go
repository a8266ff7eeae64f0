package bank

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

// AccountParams carries the kind-specific parameters for a new account.
// CheckingParams and SavingsParams are the only implementations.
type AccountParams interface {
	kind() model.AccountKind
	validate() error
}

// CheckingParams parameterizes a new checking account. OverdraftLimit
// is the minimum balance allowed; zero means no overdraft and is a
// valid value, not a missing one.
type CheckingParams struct {
	WithdrawalLimit decimal.Decimal
	OverdraftLimit  decimal.Decimal
}

func (s CheckingParams) kind() model.AccountKind { return model.KindChecking }

func (s CheckingParams) validate() error {
	if s.WithdrawalLimit.Sign() <= 0 {
		return fmt.Errorf("%w: withdrawal limit", ErrMissingParameter)
	}
	return nil
}

// SavingsParams parameterizes a new savings account.
type SavingsParams struct {
	PeriodsPerYear  int
	AnnualRate      decimal.Decimal
	WithdrawalLimit decimal.Decimal
}

func (s SavingsParams) kind() model.AccountKind { return model.KindSavings }

func (s SavingsParams) validate() error {
	if s.PeriodsPerYear <= 0 {
		return fmt.Errorf("%w: capitalization periods per year", ErrMissingParameter)
	}
	if s.AnnualRate.Sign() < 0 {
		return fmt.Errorf("%w: annual interest rate", ErrMissingParameter)
	}
	if s.WithdrawalLimit.Sign() <= 0 {
		return fmt.Errorf("%w: withdrawal limit", ErrMissingParameter)
	}
	return nil
}

// Package interest projects compound growth for savings accounts.
package interest

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

var (
	// ErrInvalidArgument rejects out-of-range projection inputs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrWrongAccountType means a projection was requested for a
	// non-savings account.
	ErrWrongAccountType = errors.New("account must be a savings account")
)

// Project returns the final amount after compounding startingCapital
// for the given number of days. The number of elapsed periods is
// generally fractional ((days/365) * periodsPerYear), so the
// exponentiation is a real-number pow, not an integer loop.
func Project(startingCapital decimal.Decimal, days, periodsPerYear int, annualRate decimal.Decimal) (decimal.Decimal, error) {
	if startingCapital.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("%w: starting capital must be non-negative", ErrInvalidArgument)
	}
	if days < 0 {
		return decimal.Zero, fmt.Errorf("%w: days must be non-negative", ErrInvalidArgument)
	}
	if periodsPerYear <= 0 {
		return decimal.Zero, fmt.Errorf("%w: periods per year must be positive", ErrInvalidArgument)
	}
	if annualRate.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("%w: annual rate must be non-negative", ErrInvalidArgument)
	}

	periods := float64(days) / 365 * float64(periodsPerYear)
	ratePerPeriod := annualRate.InexactFloat64() / float64(periodsPerYear) / 100
	final := startingCapital.InexactFloat64() * math.Pow(1+ratePerPeriod, periods)
	return decimal.NewFromFloat(final), nil
}

// ProjectForAccount projects the account's current balance over the
// given number of days using its own capitalization schedule and rate.
func ProjectForAccount(acct model.Account, days int) (decimal.Decimal, error) {
	if acct.Kind != model.KindSavings || acct.Savings == nil {
		return decimal.Zero, fmt.Errorf("%w: account %d is %s", ErrWrongAccountType, acct.ID, acct.Kind)
	}
	return Project(acct.Balance, days, acct.Savings.PeriodsPerYear, acct.Savings.AnnualRate)
}

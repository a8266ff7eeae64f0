package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func checking(wl, od string) *Account {
	return &Account{
		ID:    0,
		Owner: "Ada",
		Kind:  KindChecking,
		Checking: &CheckingDetails{
			WithdrawalLimit: dec(wl),
			OverdraftLimit:  dec(od),
		},
	}
}

func savings(periods int, rate, wl string) *Account {
	return &Account{
		ID:    1,
		Owner: "Grace",
		Kind:  KindSavings,
		Savings: &SavingsDetails{
			PeriodsPerYear:  periods,
			AnnualRate:      dec(rate),
			WithdrawalLimit: dec(wl),
		},
	}
}

func TestDeposit(t *testing.T) {
	a := checking("1000", "-200")

	require.NoError(t, a.Deposit(dec("250.50")))
	assert.True(t, a.Balance.Equal(dec("250.50")))

	require.NoError(t, a.Deposit(dec("49.50")))
	assert.True(t, a.Balance.Equal(dec("300")))
}

func TestDeposit_RejectsNonPositive(t *testing.T) {
	a := checking("1000", "-200")
	require.NoError(t, a.Deposit(dec("100")))

	assert.ErrorIs(t, a.Deposit(dec("0")), ErrInvalidAmount)
	assert.ErrorIs(t, a.Deposit(dec("-5")), ErrInvalidAmount)
	assert.True(t, a.Balance.Equal(dec("100")), "failed deposit must not change the balance")
}

func TestCheckingWithdraw(t *testing.T) {
	a := checking("1000", "-200")
	require.NoError(t, a.Deposit(dec("500")))

	require.NoError(t, a.Withdraw(dec("600")))
	assert.True(t, a.Balance.Equal(dec("-100")), "overdraft down to the floor is allowed")

	require.NoError(t, a.Withdraw(dec("100")))
	assert.True(t, a.Balance.Equal(dec("-200")), "balance may sit exactly on the overdraft limit")

	assert.ErrorIs(t, a.Withdraw(dec("0.01")), ErrInsufficientFunds)
	assert.True(t, a.Balance.Equal(dec("-200")))
}

func TestCheckingWithdraw_CheckOrder(t *testing.T) {
	a := checking("100", "0")
	require.NoError(t, a.Deposit(dec("50")))

	// First failing check wins: amount validity before the limit.
	assert.ErrorIs(t, a.Withdraw(dec("-500")), ErrInvalidAmount)

	// Limit before funds, even though both would fail.
	assert.ErrorIs(t, a.Withdraw(dec("200")), ErrWithdrawalLimit)

	// Within the limit but past the floor.
	assert.ErrorIs(t, a.Withdraw(dec("51")), ErrInsufficientFunds)

	assert.True(t, a.Balance.Equal(dec("50")))
}

func TestSavingsWithdraw(t *testing.T) {
	a := savings(12, "5", "500")
	require.NoError(t, a.Deposit(dec("300")))

	require.NoError(t, a.Withdraw(dec("300")))
	assert.True(t, a.Balance.IsZero())

	assert.ErrorIs(t, a.Withdraw(dec("1")), ErrInsufficientFunds, "savings never goes negative")
}

func TestSavingsWithdraw_LimitBeforeFunds(t *testing.T) {
	a := savings(12, "5", "500")
	require.NoError(t, a.Deposit(dec("10000")))

	assert.ErrorIs(t, a.Withdraw(dec("501")), ErrWithdrawalLimit, "limit applies even with ample funds")
	assert.True(t, a.Balance.Equal(dec("10000")))
}

func TestParseAccountKind(t *testing.T) {
	kind, err := ParseAccountKind("checking")
	require.NoError(t, err)
	assert.Equal(t, KindChecking, kind)

	kind, err = ParseAccountKind("savings")
	require.NoError(t, err)
	assert.Equal(t, KindSavings, kind)

	_, err = ParseAccountKind("brokerage")
	assert.ErrorIs(t, err, ErrInvalidAccountType)
}

func TestAccountString(t *testing.T) {
	a := checking("1000", "-200")
	require.NoError(t, a.Deposit(dec("300")))

	out := a.String()
	assert.Contains(t, out, "=== Checking Account ===")
	assert.Contains(t, out, "ID: 0")
	assert.Contains(t, out, "Owner: Ada")
	assert.Contains(t, out, "Balance: 300.00")
	assert.Contains(t, out, "Withdrawal limit: 1000")
	assert.Contains(t, out, "Overdraft limit: -200")

	b := savings(12, "5", "500")
	out = b.String()
	assert.Contains(t, out, "=== Savings Account ===")
	assert.Contains(t, out, "Capitalization periods per year: 12")
	assert.Contains(t, out, "Annual interest rate: 5")
}

func TestClone_Isolated(t *testing.T) {
	a := checking("1000", "-200")
	require.NoError(t, a.Deposit(dec("100")))

	cp := a.Clone()
	cp.Balance = dec("999")
	cp.Checking.WithdrawalLimit = dec("1")

	assert.True(t, a.Balance.Equal(dec("100")))
	assert.True(t, a.Checking.WithdrawalLimit.Equal(dec("1000")))
}

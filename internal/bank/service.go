package bank

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

// Service is the ledger. It owns every account exclusively, assigns
// ids from a per-instance counter starting at 0, and records one
// Transaction per successful operation. The service is
// single-threaded: callers serialize access themselves.
type Service struct {
	nextID       int
	byID         map[int]*model.Account
	order        []int // account ids in creation order
	transactions []model.Transaction
}

// NewService creates an empty ledger.
func NewService() *Service {
	return &Service{byID: make(map[int]*model.Account)}
}

// CreateAccount opens an account of the given kind for owner, using
// the kind's parameter struct. It assigns the next sequential id and
// returns a snapshot of the stored account. Limit values are not
// bounded beyond what the parameter struct requires.
func (s *Service) CreateAccount(kind model.AccountKind, owner string, params AccountParams) (model.Account, error) {
	switch kind {
	case model.KindChecking, model.KindSavings:
	default:
		return model.Account{}, fmt.Errorf("%w: %q", model.ErrInvalidAccountType, kind)
	}
	if params == nil {
		return model.Account{}, fmt.Errorf("%w: %s parameters required", ErrMissingParameter, kind)
	}
	if params.kind() != kind {
		return model.Account{}, fmt.Errorf("%w: %s parameters required, got %s", ErrMissingParameter, kind, params.kind())
	}
	if err := params.validate(); err != nil {
		return model.Account{}, err
	}

	acct := &model.Account{
		ID:    s.nextID,
		Owner: owner,
		Kind:  kind,
	}
	switch p := params.(type) {
	case CheckingParams:
		acct.Checking = &model.CheckingDetails{
			WithdrawalLimit: p.WithdrawalLimit,
			OverdraftLimit:  p.OverdraftLimit,
		}
	case SavingsParams:
		acct.Savings = &model.SavingsDetails{
			PeriodsPerYear:  p.PeriodsPerYear,
			AnnualRate:      p.AnnualRate,
			WithdrawalLimit: p.WithdrawalLimit,
		}
	}

	s.byID[acct.ID] = acct
	s.order = append(s.order, acct.ID)
	s.nextID++
	return acct.Clone(), nil
}

// Deposit credits amount to the account and logs a deposit
// transaction. Nothing is logged on failure.
func (s *Service) Deposit(accountID int, amount decimal.Decimal) error {
	acct, err := s.lookup(accountID)
	if err != nil {
		return err
	}
	if err := acct.Deposit(amount); err != nil {
		return err
	}
	s.append(model.TxDeposit, amount, accountID, 0)
	return nil
}

// Withdraw debits amount from the account, subject to the account's
// withdrawal policy, and logs a withdraw transaction. Nothing is
// logged on failure.
func (s *Service) Withdraw(accountID int, amount decimal.Decimal) error {
	acct, err := s.lookup(accountID)
	if err != nil {
		return err
	}
	if err := acct.Withdraw(amount); err != nil {
		return err
	}
	s.append(model.TxWithdraw, amount, accountID, 0)
	return nil
}

// Transfer moves amount between two distinct accounts atomically:
// either both the source debit and the target credit happen and one
// transfer transaction is logged, or neither balance changes. If the
// target credit fails after the source debit succeeded, the debit is
// compensated before the error is returned.
func (s *Service) Transfer(fromID, toID int, amount decimal.Decimal) error {
	if fromID == toID {
		return ErrSameAccount
	}
	from, err := s.lookup(fromID)
	if err != nil {
		return err
	}
	to, err := s.lookup(toID)
	if err != nil {
		return err
	}

	if err := from.Withdraw(amount); err != nil {
		return err
	}
	if err := to.Deposit(amount); err != nil {
		// Roll the debit back so a half-applied transfer can never
		// be observed. The compensating deposit of an amount that
		// just passed Withdraw cannot itself fail.
		from.Balance = from.Balance.Add(amount)
		return err
	}

	s.append(model.TxTransfer, amount, fromID, toID)
	return nil
}

// Account returns a snapshot of the account with the given id.
func (s *Service) Account(accountID int) (model.Account, error) {
	acct, err := s.lookup(accountID)
	if err != nil {
		return model.Account{}, err
	}
	return acct.Clone(), nil
}

// Accounts returns snapshots of all accounts in creation order.
func (s *Service) Accounts() []model.Account {
	out := make([]model.Account, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

// Transactions returns a copy of the transaction log in append order.
func (s *Service) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Service) lookup(accountID int) (*model.Account, error) {
	acct, ok := s.byID[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, accountID)
	}
	return acct, nil
}

func (s *Service) append(txType model.TxType, amount decimal.Decimal, sourceID, targetID int) {
	s.transactions = append(s.transactions, model.Transaction{
		Type:      txType,
		Amount:    amount,
		SourceID:  sourceID,
		TargetID:  targetID,
		Timestamp: time.Now(),
	})
}

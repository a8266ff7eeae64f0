package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/bank"
	"github.com/teller-dev/teller/internal/config"
	"github.com/teller-dev/teller/internal/interest"
	"github.com/teller-dev/teller/internal/model"
)

func newSessionCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run an interactive teller session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to teller.yaml with session defaults")

	return cmd
}

// errSessionClosed signals that the input stream ended mid-prompt.
// It ends the session cleanly rather than surfacing as a failure.
var errSessionClosed = errors.New("input closed")

type session struct {
	in  *bufio.Scanner
	out io.Writer
	svc *bank.Service
	cfg *config.Config
}

// runSession drives the numbered menu over a fresh ledger. Rejected
// operations are printed and the menu re-prompts; only a closed input
// stream or option 0 ends the loop.
func runSession(in io.Reader, out io.Writer, cfg *config.Config) error {
	s := &session{in: bufio.NewScanner(in), out: out, svc: bank.NewService(), cfg: cfg}
	fmt.Fprintln(out, "Welcome to teller")

	for {
		s.printMenu()
		choice, err := s.prompt("Choose option: ")
		if err != nil {
			return nil
		}
		if choice == "0" {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, errSessionClosed) {
				return nil
			}
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprint(s.out, "\nMenu:\n"+
		"1. Create Account\n"+
		"2. Deposit\n"+
		"3. Withdraw\n"+
		"4. Transfer\n"+
		"5. Show Accounts\n"+
		"6. Show Transactions\n"+
		"7. Calculate Interest (Savings)\n"+
		"8. Export Transactions (CSV)\n"+
		"0. Exit\n")
}

func (s *session) dispatch(choice string) error {
	switch choice {
	case "1":
		return s.createAccount()
	case "2":
		return s.deposit()
	case "3":
		return s.withdraw()
	case "4":
		return s.transfer()
	case "5":
		return s.showAccounts()
	case "6":
		return s.showTransactions()
	case "7":
		return s.projectInterest()
	case "8":
		return bank.WriteStatement(s.out, s.svc.Transactions())
	default:
		return fmt.Errorf("invalid choice %q", choice)
	}
}

func (s *session) createAccount() error {
	kindInput, err := s.prompt("Account type (checking/savings): ")
	if err != nil {
		return err
	}
	kind, err := model.ParseAccountKind(kindInput)
	if err != nil {
		return err
	}
	owner, err := s.prompt("Owner name: ")
	if err != nil {
		return err
	}

	var params bank.AccountParams
	switch kind {
	case model.KindChecking:
		wl, err := s.promptDecimal("Withdrawal limit", s.cfg.Defaults.Checking.WithdrawalLimit)
		if err != nil {
			return err
		}
		od, err := s.promptDecimal("Overdraft limit", s.cfg.Defaults.Checking.OverdraftLimit)
		if err != nil {
			return err
		}
		params = bank.CheckingParams{WithdrawalLimit: wl, OverdraftLimit: od}
	case model.KindSavings:
		cp, err := s.promptInt("Capitalization periods per year", s.cfg.Defaults.Savings.PeriodsPerYear)
		if err != nil {
			return err
		}
		rate, err := s.promptDecimal("Annual interest rate (percent)", s.cfg.Defaults.Savings.AnnualRate)
		if err != nil {
			return err
		}
		wl, err := s.promptDecimal("Withdrawal limit", s.cfg.Defaults.Savings.WithdrawalLimit)
		if err != nil {
			return err
		}
		params = bank.SavingsParams{PeriodsPerYear: cp, AnnualRate: rate, WithdrawalLimit: wl}
	}

	acct, err := s.svc.CreateAccount(kind, owner, params)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Created:\n%s\n", acct.String())
	return nil
}

func (s *session) deposit() error {
	id, amount, err := s.promptIDAndAmount()
	if err != nil {
		return err
	}
	if err := s.svc.Deposit(id, amount); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Deposit successful")
	return nil
}

func (s *session) withdraw() error {
	id, amount, err := s.promptIDAndAmount()
	if err != nil {
		return err
	}
	if err := s.svc.Withdraw(id, amount); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Withdrawal successful")
	return nil
}

func (s *session) transfer() error {
	from, err := s.promptRawInt("From Account ID: ")
	if err != nil {
		return err
	}
	to, err := s.promptRawInt("To Account ID: ")
	if err != nil {
		return err
	}
	amount, err := s.promptRawDecimal("Amount: ")
	if err != nil {
		return err
	}
	if err := s.svc.Transfer(from, to, amount); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Transfer successful")
	return nil
}

func (s *session) showAccounts() error {
	for _, acct := range s.svc.Accounts() {
		fmt.Fprintf(s.out, "%s\n", acct.String())
	}
	return nil
}

func (s *session) showTransactions() error {
	for _, tx := range s.svc.Transactions() {
		fmt.Fprintf(s.out, "%s\n", tx.String())
	}
	return nil
}

func (s *session) projectInterest() error {
	id, err := s.promptRawInt("Savings Account ID: ")
	if err != nil {
		return err
	}
	days, err := s.promptRawInt("Days to calculate: ")
	if err != nil {
		return err
	}
	acct, err := s.svc.Account(id)
	if err != nil {
		return err
	}
	final, err := interest.ProjectForAccount(acct, days)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Final amount after %d days: %s\n", days, final.StringFixed(2))
	fmt.Fprintf(s.out, "Interest earned: %s\n", final.Sub(acct.Balance).StringFixed(2))
	return nil
}

func (s *session) promptIDAndAmount() (int, decimal.Decimal, error) {
	id, err := s.promptRawInt("Account ID: ")
	if err != nil {
		return 0, decimal.Zero, err
	}
	amount, err := s.promptRawDecimal("Amount: ")
	if err != nil {
		return 0, decimal.Zero, err
	}
	return id, amount, nil
}

func (s *session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", errSessionClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) promptRawInt(label string) (int, error) {
	text, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", text)
	}
	return n, nil
}

func (s *session) promptRawDecimal(label string) (decimal.Decimal, error) {
	text, err := s.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", text)
	}
	return d, nil
}

// promptInt reads an int, falling back to the configured default on a
// blank line.
func (s *session) promptInt(label string, fallback int) (int, error) {
	text, err := s.prompt(fmt.Sprintf("%s [%d]: ", label, fallback))
	if err != nil {
		return 0, err
	}
	if text == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", text)
	}
	return n, nil
}

// promptDecimal reads a decimal, falling back to the configured
// default on a blank line.
func (s *session) promptDecimal(label string, fallback float64) (decimal.Decimal, error) {
	text, err := s.prompt(fmt.Sprintf("%s [%v]: ", label, fallback))
	if err != nil {
		return decimal.Zero, err
	}
	if text == "" {
		return decimal.NewFromFloat(fallback), nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", text)
	}
	return d, nil
}

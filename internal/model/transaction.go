package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TxType classifies entries in the transaction log.
type TxType string

const (
	TxDeposit  TxType = "deposit"
	TxWithdraw TxType = "withdraw"
	TxTransfer TxType = "transfer"
)

// Transaction is one completed ledger operation. Only the ledger
// creates these, and only after the operation succeeded; the log they
// live in is append-only.
type Transaction struct {
	Type      TxType
	Amount    decimal.Decimal
	SourceID  int
	TargetID  int // meaningful only when Type == TxTransfer
	Timestamp time.Time
}

// String renders the log line shown by the CLI:
// "[2025-01-15 10:30:00] TRANSFER | 200.00 | 0 -> 1".
func (t Transaction) String() string {
	target := ""
	if t.Type == TxTransfer {
		target = fmt.Sprintf(" -> %d", t.TargetID)
	}
	return fmt.Sprintf("[%s] %s | %s | %d%s",
		t.Timestamp.Format("2006-01-02 15:04:05"),
		strings.ToUpper(string(t.Type)),
		t.Amount.StringFixed(2),
		t.SourceID, target)
}

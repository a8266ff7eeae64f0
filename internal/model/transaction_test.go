package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionString(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	deposit := Transaction{Type: TxDeposit, Amount: dec("500"), SourceID: 0, Timestamp: ts}
	assert.Equal(t, "[2025-01-15 10:30:00] DEPOSIT | 500.00 | 0", deposit.String())

	transfer := Transaction{Type: TxTransfer, Amount: dec("200"), SourceID: 0, TargetID: 1, Timestamp: ts}
	assert.Equal(t, "[2025-01-15 10:30:00] TRANSFER | 200.00 | 0 -> 1", transfer.String())
}

func TestTransactionString_NoTargetOutsideTransfer(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	// TargetID is meaningless for withdrawals and must not render.
	withdraw := Transaction{Type: TxWithdraw, Amount: dec("25"), SourceID: 3, TargetID: 7, Timestamp: ts}
	assert.Equal(t, "[2025-01-15 10:30:00] WITHDRAW | 25.00 | 3", withdraw.String())
}

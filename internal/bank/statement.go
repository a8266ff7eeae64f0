package bank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/teller-dev/teller/internal/model"
)

// Header is the CSV header for an exported transaction statement.
const Header = "timestamp,type,amount,source_id,target_id"

const (
	numFields    = 5
	timeFormat   = "2006-01-02 15:04:05"
	colTimestamp = 0
	colType      = 1
	colAmount    = 2
	colSourceID  = 3
	colTargetID  = 4
)

// WriteStatement writes the transaction log as CSV, header included.
func WriteStatement(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row. The target
// column is empty for anything but a transfer.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colTimestamp] = tx.Timestamp.Format(timeFormat)
	row[colType] = string(tx.Type)
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colSourceID] = strconv.Itoa(tx.SourceID)
	if tx.Type == model.TxTransfer {
		row[colTargetID] = strconv.Itoa(tx.TargetID)
	}
	return row
}

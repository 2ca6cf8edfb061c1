// Package csv maps uploaded CSV rows to transaction records.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/transaction-categorizer/backend/internal/domain/entity"
	domainerror "github.com/transaction-categorizer/backend/internal/domain/error"
)

// Expected header columns. Rows are mapped positionally by header name,
// so column order in the file does not matter.
const (
	columnTransactionID   = "Transaction ID"
	columnAmount          = "Amount"
	columnTimestamp       = "Timestamp"
	columnDescription     = "Description"
	columnTransactionType = "Transaction Type"
	columnAccountNumber   = "Account Number"
)

// timestampLayouts are tried in order when parsing the Timestamp column.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse reads a CSV document and returns one transaction per data row.
// The header must carry a "Transaction ID" column; unparsable amounts
// default to zero and every row starts with the Miscellaneous category
// placeholder.
func Parse(r io.Reader) ([]*entity.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []*entity.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	if _, ok := columns[columnTransactionID]; !ok {
		return nil, fmt.Errorf("%w: missing %q column", domainerror.ErrInvalidCSVHeader, columnTransactionID)
	}

	var transactions []*entity.Transaction
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		amount, err := decimal.NewFromString(field(columnAmount))
		if err != nil {
			amount = decimal.Zero
		}

		var timestamp time.Time
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, field(columnTimestamp)); err == nil {
				timestamp = parsed
				break
			}
		}

		transactions = append(transactions, entity.NewTransaction(
			field(columnTransactionID),
			amount,
			timestamp,
			field(columnDescription),
			entity.TransactionType(field(columnTransactionType)),
			field(columnAccountNumber),
		))
	}

	return transactions, nil
}

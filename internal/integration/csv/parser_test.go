package csv

import (
	"errors"
	"strings"
	"testing"

	"github.com/transaction-categorizer/backend/internal/domain/entity"
	domainerror "github.com/transaction-categorizer/backend/internal/domain/error"
)

const sampleCSV = `Transaction ID,Amount,Timestamp,Description,Transaction Type,Account Number
tx-1,50.25,2024-03-01T12:00:00Z,Grocery store purchase,debit,1234
tx-2,not-a-number,2024-03-02T09:30:00Z,PayPal Transfer,credit,5678
`

func TestParse(t *testing.T) {
	t.Run("maps rows by header column", func(t *testing.T) {
		transactions, err := Parse(strings.NewReader(sampleCSV))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if len(transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(transactions))
		}

		first := transactions[0]
		if first.TransactionID != "tx-1" {
			t.Errorf("unexpected transaction ID: %s", first.TransactionID)
		}
		if first.Amount.String() != "50.25" {
			t.Errorf("unexpected amount: %s", first.Amount)
		}
		if first.Description != "Grocery store purchase" {
			t.Errorf("unexpected description: %s", first.Description)
		}
		if first.TransactionType != entity.TransactionTypeDebit {
			t.Errorf("unexpected type: %s", first.TransactionType)
		}
		if first.AccountNumber != "1234" {
			t.Errorf("unexpected account number: %s", first.AccountNumber)
		}
		if first.Timestamp.IsZero() {
			t.Error("timestamp was not parsed")
		}
	})

	t.Run("non-numeric amounts default to zero", func(t *testing.T) {
		transactions, err := Parse(strings.NewReader(sampleCSV))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}

		second := transactions[1]
		if !second.Amount.IsZero() {
			t.Errorf("expected zero amount, got %s", second.Amount)
		}
		// Other fields of the row still pass through.
		if second.TransactionID != "tx-2" || second.Description != "PayPal Transfer" {
			t.Errorf("row fields lost: %+v", second)
		}
	})

	t.Run("every row starts with the category placeholder", func(t *testing.T) {
		transactions, err := Parse(strings.NewReader(sampleCSV))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		for _, transaction := range transactions {
			if transaction.Category != entity.CategoryMiscellaneous {
				t.Errorf("expected placeholder category, got %s", transaction.Category)
			}
		}
	})

	t.Run("column order follows the header, not the expected layout", func(t *testing.T) {
		reordered := "Description,Transaction ID,Amount,Timestamp,Transaction Type,Account Number\n" +
			"Municipal Tax Payment,tx-3,10,2024-03-03,debit,9999\n"

		transactions, err := Parse(strings.NewReader(reordered))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if transactions[0].TransactionID != "tx-3" {
			t.Errorf("unexpected transaction ID: %s", transactions[0].TransactionID)
		}
		if transactions[0].Description != "Municipal Tax Payment" {
			t.Errorf("unexpected description: %s", transactions[0].Description)
		}
	})

	t.Run("rejects files without the Transaction ID column", func(t *testing.T) {
		_, err := Parse(strings.NewReader("Name,Value\nsomething,42\n"))
		if !errors.Is(err, domainerror.ErrInvalidCSVHeader) {
			t.Fatalf("expected invalid header error, got %v", err)
		}
	})

	t.Run("empty document yields no transactions", func(t *testing.T) {
		transactions, err := Parse(strings.NewReader(""))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if len(transactions) != 0 {
			t.Errorf("expected no transactions, got %d", len(transactions))
		}
	})
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// Transaction represents a financial transaction submitted for ingestion.
// TransactionID is the external identifier supplied by the caller; it is
// the upsert key, not a surrogate primary key.
type Transaction struct {
	TransactionID   string
	Amount          decimal.Decimal
	Timestamp       time.Time
	Description     string
	TransactionType TransactionType
	AccountNumber   string
	Category        string
}

// NewTransaction creates a Transaction with the category placeholder set.
// The category is overwritten by the categorization service before the
// record is persisted.
func NewTransaction(
	transactionID string,
	amount decimal.Decimal,
	timestamp time.Time,
	description string,
	transactionType TransactionType,
	accountNumber string,
) *Transaction {
	return &Transaction{
		TransactionID:   transactionID,
		Amount:          amount,
		Timestamp:       timestamp,
		Description:     description,
		TransactionType: transactionType,
		AccountNumber:   accountNumber,
		Category:        CategoryMiscellaneous,
	}
}

// CategoryMapping is a cached resolution of a description to a category.
// The description is the cache key, matched exactly and case-sensitively.
type CategoryMapping struct {
	Description string
	Category    string
}

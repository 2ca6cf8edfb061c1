// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/transaction-categorizer/backend/internal/domain/entity"
)

// SubmitTransactionRequest represents the request body for single transaction submission.
type SubmitTransactionRequest struct {
	TransactionID   string           `json:"transactionId" binding:"required"`
	Amount          *decimal.Decimal `json:"amount" binding:"required"`
	Timestamp       time.Time        `json:"timestamp" binding:"required"`
	Description     string           `json:"description" binding:"required"`
	TransactionType string           `json:"transactionType" binding:"required,oneof=debit credit"`
	AccountNumber   string           `json:"accountNumber" binding:"required"`
}

// ToEntity converts the request into a domain Transaction with the
// category placeholder set.
func (r *SubmitTransactionRequest) ToEntity() *entity.Transaction {
	return entity.NewTransaction(
		r.TransactionID,
		*r.Amount,
		r.Timestamp,
		r.Description,
		entity.TransactionType(r.TransactionType),
		r.AccountNumber,
	)
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	TransactionID   string    `json:"transactionId"`
	Amount          string    `json:"amount"`
	Timestamp       time.Time `json:"timestamp"`
	Description     string    `json:"description"`
	TransactionType string    `json:"transactionType"`
	AccountNumber   string    `json:"accountNumber"`
	Category        string    `json:"category"`
}

// ToTransactionResponse converts a domain Transaction to its API representation.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   transaction.TransactionID,
		Amount:          transaction.Amount.String(),
		Timestamp:       transaction.Timestamp,
		Description:     transaction.Description,
		TransactionType: string(transaction.TransactionType),
		AccountNumber:   transaction.AccountNumber,
		Category:        transaction.Category,
	}
}

// ToTransactionListResponse converts a batch of domain transactions.
func ToTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, ToTransactionResponse(transaction))
	}
	return responses
}

// MessageResponse represents a simple success message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

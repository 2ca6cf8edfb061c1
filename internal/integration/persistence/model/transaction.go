// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/transaction-categorizer/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// TransactionID carries the external identifier and is the upsert key;
// ID is a surrogate primary key.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID   string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Timestamp       time.Time       `gorm:"not null"`
	Description     string          `gorm:"type:varchar(255);not null;index"`
	TransactionType string          `gorm:"type:varchar(10);not null"`
	AccountNumber   string          `gorm:"type:varchar(64);not null"`
	Category        string          `gorm:"type:varchar(64);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		TransactionID:   m.TransactionID,
		Amount:          m.Amount,
		Timestamp:       m.Timestamp,
		Description:     m.Description,
		TransactionType: entity.TransactionType(m.TransactionType),
		AccountNumber:   m.AccountNumber,
		Category:        m.Category,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              uuid.New(),
		TransactionID:   transaction.TransactionID,
		Amount:          transaction.Amount,
		Timestamp:       transaction.Timestamp,
		Description:     transaction.Description,
		TransactionType: string(transaction.TransactionType),
		AccountNumber:   transaction.AccountNumber,
		Category:        transaction.Category,
	}
}

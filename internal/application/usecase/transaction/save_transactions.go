// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/transaction-categorizer/backend/internal/application/adapter"
	"github.com/transaction-categorizer/backend/internal/domain/entity"
)

// SaveTransactionsUseCase categorizes a batch of transactions and persists it.
type SaveTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	classifier      adapter.Classifier
}

// NewSaveTransactionsUseCase creates a new SaveTransactionsUseCase instance.
func NewSaveTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	classifier adapter.Classifier,
) *SaveTransactionsUseCase {
	return &SaveTransactionsUseCase{
		transactionRepo: transactionRepo,
		classifier:      classifier,
	}
}

// Categorize resolves a category for every transaction in the batch.
// Every returned transaction carries a non-empty category; all other
// fields are copied from the input unchanged. Categorization never
// fails: unresolved descriptions fall back to Miscellaneous.
func (uc *SaveTransactionsUseCase) Categorize(
	ctx context.Context,
	transactions []*entity.Transaction,
) []*entity.Transaction {
	// Classify each unique description once, however many transactions
	// share it.
	seen := make(map[string]struct{}, len(transactions))
	descriptions := make([]string, 0, len(transactions))
	for _, t := range transactions {
		if _, ok := seen[t.Description]; ok {
			continue
		}
		seen[t.Description] = struct{}{}
		descriptions = append(descriptions, t.Description)
	}

	categorized := uc.classifier.Categorize(ctx, descriptions)

	result := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		category, ok := categorized[t.Description]
		if !ok || category == "" {
			// The classifier contract guarantees total coverage, but a
			// misbehaving implementation must not leave gaps.
			category = entity.CategoryMiscellaneous
		}

		enriched := *t
		enriched.Category = category
		result = append(result, &enriched)
	}
	return result
}

// Execute categorizes the batch and upserts it. Persistence failures
// propagate to the caller; categorization cannot fail the batch.
func (uc *SaveTransactionsUseCase) Execute(
	ctx context.Context,
	transactions []*entity.Transaction,
) error {
	categorized := uc.Categorize(ctx, transactions)

	if _, err := uc.transactionRepo.UpsertAll(ctx, categorized); err != nil {
		return fmt.Errorf("failed to upsert transactions: %w", err)
	}
	return nil
}

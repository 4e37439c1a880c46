package ynab

import "context"

// Service defines the interface for interacting with the YNAB API.
// This interface enables mocking and testing of the gateway handlers.
type Service interface {
	// GetBudgets lists all budgets, optionally with nested accounts.
	GetBudgets(ctx context.Context, includeAccounts bool) ([]BudgetSummary, error)

	// GetTransactionsByAccount lists one account's transactions, delta-synced
	// when lastKnowledge is non-zero.
	GetTransactionsByAccount(ctx context.Context, budgetID, accountID string, lastKnowledge int64) (*TransactionsSnapshot, error)

	// UpdateTransactions submits a batch of transaction patches in one call.
	UpdateTransactions(ctx context.Context, budgetID string, transactions []SaveTransactionWithID) (*SaveTransactionsResult, error)
}

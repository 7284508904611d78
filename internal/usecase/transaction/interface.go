package transaction

import "context"

// Usecase defines the interface for transaction business logic operations.
type Usecase interface {
	CreateTransaction(ctx context.Context, in CreateTransactionRequest) (*CreateTransactionResponse, error)
	GetTransaction(ctx context.Context, in GetTransactionRequest) (*Transaction, error)
	GetTransactionsByIDs(ctx context.Context, in GetTransactionsByIDsRequest) ([]Transaction, error)
	UpdateTransaction(ctx context.Context, in UpdateTransactionRequest) (*Transaction, error)
	DeleteTransaction(ctx context.Context, in DeleteTransactionRequest) (*DeleteTransactionResponse, error)
	ListTransactions(ctx context.Context, in ListTransactionsRequest) (*ListTransactionsResponse, error)
}

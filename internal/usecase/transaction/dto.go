package transaction

import "time"

// CreateTransactionRequest represents the request payload for recording a transaction.
// Status defaults to pending when empty.
type CreateTransactionRequest struct {
	LandID   int64   `json:"land" validate:"required,gt=0"`
	BuyerID  int64   `json:"buyer" validate:"required,gt=0"`
	SellerID int64   `json:"seller" validate:"required,gt=0,nefield=BuyerID"`
	Amount   float64 `json:"amount" validate:"gt=0"`
	Status   string  `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	Note     string  `json:"note" validate:"max=1000"`
}

// CreateTransactionResponse carries the id of the new transaction.
type CreateTransactionResponse struct {
	ID int64
}

// GetTransactionRequest identifies a transaction.
type GetTransactionRequest struct {
	ID int64
}

// GetTransactionsByIDsRequest lists the transactions to fetch, in the order they should be returned.
type GetTransactionsByIDsRequest struct {
	IDs []int64
}

// UpdateTransactionRequest is a partial update; nil fields are left untouched.
type UpdateTransactionRequest struct {
	ID     int64    `json:"_id" validate:"required,gt=0"`
	Amount *float64 `json:"amount" validate:"omitnil,gt=0"`
	Status *string  `json:"status" validate:"omitnil,oneof=pending completed cancelled"`
	Note   *string  `json:"note" validate:"omitnil,max=1000"`
}

// DeleteTransactionRequest identifies a transaction to delete.
type DeleteTransactionRequest struct {
	ID int64
}

// DeleteTransactionResponse carries the id of the deleted transaction.
type DeleteTransactionResponse struct {
	ID int64
}

// ListTransactionsRequest supports pagination and status/land filters.
type ListTransactionsRequest struct {
	Page   int64
	Limit  int64
	Status string
	LandID int64
}

// ListTransactionsResponse represents one page of transactions.
type ListTransactionsResponse struct {
	Transactions []Transaction
	Pagination   *Pagination
}

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// Transaction is the transaction DTO returned to transports.
type Transaction struct {
	ID        int64
	LandID    int64
	BuyerID   int64
	SellerID  int64
	Amount    float64
	Status    string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

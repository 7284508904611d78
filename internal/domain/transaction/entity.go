package transaction

import "time"

// Status is the lifecycle state of a transaction.
type Status string

// Transaction statuses
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Transaction records a purchase or sale event for a land.
type Transaction struct {
	ID        int64
	LandID    int64
	BuyerID   int64
	SellerID  int64
	Amount    float64
	Status    Status
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter narrows a transaction listing. Zero values mean "any".
type Filter struct {
	Status Status
	LandID int64
}

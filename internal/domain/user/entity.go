package user

import "time"

// User is a registered marketplace member. Sellers list lands, buyers take part in transactions.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

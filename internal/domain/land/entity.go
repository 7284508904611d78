package land

import "time"

// Land is a listing offered by a seller.
type Land struct {
	ID          int64
	Name        string
	Location    string
	Price       float64
	IsAvailable bool
	SellerID    int64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter narrows a land listing.
type Filter struct {
	Query         string // matched against name and location
	OnlyAvailable bool
	SellerID      int64 // zero means any seller
}

// Patch carries the listing fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Location    *string
	Price       *float64
	Description *string
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Name == nil && p.Location == nil && p.Price == nil && p.Description == nil
}

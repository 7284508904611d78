package land

import "time"

// CreateLandRequest represents the request payload for listing a new land.
// IsAvailable defaults to true when nil.
type CreateLandRequest struct {
	Name        string  `json:"landName" validate:"required,max=200"`
	Location    string  `json:"locationName" validate:"required,max=200"`
	Price       float64 `json:"price" validate:"gt=0"`
	SellerID    int64   `json:"seller" validate:"required,gt=0"`
	Description string  `json:"description" validate:"max=2000"`
	IsAvailable *bool   `json:"isAvailable"`
}

// CreateLandResponse carries the id of the new land.
type CreateLandResponse struct {
	ID int64
}

// UpdateLandRequest is a partial update; nil fields are left untouched.
type UpdateLandRequest struct {
	ID          int64    `json:"_id" validate:"required,gt=0"`
	Name        *string  `json:"landName" validate:"omitnil,min=1,max=200"`
	Location    *string  `json:"locationName" validate:"omitnil,min=1,max=200"`
	Price       *float64 `json:"price" validate:"omitnil,gt=0"`
	Description *string  `json:"description" validate:"omitnil,max=2000"`
}

// UpdateAvailabilityRequest sets the availability flag of a land.
type UpdateAvailabilityRequest struct {
	ID          int64
	IsAvailable bool
}

// GetLandRequest identifies a land.
type GetLandRequest struct {
	ID int64
}

// DeleteLandRequest identifies a land to delete.
type DeleteLandRequest struct {
	ID int64
}

// DeleteLandResponse carries the id of the deleted land.
type DeleteLandResponse struct {
	ID int64
}

// ListLandsRequest supports pagination, free-text search and an availability filter.
type ListLandsRequest struct {
	Query         string
	Page          int64
	Limit         int64
	OnlyAvailable bool
}

// ListLandsResponse represents one page of lands.
type ListLandsResponse struct {
	Lands      []Land
	Pagination *Pagination
}

// ListBySellerRequest identifies the seller whose lands are managed.
type ListBySellerRequest struct {
	SellerID int64
}

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// Land is the land DTO returned to transports.
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

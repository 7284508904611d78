package land

import "context"

// Usecase defines the land business operations exposed to transports.
type Usecase interface {
	CreateLand(ctx context.Context, in CreateLandRequest) (*CreateLandResponse, error)
	GetLand(ctx context.Context, in GetLandRequest) (*Land, error)
	UpdateLand(ctx context.Context, in UpdateLandRequest) (*Land, error)
	DeleteLand(ctx context.Context, in DeleteLandRequest) (*DeleteLandResponse, error)
	ListLands(ctx context.Context, in ListLandsRequest) (*ListLandsResponse, error)
	ListBySeller(ctx context.Context, in ListBySellerRequest) ([]Land, error)
	UpdateAvailability(ctx context.Context, in UpdateAvailabilityRequest) (*Land, error)
}

package land

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "land-marketplace-service/internal/domain/land"
	"land-marketplace-service/internal/domain/pagination"
	domainuser "land-marketplace-service/internal/domain/user"
	apperrors "land-marketplace-service/pkg/errors"
	"land-marketplace-service/pkg/logger"
	"land-marketplace-service/pkg/security"
	"land-marketplace-service/pkg/validation"
)

// Repository defines the land data access operations.
type Repository interface {
	Create(ctx context.Context, l *domain.Land) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Land, error)
	Update(ctx context.Context, id int64, p domain.Patch) error
	UpdateAvailability(ctx context.Context, id int64, isAvailable bool) (*domain.Land, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f domain.Filter, page, limit int64) ([]domain.Land, int64, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Land, error)
}

// SellerReader resolves the seller of a listing.
type SellerReader interface {
	GetByID(ctx context.Context, id int64) (*domainuser.User, error)
}

var errInvalidLandID = apperrors.NewValidationError("_id", "invalid land id")

var _ Usecase = (*Service)(nil)

// Service implements Usecase.
type Service struct {
	repo     Repository
	sellers  SellerReader
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a land Service. sellers may be nil, in which case seller ids are not checked.
func New(r Repository, sellers SellerReader, log *zap.Logger) *Service {
	return &Service{repo: r, sellers: sellers, log: log, validate: validation.New()}
}

// CreateLand validates and stores a new listing. New listings are available unless stated otherwise.
func (s *Service) CreateLand(ctx context.Context, in CreateLandRequest) (*CreateLandResponse, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("creating land", zap.String("name", in.Name), zap.Int64("seller_id", in.SellerID))

	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)

	if err := validation.Struct(s.validate, in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	if err := s.checkSeller(ctx, in.SellerID); err != nil {
		return nil, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	id, err := s.repo.Create(ctx, &domain.Land{
		Name:        in.Name,
		Location:    in.Location,
		Price:       in.Price,
		IsAvailable: available,
		SellerID:    in.SellerID,
		Description: in.Description,
	})
	if err != nil {
		log.Error("failed to create land", zap.Error(err))
		return nil, err
	}

	return &CreateLandResponse{ID: id}, nil
}

// GetLand returns a single land.
func (s *Service) GetLand(ctx context.Context, in GetLandRequest) (*Land, error) {
	if in.ID <= 0 {
		return nil, errInvalidLandID
	}

	l, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.logRepoError(ctx, "failed to get land", in.ID, err)
		return nil, err
	}

	return toDTO(l), nil
}

// UpdateLand applies a partial update and returns the stored land.
func (s *Service) UpdateLand(ctx context.Context, in UpdateLandRequest) (*Land, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("updating land", zap.Int64("id", in.ID))

	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if in.Location != nil {
		trimmed := strings.TrimSpace(*in.Location)
		in.Location = &trimmed
	}

	if err := validation.Struct(s.validate, in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	patch := domain.Patch{
		Name:        in.Name,
		Location:    in.Location,
		Price:       in.Price,
		Description: in.Description,
	}
	if err := s.repo.Update(ctx, in.ID, patch); err != nil {
		s.logRepoError(ctx, "failed to update land", in.ID, err)
		return nil, err
	}

	return s.GetLand(ctx, GetLandRequest{ID: in.ID})
}

// DeleteLand removes a land.
func (s *Service) DeleteLand(ctx context.Context, in DeleteLandRequest) (*DeleteLandResponse, error) {
	logger.WithContext(ctx, s.log).Info("deleting land", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return nil, errInvalidLandID
	}

	if err := s.repo.Delete(ctx, in.ID); err != nil {
		s.logRepoError(ctx, "failed to delete land", in.ID, err)
		return nil, err
	}

	return &DeleteLandResponse{ID: in.ID}, nil
}

// ListLands returns one page of lands matching the search query.
func (s *Service) ListLands(ctx context.Context, in ListLandsRequest) (*ListLandsResponse, error) {
	log := logger.WithContext(ctx, s.log)
	in.Page, in.Limit = pagination.Normalize(in.Page, in.Limit)

	query, err := security.ValidateSearchQuery(in.Query)
	if err != nil {
		log.Warn("invalid search query", zap.String("query", in.Query), zap.Error(err))
		return nil, apperrors.NewValidationError("query", "invalid search query: "+err.Error())
	}

	log.Info("listing lands", zap.String("query", query), zap.Int64("page", in.Page), zap.Int64("limit", in.Limit))

	lands, total, err := s.repo.List(ctx, domain.Filter{Query: query, OnlyAvailable: in.OnlyAvailable}, in.Page, in.Limit)
	if err != nil {
		log.Error("failed to list lands", zap.Error(err))
		return nil, err
	}

	p := pagination.New(total, in.Page, in.Limit)
	return &ListLandsResponse{
		Lands: toDTOs(lands),
		Pagination: &Pagination{
			Total:      p.Total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
		},
	}, nil
}

// ListBySeller returns every land of a seller for the manage-land screen.
func (s *Service) ListBySeller(ctx context.Context, in ListBySellerRequest) ([]Land, error) {
	log := logger.WithContext(ctx, s.log)

	if in.SellerID <= 0 {
		return nil, apperrors.NewValidationError("seller", "invalid seller id")
	}

	lands, err := s.repo.ListBySeller(ctx, in.SellerID)
	if err != nil {
		log.Error("failed to list lands by seller", zap.Int64("seller_id", in.SellerID), zap.Error(err))
		return nil, err
	}

	log.Debug("listed lands by seller", zap.Int64("seller_id", in.SellerID), zap.Int("count", len(lands)))
	return toDTOs(lands), nil
}

// UpdateAvailability sets the availability flag and returns the updated land.
func (s *Service) UpdateAvailability(ctx context.Context, in UpdateAvailabilityRequest) (*Land, error) {
	logger.WithContext(ctx, s.log).Info("updating land availability", zap.Int64("id", in.ID), zap.Bool("is_available", in.IsAvailable))

	if in.ID <= 0 {
		return nil, errInvalidLandID
	}

	l, err := s.repo.UpdateAvailability(ctx, in.ID, in.IsAvailable)
	if err != nil {
		s.logRepoError(ctx, "failed to update land availability", in.ID, err)
		return nil, err
	}

	return toDTO(l), nil
}

func (s *Service) checkSeller(ctx context.Context, sellerID int64) error {
	if s.sellers == nil {
		return nil
	}

	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidationError("seller", "seller not found")
		}
		logger.WithContext(ctx, s.log).Error("failed to resolve seller", zap.Int64("seller_id", sellerID), zap.Error(err))
		return err
	}
	return nil
}

// logRepoError logs misses at warn level and everything else at error level.
func (s *Service) logRepoError(ctx context.Context, msg string, id int64, err error) {
	log := logger.WithContext(ctx, s.log)
	var nf *apperrors.NotFoundError
	if errors.As(err, &nf) {
		log.Warn(msg, zap.Int64("id", id), zap.Error(err))
		return
	}
	log.Error(msg, zap.Int64("id", id), zap.Error(err))
}

func toDTO(l *domain.Land) *Land {
	return &Land{
		ID:          l.ID,
		Name:        l.Name,
		Location:    l.Location,
		Price:       l.Price,
		IsAvailable: l.IsAvailable,
		SellerID:    l.SellerID,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toDTOs(lands []domain.Land) []Land {
	out := make([]Land, len(lands))
	for i := range lands {
		out[i] = *toDTO(&lands[i])
	}
	return out
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"land-marketplace-service/internal/domain/land"
	"land-marketplace-service/internal/domain/pagination"
	apperrors "land-marketplace-service/pkg/errors"
	"land-marketplace-service/pkg/security"
)

// LandRepoPG implements the land Repository using GORM.
type LandRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewLandRepoPG creates a new instance of LandRepoPG.
func NewLandRepoPG(db *gorm.DB, log *zap.Logger) *LandRepoPG {
	return &LandRepoPG{db: db, log: log}
}

// Create inserts a new land and returns its id.
func (r *LandRepoPG) Create(ctx context.Context, l *land.Land) (int64, error) {
	if l == nil {
		return 0, errors.New("land cannot be nil")
	}

	model := toLandSchema(l)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create land in db", zap.Error(err), zap.Int64("seller_id", l.SellerID))
		return 0, fmt.Errorf("failed to create land: %w", err)
	}

	r.log.Info("land created in db", zap.Int64("id", model.ID), zap.Int64("seller_id", model.SellerID))
	return model.ID, nil
}

// GetByID retrieves a land by id.
func (r *LandRepoPG) GetByID(ctx context.Context, id int64) (*land.Land, error) {
	var model LandSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("land", "land not found")
		}
		r.log.Error("failed to get land from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get land: %w", err)
	}

	return toDomainLand(model), nil
}

// Update writes only the columns set in p. Availability is owned by UpdateAvailability.
func (r *LandRepoPG) Update(ctx context.Context, id int64, p land.Patch) error {
	if p.Empty() {
		_, err := r.GetByID(ctx, id)
		return err
	}

	columns := make(map[string]any, 4)
	if p.Name != nil {
		columns["name"] = *p.Name
	}
	if p.Location != nil {
		columns["location"] = *p.Location
	}
	if p.Price != nil {
		columns["price"] = *p.Price
	}
	if p.Description != nil {
		columns["description"] = *p.Description
	}

	res := r.db.WithContext(ctx).Model(&LandSchema{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		r.log.Error("failed to update land in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to update land: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("land", "land not found")
	}

	r.log.Info("land updated in db", zap.Int64("id", id))
	return nil
}

// UpdateAvailability sets the availability flag and returns the stored land.
func (r *LandRepoPG) UpdateAvailability(ctx context.Context, id int64, isAvailable bool) (*land.Land, error) {
	res := r.db.WithContext(ctx).Model(&LandSchema{}).Where("id = ?", id).Update("is_available", isAvailable)
	if res.Error != nil {
		r.log.Error("failed to update land availability", zap.Error(res.Error), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to update land availability: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("land", "land not found")
	}

	r.log.Info("land availability updated", zap.Int64("id", id), zap.Bool("is_available", isAvailable))
	return r.GetByID(ctx, id)
}

// Delete removes a land by id.
func (r *LandRepoPG) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&LandSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete land in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete land: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("land", "land not found")
	}

	r.log.Info("land deleted in db", zap.Int64("id", id))
	return nil
}

// List returns one page of lands matching f and the total match count.
func (r *LandRepoPG) List(ctx context.Context, f land.Filter, page, limit int64) ([]land.Land, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&LandSchema{}).Scopes(landFilter(f)).Count(&total).Error; err != nil {
		r.log.Error("failed to count lands", zap.Error(err), zap.String("query", f.Query))
		return nil, 0, fmt.Errorf("failed to count lands: %w", err)
	}

	var models []LandSchema
	err := r.db.WithContext(ctx).
		Scopes(landFilter(f)).
		Order("id DESC").
		Offset(pagination.Offset(page, limit)).
		Limit(int(limit)).
		Find(&models).Error
	if err != nil {
		r.log.Error("failed to list lands from db", zap.Error(err), zap.String("query", f.Query), zap.Int64("page", page), zap.Int64("limit", limit))
		return nil, 0, fmt.Errorf("failed to list lands: %w", err)
	}

	return toDomainLands(models), total, nil
}

// landFilter turns f into WHERE clauses. The search term is matched case-insensitively
// with LIKE wildcards escaped.
func landFilter(f land.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Query != "" {
			like := "%" + strings.ToLower(security.SanitizeSearchString(f.Query)) + "%"
			db = db.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(location) LIKE ? ESCAPE '\')`, like, like)
		}
		if f.OnlyAvailable {
			db = db.Where("is_available = ?", true)
		}
		if f.SellerID > 0 {
			db = db.Where("seller_id = ?", f.SellerID)
		}
		return db
	}
}

// ListBySeller returns every land owned by sellerID, newest first.
func (r *LandRepoPG) ListBySeller(ctx context.Context, sellerID int64) ([]land.Land, error) {
	var models []LandSchema
	if err := r.db.WithContext(ctx).Scopes(landFilter(land.Filter{SellerID: sellerID})).Order("created_at DESC, id DESC").Find(&models).Error; err != nil {
		r.log.Error("failed to list lands by seller", zap.Error(err), zap.Int64("seller_id", sellerID))
		return nil, fmt.Errorf("failed to list lands by seller: %w", err)
	}

	return toDomainLands(models), nil
}

func toLandSchema(l *land.Land) LandSchema {
	return LandSchema{
		ID:          l.ID,
		Name:        l.Name,
		Location:    l.Location,
		Price:       l.Price,
		IsAvailable: l.IsAvailable,
		SellerID:    l.SellerID,
		Description: l.Description,
	}
}

func toDomainLand(m LandSchema) *land.Land {
	return &land.Land{
		ID:          m.ID,
		Name:        m.Name,
		Location:    m.Location,
		Price:       m.Price,
		IsAvailable: m.IsAvailable,
		SellerID:    m.SellerID,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainLands(models []LandSchema) []land.Land {
	lands := make([]land.Land, len(models))
	for i, m := range models {
		lands[i] = *toDomainLand(m)
	}
	return lands
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"land-marketplace-service/internal/domain/pagination"
	"land-marketplace-service/internal/domain/transaction"
	apperrors "land-marketplace-service/pkg/errors"
)

// TransactionRepoPG implements the transaction Repository using GORM.
type TransactionRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTransactionRepoPG creates a new instance of TransactionRepoPG.
func NewTransactionRepoPG(db *gorm.DB, log *zap.Logger) *TransactionRepoPG {
	return &TransactionRepoPG{db: db, log: log}
}

// Create inserts a new transaction and returns its id.
func (r *TransactionRepoPG) Create(ctx context.Context, t *transaction.Transaction) (int64, error) {
	if t == nil {
		return 0, errors.New("transaction cannot be nil")
	}

	model := TransactionSchema{
		LandID:   t.LandID,
		BuyerID:  t.BuyerID,
		SellerID: t.SellerID,
		Amount:   t.Amount,
		Status:   string(t.Status),
		Note:     t.Note,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create transaction in db", zap.Error(err), zap.Int64("land_id", t.LandID))
		return 0, fmt.Errorf("failed to create transaction: %w", err)
	}

	r.log.Info("transaction created in db", zap.Int64("id", model.ID), zap.Int64("land_id", model.LandID))
	return model.ID, nil
}

// GetByID retrieves a transaction by id.
func (r *TransactionRepoPG) GetByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	var model TransactionSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("transaction", "transaction not found")
		}
		r.log.Error("failed to get transaction from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return toDomainTransaction(model), nil
}

// GetByIDs returns the transactions whose id is in ids, in no particular order.
// Unknown ids are skipped.
func (r *TransactionRepoPG) GetByIDs(ctx context.Context, ids []int64) ([]transaction.Transaction, error) {
	if len(ids) == 0 {
		return []transaction.Transaction{}, nil
	}

	var models []TransactionSchema
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		r.log.Error("failed to get transactions by ids", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	return toDomainTransactions(models), nil
}

// Update writes the mutable columns of t.
func (r *TransactionRepoPG) Update(ctx context.Context, t *transaction.Transaction) error {
	if t == nil {
		return errors.New("transaction cannot be nil")
	}

	res := r.db.WithContext(ctx).Model(&TransactionSchema{}).Where("id = ?", t.ID).Updates(map[string]any{
		"amount": t.Amount,
		"status": string(t.Status),
		"note":   t.Note,
	})
	if res.Error != nil {
		r.log.Error("failed to update transaction in db", zap.Error(res.Error), zap.Int64("id", t.ID))
		return fmt.Errorf("failed to update transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("transaction", "transaction not found")
	}

	r.log.Info("transaction updated in db", zap.Int64("id", t.ID))
	return nil
}

// Delete removes a transaction by id.
func (r *TransactionRepoPG) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&TransactionSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete transaction in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("transaction", "transaction not found")
	}

	r.log.Info("transaction deleted in db", zap.Int64("id", id))
	return nil
}

// List returns one page of transactions matching f and the total match count.
func (r *TransactionRepoPG) List(ctx context.Context, f transaction.Filter, page, limit int64) ([]transaction.Transaction, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&TransactionSchema{}).Scopes(transactionFilter(f)).Count(&total).Error; err != nil {
		r.log.Error("failed to count transactions", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var models []TransactionSchema
	err := r.db.WithContext(ctx).
		Scopes(transactionFilter(f)).
		Order("id DESC").
		Offset(pagination.Offset(page, limit)).
		Limit(int(limit)).
		Find(&models).Error
	if err != nil {
		r.log.Error("failed to list transactions from db", zap.Error(err), zap.Int64("page", page), zap.Int64("limit", limit))
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return toDomainTransactions(models), total, nil
}

func transactionFilter(f transaction.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Status != "" {
			db = db.Where("status = ?", string(f.Status))
		}
		if f.LandID > 0 {
			db = db.Where("land_id = ?", f.LandID)
		}
		return db
	}
}

func toDomainTransaction(m TransactionSchema) *transaction.Transaction {
	return &transaction.Transaction{
		ID:        m.ID,
		LandID:    m.LandID,
		BuyerID:   m.BuyerID,
		SellerID:  m.SellerID,
		Amount:    m.Amount,
		Status:    transaction.Status(m.Status),
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainTransactions(models []TransactionSchema) []transaction.Transaction {
	out := make([]transaction.Transaction, len(models))
	for i, m := range models {
		out[i] = *toDomainTransaction(m)
	}
	return out
}

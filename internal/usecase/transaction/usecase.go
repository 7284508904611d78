package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domainland "land-marketplace-service/internal/domain/land"
	"land-marketplace-service/internal/domain/pagination"
	domain "land-marketplace-service/internal/domain/transaction"
	apperrors "land-marketplace-service/pkg/errors"
	"land-marketplace-service/pkg/logger"
	"land-marketplace-service/pkg/validation"
)

// MaxBatchIDs caps the number of ids accepted by GetTransactionsByIDs.
const MaxBatchIDs = 100

// Repository defines the transaction data access operations.
type Repository interface {
	Create(ctx context.Context, t *domain.Transaction) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Transaction, error)
	Update(ctx context.Context, t *domain.Transaction) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f domain.Filter, page, limit int64) ([]domain.Transaction, int64, error)
}

// LandReader resolves the land a transaction refers to.
type LandReader interface {
	GetByID(ctx context.Context, id int64) (*domainland.Land, error)
}

var errInvalidTransactionID = apperrors.NewValidationError("_id", "invalid transaction id")

var _ Usecase = (*Service)(nil)

// Service implements Usecase.
type Service struct {
	repo     Repository
	lands    LandReader
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a transaction Service. lands may be nil, in which case land references are not checked.
func New(r Repository, lands LandReader, log *zap.Logger) *Service {
	return &Service{repo: r, lands: lands, log: log, validate: validation.New()}
}

// CreateTransaction validates and records a transaction.
func (s *Service) CreateTransaction(ctx context.Context, in CreateTransactionRequest) (*CreateTransactionResponse, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("creating transaction",
		zap.Int64("land_id", in.LandID),
		zap.Int64("buyer_id", in.BuyerID),
		zap.Int64("seller_id", in.SellerID),
	)

	in.Status = strings.TrimSpace(in.Status)
	if err := validation.Struct(s.validate, in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	if err := s.checkLand(ctx, in.LandID, in.SellerID); err != nil {
		return nil, err
	}

	status := domain.StatusPending
	if in.Status != "" {
		status = domain.Status(in.Status)
	}

	id, err := s.repo.Create(ctx, &domain.Transaction{
		LandID:   in.LandID,
		BuyerID:  in.BuyerID,
		SellerID: in.SellerID,
		Amount:   in.Amount,
		Status:   status,
		Note:     in.Note,
	})
	if err != nil {
		log.Error("failed to create transaction", zap.Error(err))
		return nil, err
	}

	return &CreateTransactionResponse{ID: id}, nil
}

// GetTransaction returns a single transaction.
func (s *Service) GetTransaction(ctx context.Context, in GetTransactionRequest) (*Transaction, error) {
	if in.ID <= 0 {
		return nil, errInvalidTransactionID
	}

	t, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.logRepoError(ctx, "failed to get transaction", in.ID, err)
		return nil, err
	}

	return toDTO(t), nil
}

// GetTransactionsByIDs returns the known transactions among in.IDs in request order.
// Duplicate ids are collapsed to their first occurrence and unknown ids are skipped.
func (s *Service) GetTransactionsByIDs(ctx context.Context, in GetTransactionsByIDsRequest) ([]Transaction, error) {
	log := logger.WithContext(ctx, s.log)

	if len(in.IDs) == 0 {
		return nil, apperrors.NewValidationError("ids", "ids is required")
	}

	ids := make([]int64, 0, len(in.IDs))
	seen := make(map[int64]struct{}, len(in.IDs))
	for _, id := range in.IDs {
		if id <= 0 {
			return nil, apperrors.NewValidationError("ids", fmt.Sprintf("invalid transaction id: %d", id))
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) > MaxBatchIDs {
		return nil, apperrors.NewValidationError("ids", fmt.Sprintf("at most %d ids are allowed", MaxBatchIDs))
	}

	found, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		log.Error("failed to get transactions by ids", zap.Int("count", len(ids)), zap.Error(err))
		return nil, err
	}

	byID := make(map[int64]*domain.Transaction, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}

	out := make([]Transaction, 0, len(found))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, *toDTO(t))
		}
	}

	log.Debug("fetched transactions by ids", zap.Int("requested", len(ids)), zap.Int("found", len(out)))
	return out, nil
}

// UpdateTransaction applies a partial update and returns the stored transaction.
func (s *Service) UpdateTransaction(ctx context.Context, in UpdateTransactionRequest) (*Transaction, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("updating transaction", zap.Int64("id", in.ID))

	if in.Status != nil {
		trimmed := strings.TrimSpace(*in.Status)
		in.Status = &trimmed
	}

	if err := validation.Struct(s.validate, in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	t, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.logRepoError(ctx, "failed to load transaction for update", in.ID, err)
		return nil, err
	}

	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if in.Status != nil {
		t.Status = domain.Status(*in.Status)
	}
	if in.Note != nil {
		t.Note = *in.Note
	}

	if err := s.repo.Update(ctx, t); err != nil {
		s.logRepoError(ctx, "failed to update transaction", in.ID, err)
		return nil, err
	}

	return s.GetTransaction(ctx, GetTransactionRequest{ID: in.ID})
}

// DeleteTransaction removes a transaction.
func (s *Service) DeleteTransaction(ctx context.Context, in DeleteTransactionRequest) (*DeleteTransactionResponse, error) {
	logger.WithContext(ctx, s.log).Info("deleting transaction", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return nil, errInvalidTransactionID
	}

	if err := s.repo.Delete(ctx, in.ID); err != nil {
		s.logRepoError(ctx, "failed to delete transaction", in.ID, err)
		return nil, err
	}

	return &DeleteTransactionResponse{ID: in.ID}, nil
}

// ListTransactions returns one page of transactions, newest first.
func (s *Service) ListTransactions(ctx context.Context, in ListTransactionsRequest) (*ListTransactionsResponse, error) {
	log := logger.WithContext(ctx, s.log)
	in.Page, in.Limit = pagination.Normalize(in.Page, in.Limit)

	status := domain.Status(strings.TrimSpace(in.Status))
	if status != "" && !status.Valid() {
		return nil, apperrors.NewValidationError("status", "status must be one of [pending completed cancelled]")
	}
	if in.LandID < 0 {
		return nil, apperrors.NewValidationError("land", "invalid land id")
	}

	log.Info("listing transactions", zap.String("status", string(status)), zap.Int64("land_id", in.LandID),
		zap.Int64("page", in.Page), zap.Int64("limit", in.Limit))

	txs, total, err := s.repo.List(ctx, domain.Filter{Status: status, LandID: in.LandID}, in.Page, in.Limit)
	if err != nil {
		log.Error("failed to list transactions", zap.Error(err))
		return nil, err
	}

	p := pagination.New(total, in.Page, in.Limit)
	out := make([]Transaction, len(txs))
	for i := range txs {
		out[i] = *toDTO(&txs[i])
	}

	return &ListTransactionsResponse{
		Transactions: out,
		Pagination: &Pagination{
			Total:      p.Total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
		},
	}, nil
}

// checkLand verifies the land exists and belongs to the seller.
func (s *Service) checkLand(ctx context.Context, landID, sellerID int64) error {
	if s.lands == nil {
		return nil
	}

	l, err := s.lands.GetByID(ctx, landID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidationError("land", "land not found")
		}
		logger.WithContext(ctx, s.log).Error("failed to resolve land", zap.Int64("land_id", landID), zap.Error(err))
		return err
	}
	if l.SellerID != sellerID {
		return apperrors.NewValidationError("seller", "seller does not own this land")
	}
	return nil
}

func (s *Service) logRepoError(ctx context.Context, msg string, id int64, err error) {
	log := logger.WithContext(ctx, s.log)
	if apperrors.IsNotFound(err) {
		log.Warn(msg, zap.Int64("id", id), zap.Error(err))
		return
	}
	log.Error(msg, zap.Int64("id", id), zap.Error(err))
}

func toDTO(t *domain.Transaction) *Transaction {
	return &Transaction{
		ID:        t.ID,
		LandID:    t.LandID,
		BuyerID:   t.BuyerID,
		SellerID:  t.SellerID,
		Amount:    t.Amount,
		Status:    string(t.Status),
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"land-marketplace-service/internal/usecase/transaction"
)

// TransactionHandler handles HTTP requests for transactions
type TransactionHandler struct {
	uc  transaction.Usecase
	log *zap.Logger
}

// NewTransactionHandler creates a new TransactionHandler instance
func NewTransactionHandler(uc transaction.Usecase, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{uc: uc, log: log}
}

// TransactionResponse represents the HTTP response for a transaction
type TransactionResponse struct {
	ID        int64     `json:"_id"`
	LandID    int64     `json:"land"`
	BuyerID   int64     `json:"buyer"`
	SellerID  int64     `json:"seller"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListTransactionsResponse represents the HTTP response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   *Pagination           `json:"pagination,omitempty"`
}

// CreateTransaction handles POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req transaction.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create transaction request", zap.Error(err))
		badRequest(c, "validation_error", err.Error())
		return
	}

	resp, err := h.uc.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, IDResponse{ID: resp.ID})
}

// GetTransaction handles GET /api/transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid_id", "Transaction ID must be a positive number")
		return
	}

	resp, err := h.uc.GetTransaction(c.Request.Context(), transaction.GetTransactionRequest{ID: id})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(*resp))
}

// GetTransactionsByIDs handles GET /api/transactions/getTransactionsByIds?ids=1,2,3.
// Repeated ids parameters are accepted as well.
func (h *TransactionHandler) GetTransactionsByIDs(c *gin.Context) {
	ids, ok := parseIDList(c.QueryArray("ids"))
	if !ok {
		badRequest(c, "invalid_id", "ids must be a comma-separated list of positive numbers")
		return
	}

	txs, err := h.uc.GetTransactionsByIDs(c.Request.Context(), transaction.GetTransactionsByIDsRequest{IDs: ids})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponses(txs))
}

// UpdateTransaction handles PUT /api/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid_id", "Transaction ID must be a positive number")
		return
	}

	var req transaction.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update transaction request", zap.Error(err))
		badRequest(c, "validation_error", err.Error())
		return
	}
	req.ID = id

	resp, err := h.uc.UpdateTransaction(c.Request.Context(), req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(*resp))
}

// DeleteTransaction handles DELETE /api/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid_id", "Transaction ID must be a positive number")
		return
	}

	resp, err := h.uc.DeleteTransaction(c.Request.Context(), transaction.DeleteTransactionRequest{ID: id})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, IDResponse{ID: resp.ID})
}

// ListTransactions handles GET /api/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	page, limit := parsePaging(c)

	var landID int64
	if raw := c.Query("land"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			badRequest(c, "invalid_id", "land must be a positive number")
			return
		}
		landID = id
	}

	resp, err := h.uc.ListTransactions(c.Request.Context(), transaction.ListTransactionsRequest{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
		LandID: landID,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	out := ListTransactionsResponse{Transactions: toTransactionResponses(resp.Transactions)}
	if resp.Pagination != nil {
		out.Pagination = &Pagination{
			Total:      resp.Pagination.Total,
			Page:       resp.Pagination.Page,
			Limit:      resp.Pagination.Limit,
			TotalPages: resp.Pagination.TotalPages,
		}
	}
	c.JSON(http.StatusOK, out)
}

// parseIDList flattens comma-separated and repeated values. Empty input is rejected.
func parseIDList(values []string) ([]int64, bool) {
	var ids []int64
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, ok := parseID(part)
			if !ok {
				return nil, false
			}
			ids = append(ids, id)
		}
	}
	return ids, len(ids) > 0
}

func toTransactionResponse(t transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		LandID:    t.LandID,
		BuyerID:   t.BuyerID,
		SellerID:  t.SellerID,
		Amount:    t.Amount,
		Status:    t.Status,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTransactionResponses(txs []transaction.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		out[i] = toTransactionResponse(t)
	}
	return out
}

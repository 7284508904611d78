package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"land-marketplace-service/internal/usecase/land"
)

// LandHandler handles HTTP requests for land listings
type LandHandler struct {
	uc  land.Usecase
	log *zap.Logger
}

// NewLandHandler creates a new LandHandler instance
func NewLandHandler(uc land.Usecase, log *zap.Logger) *LandHandler {
	return &LandHandler{uc: uc, log: log}
}

// UpdateAvailabilityRequest is the body of PUT /lands/:id/updateAvailability.
// The pointer lets false pass the required check.
type UpdateAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// LandResponse represents the HTTP response for a land
type LandResponse struct {
	ID          int64     `json:"_id"`
	Name        string    `json:"landName"`
	Location    string    `json:"locationName"`
	Price       float64   `json:"price"`
	IsAvailable bool      `json:"isAvailable"`
	SellerID    int64     `json:"seller"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListLandsResponse represents the HTTP response for listing lands
type ListLandsResponse struct {
	Lands      []LandResponse `json:"lands"`
	Pagination *Pagination    `json:"pagination,omitempty"`
}

// CreateLand handles POST /api/lands
func (h *LandHandler) CreateLand(c *gin.Context) {
	var req land.CreateLandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create land request", zap.Error(err))
		badRequest(c, "validation_error", err.Error())
		return
	}

	resp, err := h.uc.CreateLand(c.Request.Context(), req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, IDResponse{ID: resp.ID})
}

// GetLand handles GET /api/lands/:id
func (h *LandHandler) GetLand(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid_id", "Land ID must be a positive number")
		return
	}

	resp, err := h.uc.GetLand(c.Request.Context(), land.GetLandRequest{ID: id})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toLandResponse(*resp))
}

// UpdateLand handles PUT /api/lands/:id
func (h *LandHandler) UpdateLand(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid_id", "Land ID must be a positive number")
		return
	}

	var req land.UpdateLandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update land request", zap.Error(err))
		badRequest(c, "validation_error", err.Error())
		return
	}
	req.ID = id

	resp, err := h.uc.UpdateLand(c.Request.Context(), req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toLandResponse(*resp))
}

// DeleteLand handles DELETE /api/lands/:id
func (h *LandHandler) DeleteLand(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid_id", "Land ID must be a positive number")
		return
	}

	resp, err := h.uc.DeleteLand(c.Request.Context(), land.DeleteLandRequest{ID: id})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, IDResponse{ID: resp.ID})
}

// ListLands handles GET /api/lands
func (h *LandHandler) ListLands(c *gin.Context) {
	page, limit := parsePaging(c)
	onlyAvailable, _ := strconv.ParseBool(c.DefaultQuery("onlyAvailable", "false"))

	resp, err := h.uc.ListLands(c.Request.Context(), land.ListLandsRequest{
		Query:         c.Query("query"),
		Page:          page,
		Limit:         limit,
		OnlyAvailable: onlyAvailable,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	out := ListLandsResponse{Lands: toLandResponses(resp.Lands)}
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

// ManageLand handles GET /api/manageland?seller=<id> and returns a bare array
func (h *LandHandler) ManageLand(c *gin.Context) {
	sellerID, ok := parseID(c.Query("seller"))
	if !ok {
		badRequest(c, "invalid_id", "seller must be a positive number")
		return
	}

	lands, err := h.uc.ListBySeller(c.Request.Context(), land.ListBySellerRequest{SellerID: sellerID})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toLandResponses(lands))
}

// UpdateAvailability handles PUT /lands/:id/updateAvailability
func (h *LandHandler) UpdateAvailability(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid_id", "Land ID must be a positive number")
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid availability request", zap.Int64("id", id), zap.Error(err))
		badRequest(c, "validation_error", "isAvailable is required")
		return
	}

	resp, err := h.uc.UpdateAvailability(c.Request.Context(), land.UpdateAvailabilityRequest{
		ID:          id,
		IsAvailable: *req.IsAvailable,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toLandResponse(*resp))
}

func toLandResponse(l land.Land) LandResponse {
	return LandResponse{
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

func toLandResponses(lands []land.Land) []LandResponse {
	out := make([]LandResponse, len(lands))
	for i, l := range lands {
		out[i] = toLandResponse(l)
	}
	return out
}

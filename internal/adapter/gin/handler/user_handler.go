package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"land-marketplace-service/internal/usecase/user"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID        int64     `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// SignUp handles POST /api/user/
func (h *UserHandler) SignUp(c *gin.Context) {
	var req user.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid sign-up request", zap.Error(err))
		badRequest(c, "validation_error", err.Error())
		return
	}

	// Clients that confirm the password locally omit confirmPassword.
	if req.ConfirmPassword == "" {
		req.ConfirmPassword = req.Password
	}

	resp, err := h.uc.SignUp(c.Request.Context(), req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{
		Message: "User registered successfully",
		ID:      resp.ID,
	})
}

// Login handles POST /api/user/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid login request", zap.Error(err))
		badRequest(c, "validation_error", err.Error())
		return
	}

	u, err := h.uc.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
	})
}

// GetUser handles GET /api/user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid_id", "User ID must be a positive number")
		return
	}

	u, err := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	})
}

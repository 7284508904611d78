package user

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "land-marketplace-service/internal/domain/user"
	apperrors "land-marketplace-service/pkg/errors"
	"land-marketplace-service/pkg/logger"
	"land-marketplace-service/pkg/security"
	"land-marketplace-service/pkg/validation"
)

// MsgInvalidCredentials is returned for any failed login so callers cannot probe for emails.
const MsgInvalidCredentials = "Invalid email or password"

// Repository defines the interface for user data access operations.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)          // Create a new user
	GetByID(ctx context.Context, id int64) (*domain.User, error)        // Retrieve user by ID
	GetByEmail(ctx context.Context, email string) (*domain.User, error) // Retrieve user by email, nil when absent
}

var _ Usecase = (*Service)(nil)

// Service implements the business logic for registration and login.
type Service struct {
	repo     Repository
	hasher   *security.PasswordHasher
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new user Service.
func New(r Repository, hasher *security.PasswordHasher, log *zap.Logger) *Service {
	return &Service{repo: r, hasher: hasher, log: log, validate: validation.New()}
}

// SignUp registers a new user after applying the sign-up rules and checking email uniqueness.
func (s *Service) SignUp(ctx context.Context, in SignUpRequest) (*SignUpResponse, error) {
	log := logger.WithContext(ctx, s.log)

	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	log.Info("signing up user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := security.ValidateSignUp(security.SignUpInput{
		Username:        in.Name,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	}); err != nil {
		log.Warn("sign-up rules failed", zap.Error(err))
		return nil, err
	}

	if err := validation.Struct(s.validate, in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		log.Warn("email already exists", zap.String("email", in.Email))
		return nil, apperrors.NewAlreadyExistsError("user", "User already exists")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to register user", err)
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &SignUpResponse{ID: id}, nil
}

// Login verifies the credentials and returns the user.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*User, error) {
	log := logger.WithContext(ctx, s.log)
	in.Email = normalizeEmail(in.Email)

	if err := validation.Struct(s.validate, in); err != nil {
		log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		log.Error("failed to load user for login", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if u == nil {
		log.Warn("login for unknown email", zap.String("email", in.Email))
		return nil, apperrors.NewUnauthorizedError(MsgInvalidCredentials)
	}

	ok, err := s.hasher.Compare(u.PasswordHash, in.Password)
	if err != nil {
		log.Error("failed to compare password", zap.Int64("id", u.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to verify credentials", err)
	}
	if !ok {
		log.Warn("login with wrong password", zap.Int64("id", u.ID))
		return nil, apperrors.NewUnauthorizedError(MsgInvalidCredentials)
	}

	log.Info("user logged in", zap.Int64("id", u.ID))
	return toDTO(u), nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	log := logger.WithContext(ctx, s.log)

	if in.ID <= 0 {
		log.Warn("get user validation failed", zap.Int64("id", in.ID), zap.String("reason", "invalid id"))
		return nil, apperrors.NewValidationError("_id", "invalid user id")
	}

	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.Warn("user not found", zap.Int64("id", in.ID))
		} else {
			log.Error("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		}
		return nil, err
	}

	return toDTO(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toDTO(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

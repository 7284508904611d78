package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"land-marketplace-service/internal/usecase/land"
	"land-marketplace-service/internal/usecase/transaction"
	"land-marketplace-service/internal/usecase/user"
)

// MockUserUsecase is a mock implementation of user.Usecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) SignUp(ctx context.Context, req user.SignUpRequest) (*user.SignUpResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.SignUpResponse), args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, req user.LoginRequest) (*user.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, req user.GetUserRequest) (*user.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// MockLandUsecase is a mock implementation of land.Usecase
type MockLandUsecase struct {
	mock.Mock
}

func (m *MockLandUsecase) CreateLand(ctx context.Context, req land.CreateLandRequest) (*land.CreateLandResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*land.CreateLandResponse), args.Error(1)
}

func (m *MockLandUsecase) GetLand(ctx context.Context, req land.GetLandRequest) (*land.Land, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*land.Land), args.Error(1)
}

func (m *MockLandUsecase) UpdateLand(ctx context.Context, req land.UpdateLandRequest) (*land.Land, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*land.Land), args.Error(1)
}

func (m *MockLandUsecase) DeleteLand(ctx context.Context, req land.DeleteLandRequest) (*land.DeleteLandResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*land.DeleteLandResponse), args.Error(1)
}

func (m *MockLandUsecase) ListLands(ctx context.Context, req land.ListLandsRequest) (*land.ListLandsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*land.ListLandsResponse), args.Error(1)
}

func (m *MockLandUsecase) ListBySeller(ctx context.Context, req land.ListBySellerRequest) ([]land.Land, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]land.Land), args.Error(1)
}

func (m *MockLandUsecase) UpdateAvailability(ctx context.Context, req land.UpdateAvailabilityRequest) (*land.Land, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*land.Land), args.Error(1)
}

// MockTransactionUsecase is a mock implementation of transaction.Usecase
type MockTransactionUsecase struct {
	mock.Mock
}

func (m *MockTransactionUsecase) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (*transaction.CreateTransactionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.CreateTransactionResponse), args.Error(1)
}

func (m *MockTransactionUsecase) GetTransaction(ctx context.Context, req transaction.GetTransactionRequest) (*transaction.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *MockTransactionUsecase) GetTransactionsByIDs(ctx context.Context, req transaction.GetTransactionsByIDsRequest) ([]transaction.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transaction.Transaction), args.Error(1)
}

func (m *MockTransactionUsecase) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) (*transaction.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *MockTransactionUsecase) DeleteTransaction(ctx context.Context, req transaction.DeleteTransactionRequest) (*transaction.DeleteTransactionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.DeleteTransactionResponse), args.Error(1)
}

func (m *MockTransactionUsecase) ListTransactions(ctx context.Context, req transaction.ListTransactionsRequest) (*transaction.ListTransactionsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.ListTransactionsResponse), args.Error(1)
}

package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	usecase "land-marketplace-service/internal/usecase/land"
	apperrors "land-marketplace-service/pkg/errors"
)

func setupLandTest(t *testing.T) (*gin.Engine, *MockLandUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockLandUsecase)
	h := NewLandHandler(mockUsecase, zaptest.NewLogger(t))

	r := gin.New()
	r.POST("/api/lands", h.CreateLand)
	r.GET("/api/lands", h.ListLands)
	r.GET("/api/lands/:id", h.GetLand)
	r.PUT("/api/lands/:id", h.UpdateLand)
	r.DELETE("/api/lands/:id", h.DeleteLand)
	r.GET("/api/manageland", h.ManageLand)
	r.PUT("/lands/:id/updateAvailability", h.UpdateAvailability)
	return r, mockUsecase
}

func TestCreateLand(t *testing.T) {
	r, mockUsecase := setupLandTest(t)
	mockUsecase.On("CreateLand", mock.Anything, mock.MatchedBy(func(req usecase.CreateLandRequest) bool {
		return req.Name == "Green Acres" && req.Location == "Riverside" && req.SellerID == 7 && req.IsAvailable == nil
	})).Return(&usecase.CreateLandResponse{ID: 4}, nil)

	w := doJSON(r, http.MethodPost, "/api/lands", gin.H{
		"landName":     "Green Acres",
		"locationName": "Riverside",
		"price":        12000,
		"seller":       7,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"_id":4}`, w.Body.String())
}

func TestGetLand(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupLandTest(t)
		mockUsecase.On("GetLand", mock.Anything, usecase.GetLandRequest{ID: 1}).
			Return(&usecase.Land{ID: 1, Name: "Green Acres", Location: "Riverside", Price: 12000, IsAvailable: true, SellerID: 7}, nil)

		w := doJSON(r, http.MethodGet, "/api/lands/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(1), resp["_id"])
		assert.Equal(t, "Green Acres", resp["landName"])
		assert.Equal(t, "Riverside", resp["locationName"])
		assert.Equal(t, true, resp["isAvailable"])
	})

	t.Run("Not found", func(t *testing.T) {
		r, mockUsecase := setupLandTest(t)
		mockUsecase.On("GetLand", mock.Anything, usecase.GetLandRequest{ID: 2}).
			Return(nil, apperrors.NewNotFoundError("land", "land not found"))

		w := doJSON(r, http.MethodGet, "/api/lands/2", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		r, _ := setupLandTest(t)
		w := doJSON(r, http.MethodGet, "/api/lands/-3", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateLand_TakesIDFromPath(t *testing.T) {
	r, mockUsecase := setupLandTest(t)
	mockUsecase.On("UpdateLand", mock.Anything, mock.MatchedBy(func(req usecase.UpdateLandRequest) bool {
		return req.ID == 5 && req.Price != nil && *req.Price == 99 && req.Name == nil
	})).Return(&usecase.Land{ID: 5, Price: 99}, nil)

	w := doJSON(r, http.MethodPut, "/api/lands/5", gin.H{"_id": 77, "price": 99})

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsecase.AssertExpectations(t)
}

func TestDeleteLand(t *testing.T) {
	r, mockUsecase := setupLandTest(t)
	mockUsecase.On("DeleteLand", mock.Anything, usecase.DeleteLandRequest{ID: 5}).Return(&usecase.DeleteLandResponse{ID: 5}, nil)

	w := doJSON(r, http.MethodDelete, "/api/lands/5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"_id":5}`, w.Body.String())
}

func TestListLands(t *testing.T) {
	r, mockUsecase := setupLandTest(t)
	mockUsecase.On("ListLands", mock.Anything, usecase.ListLandsRequest{Query: "river", Page: 2, Limit: 5, OnlyAvailable: true}).
		Return(&usecase.ListLandsResponse{
			Lands:      []usecase.Land{{ID: 1}},
			Pagination: &usecase.Pagination{Total: 6, Page: 2, Limit: 5, TotalPages: 2},
		}, nil)

	w := doJSON(r, http.MethodGet, "/api/lands?query=river&page=2&limit=5&onlyAvailable=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ListLandsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Lands, 1)
	assert.Equal(t, int64(2), resp.Pagination.TotalPages)
}

func TestManageLand(t *testing.T) {
	t.Run("Returns bare array", func(t *testing.T) {
		r, mockUsecase := setupLandTest(t)
		mockUsecase.On("ListBySeller", mock.Anything, usecase.ListBySellerRequest{SellerID: 7}).
			Return([]usecase.Land{{ID: 2, SellerID: 7}, {ID: 1, SellerID: 7}}, nil)

		w := doJSON(r, http.MethodGet, "/api/manageland?seller=7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []LandResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, int64(2), resp[0].ID)
	})

	t.Run("Empty list is an array", func(t *testing.T) {
		r, mockUsecase := setupLandTest(t)
		mockUsecase.On("ListBySeller", mock.Anything, usecase.ListBySellerRequest{SellerID: 8}).Return([]usecase.Land{}, nil)

		w := doJSON(r, http.MethodGet, "/api/manageland?seller=8", nil)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("Missing seller", func(t *testing.T) {
		r, mockUsecase := setupLandTest(t)
		w := doJSON(r, http.MethodGet, "/api/manageland", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUsecase.AssertNotCalled(t, "ListBySeller", mock.Anything, mock.Anything)
	})
}

func TestUpdateAvailability(t *testing.T) {
	t.Run("False is a valid value", func(t *testing.T) {
		r, mockUsecase := setupLandTest(t)
		mockUsecase.On("UpdateAvailability", mock.Anything, usecase.UpdateAvailabilityRequest{ID: 3, IsAvailable: false}).
			Return(&usecase.Land{ID: 3, IsAvailable: false}, nil)

		w := doJSON(r, http.MethodPut, "/lands/3/updateAvailability", gin.H{"isAvailable": false})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp LandResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.IsAvailable)
	})

	t.Run("Missing field", func(t *testing.T) {
		r, mockUsecase := setupLandTest(t)
		w := doJSON(r, http.MethodPut, "/lands/3/updateAvailability", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "isAvailable is required")
		mockUsecase.AssertNotCalled(t, "UpdateAvailability", mock.Anything, mock.Anything)
	})

	t.Run("Unknown land", func(t *testing.T) {
		r, mockUsecase := setupLandTest(t)
		mockUsecase.On("UpdateAvailability", mock.Anything, usecase.UpdateAvailabilityRequest{ID: 9, IsAvailable: true}).
			Return(nil, apperrors.NewNotFoundError("land", "land not found"))

		w := doJSON(r, http.MethodPut, "/lands/9/updateAvailability", gin.H{"isAvailable": true})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

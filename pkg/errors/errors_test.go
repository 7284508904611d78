package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", NewValidationError("email", "Invalid email address"), http.StatusBadRequest},
		{"not found", NewNotFoundError("land", ""), http.StatusNotFound},
		{"already exists", NewAlreadyExistsError("user", "User already exists"), http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("Invalid email or password"), http.StatusUnauthorized},
		{"internal", NewInternalError("boom", errors.New("db down")), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("get: %w", NewNotFoundError("land", "")), http.StatusNotFound},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusOf(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Invalid email address", NewValidationError("email", "Invalid email address").Error())
	assert.Equal(t, "land not found", NewNotFoundError("land", "").Error())
	assert.Equal(t, "user already exists", NewAlreadyExistsError("user", "").Error())
	assert.Equal(t, "boom: db down", NewInternalError("boom", errors.New("db down")).Error())

	inner := errors.New("db down")
	assert.ErrorIs(t, NewInternalError("boom", inner), inner)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("land", "")))
	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", NewNotFoundError("land", ""))))
	assert.False(t, IsNotFound(errors.New("nope")))
}

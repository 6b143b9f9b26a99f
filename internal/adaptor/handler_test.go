package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio-booking/internal/data/repository"

	"go.uber.org/zap"
)

func TestHandleServiceErrorNotFound(t *testing.T) {
	rec := httptest.NewRecorder()

	err := fmt.Errorf("find class: %w", repository.ErrClassNotFound)
	handleServiceError(rec, zap.NewNop(), err, "get class")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleServiceErrorClassFull(t *testing.T) {
	rec := httptest.NewRecorder()

	err := fmt.Errorf("create booking: %w", repository.ErrClassFull)
	handleServiceError(rec, zap.NewNop(), err, "create booking")

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestHandleServiceErrorConflictRetryable(t *testing.T) {
	rec := httptest.NewRecorder()

	err := fmt.Errorf("create booking: %w", repository.ErrConflict)
	handleServiceError(rec, zap.NewNop(), err, "create booking")

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestHandleServiceErrorInvalidTransition(t *testing.T) {
	rec := httptest.NewRecorder()

	err := fmt.Errorf("cancelled to confirmed: %w", repository.ErrInvalidTransition)
	handleServiceError(rec, zap.NewNop(), err, "update booking status")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleServiceErrorInvalidCredentials(t *testing.T) {
	rec := httptest.NewRecorder()

	handleServiceError(rec, zap.NewNop(), fmt.Errorf("invalid credentials"), "login")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHandleServiceErrorFallsBackToInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	handleServiceError(rec, zap.NewNop(), fmt.Errorf("connection refused"), "get classes")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

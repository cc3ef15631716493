package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bancobr/bank-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"user inactive", domain.ErrUserInactive, http.StatusForbidden},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", domain.ErrTokenInvalid, http.StatusUnauthorized},
		{"customer not found", domain.ErrCustomerNotFound, http.StatusNotFound},
		{"token creation fault", domain.ErrTokenCreation, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error == "" {
				t.Fatal("expected error message in envelope")
			}
			if tt.wantStatus == http.StatusInternalServerError && resp.Error != "internal server error" {
				t.Fatalf("internal errors must not leak detail, got %q", resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wrapped := errors.Join(errors.New("register: create"), domain.ErrUserExists)
	NewHTTPErrorHandler(zerolog.Nop())(wrapped, c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped ErrUserExists, got %d", rec.Code)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bancobr/bank-api/internal/core/domain"
)

type stubCustomerService struct {
	createFn func(ctx context.Context, fullName, document, userID string) (*domain.Customer, error)
	getFn    func(ctx context.Context, id string) (*domain.Customer, error)
	listFn   func(ctx context.Context) ([]domain.Customer, error)
}

func (s *stubCustomerService) Create(ctx context.Context, fullName, document, userID string) (*domain.Customer, error) {
	return s.createFn(ctx, fullName, document, userID)
}

func (s *stubCustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.getFn(ctx, id)
}

func (s *stubCustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.listFn(ctx)
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	stub := &stubCustomerService{
		createFn: func(_ context.Context, fullName, document, userID string) (*domain.Customer, error) {
			if fullName != "Leo Silva" || document != "12345678901" || userID != "user-1" {
				t.Fatalf("unexpected args: %s %s %s", fullName, document, userID)
			}
			return &domain.Customer{ID: "1", FullName: fullName, Document: document, Status: domain.CustomerActive, UserID: userID}, nil
		},
	}
	h := NewCustomerHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/customers",
		`{"full_name":"Leo Silva","document":"12345678901","user_id":"user-1"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp domain.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "1" || resp.Status != domain.CustomerActive {
		t.Fatalf("unexpected customer payload: %+v", resp)
	}
}

func TestCustomerHandler_Create_Validation(t *testing.T) {
	stub := &stubCustomerService{
		createFn: func(context.Context, string, string, string) (*domain.Customer, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewCustomerHandler(stub)

	tests := []struct {
		name string
		body string
	}{
		{"short name", `{"full_name":"Le","document":"12345678901","user_id":"user-1"}`},
		{"bad document length", `{"full_name":"Leo Silva","document":"123","user_id":"user-1"}`},
		{"non-numeric document", `{"full_name":"Leo Silva","document":"1234567890a","user_id":"user-1"}`},
		{"missing user id", `{"full_name":"Leo Silva","document":"12345678901"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAuthContext(t, http.MethodPost, "/customers", tt.body)
			err := h.Create(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 error, got %v", err)
			}
		})
	}
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	stub := &stubCustomerService{
		getFn: func(context.Context, string) (*domain.Customer, error) {
			return nil, domain.ErrCustomerNotFound
		},
	}
	h := NewCustomerHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/customers/abc", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	// The domain error propagates; status mapping happens in the central
	// HTTP error handler.
	if err := h.Get(c); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound to propagate, got %v", err)
	}
}

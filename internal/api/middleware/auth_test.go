package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bancobr/bank-api/internal/core/domain"
	"github.com/bancobr/bank-api/internal/infrastructure/security"
)

const testSecret = "middleware-test-secret"

func newContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := security.NewTokenService(testSecret, time.Hour, nil)
	signed, err := tokens.Issue("leo", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := newContext(t, "Bearer "+signed)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get("username") != "leo" {
			t.Fatalf("username not set")
		}
		if c.Get("role") != domain.RoleClient {
			t.Fatalf("role not set")
		}
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next handler was not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := security.NewTokenService(testSecret, time.Hour, nil)
	c, _ := newContext(t, "")

	err := Auth(tokens)(func(echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_BadScheme(t *testing.T) {
	tokens := security.NewTokenService(testSecret, time.Hour, nil)
	c, _ := newContext(t, "Basic dXNlcjpwYXNz")

	err := Auth(tokens)(func(echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	issuer := security.NewTokenService(testSecret, 20*time.Minute, past)
	signed, err := issuer.Issue("leo", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	verifier := security.NewTokenService(testSecret, 20*time.Minute, nil)
	c, _ := newContext(t, "Bearer "+signed)

	err = Auth(verifier)(func(echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", err)
	}
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	other := security.NewTokenService("another-secret", time.Hour, nil)
	signed, err := other.Issue("leo", domain.RoleClient)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	tokens := security.NewTokenService(testSecret, time.Hour, nil)
	c, _ := newContext(t, "Bearer "+signed)

	err = Auth(tokens)(func(echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for tampered token, got %v", err)
	}
}

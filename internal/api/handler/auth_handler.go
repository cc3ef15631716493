package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bancobr/bank-api/internal/api/metrics"
	"github.com/bancobr/bank-api/internal/core/domain"
	"github.com/bancobr/bank-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt limiter (Redis). A nil
// throttle disables limiting; throttle errors fail open.
type LoginThrottle interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

type AuthHandler struct {
	authService ports.AuthService
	throttle    LoginThrottle
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, throttle LoginThrottle, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle, log: log}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		status := http.StatusInternalServerError
		outcome := "error"
		switch {
		case errors.Is(err, domain.ErrUserExists):
			status = http.StatusConflict
			outcome = "exists"
		case errors.Is(err, domain.ErrInvalidRole):
			status = http.StatusBadRequest
		}
		metrics.RegistrationsTotal.WithLabelValues(outcome).Inc()
		return c.JSON(status, map[string]string{"error": publicMessage(err, status)})
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	started := time.Now()
	defer func() { metrics.LoginDuration.Observe(time.Since(started).Seconds()) }()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()

	if h.throttle != nil {
		blocked, err := h.throttle.Blocked(ctx, req.Username)
		if err != nil {
			h.log.Warn().Err(err).Str("username", req.Username).Msg("throttle check failed, allowing attempt")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many failed attempts"})
		}
	}

	token, user, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		outcome := "error"
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			status = http.StatusNotFound
			outcome = "not_found"
		case errors.Is(err, domain.ErrUserInactive):
			status = http.StatusForbidden
			outcome = "inactive"
		case errors.Is(err, domain.ErrInvalidCredentials):
			status = http.StatusUnauthorized
			outcome = "invalid_credentials"
		}
		if outcome != "error" {
			h.recordFailure(ctx, req.Username)
		}
		metrics.LoginsTotal.WithLabelValues(outcome).Inc()
		return c.JSON(status, map[string]string{"error": publicMessage(err, status)})
	}

	if h.throttle != nil {
		if resetErr := h.throttle.Reset(ctx, req.Username); resetErr != nil {
			h.log.Warn().Err(resetErr).Str("username", req.Username).Msg("throttle reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Me returns the verified claims of the presented token. The Auth
// middleware has already validated the token and populated the context.
//
// @Summary      Current token identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  claimsResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	username, _ := c.Get("username").(string)
	if username == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authentication claims"})
	}
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, claimsResponse{Username: username, Role: role})
}

func (h *AuthHandler) recordFailure(ctx context.Context, username string) {
	if h.throttle == nil {
		return
	}
	if err := h.throttle.RecordFailure(ctx, username); err != nil {
		h.log.Warn().Err(err).Str("username", username).Msg("throttle record failed")
	}
}

// publicMessage hides internal error detail on 5xx responses; domain errors
// already carry caller-safe text.
func publicMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bancobr/bank-api/internal/core/domain"
	"github.com/bancobr/bank-api/internal/core/ports"
)

// AuthService implements registration and login on top of a user store, a
// password hasher, and a token service, all injected through their ports.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
		log:    log,
	}
}

// Register creates a new account with a hashed password and enabled=true.
//
// The FindByUsername pre-check keeps the common duplicate case cheap, but the
// repository's uniqueness constraint is authoritative: under concurrent
// registration of the same username exactly one Create commits and the loser
// gets domain.ErrUserExists from the store itself.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		s.log.Warn().Str("username", username).Msg("registration rejected: username taken")
		s.record(domain.AuditActionRegister, username, domain.ErrUserExists)
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: lookup: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			// Lost a uniqueness race; same outcome as the pre-check.
			s.record(domain.AuditActionRegister, username, domain.ErrUserExists)
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("register: create: %w", err)
	}

	s.log.Info().Str("username", username).Str("role", role).Msg("user registered")
	s.record(domain.AuditActionRegister, username, nil)
	return created, nil
}

// Login authenticates the account and returns a signed bearer token.
//
// The check order is fixed: existence, then enabled, then credentials. A
// caller who does not know the account exists cannot distinguish a wrong
// password from a disabled account. Do not reorder.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("username", username).Msg("login failed: user not found")
			s.record(domain.AuditActionLogin, username, domain.ErrUserNotFound)
			return "", nil, domain.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("login: lookup: %w", err)
	}

	if !user.Enabled {
		s.log.Warn().Str("username", username).Msg("login failed: user inactive")
		s.record(domain.AuditActionLogin, username, domain.ErrUserInactive)
		return "", nil, domain.ErrUserInactive
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Warn().Str("username", username).Msg("login failed: invalid credentials")
		s.record(domain.AuditActionLogin, username, domain.ErrInvalidCredentials)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("username", username).Msg("user authenticated")
	s.record(domain.AuditActionLogin, username, nil)
	return token, user, nil
}

func (s *AuthService) record(action, username string, failure error) {
	if s.audit == nil {
		return
	}
	entry := domain.AuditEntry{
		Username: username,
		Action:   action,
		Outcome:  domain.AuditOutcomeSuccess,
		At:       time.Now().UTC(),
	}
	if failure != nil {
		entry.Outcome = domain.AuditOutcomeFailure
		entry.Reason = failure.Error()
	}
	s.audit.Record(entry)
}

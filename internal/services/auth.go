package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"eventbooking/internal/domain"
)

type authService struct {
	userRepo    domain.UserRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
	emails      domain.EmailService
	logger      *zap.Logger
}

// NewAuthService creates an AuthService with the given repository and auth ports. emails may be nil.
func NewAuthService(
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	emails domain.EmailService,
	logger *zap.Logger,
) domain.AuthService {
	return &authService{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
		emails:      emails,
		logger:      logger,
	}
}

// SignUp rejects a name that is already registered, stores the hashed
// password and sends a best-effort welcome email.
func (s *authService) SignUp(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	if _, err := s.userRepo.GetByName(ctx, user.Name); err == nil {
		return nil, domain.ErrDuplicateName
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.emails != nil && user.Email != "" {
		bestEffort(ctx, s.logger, "welcome email", func(ctx context.Context) error {
			return s.emails.SendWelcome(ctx, &domain.WelcomeEmailData{Email: user.Email, Name: user.Name})
		}, zap.Int("user_id", user.ID))
	}
	return user, nil
}

// Authenticate checks name and password and issues a token carrying the user id and role.
// An unknown name and a wrong password fail the same way.
func (s *authService) Authenticate(ctx context.Context, name, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(user.ID, user.Name, user.Role, s.tokenExpiry)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{UserID: user.ID, Token: token, Role: user.Role}, nil
}

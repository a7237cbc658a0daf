package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"

	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/ports"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService handles administrator signup, login and session management
type AuthService struct {
	repo     ports.DirectoryRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	repo ports.DirectoryRepository,
	sessions ports.SessionStore,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

// SignupInput represents input for creating an administrator account
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Signup creates an administrator account and opens a session for it
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.Administrator, string, error) {
	if !emailPattern.MatchString(input.Email) {
		return nil, "", fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", fmt.Errorf("%w: password too short", domain.ErrInvalidInput)
	}
	if input.Name == "" {
		return nil, "", fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	existing, err := s.repo.GetAdminByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("%w: email already registered", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &domain.Administrator{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
	}

	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		s.logger.Error().Err(err).Msg("Failed to create admin")
		return nil, "", err
	}

	token, err := s.openSession(ctx, admin.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("adminId", admin.ID).Msg("Administrator signed up")
	return admin, token, nil
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password are indistinguishable for the caller.
func (s *AuthService) Login(ctx context.Context, email string, password string) (*domain.Administrator, string, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}

	token, err := s.openSession(ctx, admin.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("adminId", admin.ID).Msg("Administrator logged in")
	return admin, token, nil
}

// Logout invalidates a session token
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// GetAdmin retrieves an administrator by ID
func (s *AuthService) GetAdmin(ctx context.Context, adminID string) (*domain.Administrator, error) {
	admin, err := s.repo.GetAdminByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, fmt.Errorf("%w: admin not found", domain.ErrNotFound)
	}
	return admin, nil
}

// openSession generates an opaque token (32 bytes = 64 hex characters) and
// records it in the session store.
func (s *AuthService) openSession(ctx context.Context, adminID string) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)

	if err := s.sessions.Set(ctx, token, adminID); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"growlog/internal/models"
	"growlog/internal/repository"
	"growlog/internal/security"
	"growlog/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// AuthService handles parent account authentication
type AuthService struct {
	parentRepo      *repository.ParentRepository
	sessionDuration time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(parentRepo *repository.ParentRepository, sessionDuration time.Duration) *AuthService {
	return &AuthService{
		parentRepo:      parentRepo,
		sessionDuration: sessionDuration,
	}
}

// Register creates a new parent account
func (s *AuthService) Register(email, password, name string) (*models.Parent, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	existing, err := s.parentRepo.GetParentByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing parent: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	parent, err := s.parentRepo.CreateParent(email, passwordHash, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create parent: %w", err)
	}
	return parent, nil
}

// Login authenticates a parent and creates a session
func (s *AuthService) Login(email, password string) (*models.Session, *models.Parent, error) {
	parent, err := s.parentRepo.GetParentByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get parent: %w", err)
	}
	if parent == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, parent.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	return s.createSession(parent)
}

// OAuthLogin signs a parent in via an external identity provider, creating
// the account on first login
func (s *AuthService) OAuthLogin(email, name string) (*models.Session, *models.Parent, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, nil, err
	}

	parent, err := s.parentRepo.GetParentByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get parent: %w", err)
	}

	if parent == nil {
		if name == "" {
			name = strings.Split(email, "@")[0]
		}
		// Random hash so the account cannot be entered with a password
		randomHash, err := security.HashPassword(security.GenerateSessionID())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate password hash: %w", err)
		}
		parent, err = s.parentRepo.CreateParent(email, randomHash, name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create parent: %w", err)
		}
	}

	return s.createSession(parent)
}

// ValidateSession checks if a session is valid and returns the associated parent
func (s *AuthService) ValidateSession(sessionID string) (*models.Parent, error) {
	session, err := s.parentRepo.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.IsExpired() {
		_ = s.parentRepo.DeleteSession(sessionID)
		return nil, ErrSessionExpired
	}

	parent, err := s.parentRepo.GetParentByID(session.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get parent: %w", err)
	}
	if parent == nil {
		return nil, ErrSessionNotFound
	}
	return parent, nil
}

// Logout invalidates a session
func (s *AuthService) Logout(sessionID string) error {
	if err := s.parentRepo.DeleteSession(sessionID); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

// CleanupExpiredSessions removes expired sessions from the database
func (s *AuthService) CleanupExpiredSessions() error {
	if err := s.parentRepo.DeleteExpiredSessions(); err != nil {
		return fmt.Errorf("failed to cleanup sessions: %w", err)
	}
	return nil
}

func (s *AuthService) createSession(parent *models.Parent) (*models.Session, *models.Parent, error) {
	sessionID := security.GenerateSessionID()
	expiresAt := time.Now().Add(s.sessionDuration)

	session, err := s.parentRepo.CreateSession(sessionID, parent.ID, expiresAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, parent, nil
}

package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"growlog/internal/database"
	"growlog/internal/repository"
)

func newTestAuthService(t *testing.T, sessionDuration time.Duration) *AuthService {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewAuthService(repository.NewParentRepository(db), sessionDuration)
}

func TestRegisterAndLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newTestAuthService(t, time.Hour)

	parent, err := svc.Register("parent@example.com", "password123", "Parent")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if parent.PasswordHash == "password123" {
		t.Error("password stored unhashed")
	}

	if _, err := svc.Register("parent@example.com", "password123", "Parent"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: got %v, want ErrEmailTaken", err)
	}

	session, loggedIn, err := svc.Login("parent@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.ID != parent.ID {
		t.Errorf("Login returned parent %d, want %d", loggedIn.ID, parent.ID)
	}

	validated, err := svc.ValidateSession(session.ID)
	if err != nil {
		t.Fatalf("ValidateSession: %v", err)
	}
	if validated.ID != parent.ID {
		t.Errorf("ValidateSession returned parent %d, want %d", validated.ID, parent.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newTestAuthService(t, time.Hour)
	if _, err := svc.Register("parent@example.com", "password123", "Parent"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login("parent@example.com", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newTestAuthService(t, time.Hour)
	if _, err := svc.Register("parent@example.com", "password123", "Parent"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	session, _, err := svc.Login("parent@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(session.ID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.ValidateSession(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newTestAuthService(t, -time.Minute)
	if _, err := svc.Register("parent@example.com", "password123", "Parent"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	session, _, err := svc.Login("parent@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.ValidateSession(session.ID); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("got %v, want ErrSessionExpired", err)
	}
}

func TestOAuthLoginCreatesAccountOnce(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newTestAuthService(t, time.Hour)

	_, first, err := svc.OAuthLogin("oauth@example.com", "OAuth Parent")
	if err != nil {
		t.Fatalf("OAuthLogin: %v", err)
	}
	_, second, err := svc.OAuthLogin("oauth@example.com", "OAuth Parent")
	if err != nil {
		t.Fatalf("OAuthLogin again: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("oauth login created duplicate accounts: %d vs %d", first.ID, second.ID)
	}

	// The synthesized password must not be guessable as empty
	if _, _, err := svc.Login("oauth@example.com", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty password login: got %v, want ErrInvalidCredentials", err)
	}
}

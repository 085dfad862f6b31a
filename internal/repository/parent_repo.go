package repository

import (
	"database/sql"
	"fmt"
	"time"

	"growlog/internal/database"
	"growlog/internal/models"
)

// ParentRepository handles database operations for parent accounts and sessions
type ParentRepository struct {
	db *database.DB
}

// NewParentRepository creates a new parent repository
func NewParentRepository(db *database.DB) *ParentRepository {
	return &ParentRepository{db: db}
}

// CreateParent creates a new parent account
func (r *ParentRepository) CreateParent(email, passwordHash, name string) (*models.Parent, error) {
	query := "INSERT INTO parents (email, password_hash, name) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, email, passwordHash, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create parent: %w", err)
	}

	return &models.Parent{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    time.Now(),
	}, nil
}

// GetParentByEmail retrieves a parent by email, or nil when not found
func (r *ParentRepository) GetParentByEmail(email string) (*models.Parent, error) {
	query := "SELECT id, email, password_hash, name, created_at FROM parents WHERE email = ?"
	return r.scanParent(r.db.QueryRow(query, email))
}

// GetParentByID retrieves a parent by ID, or nil when not found
func (r *ParentRepository) GetParentByID(parentID int64) (*models.Parent, error) {
	query := "SELECT id, email, password_hash, name, created_at FROM parents WHERE id = ?"
	return r.scanParent(r.db.QueryRow(query, parentID))
}

// CreateSession stores a new session
func (r *ParentRepository) CreateSession(sessionID string, parentID int64, expiresAt time.Time) (*models.Session, error) {
	query := "INSERT INTO sessions (id, parent_id, expires_at) VALUES (?, ?, ?)"
	if _, err := r.db.Exec(query, sessionID, parentID, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &models.Session{
		ID:        sessionID,
		ParentID:  parentID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}, nil
}

// GetSession retrieves a session by ID, or nil when not found
func (r *ParentRepository) GetSession(sessionID string) (*models.Session, error) {
	query := "SELECT id, parent_id, expires_at, created_at FROM sessions WHERE id = ?"
	session := &models.Session{}
	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.ParentID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// DeleteSession removes a session
func (r *ParentRepository) DeleteSession(sessionID string) error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes all sessions past their expiry
func (r *ParentRepository) DeleteExpiredSessions() error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now()); err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}

func (r *ParentRepository) scanParent(row *sql.Row) (*models.Parent, error) {
	parent := &models.Parent{}
	err := row.Scan(&parent.ID, &parent.Email, &parent.PasswordHash, &parent.Name, &parent.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get parent: %w", err)
	}
	return parent, nil
}

package repository

import (
	"database/sql"
	"fmt"

	"growlog/internal/database"
	"growlog/internal/models"
)

// ChildRepository handles database operations for child profiles
type ChildRepository struct {
	db *database.DB
}

// NewChildRepository creates a new child repository
func NewChildRepository(db *database.DB) *ChildRepository {
	return &ChildRepository{db: db}
}

// Create stores a new child profile
func (r *ChildRepository) Create(child models.Child) error {
	query := "INSERT INTO children (id, parent_id, name, age_group, created_ms) VALUES (?, ?, ?, ?, ?)"
	_, err := r.db.Exec(query, child.ID, child.ParentID, child.Name, int(child.AgeGroup), child.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create child: %w", err)
	}
	return nil
}

// GetByID retrieves a child by ID, or nil when not found
func (r *ChildRepository) GetByID(childID string) (*models.Child, error) {
	query := "SELECT id, parent_id, name, age_group, created_ms FROM children WHERE id = ?"
	return r.scanOne(r.db.QueryRow(query, childID))
}

// FindByNameAndAge looks up an existing profile before a new one is created,
// so the same (name, age group) pair is not registered twice for a parent
func (r *ChildRepository) FindByNameAndAge(parentID int64, name string, age models.AgeGroup) (*models.Child, error) {
	query := "SELECT id, parent_id, name, age_group, created_ms FROM children WHERE parent_id = ? AND name = ? AND age_group = ?"
	return r.scanOne(r.db.QueryRow(query, parentID, name, int(age)))
}

// ListByParent retrieves all children registered by a parent
func (r *ChildRepository) ListByParent(parentID int64) ([]models.Child, error) {
	query := `
		SELECT id, parent_id, name, age_group, created_ms
		FROM children
		WHERE parent_id = ?
		ORDER BY created_ms ASC
	`
	rows, err := r.db.Query(query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query children: %w", err)
	}
	defer rows.Close()

	var children []models.Child
	for rows.Next() {
		var child models.Child
		var ageGroup int
		if err := rows.Scan(&child.ID, &child.ParentID, &child.Name, &ageGroup, &child.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan child: %w", err)
		}
		child.AgeGroup = models.AgeGroup(ageGroup)
		children = append(children, child)
	}

	return children, rows.Err()
}

// Delete removes a child profile (answers cascade)
func (r *ChildRepository) Delete(childID string) error {
	if _, err := r.db.Exec("DELETE FROM children WHERE id = ?", childID); err != nil {
		return fmt.Errorf("failed to delete child: %w", err)
	}
	return nil
}

func (r *ChildRepository) scanOne(row *sql.Row) (*models.Child, error) {
	child := &models.Child{}
	var ageGroup int
	err := row.Scan(&child.ID, &child.ParentID, &child.Name, &ageGroup, &child.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get child: %w", err)
	}
	child.AgeGroup = models.AgeGroup(ageGroup)
	return child, nil
}

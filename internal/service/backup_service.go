package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"growlog/internal/database"
	"growlog/internal/models"
)

// BackupData represents the complete database backup structure. Sessions are
// transient and not included.
type BackupData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Parents    []ParentBackup  `json:"parents"`
	Children   []models.Child  `json:"children"`
	Answers    []models.Answer `json:"answers"`
}

// ParentBackup represents a parent record for backup
type ParentBackup struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Database exported successfully to %s", outputPath)
	return nil
}

// ExportToWriter exports the database as indented JSON
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	if err := s.exportParents(backup); err != nil {
		return fmt.Errorf("failed to export parents: %w", err)
	}
	if err := s.exportChildren(backup); err != nil {
		return fmt.Errorf("failed to export children: %w", err)
	}
	if err := s.exportAnswers(backup); err != nil {
		return fmt.Errorf("failed to export answers: %w", err)
	}

	log.Printf("Exported: %d parents, %d children, %d answers",
		len(backup.Parents), len(backup.Children), len(backup.Answers))

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(backup)
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup stream
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Parents before children before answers, following foreign keys
	if err := s.importParents(backup.Parents); err != nil {
		return fmt.Errorf("failed to import parents: %w", err)
	}
	if err := s.importChildren(backup.Children); err != nil {
		return fmt.Errorf("failed to import children: %w", err)
	}
	if err := s.importAnswers(backup.Answers); err != nil {
		return fmt.Errorf("failed to import answers: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportParents(backup *BackupData) error {
	query := "SELECT id, email, password_hash, name, created_at FROM parents ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p ParentBackup
		if err := rows.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.Name, &p.CreatedAt); err != nil {
			return err
		}
		backup.Parents = append(backup.Parents, p)
	}
	return rows.Err()
}

func (s *BackupService) exportChildren(backup *BackupData) error {
	query := "SELECT id, parent_id, name, age_group, created_ms FROM children ORDER BY created_ms"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Child
		var ageGroup int
		if err := rows.Scan(&c.ID, &c.ParentID, &c.Name, &ageGroup, &c.CreatedAt); err != nil {
			return err
		}
		c.AgeGroup = models.AgeGroup(ageGroup)
		backup.Children = append(backup.Children, c)
	}
	return rows.Err()
}

func (s *BackupService) exportAnswers(backup *BackupData) error {
	query := "SELECT id, question_id, child_id, answer_date, age_group, body, selected_option, audio_url, created_ms FROM answers ORDER BY seq"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.Answer
		var ageGroup int
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.ChildID, &a.Date, &ageGroup, &a.Text, &a.SelectedOption, &a.AudioURL, &a.Timestamp); err != nil {
			return err
		}
		a.AgeGroup = models.AgeGroup(ageGroup)
		backup.Answers = append(backup.Answers, a)
	}
	return rows.Err()
}

func (s *BackupService) importParents(parents []ParentBackup) error {
	log.Printf("Importing %d parents...", len(parents))
	for _, p := range parents {
		query := "INSERT INTO parents (id, email, password_hash, name, created_at) VALUES (?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, p.ID, p.Email, p.PasswordHash, p.Name, p.CreatedAt); err != nil {
			return fmt.Errorf("failed to import parent %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importChildren(children []models.Child) error {
	log.Printf("Importing %d children...", len(children))
	for _, c := range children {
		query := "INSERT INTO children (id, parent_id, name, age_group, created_ms) VALUES (?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, c.ID, c.ParentID, c.Name, int(c.AgeGroup), c.CreatedAt); err != nil {
			return fmt.Errorf("failed to import child %s: %w", c.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importAnswers(answers []models.Answer) error {
	log.Printf("Importing %d answers...", len(answers))
	for _, a := range answers {
		query := `
			INSERT INTO answers (id, question_id, child_id, answer_date, age_group, body, selected_option, audio_url, created_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		if _, err := s.db.Exec(query, a.ID, a.QuestionID, a.ChildID, a.Date, int(a.AgeGroup), a.Text, a.SelectedOption, a.AudioURL, a.Timestamp); err != nil {
			return fmt.Errorf("failed to import answer %s: %w", a.ID, err)
		}
	}
	return nil
}

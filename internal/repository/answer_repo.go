package repository

import (
	"database/sql"
	"fmt"

	"growlog/internal/database"
	"growlog/internal/models"
)

// AnswerRepository handles answer persistence. The answer log is append-only:
// saving never overwrites an existing record, so a child answering the same
// question twice on one day produces two rows.
type AnswerRepository struct {
	db *database.DB
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *database.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

const answerColumns = "id, question_id, child_id, answer_date, age_group, body, selected_option, audio_url, created_ms"

// Append stores a new answer record
func (r *AnswerRepository) Append(answer models.Answer) error {
	query := `
		INSERT INTO answers (id, question_id, child_id, answer_date, age_group, body, selected_option, audio_url, created_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		answer.ID,
		answer.QuestionID,
		answer.ChildID,
		answer.Date,
		int(answer.AgeGroup),
		answer.Text,
		answer.SelectedOption,
		answer.AudioURL,
		answer.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append answer: %w", err)
	}
	return nil
}

// GetAllByChild retrieves the child's full answer history, newest first.
// Equal timestamps fall back to insertion order so the sort stays stable.
func (r *AnswerRepository) GetAllByChild(childID string) ([]models.Answer, error) {
	query := `
		SELECT ` + answerColumns + `
		FROM answers
		WHERE child_id = ?
		ORDER BY answer_date DESC, created_ms DESC, seq DESC
	`
	rows, err := r.db.Query(query, childID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	return scanAnswers(rows)
}

// GetByDate retrieves answers for a calendar date. An empty childID matches
// all children.
func (r *AnswerRepository) GetByDate(date, childID string) ([]models.Answer, error) {
	query := `
		SELECT ` + answerColumns + `
		FROM answers
		WHERE answer_date = ?
		ORDER BY created_ms DESC, seq DESC
	`
	args := []interface{}{date}
	if childID != "" {
		query = `
			SELECT ` + answerColumns + `
			FROM answers
			WHERE answer_date = ? AND child_id = ?
			ORDER BY created_ms DESC, seq DESC
		`
		args = append(args, childID)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	return scanAnswers(rows)
}

// CountByChild returns the number of stored answers for a child
func (r *AnswerRepository) CountByChild(childID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM answers WHERE child_id = ?", childID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count answers: %w", err)
	}
	return count, nil
}

func scanAnswers(rows *sql.Rows) ([]models.Answer, error) {
	var answers []models.Answer
	for rows.Next() {
		var a models.Answer
		var ageGroup int
		if err := rows.Scan(
			&a.ID,
			&a.QuestionID,
			&a.ChildID,
			&a.Date,
			&ageGroup,
			&a.Text,
			&a.SelectedOption,
			&a.AudioURL,
			&a.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		a.AgeGroup = models.AgeGroup(ageGroup)
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"growlog/internal/models"
	"growlog/internal/questions"
	"growlog/internal/repository"
	"growlog/internal/validation"
)

var (
	ErrChildNotFound  = errors.New("child not found")
	ErrEmptyAnswer    = errors.New("answer needs text or a selected option")
	ErrUnknownAge     = errors.New("unknown age group")
	ErrNotParentChild = errors.New("child belongs to another parent")
)

// DiaryService handles child profiles, daily question sets and the answer log
type DiaryService struct {
	childRepo  *repository.ChildRepository
	answerRepo *repository.AnswerRepository
	selector   *questions.Selector
}

// NewDiaryService creates a new diary service
func NewDiaryService(childRepo *repository.ChildRepository, answerRepo *repository.AnswerRepository, selector *questions.Selector) *DiaryService {
	return &DiaryService{
		childRepo:  childRepo,
		answerRepo: answerRepo,
		selector:   selector,
	}
}

// RegisterChild returns the existing profile for (name, age group) under the
// parent, or creates a new one. Re-registering never forks a second identity,
// so the child's question schedule and history stay attached to one ID.
func (s *DiaryService) RegisterChild(parentID int64, name string, age models.AgeGroup) (*models.Child, error) {
	if err := validation.ValidateChildName(name); err != nil {
		return nil, err
	}
	if !age.IsValid() {
		return nil, ErrUnknownAge
	}

	existing, err := s.childRepo.FindByNameAndAge(parentID, name, age)
	if err != nil {
		return nil, fmt.Errorf("failed to look up child: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	child := models.Child{
		ID:        uuid.New().String(),
		ParentID:  parentID,
		Name:      name,
		AgeGroup:  age,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.childRepo.Create(child); err != nil {
		return nil, fmt.Errorf("failed to create child: %w", err)
	}
	return &child, nil
}

// Children lists the parent's registered children
func (s *DiaryService) Children(parentID int64) ([]models.Child, error) {
	return s.childRepo.ListByParent(parentID)
}

// GetChild loads a child and checks it belongs to the parent
func (s *DiaryService) GetChild(parentID int64, childID string) (*models.Child, error) {
	child, err := s.childRepo.GetByID(childID)
	if err != nil {
		return nil, fmt.Errorf("failed to get child: %w", err)
	}
	if child == nil {
		return nil, ErrChildNotFound
	}
	if child.ParentID != parentID {
		return nil, ErrNotParentChild
	}
	return child, nil
}

// DailyQuestions returns the child's question set for a calendar date.
// The same (child, date) pair always yields the same set.
func (s *DiaryService) DailyQuestions(parentID int64, childID, date string) ([]models.Question, error) {
	if err := validation.ValidateDate(date); err != nil {
		return nil, err
	}
	child, err := s.GetChild(parentID, childID)
	if err != nil {
		return nil, err
	}
	return s.selector.Select(child.AgeGroup, date, child.ID), nil
}

// SaveAnswer appends a new answer record. Existing records are never
// overwritten; answering again adds a row.
func (s *DiaryService) SaveAnswer(parentID int64, answer models.Answer) (*models.Answer, error) {
	if err := validation.ValidateDate(answer.Date); err != nil {
		return nil, err
	}
	if answer.QuestionID == "" {
		return nil, validation.ValidationError{Field: "question_id", Message: "question_id is required"}
	}
	if !answer.HasResponse() {
		return nil, ErrEmptyAnswer
	}

	child, err := s.GetChild(parentID, answer.ChildID)
	if err != nil {
		return nil, err
	}

	answer.ID = uuid.New().String()
	answer.AgeGroup = child.AgeGroup
	answer.Timestamp = time.Now().UnixMilli()

	if err := s.answerRepo.Append(answer); err != nil {
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}
	return &answer, nil
}

// DailyLog returns a child's answers for one date, newest first, plus a
// latest-per-question view for display
func (s *DiaryService) DailyLog(parentID int64, childID, date string) (*models.DailyLog, error) {
	if err := validation.ValidateDate(date); err != nil {
		return nil, err
	}
	if _, err := s.GetChild(parentID, childID); err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.GetByDate(date, childID)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily log: %w", err)
	}

	// answers are newest first, so the first hit per question wins
	latest := make(map[string]models.Answer)
	for _, a := range answers {
		if _, seen := latest[a.QuestionID]; !seen {
			latest[a.QuestionID] = a
		}
	}

	return &models.DailyLog{
		Date:    date,
		ChildID: childID,
		Answers: answers,
		Latest:  latest,
	}, nil
}

// History returns the child's full answer history, newest first
func (s *DiaryService) History(parentID int64, childID string) ([]models.Answer, error) {
	if _, err := s.GetChild(parentID, childID); err != nil {
		return nil, err
	}
	return s.answerRepo.GetAllByChild(childID)
}

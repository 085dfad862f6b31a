package service

import (
	"errors"
	"path/filepath"
	"testing"

	"growlog/internal/database"
	"growlog/internal/models"
	"growlog/internal/questions"
	"growlog/internal/repository"
)

func newTestDiaryService(t *testing.T) (*DiaryService, int64) {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	parent, err := repository.NewParentRepository(db).CreateParent("parent@example.com", "hash", "Parent")
	if err != nil {
		t.Fatalf("Failed to create parent: %v", err)
	}

	svc := NewDiaryService(
		repository.NewChildRepository(db),
		repository.NewAnswerRepository(db),
		questions.NewSelector(questions.DefaultCatalog()),
	)
	return svc, parent.ID
}

func TestRegisterChildIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, parentID := newTestDiaryService(t)

	first, err := svc.RegisterChild(parentID, "지우", models.Age5)
	if err != nil {
		t.Fatalf("RegisterChild: %v", err)
	}
	second, err := svc.RegisterChild(parentID, "지우", models.Age5)
	if err != nil {
		t.Fatalf("RegisterChild again: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("re-registering forked identity: %s vs %s", first.ID, second.ID)
	}

	// A different age group is a different profile
	older, err := svc.RegisterChild(parentID, "지우", models.Age8)
	if err != nil {
		t.Fatalf("RegisterChild different age: %v", err)
	}
	if older.ID == first.ID {
		t.Error("different age group should create a separate profile")
	}
}

func TestRegisterChildRejectsInvalidInput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, parentID := newTestDiaryService(t)

	if _, err := svc.RegisterChild(parentID, "", models.Age5); err == nil {
		t.Error("empty name should be rejected")
	}
	if _, err := svc.RegisterChild(parentID, "지우", models.AgeGroup(7)); !errors.Is(err, ErrUnknownAge) {
		t.Errorf("unknown age group: got %v, want ErrUnknownAge", err)
	}
}

func TestDailyQuestionsDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, parentID := newTestDiaryService(t)
	child, err := svc.RegisterChild(parentID, "지우", models.Age5)
	if err != nil {
		t.Fatalf("RegisterChild: %v", err)
	}

	first, err := svc.DailyQuestions(parentID, child.ID, "2024-06-01")
	if err != nil {
		t.Fatalf("DailyQuestions: %v", err)
	}
	second, err := svc.DailyQuestions(parentID, child.ID, "2024-06-01")
	if err != nil {
		t.Fatalf("DailyQuestions again: %v", err)
	}

	if len(first) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("question %d differs between calls: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}

	if _, err := svc.DailyQuestions(parentID, child.ID, "not-a-date"); err == nil {
		t.Error("malformed date should be rejected at the service boundary")
	}
}

func TestSaveAnswerAppendsAndFillsFields(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, parentID := newTestDiaryService(t)
	child, err := svc.RegisterChild(parentID, "지우", models.Age5)
	if err != nil {
		t.Fatalf("RegisterChild: %v", err)
	}

	saved, err := svc.SaveAnswer(parentID, models.Answer{
		QuestionID: "5-emotion-1",
		ChildID:    child.ID,
		Date:       "2024-06-01",
		Text:       "행복했어요",
	})
	if err != nil {
		t.Fatalf("SaveAnswer: %v", err)
	}
	if saved.ID == "" || saved.Timestamp == 0 {
		t.Errorf("SaveAnswer should fill id and timestamp: %+v", saved)
	}
	if saved.AgeGroup != models.Age5 {
		t.Errorf("AgeGroup = %v, want Age5", saved.AgeGroup)
	}

	// Answering again must add a row, not replace
	if _, err := svc.SaveAnswer(parentID, models.Answer{
		QuestionID: "5-emotion-1",
		ChildID:    child.ID,
		Date:       "2024-06-01",
		Text:       "고쳐 쓴 답",
	}); err != nil {
		t.Fatalf("SaveAnswer second: %v", err)
	}

	history, err := svc.History(parentID, child.ID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("history length = %d, want 2", len(history))
	}
}

func TestSaveAnswerRequiresResponse(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, parentID := newTestDiaryService(t)
	child, err := svc.RegisterChild(parentID, "지우", models.Age5)
	if err != nil {
		t.Fatalf("RegisterChild: %v", err)
	}

	_, err = svc.SaveAnswer(parentID, models.Answer{
		QuestionID: "5-emotion-1",
		ChildID:    child.ID,
		Date:       "2024-06-01",
	})
	if !errors.Is(err, ErrEmptyAnswer) {
		t.Errorf("got %v, want ErrEmptyAnswer", err)
	}

	// A selected option alone is a valid response
	if _, err := svc.SaveAnswer(parentID, models.Answer{
		QuestionID:     "5-emotion-1",
		ChildID:        child.ID,
		Date:           "2024-06-01",
		SelectedOption: "happy",
	}); err != nil {
		t.Errorf("option-only answer rejected: %v", err)
	}
}

func TestDailyLogLatestPerQuestion(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, parentID := newTestDiaryService(t)
	child, err := svc.RegisterChild(parentID, "지우", models.Age5)
	if err != nil {
		t.Fatalf("RegisterChild: %v", err)
	}

	for _, text := range []string{"처음 답", "바꾼 답"} {
		if _, err := svc.SaveAnswer(parentID, models.Answer{
			QuestionID: "5-emotion-1",
			ChildID:    child.ID,
			Date:       "2024-06-01",
			Text:       text,
		}); err != nil {
			t.Fatalf("SaveAnswer: %v", err)
		}
	}

	logEntry, err := svc.DailyLog(parentID, child.ID, "2024-06-01")
	if err != nil {
		t.Fatalf("DailyLog: %v", err)
	}
	if len(logEntry.Answers) != 2 {
		t.Errorf("Answers length = %d, want 2", len(logEntry.Answers))
	}
	latest, ok := logEntry.Latest["5-emotion-1"]
	if !ok {
		t.Fatal("Latest missing entry for 5-emotion-1")
	}
	if latest.Text != "바꾼 답" {
		t.Errorf("Latest text = %q, want the most recent answer", latest.Text)
	}
}

func TestChildOwnershipEnforced(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc, parentID := newTestDiaryService(t)
	child, err := svc.RegisterChild(parentID, "지우", models.Age5)
	if err != nil {
		t.Fatalf("RegisterChild: %v", err)
	}

	otherParent := parentID + 1000
	if _, err := svc.DailyQuestions(otherParent, child.ID, "2024-06-01"); !errors.Is(err, ErrNotParentChild) {
		t.Errorf("got %v, want ErrNotParentChild", err)
	}
	if _, err := svc.DailyQuestions(parentID, "no-such-child", "2024-06-01"); !errors.Is(err, ErrChildNotFound) {
		t.Errorf("got %v, want ErrChildNotFound", err)
	}
}

package repository

import (
	"path/filepath"
	"testing"
	"time"

	"growlog/internal/database"
	"growlog/internal/models"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func createTestParent(t *testing.T, db *database.DB) *models.Parent {
	t.Helper()

	parent, err := NewParentRepository(db).CreateParent("parent@example.com", "hash", "Parent")
	if err != nil {
		t.Fatalf("Failed to create parent: %v", err)
	}
	return parent
}

func TestChildRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	parent := createTestParent(t, db)
	repo := NewChildRepository(db)

	child := models.Child{
		ID:        "child-1",
		ParentID:  parent.ID,
		Name:      "지우",
		AgeGroup:  models.Age5,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := repo.Create(child); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID("child-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Name != "지우" || got.AgeGroup != models.Age5 {
		t.Errorf("GetByID = %+v", got)
	}

	found, err := repo.FindByNameAndAge(parent.ID, "지우", models.Age5)
	if err != nil {
		t.Fatalf("FindByNameAndAge: %v", err)
	}
	if found == nil || found.ID != "child-1" {
		t.Errorf("FindByNameAndAge = %+v", found)
	}

	missing, err := repo.FindByNameAndAge(parent.ID, "지우", models.Age8)
	if err != nil {
		t.Fatalf("FindByNameAndAge (miss): %v", err)
	}
	if missing != nil {
		t.Errorf("expected no match for different age group, got %+v", missing)
	}
}

func TestAnswerRepositoryAppendOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	parent := createTestParent(t, db)

	childRepo := NewChildRepository(db)
	if err := childRepo.Create(models.Child{ID: "child-1", ParentID: parent.ID, Name: "지우", AgeGroup: models.Age5, CreatedAt: 1}); err != nil {
		t.Fatalf("Create child: %v", err)
	}

	repo := NewAnswerRepository(db)

	// Two answers to the same question on the same day, equal timestamps:
	// both rows must survive and insertion order must break the tie
	base := models.Answer{
		QuestionID: "5-emotion-1",
		ChildID:    "child-1",
		Date:       "2024-06-01",
		AgeGroup:   models.Age5,
		Timestamp:  1717200000000,
	}

	first := base
	first.ID = "a-1"
	first.Text = "첫 번째 대답"
	second := base
	second.ID = "a-2"
	second.Text = "고친 대답"

	if err := repo.Append(first); err != nil {
		t.Fatalf("Append first: %v", err)
	}
	if err := repo.Append(second); err != nil {
		t.Fatalf("Append second: %v", err)
	}

	all, err := repo.GetAllByChild("child-1")
	if err != nil {
		t.Fatalf("GetAllByChild: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both answers kept, got %d", len(all))
	}
	if all[0].ID != "a-2" {
		t.Errorf("newest-first order: got %s first, want a-2", all[0].ID)
	}

	count, err := repo.CountByChild("child-1")
	if err != nil {
		t.Fatalf("CountByChild: %v", err)
	}
	if count != 2 {
		t.Errorf("CountByChild = %d, want 2", count)
	}
}

func TestAnswerRepositoryGetByDate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	parent := createTestParent(t, db)

	childRepo := NewChildRepository(db)
	for _, id := range []string{"child-1", "child-2"} {
		if err := childRepo.Create(models.Child{ID: id, ParentID: parent.ID, Name: id, AgeGroup: models.Age8, CreatedAt: 1}); err != nil {
			t.Fatalf("Create child: %v", err)
		}
	}

	repo := NewAnswerRepository(db)
	answers := []models.Answer{
		{ID: "a-1", QuestionID: "q", ChildID: "child-1", Date: "2024-06-01", AgeGroup: models.Age8, Text: "하나", Timestamp: 1},
		{ID: "a-2", QuestionID: "q", ChildID: "child-2", Date: "2024-06-01", AgeGroup: models.Age8, Text: "둘", Timestamp: 2},
		{ID: "a-3", QuestionID: "q", ChildID: "child-1", Date: "2024-06-02", AgeGroup: models.Age8, Text: "셋", Timestamp: 3},
	}
	for _, a := range answers {
		if err := repo.Append(a); err != nil {
			t.Fatalf("Append %s: %v", a.ID, err)
		}
	}

	byDate, err := repo.GetByDate("2024-06-01", "")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("all children on 2024-06-01: got %d answers, want 2", len(byDate))
	}

	scoped, err := repo.GetByDate("2024-06-01", "child-1")
	if err != nil {
		t.Fatalf("GetByDate scoped: %v", err)
	}
	if len(scoped) != 1 || scoped[0].ID != "a-1" {
		t.Errorf("child-1 on 2024-06-01: got %+v, want a-1", scoped)
	}
}

func TestParentRepositorySessions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	repo := NewParentRepository(db)

	parent, err := repo.CreateParent("p@example.com", "hash", "P")
	if err != nil {
		t.Fatalf("CreateParent: %v", err)
	}

	if _, err := repo.CreateSession("sess-1", parent.ID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := repo.CreateSession("sess-2", parent.ID, time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("CreateSession expired: %v", err)
	}

	if err := repo.DeleteExpiredSessions(); err != nil {
		t.Fatalf("DeleteExpiredSessions: %v", err)
	}

	live, err := repo.GetSession("sess-1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if live == nil {
		t.Error("live session should survive cleanup")
	}

	gone, err := repo.GetSession("sess-2")
	if err != nil {
		t.Fatalf("GetSession expired: %v", err)
	}
	if gone != nil {
		t.Error("expired session should be removed")
	}
}

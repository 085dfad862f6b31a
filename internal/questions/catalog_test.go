package questions

import (
	"testing"

	"growlog/internal/models"
)

func TestDefaultCatalogIntegrity(t *testing.T) {
	catalog := DefaultCatalog()

	seen := make(map[string]bool)
	for _, q := range defaultQuestions {
		if q.ID == "" || q.Text == "" {
			t.Errorf("catalog entry missing id or text: %+v", q)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true

		if !q.AgeGroup.IsValid() {
			t.Errorf("question %s has unsupported age group %d", q.ID, q.AgeGroup)
		}
	}

	if catalog.Size() != len(defaultQuestions) {
		t.Errorf("catalog size = %d, want %d", catalog.Size(), len(defaultQuestions))
	}
}

func TestDefaultCatalogCoversEveryBucket(t *testing.T) {
	catalog := DefaultCatalog()

	for _, age := range models.AgeGroups() {
		for _, category := range models.Categories() {
			pool := catalog.Questions(age, category)
			if len(pool) == 0 {
				t.Errorf("no questions for age %d category %s", age, category)
			}
			for _, q := range pool {
				if q.Category != category {
					t.Errorf("question %s filed under %s but tagged %s", q.ID, category, q.Category)
				}
			}
		}
	}
}

func TestQuestionByID(t *testing.T) {
	catalog := DefaultCatalog()

	q, ok := catalog.QuestionByID("5-emotion-1")
	if !ok {
		t.Fatal("expected to find 5-emotion-1")
	}
	if q.Text != "오늘 기분이 어땠어?" {
		t.Errorf("unexpected text: %s", q.Text)
	}

	if _, ok := catalog.QuestionByID("no-such-question"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

package report

import (
	"fmt"
	"strings"
	"testing"

	"growlog/internal/analysis"
	"growlog/internal/models"
)

// stubAnswerSource serves a fixed answer list for any child
type stubAnswerSource struct {
	answers []models.Answer
}

func (s *stubAnswerSource) GetAllByChild(childID string) ([]models.Answer, error) {
	var out []models.Answer
	for _, a := range s.answers {
		if a.ChildID == childID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestBuilder(answers ...models.Answer) *Builder {
	return NewBuilder(&stubAnswerSource{answers: answers}, analysis.NewDefaultAnalyzer())
}

func answerOn(date, text string) models.Answer {
	return models.Answer{
		ID:      date + "-" + text,
		ChildID: "child_1",
		Date:    date,
		Text:    text,
	}
}

func TestBuildFiltersByDateInclusive(t *testing.T) {
	b := newTestBuilder(
		answerOn("2024-01-01", "공원에 갔다"),
		answerOn("2024-01-02", "블록을 쌓았다"),
		answerOn("2024-01-03", "그림을 그렸다"),
		answerOn("2024-01-04", "자전거를 탔다"),
		answerOn("2024-01-05", "책을 읽었다"),
	)

	rep, err := b.Build("child_1", "2024-01-02", "2024-01-04")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if rep.TotalAnswers != 3 {
		t.Errorf("TotalAnswers = %d, want 3 (bounds inclusive)", rep.TotalAnswers)
	}
	if rep.Period.Start != "2024-01-02" || rep.Period.End != "2024-01-04" {
		t.Errorf("unexpected period: %+v", rep.Period)
	}
}

func TestBuildEmptyRange(t *testing.T) {
	b := newTestBuilder(
		answerOn("2024-01-01", "행복한 하루"),
	)

	rep, err := b.Build("child_1", "2024-02-01", "2024-02-28")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rep == nil {
		t.Fatal("report must never be nil")
	}
	if rep.TotalAnswers != 0 || len(rep.EmotionPatterns) != 0 || len(rep.FrequentWords) != 0 || len(rep.Insights) != 0 {
		t.Errorf("expected empty report, got %+v", rep)
	}
}

func TestBuildUnknownChild(t *testing.T) {
	b := newTestBuilder()

	rep, err := b.Build("nobody", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rep.TotalAnswers != 0 {
		t.Errorf("expected empty report for unknown child, got %d answers", rep.TotalAnswers)
	}
}

func TestBuildEmotionPatterns(t *testing.T) {
	b := newTestBuilder(
		answerOn("2024-01-01", "기쁨이 컸어요"),
		answerOn("2024-01-02", "기쁨과 걱정이 섞였어요"),
		answerOn("2024-01-03", "걱정했지만 괜찮았어요"),
		answerOn("2024-01-04", "기쁨 가득한 하루"),
	)

	rep, err := b.Build("child_1", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(rep.EmotionPatterns) != 2 {
		t.Fatalf("patterns = %+v, want 기쁨 and 걱정", rep.EmotionPatterns)
	}
	if rep.EmotionPatterns[0].Emotion != "기쁨" || rep.EmotionPatterns[0].Frequency != 3 {
		t.Errorf("top pattern = %+v, want 기쁨 x3", rep.EmotionPatterns[0])
	}
	if rep.EmotionPatterns[1].Emotion != "걱정" || rep.EmotionPatterns[1].Frequency != 2 {
		t.Errorf("second pattern = %+v, want 걱정 x2", rep.EmotionPatterns[1])
	}

	wantInsight := "기쁨 관련 표현이 자주 나타납니다."
	if len(rep.Insights) == 0 || rep.Insights[0] != wantInsight {
		t.Errorf("insights = %v, want first %q", rep.Insights, wantInsight)
	}
}

func TestBuildRecurringWordInsight(t *testing.T) {
	b := newTestBuilder(
		answerOn("2024-01-01", "강아지랑 놀았다"),
		answerOn("2024-01-02", "강아지가 귀엽다"),
		answerOn("2024-01-03", "강아지를 산책시켰다"),
	)

	rep, err := b.Build("child_1", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Word forms differ (강아지랑/강아지가/강아지를), so no single token
	// reaches the threshold with a tokenizing analyzer
	for _, insight := range rep.Insights {
		if strings.Contains(insight, "단어를 자주 사용") {
			t.Errorf("unexpected recurring-word insight: %v", rep.Insights)
		}
	}

	b = newTestBuilder(
		answerOn("2024-01-01", "바다 봤다"),
		answerOn("2024-01-02", "바다 갔다"),
		answerOn("2024-01-03", "바다 그렸다"),
	)
	rep, err = b.Build("child_1", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := "\"바다\"라는 단어를 자주 사용합니다."
	found := false
	for _, insight := range rep.Insights {
		if insight == want {
			found = true
		}
	}
	if !found {
		t.Errorf("insights = %v, want %q", rep.Insights, want)
	}
}

func TestBuildConsistencyInsight(t *testing.T) {
	var answers []models.Answer
	for i := 0; i < 21; i++ {
		answers = append(answers, answerOn(fmt.Sprintf("2024-01-%02d", i%28+1), "자전거를 탔다"))
	}
	b := newTestBuilder(answers...)

	rep, err := b.Build("child_1", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	found := false
	for _, insight := range rep.Insights {
		if insight == "꾸준히 기록을 쌓고 있어요!" {
			found = true
		}
	}
	if !found {
		t.Errorf("21 answers should trigger the consistency insight, got %v", rep.Insights)
	}
}

func TestBuildSolutionSeekingInsight(t *testing.T) {
	b := newTestBuilder(
		answerOn("2024-01-01", "어려웠지만 다시 해봤어요"),
	)

	rep, err := b.Build("child_1", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	found := false
	for _, insight := range rep.Insights {
		if insight == "문제를 스스로 해결하려는 모습이 보여요!" {
			found = true
		}
	}
	if !found {
		t.Errorf("solution-seeking answer should add an insight, got %v", rep.Insights)
	}
}

func TestBuildInsightsCoOccur(t *testing.T) {
	var answers []models.Answer
	for i := 0; i < 21; i++ {
		answers = append(answers, answerOn(fmt.Sprintf("2024-01-%02d", i%28+1), "기쁨 가득, 노력해서 해결한 하루"))
	}
	b := newTestBuilder(answers...)

	rep, err := b.Build("child_1", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(rep.Insights) != 4 {
		t.Errorf("expected all four insights, got %v", rep.Insights)
	}
}

// Package report assembles growth reports from a child's answer history.
package report

import (
	"fmt"
	"sort"
	"strings"

	"growlog/internal/analysis"
	"growlog/internal/models"
)

// Thresholds for the templated insight sentences
const (
	recurringWordMin    = 3
	consistentAnswerMin = 20
)

// DefaultEmotionKeywords is the emotion vocabulary scanned for patterns.
// Distinct from the analyzer's sentiment lists.
func DefaultEmotionKeywords() []string {
	return []string{
		"기쁨", "행복", "즐거움", "신남", "뿌듯", "자랑", "사랑", "고마움",
		"슬픔", "화남", "무서움", "걱정", "피곤", "외로움",
	}
}

// DefaultSolutionKeywords mark problem-solving behavior in answers
func DefaultSolutionKeywords() []string {
	return []string{"해결", "방법", "다시 해봤", "노력", "시도"}
}

// AnswerSource is the read side of the answer store the builder consumes
type AnswerSource interface {
	GetAllByChild(childID string) ([]models.Answer, error)
}

// Builder derives growth reports over a date range. Reports are recomputed on
// every call and never persisted.
type Builder struct {
	answers          AnswerSource
	analyzer         *analysis.Analyzer
	emotionKeywords  []string
	solutionKeywords []string
}

// NewBuilder creates a builder with the default keyword lists
func NewBuilder(answers AnswerSource, analyzer *analysis.Analyzer) *Builder {
	return &Builder{
		answers:          answers,
		analyzer:         analyzer,
		emotionKeywords:  DefaultEmotionKeywords(),
		solutionKeywords: DefaultSolutionKeywords(),
	}
}

// Build summarizes the child's answers between start and end, inclusive on
// both ends. An empty range still yields a report with empty lists.
func (b *Builder) Build(childID, startDate, endDate string) (*models.GrowthReport, error) {
	all, err := b.answers.GetAllByChild(childID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	period := models.Period{Start: startDate, End: endDate}
	var filtered []models.Answer
	for _, answer := range all {
		if period.Contains(answer.Date) {
			filtered = append(filtered, answer)
		}
	}

	patterns := b.emotionPatterns(filtered)
	_, topWords := b.analyzer.Frequencies(filtered)

	return &models.GrowthReport{
		ChildID:         childID,
		Period:          period,
		TotalAnswers:    len(filtered),
		EmotionPatterns: patterns,
		FrequentWords:   topWords,
		Insights:        b.insights(filtered, patterns, topWords),
	}, nil
}

// emotionPatterns counts emotion keyword occurrences across answers. An
// answer may increment several keywords; each keyword at most once per answer.
func (b *Builder) emotionPatterns(answers []models.Answer) []models.EmotionPattern {
	counts := make(map[string]int)
	for _, answer := range answers {
		text := answer.ResponseText()
		for _, keyword := range b.emotionKeywords {
			if strings.Contains(text, keyword) {
				counts[keyword]++
			}
		}
	}

	patterns := make([]models.EmotionPattern, 0, len(counts))
	for _, keyword := range b.emotionKeywords {
		if n := counts[keyword]; n > 0 {
			patterns = append(patterns, models.EmotionPattern{Emotion: keyword, Frequency: n})
		}
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Frequency > patterns[j].Frequency
	})
	return patterns
}

// insights appends the templated sentences in fixed order. Every condition is
// evaluated independently, so several insights can co-occur.
func (b *Builder) insights(answers []models.Answer, patterns []models.EmotionPattern, topWords []models.WordCount) []string {
	var insights []string

	if len(patterns) > 0 {
		insights = append(insights, fmt.Sprintf("%s 관련 표현이 자주 나타납니다.", patterns[0].Emotion))
	}
	if len(topWords) > 0 && topWords[0].Count >= recurringWordMin {
		insights = append(insights, fmt.Sprintf("%q라는 단어를 자주 사용합니다.", topWords[0].Word))
	}
	if len(answers) > consistentAnswerMin {
		insights = append(insights, "꾸준히 기록을 쌓고 있어요!")
	}
	if b.hasSolutionSeeking(answers) {
		insights = append(insights, "문제를 스스로 해결하려는 모습이 보여요!")
	}

	return insights
}

func (b *Builder) hasSolutionSeeking(answers []models.Answer) bool {
	for _, answer := range answers {
		text := answer.ResponseText()
		for _, keyword := range b.solutionKeywords {
			if strings.Contains(text, keyword) {
				return true
			}
		}
	}
	return false
}

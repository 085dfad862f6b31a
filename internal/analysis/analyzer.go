// Package analysis turns answer text into word-frequency statistics and
// sentiment/challenge keyword ratios. It does no real NLP: tokenization is
// character-class splitting, keyword matching is substring containment.
package analysis

import (
	"sort"
	"strings"

	"growlog/internal/models"
)

// TopWordCount caps the frequent-word list returned by Frequencies
const TopWordCount = 10

// Ratios holds the share of answer text attributable to each keyword
// category. The three values need not sum to 1: a word may match several
// categories, or none.
type Ratios struct {
	Positive  float64 `json:"positive"`
	Negative  float64 `json:"negative"`
	Challenge float64 `json:"challenge"`
}

// Analyzer computes lexical statistics over answer collections. Results are
// recomputed on every call and never cached or persisted.
type Analyzer struct {
	tokenizer *Tokenizer
	positive  []string
	negative  []string
	challenge []string
}

// NewAnalyzer creates an analyzer with explicit keyword lists
func NewAnalyzer(tokenizer *Tokenizer, positive, negative, challenge []string) *Analyzer {
	return &Analyzer{
		tokenizer: tokenizer,
		positive:  positive,
		negative:  negative,
		challenge: challenge,
	}
}

// NewDefaultAnalyzer creates an analyzer with the built-in Korean lists
func NewDefaultAnalyzer() *Analyzer {
	return NewAnalyzer(
		NewTokenizer(DefaultStopWords()),
		DefaultPositiveKeywords(),
		DefaultNegativeKeywords(),
		DefaultChallengeKeywords(),
	)
}

// Tokenize exposes the analyzer's tokenizer for callers that need raw tokens
func (a *Analyzer) Tokenize(text string) []string {
	return a.tokenizer.Tokenize(text)
}

// Frequencies tokenizes each answer's text independently (falling back to the
// selected option when free text is absent) and accumulates word counts. The
// returned top list holds at most TopWordCount entries, descending by count
// with ties broken by first appearance.
func (a *Analyzer) Frequencies(answers []models.Answer) (map[string]int, []models.WordCount) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, answer := range answers {
		for _, token := range a.tokenizer.Tokenize(answer.ResponseText()) {
			if _, ok := counts[token]; !ok {
				firstSeen[token] = len(firstSeen)
			}
			counts[token]++
		}
	}

	top := make([]models.WordCount, 0, len(counts))
	for word, count := range counts {
		top = append(top, models.WordCount{Word: word, Count: count})
	}
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return firstSeen[top[i].Word] < firstSeen[top[j].Word]
	})
	if len(top) > TopWordCount {
		top = top[:TopWordCount]
	}

	return counts, top
}

// KeywordRatios scans each answer's case-normalized text for the three keyword
// lists. A keyword counts at most once per answer, by substring containment,
// so it may match inside a larger token. Each ratio is the raw category count
// divided by the total tokenized word count over all answers (not by the sum
// of the three counts), capped at 1: overlapping keywords (해결/해결했) can
// land more hits than an answer has tokens. Zero answers or zero words yield
// zero ratios.
func (a *Analyzer) KeywordRatios(answers []models.Answer) Ratios {
	var positive, negative, challenge, totalWords int

	for _, answer := range answers {
		text := answer.ResponseText()
		totalWords += len(a.tokenizer.Tokenize(text))

		lowered := strings.ToLower(text)
		positive += countContained(lowered, a.positive)
		negative += countContained(lowered, a.negative)
		challenge += countContained(lowered, a.challenge)
	}

	if totalWords == 0 {
		return Ratios{}
	}
	return Ratios{
		Positive:  boundedRatio(positive, totalWords),
		Negative:  boundedRatio(negative, totalWords),
		Challenge: boundedRatio(challenge, totalWords),
	}
}

// boundedRatio divides count by totalWords and caps the result at 1
func boundedRatio(count, totalWords int) float64 {
	ratio := float64(count) / float64(totalWords)
	if ratio > 1 {
		return 1
	}
	return ratio
}

// countContained counts how many keywords occur in text, once per keyword
func countContained(text string, keywords []string) int {
	n := 0
	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			n++
		}
	}
	return n
}

package analysis

import "strings"

// Tokenizer splits answer text into word tokens. Every rune outside the
// alphanumeric range and the Hangul syllable block becomes a space, the text
// is split on whitespace runs, and single-rune tokens and stop-words are
// dropped. Casing is preserved and there is no stemming.
type Tokenizer struct {
	stopWords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stop-word list
func NewTokenizer(stopWords []string) *Tokenizer {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[w] = struct{}{}
	}
	return &Tokenizer{stopWords: set}
}

// Tokenize returns the word tokens of text in order of appearance
func (t *Tokenizer) Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return r
		}
		return ' '
	}, text)

	var tokens []string
	for _, field := range strings.Fields(cleaned) {
		if len([]rune(field)) <= 1 {
			continue
		}
		if _, stop := t.stopWords[field]; stop {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// isWordRune keeps ASCII alphanumerics, underscore and Hangul syllables
func isWordRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '_':
		return true
	case r >= '가' && r <= '힣':
		return true
	}
	return false
}

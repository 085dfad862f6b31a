package models

// Period is a closed date interval, inclusive on both ends.
// Dates are zero-padded ISO strings so lexicographic comparison is valid.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether date falls within the period
func (p Period) Contains(date string) bool {
	return date >= p.Start && date <= p.End
}

// EmotionPattern counts how often an emotion keyword appeared in answers
type EmotionPattern struct {
	Emotion   string `json:"emotion"`
	Frequency int    `json:"frequency"`
}

// WordCount pairs a word with how many times it was used
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// GrowthReport summarizes a child's answers over a period.
// Derived on every request; never persisted.
type GrowthReport struct {
	ChildID         string           `json:"childId"`
	Period          Period           `json:"period"`
	TotalAnswers    int              `json:"totalAnswers"`
	EmotionPatterns []EmotionPattern `json:"emotionPatterns"`
	FrequentWords   []WordCount      `json:"frequentWords"`
	Insights        []string         `json:"insights"`
}

package models

// Answer is one recorded response to a daily question.
// Answers are append-only: answering the same question again on the same day
// creates a new record, and the most recent timestamp wins for display.
type Answer struct {
	ID             string   `json:"id"`
	QuestionID     string   `json:"questionId"`
	ChildID        string   `json:"childId"`
	Date           string   `json:"date"` // YYYY-MM-DD
	AgeGroup       AgeGroup `json:"ageGroup"`
	Text           string   `json:"text,omitempty"`
	SelectedOption string   `json:"selectedOption,omitempty"`
	AudioURL       string   `json:"audioUrl,omitempty"`
	Timestamp      int64    `json:"timestamp"` // epoch milliseconds
}

// ResponseText returns the free-text body, falling back to the selected option
func (a Answer) ResponseText() string {
	if a.Text != "" {
		return a.Text
	}
	return a.SelectedOption
}

// HasResponse reports whether at least one of free text or selected option is set
func (a Answer) HasResponse() bool {
	return a.Text != "" || a.SelectedOption != ""
}

// DailyLog groups a child's answers for a single date. Answers holds every
// record newest first; Latest keeps only the most recent answer per question
type DailyLog struct {
	Date    string            `json:"date"`
	ChildID string            `json:"childId"`
	Answers []Answer          `json:"answers"`
	Latest  map[string]Answer `json:"latest"`
}

package models

// AgeGroup identifies which question catalog and vocabulary a child gets
type AgeGroup int

// Supported age groups
const (
	Age5  AgeGroup = 5
	Age8  AgeGroup = 8
	Age11 AgeGroup = 11
)

// AgeGroups lists the supported age groups in ascending order
func AgeGroups() []AgeGroup {
	return []AgeGroup{Age5, Age8, Age11}
}

// IsValid reports whether the age group has a question catalog
func (a AgeGroup) IsValid() bool {
	switch a {
	case Age5, Age8, Age11:
		return true
	}
	return false
}

// Category is a question theme
type Category string

// Question categories, in the fixed order a daily set is assembled
const (
	CategoryEmotion  Category = "emotion"
	CategoryLearning Category = "learning"
	CategoryTomorrow Category = "tomorrow"
)

// Categories returns the categories in daily-set order
func Categories() []Category {
	return []Category{CategoryEmotion, CategoryLearning, CategoryTomorrow}
}

// Question is a single entry in the static question catalog
type Question struct {
	ID           string   `json:"id"`
	Category     Category `json:"category"`
	Text         string   `json:"text"`
	AgeGroup     AgeGroup `json:"ageGroup"`
	Options      []string `json:"options,omitempty"`
	ExampleGuide string   `json:"exampleGuide,omitempty"`
}

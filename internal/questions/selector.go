package questions

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"growlog/internal/models"
	"growlog/internal/random"
)

// Selector picks the daily question set for a child. Selection is a pure
// function of (age group, date, child ID): the seed combines the date's digits
// with the child identifier, so the same inputs always produce the same set
// and it changes when either the day or the child changes.
type Selector struct {
	catalog *Catalog
}

// NewSelector creates a selector over the given catalog
func NewSelector(catalog *Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Select returns up to three questions for the day, one per category in the
// fixed order emotion, learning, tomorrow. A category with no pool entries for
// the age group is skipped rather than reported as an error.
func (s *Selector) Select(age models.AgeGroup, date, childID string) []models.Question {
	seed := dateSeed(date) + childSeed(childID)
	gen := random.New(seed)

	picked := make([]models.Question, 0, 3)
	for _, category := range models.Categories() {
		pool := s.catalog.Questions(age, category)
		// One draw per category even when the pool is empty, so a missing
		// bucket never shifts the picks for the categories after it
		idx := int(gen.Next() * float64(len(pool)))
		if len(pool) == 0 {
			continue
		}
		picked = append(picked, pool[idx])
	}
	return picked
}

// dateSeed parses the date's digits as an integer: "2024-06-01" -> 20240601.
// Well-formed ISO dates are a caller precondition; anything unparseable
// contributes a zero seed.
func dateSeed(date string) int64 {
	digits := strings.ReplaceAll(date, "-", "")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// childSeed sums the UTF-16 code units of the child identifier, matching the
// charCodeAt accumulation the web client uses
func childSeed(childID string) int64 {
	var sum int64
	for _, u := range utf16.Encode([]rune(childID)) {
		sum += int64(u)
	}
	return sum
}

// Package filter implements the pure predicate composition behind the
// browsing screens. An engine is parameterized with one matcher per filter
// key; applying criteria keeps the records that satisfy every active key.
package filter

import (
	"strings"
	"time"
)

// Criteria maps a filter key to its selected value. An empty value means no
// constraint for that key.
type Criteria map[string]string

// Clear resets every key to its no-constraint value in one operation.
func (c Criteria) Clear() {
	for key := range c {
		c[key] = ""
	}
}

// Active reports whether any key carries a constraint.
func (c Criteria) Active() bool {
	for _, value := range c {
		if value != "" {
			return true
		}
	}
	return false
}

// Matcher decides whether a record satisfies one filter value.
type Matcher[T any] func(record T, value string) bool

// Equals matches on exact string equality of a categorical field.
func Equals[T any](field func(T) string) Matcher[T] {
	return func(record T, value string) bool {
		return field(record) == value
	}
}

// DateOnOrAfter matches records whose date is on or after the filter date.
// Dates are ISO calendar form; when either side fails to parse, the
// comparison falls back to the (coinciding) lexicographic order.
func DateOnOrAfter[T any](field func(T) string) Matcher[T] {
	return func(record T, value string) bool {
		recordDate, err1 := time.Parse("2006-01-02", field(record))
		filterDate, err2 := time.Parse("2006-01-02", value)
		if err1 != nil || err2 != nil {
			return field(record) >= value
		}
		return !recordDate.Before(filterDate)
	}
}

// Search matches case-insensitively when the query is a substring of any of
// the given fields.
func Search[T any](fields ...func(T) string) Matcher[T] {
	return func(record T, value string) bool {
		query := strings.ToLower(value)
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(record)), query) {
				return true
			}
		}
		return false
	}
}

// Engine applies criteria to a record list.
type Engine[T any] struct {
	matchers map[string]Matcher[T]
}

// NewEngine builds an engine from a key-to-matcher mapping.
func NewEngine[T any](matchers map[string]Matcher[T]) *Engine[T] {
	return &Engine[T]{matchers: matchers}
}

// Apply returns the records satisfying every active criterion, preserving
// the input order. Keys without a registered matcher are ignored, as are
// empty values. The input slice is never mutated.
func (e *Engine[T]) Apply(records []T, criteria Criteria) []T {
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if e.matches(record, criteria) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func (e *Engine[T]) matches(record T, criteria Criteria) bool {
	for key, value := range criteria {
		if value == "" {
			continue
		}
		matcher, ok := e.matchers[key]
		if !ok {
			continue
		}
		if !matcher(record, value) {
			return false
		}
	}
	return true
}

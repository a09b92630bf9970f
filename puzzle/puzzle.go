// Package puzzle identifies a single Advent of Code puzzle by year and day.
package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// FirstDay is the first puzzle day of an event.
	FirstDay = 1
	// LastDay is the last puzzle day of an event.
	LastDay = 25
)

// ErrInvalidDay indicates a day number outside FirstDay..LastDay or a
// non-positive year.
var ErrInvalidDay = errors.New("puzzle: invalid day")

// Selector identifies one puzzle. A zero Year means "the year of the binary
// that resolves it".
type Selector struct {
	Year int
	Day  int
}

// NewSelector validates year and day and returns the matching Selector.
func NewSelector(year, day int) (Selector, error) {
	s := Selector{Year: year, Day: day}
	if err := s.Validate(); err != nil {
		return Selector{}, err
	}
	return s, nil
}

// Validate reports ErrInvalidDay when the day lies outside 1..25 or the
// year is negative.
func (s Selector) Validate() error {
	if s.Day < FirstDay || s.Day > LastDay {
		return fmt.Errorf("%w: day %d not in %d..%d", ErrInvalidDay, s.Day, FirstDay, LastDay)
	}
	if s.Year < 0 {
		return fmt.Errorf("%w: year %d", ErrInvalidDay, s.Year)
	}
	return nil
}

// String formats the selector as its decimal day number.
func (s Selector) String() string {
	return strconv.Itoa(s.Day)
}

// ParseDay parses a decimal day number and checks its range.
func ParseDay(s string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidDay, s)
	}
	if d < FirstDay || d > LastDay {
		return 0, fmt.Errorf("%w: day %d not in %d..%d", ErrInvalidDay, d, FirstDay, LastDay)
	}
	return d, nil
}

package y2023

import (
	"strings"

	"github.com/katalvlaran/aoc/solver"
)

// Day1 recovers calibration values from lines of text.
type Day1 struct {
	lines []string
}

// NewDay1 splits the input into non-empty lines.
func NewDay1(input string) (solver.Solver, error) {
	var lines []string
	for _, l := range strings.Split(input, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, solver.ParseErrorf("day 1: empty input")
	}
	return &Day1{lines: lines}, nil
}

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any. Spelled digits count
// only when words is set.
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if words {
		for n, w := range spelled {
			if strings.HasPrefix(s[i:], w) {
				return n + 1, true
			}
		}
	}
	return 0, false
}

// calibration combines the first and last digit of line. Spelled digits
// may overlap ("eightwo" is 8 then 2).
func calibration(line string, words bool) (int, error) {
	first, last, found := 0, 0, false
	for i := range line {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if !found {
			first, found = d, true
		}
		last = d
	}
	if !found {
		return 0, solver.ParseErrorf("day 1: no digit in %q", line)
	}
	return first*10 + last, nil
}

func (d *Day1) sum(words bool) (int, error) {
	total := 0
	for _, l := range d.lines {
		v, err := calibration(l, words)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Part1 sums the values built from numeric digits.
func (d *Day1) Part1() (any, error) { return d.sum(false) }

// Part2 also counts digits spelled out as words.
func (d *Day1) Part2() (any, error) { return d.sum(true) }

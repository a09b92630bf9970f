package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/puzzle"
)

func TestNewSelector(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		day     int
		wantErr bool
	}{
		{"first day", 2023, 1, false},
		{"last day", 2023, 25, false},
		{"year-less", 0, 7, false},
		{"day zero", 2023, 0, true},
		{"day 26", 2023, 26, true},
		{"negative day", 2023, -3, true},
		{"negative year", -1, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := puzzle.NewSelector(tt.year, tt.day)
			if tt.wantErr {
				assert.ErrorIs(t, err, puzzle.ErrInvalidDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.day, s.Day)
			assert.Equal(t, tt.year, s.Year)
		})
	}
}

func TestSelector_String(t *testing.T) {
	assert.Equal(t, "17", puzzle.Selector{Year: 2023, Day: 17}.String())
}

func TestParseDay(t *testing.T) {
	d, err := puzzle.ParseDay(" 9 ")
	require.NoError(t, err)
	assert.Equal(t, 9, d)

	for _, in := range []string{"", "x", "0", "26", "-1", "1.5"} {
		_, err := puzzle.ParseDay(in)
		assert.ErrorIs(t, err, puzzle.ErrInvalidDay, "input %q", in)
	}
}

package registrygen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestScan_FindsDays(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"day1.go":      "package y\n\nfunc NewDay1(string) (any, error) { return nil, nil }\n",
		"day17.go":     "package y\n\nfunc NewDay17(string) (any, error) { return nil, nil }\n",
		"day3.go":      "package y\n\nfunc NewDay3(string) (any, error) { return nil, nil }\n",
		"day3_test.go": "package y\n",
		"day26.go":     "package y\n",
		"day0.go":      "package y\n",
		"helpers.go":   "package y\n",
		"daytwo.go":    "package y\n",
		"registry.txt": "",
	})

	entries, err := Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Day: 1, File: "day1.go", Factory: "NewDay1"},
		{Day: 3, File: "day3.go", Factory: "NewDay3"},
		{Day: 17, File: "day17.go", Factory: "NewDay17"},
	}, entries)
}

func TestScan_MissingFactory(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"day4.go":      "package y\n\ntype d struct{}\n\nfunc (d) NewDay4() {}\n\nfunc NewDay5() {}\n",
	})
	_, err := Scan(dir)
	assert.ErrorIs(t, err, ErrMissingFactory)
}

func TestScan_DuplicateDay(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"day1.go":      "package y\n\nfunc NewDay1() {}\n",
		"day01.go":     "package y\n\nfunc NewDay1() {}\n",
	})
	_, err := Scan(dir)
	assert.ErrorIs(t, err, ErrDuplicateDay)
}

func TestScan_SyntaxError(t *testing.T) {
	dir := writeFiles(t, map[string]string{"day2.go": "package y\n\nfunc NewDay2( {\n"})
	_, err := Scan(dir)
	assert.Error(t, err)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	src, err := Render("y2023", 2023, []Entry{
		{Day: 1, Factory: "NewDay1"},
		{Day: 17, Factory: "NewDay17"},
	})
	require.NoError(t, err)

	want := `// Code generated by genregistry; DO NOT EDIT.

package y2023

import "github.com/katalvlaran/aoc/solver"

// Year is the puzzle year solved by this package.
const Year = 2023

// Factories maps each implemented day to its solver factory.
var Factories = map[int]solver.Factory{
	1:  NewDay1,
	17: NewDay17,
}
`
	assert.Equal(t, want, string(src))
}

func TestRender_Empty(t *testing.T) {
	src, err := Render("y2015", 2015, nil)
	require.NoError(t, err)
	assert.Contains(t, string(src), "const Year = 2015")
	assert.Contains(t, string(src), "var Factories = map[int]solver.Factory{")
	assert.NotContains(t, string(src), "NewDay")
}

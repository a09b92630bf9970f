package registrygen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

var (
	// ErrMissingFactory indicates a day file without its NewDay<N> function.
	ErrMissingFactory = errors.New("registrygen: missing factory")

	// ErrDuplicateDay indicates two files resolving to the same day.
	ErrDuplicateDay = errors.New("registrygen: duplicate day")
)

var dayFile = regexp.MustCompile(`^day(\d+)\.go$`)

// Entry is one registered day.
type Entry struct {
	Day     int
	File    string // base name of the source file
	Factory string // name of the factory function, NewDay<N>
}

// FactoryName returns the factory function name expected for day.
func FactoryName(day int) string {
	return "NewDay" + strconv.Itoa(day)
}

// Scan returns the registered days of the package in dir, sorted by day.
// Files whose name does not match day<N>.go with N in 1..25 are ignored.
func Scan(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("registrygen: reading %s: %w", dir, err)
	}

	seen := make(map[int]string)
	var entries []Entry
	fset := token.NewFileSet()
	for _, de := range des {
		name := de.Name()
		if de.IsDir() || strings.HasSuffix(name, "_test.go") {
			continue
		}
		m := dayFile.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		day, err := strconv.Atoi(m[1])
		if err != nil || day < puzzle.FirstDay || day > puzzle.LastDay {
			continue
		}
		if prev, dup := seen[day]; dup {
			return nil, fmt.Errorf("%w: %s and %s are both day %d", ErrDuplicateDay, prev, name, day)
		}
		seen[day] = name

		factory := FactoryName(day)
		ok, err := declaresFunc(fset, filepath.Join(dir, name), factory)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s does not declare %s", ErrMissingFactory, name, factory)
		}
		entries = append(entries, Entry{Day: day, File: name, Factory: factory})
	}

	slices.SortFunc(entries, func(a, b Entry) int { return a.Day - b.Day })
	return entries, nil
}

// declaresFunc reports whether the file at path declares a top-level
// function (not a method) called name.
func declaresFunc(fset *token.FileSet, path, name string) (bool, error) {
	f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
	if err != nil {
		return false, fmt.Errorf("registrygen: %w", err)
	}
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if ok && fn.Recv == nil && fn.Name.Name == name {
			return true, nil
		}
	}
	return false, nil
}

package registrygen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// SolverImport is the import path of the package defining solver.Factory.
const SolverImport = "github.com/katalvlaran/aoc/solver"

var registryTmpl = template.Must(template.New("registry").Parse(`// Code generated by genregistry; DO NOT EDIT.

package {{.Package}}

import "{{.SolverImport}}"

// Year is the puzzle year solved by this package.
const Year = {{.Year}}

// Factories maps each implemented day to its solver factory.
var Factories = map[int]solver.Factory{
{{- range .Entries}}
	{{.Day}}: {{.Factory}},
{{- end}}
}
`))

// Render produces the gofmt'd registry source for pkg.
func Render(pkg string, year int, entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	err := registryTmpl.Execute(&buf, struct {
		Package      string
		SolverImport string
		Year         int
		Entries      []Entry
	}{pkg, SolverImport, year, entries})
	if err != nil {
		return nil, fmt.Errorf("registrygen: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("registrygen: formatting output: %w", err)
	}
	return src, nil
}

// Command genregistry writes the day registry of a solutions package.
//
// It is meant to run from a go:generate directive inside the package:
//
//	//go:generate go run ../cmd/genregistry --year 2023
//
// By default it scans the current directory, takes the package name from
// the GOPACKAGE environment variable set by go generate, and writes
// registry_gen.go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc/registrygen"
)

type genFlags struct {
	dir  string
	pkg  string
	year int
	out  string
}

func newRootCmd() *cobra.Command {
	f := genFlags{}
	cmd := &cobra.Command{
		Use:           "genregistry --year <year>",
		Short:         "Generate the day registry of a solutions package",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(f)
		},
	}
	cmd.Flags().StringVar(&f.dir, "dir", ".", "package directory to scan")
	cmd.Flags().StringVar(&f.pkg, "pkg", os.Getenv("GOPACKAGE"), "package name of the generated file")
	cmd.Flags().IntVar(&f.year, "year", 0, "puzzle year solved by the package (required)")
	cmd.Flags().StringVar(&f.out, "out", "registry_gen.go", "output file, relative to --dir")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func generate(f genFlags) error {
	if f.pkg == "" {
		f.pkg = filepath.Base(mustAbs(f.dir))
	}
	if f.year <= 0 {
		return fmt.Errorf("genregistry: invalid year %d", f.year)
	}
	entries, err := registrygen.Scan(f.dir)
	if err != nil {
		return err
	}
	src, err := registrygen.Render(f.pkg, f.year, entries)
	if err != nil {
		return err
	}
	out := f.out
	if !filepath.IsAbs(out) {
		out = filepath.Join(f.dir, out)
	}
	return os.WriteFile(out, src, 0o644)
}

func mustAbs(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

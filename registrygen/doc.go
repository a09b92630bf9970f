// Package registrygen builds the day registry of a solutions package at
// generate time.
//
// What:
//
//	Scan lists the files of a directory named day<N>.go (1 ≤ N ≤ 25, test
//	files excluded), and checks that each one declares the factory
//	function NewDay<N>. Render turns the resulting entries into a gofmt'd
//	Go source file declaring the package Year constant and a Factories
//	table keyed by day.
//
// Why:
//
//	Solutions are added by dropping a file into the package. The
//	generated table keeps dispatch a plain map lookup with no runtime
//	reflection and no hand-maintained list to forget.
//
// Errors:
//
//	ErrMissingFactory when a day file does not declare NewDay<N>.
//	ErrDuplicateDay when two files map to the same day (day1.go, day01.go).
//	I/O and syntax errors from reading or parsing the directory.
package registrygen

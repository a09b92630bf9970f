package input

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gofrs/flock"

	"github.com/katalvlaran/aoc/puzzle"
)

// Sentinel errors returned by Provider and HTTPFetcher.
var (
	// ErrMissingCredential indicates a download was attempted without a session cookie.
	ErrMissingCredential = errors.New("input: missing session credential (set AOC_SESSION)")

	// ErrNetworkFailure is matched by every *NetworkError.
	ErrNetworkFailure = errors.New("input: network failure")

	// ErrIO indicates a cache read, write or lock failure.
	ErrIO = errors.New("input: i/o failure")
)

// NetworkError describes a failed download. StatusCode is zero when the
// request never produced a response; Category then names the failing stage.
type NetworkError struct {
	URL        string
	StatusCode int
	Status     string
	Category   string
	Err        error
}

// Error implements error.
func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("input: fetching %s: status %s", e.URL, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("input: fetching %s: %s: %v", e.URL, e.Category, e.Err)
	}
	return fmt.Sprintf("input: fetching %s: %s", e.URL, e.Category)
}

// Is lets errors.Is(err, ErrNetworkFailure) match any NetworkError.
func (e *NetworkError) Is(target error) bool { return target == ErrNetworkFailure }

// Unwrap returns the underlying transport error, if any.
func (e *NetworkError) Unwrap() error { return e.Err }

// Fetcher downloads the raw input of one puzzle.
type Fetcher interface {
	Fetch(ctx context.Context, sel puzzle.Selector) ([]byte, error)
}

// FileSystem defines the file operations the cache needs.
// This abstraction allows failures to be injected in tests.
type FileSystem interface {
	// ReadFile reads the entire file and returns its contents
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to a file with the specified permissions
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory and any missing parents
	MkdirAll(path string, perm fs.FileMode) error
}

// OSFileSystem is the default implementation using the os package.
type OSFileSystem struct{}

// ReadFile implements FileSystem.ReadFile
func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// WriteFile implements FileSystem.WriteFile
func (OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// MkdirAll implements FileSystem.MkdirAll
func (OSFileSystem) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

// FileLock defines the interface for cross-process file locking.
type FileLock interface {
	// TryLockContext attempts to acquire an exclusive lock with retries
	TryLockContext(ctx context.Context, retryInterval time.Duration) (bool, error)

	// Unlock releases the lock
	Unlock() error
}

// FileLockFactory creates FileLock instances.
type FileLockFactory func(path string) FileLock

// FlockFactory creates locks backed by github.com/gofrs/flock.
func FlockFactory(path string) FileLock {
	return flock.New(path)
}

package input

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aoc/puzzle"
)

const (
	// DefaultDir is the cache directory relative to the working directory.
	DefaultDir = "input"

	lockRetry = 50 * time.Millisecond
)

// Provider returns puzzle inputs from the on-disk cache, fetching and
// storing them on a miss.
type Provider struct {
	dir     string
	fetcher Fetcher
	fs      FileSystem
	locks   FileLockFactory
	logger  *zerolog.Logger
}

// Option customizes a Provider.
type Option func(*Provider)

// WithDir sets the cache directory (default DefaultDir).
func WithDir(dir string) Option {
	return func(p *Provider) {
		if dir != "" {
			p.dir = dir
		}
	}
}

// WithFileSystem replaces the os-backed file system.
func WithFileSystem(fsys FileSystem) Option {
	return func(p *Provider) {
		if fsys != nil {
			p.fs = fsys
		}
	}
}

// WithFileLocks replaces the flock-backed lock factory.
func WithFileLocks(f FileLockFactory) Option {
	return func(p *Provider) {
		if f != nil {
			p.locks = f
		}
	}
}

// WithLogger sets the logger for cache and fetch events.
func WithLogger(l *zerolog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProvider returns a Provider that downloads misses with fetcher.
func NewProvider(fetcher Fetcher, opts ...Option) *Provider {
	nop := zerolog.Nop()
	p := &Provider{
		dir:     DefaultDir,
		fetcher: fetcher,
		fs:      OSFileSystem{},
		locks:   FlockFactory,
		logger:  &nop,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Path returns the cache file for sel: <dir>/d<day>.
func (p *Provider) Path(sel puzzle.Selector) string {
	return filepath.Join(p.dir, fmt.Sprintf("d%d", sel.Day))
}

// Input returns the text of sel's puzzle input. A cache hit never touches
// the Fetcher.
func (p *Provider) Input(ctx context.Context, sel puzzle.Selector) (string, error) {
	if err := sel.Validate(); err != nil {
		return "", err
	}
	path := p.Path(sel)

	data, hit, err := p.read(path)
	if err != nil {
		return "", err
	}
	if hit {
		p.logger.Debug().Str("path", path).Msg("input cache hit")
		return string(data), nil
	}

	p.logger.Info().Str("path", path).Int("year", sel.Year).Int("day", sel.Day).Msg("input cache miss, fetching")
	if err := p.fs.MkdirAll(p.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating %s: %w", ErrIO, p.dir, err)
	}

	lock := p.locks(filepath.Join(p.dir, fmt.Sprintf(".d%d.lock", sel.Day)))
	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return "", fmt.Errorf("%w: locking %s: %w", ErrIO, path, err)
	}
	if !locked {
		return "", fmt.Errorf("%w: could not lock %s", ErrIO, path)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			p.logger.Warn().Err(err).Str("path", path).Msg("releasing input lock")
		}
	}()

	// another process may have filled the cache while we waited
	if data, hit, err = p.read(path); err != nil || hit {
		return string(data), err
	}

	body, err := p.fetcher.Fetch(ctx, sel)
	if err != nil {
		return "", err
	}
	if err := p.fs.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	p.logger.Debug().Str("path", path).Int("bytes", len(body)).Msg("input cached")
	return string(body), nil
}

// read loads path, reporting hit=false for a missing file.
func (p *Provider) read(path string) ([]byte, bool, error) {
	data, err := p.fs.ReadFile(path)
	switch {
	case err == nil:
		return data, true, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
}

// Package input resolves a puzzle selector to its input text, caching
// downloads on disk so later runs are offline.
//
// A Provider first looks for <dir>/d<day>. On a miss it takes a file lock
// next to the cache file, asks its Fetcher for the bytes, writes them
// verbatim and returns them. HTTPFetcher downloads from
// https://adventofcode.com/<year>/day/<day>/input using the session cookie.
//
// Errors:
//
//   - puzzle.ErrInvalidDay: the selector is out of range.
//   - ErrMissingCredential: a download was needed but no session is configured.
//   - ErrNetworkFailure: transport failure or non-2xx status; see *NetworkError.
//   - ErrIO: reading, writing or locking the cache failed.
package input

package location

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/goccy/go-json"

	"weather-bff/internal/apperror"
	"weather-bff/internal/types"
)

// Store provides the in-memory list of searchable locations. The backing
// file is read at most once; both the parsed result and any failure are
// kept for the lifetime of the store.
type Store struct {
	path string

	once      sync.Once
	locations []types.Location
	err       error
}

// NewStore creates a store that lazily reads the JSON array at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

var (
	shared     *Store
	sharedOnce sync.Once
)

// SharedStore returns the process-wide store. The path of the first call
// wins; later calls get the same instance regardless of path.
func SharedStore(path string) *Store {
	sharedOnce.Do(func() {
		shared = NewStore(path)
	})
	return shared
}

// Path returns the file the store reads from
func (s *Store) Path() string {
	return s.path
}

// Load returns the cached locations, reading the file on first use.
// Failures are cached and replayed without touching the file again.
func (s *Store) Load() ([]types.Location, error) {
	s.once.Do(func() {
		s.locations, s.err = readLocations(s.path)
	})
	return s.locations, s.err
}

func readLocations(path string) ([]types.Location, error) {
	//nolint:gosec // G304: path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperror.NewDataUnavailable(
				fmt.Sprintf("Locations data file not found at %s. Please create it.", path), err)
		}
		return nil, apperror.NewDataUnavailable(
			fmt.Sprintf("Failed to load locations data: %v", err), err)
	}

	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		var syntaxErr error
		var v any
		if uerr := json.Unmarshal(trimmed, &v); uerr != nil {
			syntaxErr = uerr
		} else {
			syntaxErr = errors.New("invalid JSON")
		}
		return nil, apperror.NewDataMalformed(
			fmt.Sprintf("Failed to parse locations data (JSON syntax error): %v", syntaxErr), syntaxErr)
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, apperror.NewDataMalformed(
			"Invalid format: Locations data in locations.json is not an array.", nil)
	}

	locations := make([]types.Location, 0)
	if err := json.Unmarshal(trimmed, &locations); err != nil {
		return nil, apperror.NewDataMalformed(
			fmt.Sprintf("Failed to parse locations data: %v", err), err)
	}

	return locations, nil
}

package location

import (
	"log/slog"
	"strings"

	"weather-bff/internal/apperror"
	"weather-bff/internal/types"
)

// Service searches the bundled location list
type Service interface {
	// Search returns the locations matching query in source order
	Search(query string) ([]types.Location, error)
}

// LocationStore defines the interface for the location data source
type LocationStore interface {
	Load() ([]types.Location, error)
}

// locationService implements the Service interface
type locationService struct {
	store  LocationStore
	logger *slog.Logger
}

// NewLocationService creates a location service backed by the shared
// process-wide store for locationsFile
func NewLocationService(logger *slog.Logger, locationsFile string) Service {
	store := SharedStore(locationsFile)
	if store.Path() != locationsFile {
		logger.Warn("shared location store already bound to another file",
			"path", store.Path(),
			"requested", locationsFile,
		)
	} else {
		logger.Info("using location store", "path", store.Path())
	}
	return NewLocationServiceWithStore(logger, store)
}

// NewLocationServiceWithStore creates a location service with a custom store.
// This is useful for testing with an isolated or mock store.
func NewLocationServiceWithStore(logger *slog.Logger, store LocationStore) Service {
	return &locationService{
		store:  store,
		logger: logger.With("component", "location-service"),
	}
}

// Search matches query case-insensitively as a substring of name, state or
// country, or exactly against the airport code.
func (s *locationService) Search(query string) ([]types.Location, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.NewInvalidQuery("Query parameter is missing or invalid.")
	}

	locations, err := s.store.Load()
	if err != nil {
		s.logger.Error("location data unavailable", "error", err)
		if _, ok := apperror.As(err); ok {
			return nil, err
		}
		return nil, apperror.NewDataUnavailable("Location data is not available.", err)
	}

	if len(locations) == 0 {
		s.logger.Warn("location data file is empty, search will return no results")
		return []types.Location{}, nil
	}

	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]types.Location, 0)
	for _, loc := range locations {
		if matches(loc, q) {
			results = append(results, loc)
		}
	}

	if len(results) == 0 {
		s.logger.Debug("no locations matched query", "query", q)
		return nil, apperror.NewNotFound("No locations found for query")
	}

	s.logger.Debug("location search complete", "query", q, "results", len(results))

	return results, nil
}

// matches expects q to be trimmed and lower-cased already
func matches(loc types.Location, q string) bool {
	if strings.Contains(strings.ToLower(loc.Name), q) ||
		strings.Contains(strings.ToLower(loc.State), q) ||
		strings.Contains(strings.ToLower(loc.Country), q) {
		return true
	}
	return loc.HasAirportCode() && strings.ToLower(*loc.AirportCode) == q
}

package location

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"weather-bff/internal/apperror"
	"weather-bff/internal/types"
)

// Mock store for testing

type mockStore struct {
	locations []types.Location
	err       error
	calls     int
}

func (m *mockStore) Load() ([]types.Location, error) {
	m.calls++
	return m.locations, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixtureLocations() []types.Location {
	return []types.Location{
		{ID: "1", Name: "London", Type: "City", State: "England", Country: "UK", Latitude: 51.5074, Longitude: -0.1278},
		{ID: "2", Name: "Heathrow Airport", Type: "Airport", State: "England", Country: "UK", Latitude: 51.47, Longitude: -0.4543, AirportCode: ptr("LHR")},
		{ID: "3", Name: "New York", Type: "City", State: "New York", Country: "USA", Latitude: 40.7128, Longitude: -74.006},
		{ID: "4", Name: "John F. Kennedy International Airport", Type: "Airport", State: "New York", Country: "USA", Latitude: 40.6413, Longitude: -73.7781, AirportCode: ptr("JFK")},
		{ID: "5", Name: "Paris", Type: "City", State: "Île-de-France", Country: "France", Latitude: 48.8566, Longitude: 2.3522},
	}
}

func ids(locations []types.Location) []string {
	out := make([]string, 0, len(locations))
	for _, l := range locations {
		out = append(out, l.ID)
	}
	return out
}

func TestLocationService_Search(t *testing.T) {
	tests := []struct {
		name        string
		locations   []types.Location
		storeErr    error
		query       string
		wantIDs     []string
		wantKind    apperror.Kind
		wantErr     bool
		errContains string
	}{
		{
			name:      "name substring",
			locations: fixtureLocations(),
			query:     "lon",
			wantIDs:   []string{"1"},
		},
		{
			name:      "case-insensitive with surrounding whitespace",
			locations: fixtureLocations(),
			query:     "  PARIS ",
			wantIDs:   []string{"5"},
		},
		{
			name:      "state substring keeps source order",
			locations: fixtureLocations(),
			query:     "new york",
			wantIDs:   []string{"3", "4"},
		},
		{
			name:      "country substring",
			locations: fixtureLocations(),
			query:     "uk",
			wantIDs:   []string{"1", "2"},
		},
		{
			name:      "exact airport code",
			locations: fixtureLocations(),
			query:     "jfk",
			wantIDs:   []string{"4"},
		},
		{
			name:        "airport code is not a substring match",
			locations:   fixtureLocations(),
			query:       "LH",
			wantErr:     true,
			wantKind:    apperror.NotFound,
			errContains: "No locations found for query",
		},
		{
			name:        "no matches",
			locations:   fixtureLocations(),
			query:       "Atlantis",
			wantErr:     true,
			wantKind:    apperror.NotFound,
			errContains: "No locations found for query",
		},
		{
			name:      "empty dataset returns empty result",
			locations: []types.Location{},
			query:     "anything",
			wantIDs:   []string{},
		},
		{
			name:        "empty query",
			locations:   fixtureLocations(),
			query:       "",
			wantErr:     true,
			wantKind:    apperror.InvalidQuery,
			errContains: "Query parameter is missing or invalid.",
		},
		{
			name:        "whitespace query",
			locations:   fixtureLocations(),
			query:       " \t\n",
			wantErr:     true,
			wantKind:    apperror.InvalidQuery,
			errContains: "Query parameter is missing or invalid.",
		},
		{
			name:        "store data unavailable is propagated",
			storeErr:    apperror.NewDataUnavailable("Locations data file not found at /x. Please create it.", nil),
			query:       "London",
			wantErr:     true,
			wantKind:    apperror.DataUnavailable,
			errContains: "Locations data file not found",
		},
		{
			name:        "store data malformed is propagated",
			storeErr:    apperror.NewDataMalformed("Invalid format: Locations data in locations.json is not an array.", nil),
			query:       "London",
			wantErr:     true,
			wantKind:    apperror.DataMalformed,
			errContains: "is not an array",
		},
		{
			name:        "foreign store error becomes data unavailable",
			storeErr:    errors.New("disk on fire"),
			query:       "London",
			wantErr:     true,
			wantKind:    apperror.DataUnavailable,
			errContains: "Location data is not available.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{locations: tt.locations, err: tt.storeErr}
			service := NewLocationServiceWithStore(testLogger(), store)

			got, err := service.Search(tt.query)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Search() expected error but got none")
				}
				if !errors.Is(err, tt.wantKind) {
					t.Errorf("Search() error = %v, want kind %v", err, tt.wantKind)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Search() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Search() unexpected error = %v", err)
			}
			if got == nil {
				t.Fatal("Search() returned nil slice, want non-nil")
			}
			if !reflect.DeepEqual(ids(got), tt.wantIDs) {
				t.Errorf("Search() ids = %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestLocationService_Search_Scenarios(t *testing.T) {
	record := types.Location{ID: "1", Name: "Test City", State: "TS", Country: "Testland", Latitude: 1, Longitude: 2}

	t.Run("name match", func(t *testing.T) {
		service := NewLocationServiceWithStore(testLogger(), &mockStore{locations: []types.Location{record}})
		got, err := service.Search("Test")
		if err != nil {
			t.Fatalf("Search() unexpected error = %v", err)
		}
		if len(got) != 1 || !reflect.DeepEqual(got[0], record) {
			t.Errorf("Search() = %+v, want [%+v]", got, record)
		}
	})

	t.Run("airport code match", func(t *testing.T) {
		withCode := record
		withCode.Name = "Somewhere"
		withCode.State = ""
		withCode.Country = ""
		withCode.AirportCode = ptr("TST")
		service := NewLocationServiceWithStore(testLogger(), &mockStore{locations: []types.Location{withCode}})
		got, err := service.Search("TST")
		if err != nil {
			t.Fatalf("Search() unexpected error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "1" {
			t.Errorf("Search() = %+v, want the TST record", got)
		}
	})
}

func TestLocationService_Search_InvalidQueryDoesNotLoad(t *testing.T) {
	store := &mockStore{locations: fixtureLocations()}
	service := NewLocationServiceWithStore(testLogger(), store)

	if _, err := service.Search("   "); err == nil {
		t.Fatal("Search() expected error but got none")
	}
	if store.calls != 0 {
		t.Errorf("store.Load() called %d times, want 0", store.calls)
	}
}

func TestLocationService_Search_WithFileStore(t *testing.T) {
	path := writeLocationsFile(t, `[
		{"id":"1","name":"Test City","type":"City","state":"TS","country":"Testland","latitude":1,"longitude":2,"airportCode":"TST"},
		{"id":"2","name":"Other Town","type":"City","state":"OT","country":"Otherland","latitude":3,"longitude":4}
	]`)
	service := NewLocationServiceWithStore(testLogger(), NewStore(path))

	got, err := service.Search("tst")
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Errorf("Search() ids = %v, want [1]", ids(got))
	}
}

func TestLocationService_Search_EmptyDatasetLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	service := NewLocationServiceWithStore(logger, &mockStore{locations: []types.Location{}})

	got, err := service.Search("London")
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Search() = %v, want empty non-nil slice", got)
	}

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("log output = %q, want a level=WARN record", out)
	}
	if !strings.Contains(out, "component=location-service") {
		t.Errorf("log output = %q, want component=location-service", out)
	}
}

func TestNewLocationService_LogsSharedStorePath(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	requested := "/does/not/matter/locations.json"
	NewLocationService(logger, requested)

	want := "path=" + SharedStore(requested).Path()
	if !strings.Contains(buf.String(), want) {
		t.Errorf("log output = %q, want %q", buf.String(), want)
	}
}

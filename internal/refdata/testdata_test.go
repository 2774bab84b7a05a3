package refdata

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/openmun/swissref/internal/observability"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingLocalitySource serves a fixed record set and counts enumerations.
type countingLocalitySource struct {
	records []Locality
	err     error
	calls   atomic.Int32
}

func (s *countingLocalitySource) Localities(_ context.Context) ([]Locality, error) {
	s.calls.Add(1)
	return s.records, s.err
}

type staticMunicipalities []Municipality

func (s staticMunicipalities) Municipalities(_ context.Context) ([]Municipality, error) {
	return s, nil
}

type staticStreets []Street

func (s staticStreets) Streets(_ context.Context) ([]Street, error) {
	return s, nil
}

var testLocalities = []Locality{
	{PostalCode: "8001", Name: "Zürich", BFSCode: "261"},
	{PostalCode: "8001", Name: "Zürich Sihlpost", BFSCode: "261"},
	{PostalCode: "4001", Name: "Basel", BFSCode: "2701"},
	{PostalCode: "3011", Name: "Bern", BFSCode: "351"},
}

var testMunicipalities = []Municipality{
	{BFSCode: "261", Name: "Zürich", CantonCode: "ZH"},
	{BFSCode: "2701", Name: "Basel", CantonCode: "BS"},
	{BFSCode: "351", Name: "Bern", CantonCode: "BE"},
	{BFSCode: "292", Name: "Illnau-Effretikon", CantonCode: "ZH", HistoricalCode: "174"},
}

var testStreets = []Street{
	{Name: "Bahnhofstrasse", MunicipalityBFS: "261", MunicipalityName: "Zürich", PostalCodes: []string{"8001"}},
	{Name: "Bahnhofplatz", MunicipalityBFS: "261", MunicipalityName: "Zürich", PostalCodes: []string{"8001"}},
	{Name: "Bahnhofstrasse", MunicipalityBFS: "351", MunicipalityName: "Bern", PostalCodes: []string{"3011"}},
	{Name: "Hauptstrasse", MunicipalityBFS: "2701", MunicipalityName: "Basel", PostalCodes: []string{"4001"}},
	{Name: "Münstergasse", MunicipalityBFS: "351", MunicipalityName: "Bern", PostalCodes: []string{"3011"}},
}

func testService(sources Sources) *Service {
	return NewService(sources, testLogger(), observability.NewMetricsForTesting())
}

func fullTestService() *Service {
	return testService(Sources{
		Localities:     &countingLocalitySource{records: testLocalities},
		Municipalities: staticMunicipalities(testMunicipalities),
		Streets:        staticStreets(testStreets),
	})
}

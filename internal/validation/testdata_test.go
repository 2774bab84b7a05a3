package validation

import (
	"context"
	"io"
	"log/slog"

	"github.com/openmun/swissref/internal/observability"
	"github.com/openmun/swissref/internal/refdata"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type staticLocalities []refdata.Locality

func (s staticLocalities) Localities(_ context.Context) ([]refdata.Locality, error) {
	return s, nil
}

type staticMunicipalities []refdata.Municipality

func (s staticMunicipalities) Municipalities(_ context.Context) ([]refdata.Municipality, error) {
	return s, nil
}

type staticStreets []refdata.Street

func (s staticStreets) Streets(_ context.Context) ([]refdata.Street, error) {
	return s, nil
}

var testLocalities = staticLocalities{
	{PostalCode: "8001", Name: "Zürich", BFSCode: "261"},
	{PostalCode: "8001", Name: "Zürich Sihlpost", BFSCode: "261"},
	{PostalCode: "4001", Name: "Basel", BFSCode: "2701"},
	{PostalCode: "3011", Name: "Bern", BFSCode: "351"},
}

var testMunicipalities = staticMunicipalities{
	{BFSCode: "261", Name: "Zürich", CantonCode: "ZH"},
	{BFSCode: "2701", Name: "Basel", CantonCode: "BS"},
	{BFSCode: "351", Name: "Bern", CantonCode: "BE"},
}

var testStreets = staticStreets{
	{Name: "Bahnhofstrasse", MunicipalityBFS: "261", MunicipalityName: "Zürich", PostalCodes: []string{"8001"}},
	{Name: "Bahnhofplatz", MunicipalityBFS: "261", MunicipalityName: "Zürich", PostalCodes: []string{"8001"}},
	{Name: "Bahnhofstrasse", MunicipalityBFS: "351", MunicipalityName: "Bern", PostalCodes: []string{"3011"}},
	{Name: "Hauptstrasse", MunicipalityBFS: "2701", MunicipalityName: "Basel", PostalCodes: []string{"4001"}},
}

func newTestValidator() *Validator {
	svc := refdata.NewService(refdata.Sources{
		Localities:     testLocalities,
		Municipalities: testMunicipalities,
		Streets:        testStreets,
	}, testLogger(), observability.NewMetricsForTesting())
	return New(svc, testLogger(), observability.NewMetricsForTesting())
}

// newUnavailableValidator backs the validator with a service that has no
// sources at all, so every dataset settles empty.
func newUnavailableValidator() *Validator {
	svc := refdata.NewService(refdata.Sources{}, testLogger(), observability.NewMetricsForTesting())
	return New(svc, testLogger(), observability.NewMetricsForTesting())
}

package refdata

import (
	"context"
	"log/slog"

	"github.com/openmun/swissref/internal/observability"
)

// Sources bundles the per-dataset enumerations a Service loads from. A nil
// source leaves the corresponding cache permanently empty, which disables
// the checks that depend on it.
type Sources struct {
	Localities     LocalitySource
	Municipalities MunicipalitySource
	Streets        StreetSource
}

// Service owns the three reference-data caches for the lifetime of the
// process. Construct it once and hand it to every validator; there is no
// package-global state. Each cache still lazy-loads on first use, so
// constructing a Service is cheap; call Warmup to pay the load cost up
// front instead.
type Service struct {
	Postal         *PostalCodes
	Municipalities *Municipalities
	Streets        *Streets
}

// NewService creates a Service over the given sources.
func NewService(sources Sources, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		Postal:         newPostalCodes(sources.Localities, logger, metrics),
		Municipalities: newMunicipalities(sources.Municipalities, logger, metrics),
		Streets:        newStreets(sources.Streets, logger, metrics),
	}
}

// Warmup eagerly loads all three datasets so the first validation call does
// not block on dataset I/O. Load failures are absorbed per dataset as usual;
// inspect the per-cache Status to distinguish loaded, empty, and unavailable.
func (s *Service) Warmup(ctx context.Context) {
	s.Postal.Available(ctx)
	s.Municipalities.Available(ctx)
	s.Streets.Available(ctx)
}

// Reset clears every cache back to the unloaded state, forcing a reload from
// the sources on next access. Test-only.
func (s *Service) Reset() {
	s.Postal.Clear()
	s.Municipalities.Clear()
	s.Streets.Clear()
}

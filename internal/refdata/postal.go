package refdata

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openmun/swissref/internal/observability"
)

// PostalCodes caches the postal locality dataset, indexed by normalized
// 4-digit code.
type PostalCodes struct {
	cache  *cache[Locality]
	byCode map[string][]Locality
}

func newPostalCodes(src LocalitySource, logger *slog.Logger, metrics *observability.Metrics) *PostalCodes {
	p := &PostalCodes{}
	load := func(ctx context.Context) ([]Locality, error) {
		if src == nil {
			return nil, errors.New("no locality source configured")
		}
		return src.Localities(ctx)
	}
	p.cache = newCache("postal", load, p.buildIndex, p.dropIndex, logger, metrics)
	return p
}

func (p *PostalCodes) buildIndex(records []Locality) {
	p.byCode = make(map[string][]Locality, len(records))
	for _, loc := range records {
		code := NormalizePostalCode(loc.PostalCode)
		p.byCode[code] = append(p.byCode[code], loc)
	}
}

func (p *PostalCodes) dropIndex() {
	p.byCode = nil
}

// Localities returns all localities served by the given postal code, in
// dataset order. The code is normalized before lookup. Returns nil when the
// code is unknown or the dataset is unavailable.
func (p *PostalCodes) Localities(ctx context.Context, postalCode string) []Locality {
	p.cache.data(ctx)
	return p.byCode[NormalizePostalCode(postalCode)]
}

// Available forces the lazy load and reports whether the dataset holds records.
func (p *PostalCodes) Available(ctx context.Context) bool {
	return p.cache.available(ctx)
}

// Status forces the lazy load and returns the load outcome.
func (p *PostalCodes) Status(ctx context.Context) Status {
	return p.cache.currentStatus(ctx)
}

// Clear resets the cache to the unloaded state. Test-only.
func (p *PostalCodes) Clear() {
	p.cache.clear()
}

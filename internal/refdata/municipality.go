package refdata

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/openmun/swissref/internal/observability"
)

// Municipalities caches the BFS municipality register, indexed by current and
// historical code.
type Municipalities struct {
	cache        *cache[Municipality]
	byCode       map[string]Municipality
	byHistorical map[string]Municipality
}

func newMunicipalities(src MunicipalitySource, logger *slog.Logger, metrics *observability.Metrics) *Municipalities {
	m := &Municipalities{}
	load := func(ctx context.Context) ([]Municipality, error) {
		if src == nil {
			return nil, errors.New("no municipality source configured")
		}
		return src.Municipalities(ctx)
	}
	m.cache = newCache("municipality", load, m.buildIndex, m.dropIndex, logger, metrics)
	return m
}

func (m *Municipalities) buildIndex(records []Municipality) {
	m.byCode = make(map[string]Municipality, len(records))
	m.byHistorical = make(map[string]Municipality)
	for _, mun := range records {
		if mun.BFSCode != "" {
			m.byCode[mun.BFSCode] = mun
		}
		if mun.HistoricalCode != "" {
			m.byHistorical[mun.HistoricalCode] = mun
		}
	}
}

func (m *Municipalities) dropIndex() {
	m.byCode = nil
	m.byHistorical = nil
}

// All returns every municipality record. The returned slice is shared and
// must not be mutated.
func (m *Municipalities) All(ctx context.Context) []Municipality {
	return m.cache.data(ctx)
}

// ByCode looks a municipality up by its current BFS code.
func (m *Municipalities) ByCode(ctx context.Context, bfsCode string) (Municipality, bool) {
	m.cache.data(ctx)
	mun, ok := m.byCode[strings.TrimSpace(bfsCode)]
	return mun, ok
}

// ByHistoricalCode looks a municipality up by the code it carried before it
// was merged into its current form.
func (m *Municipalities) ByHistoricalCode(ctx context.Context, historicalCode string) (Municipality, bool) {
	m.cache.data(ctx)
	mun, ok := m.byHistorical[strings.TrimSpace(historicalCode)]
	return mun, ok
}

// Available forces the lazy load and reports whether the dataset holds records.
func (m *Municipalities) Available(ctx context.Context) bool {
	return m.cache.available(ctx)
}

// Status forces the lazy load and returns the load outcome.
func (m *Municipalities) Status(ctx context.Context) Status {
	return m.cache.currentStatus(ctx)
}

// Clear resets the cache to the unloaded state. Test-only.
func (m *Municipalities) Clear() {
	m.cache.clear()
}

package opendata

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/openmun/swissref/internal/observability"
	"github.com/openmun/swissref/internal/refdata"
)

// Default dataset endpoints on the federal geoportal.
const (
	DefaultLocalitiesURL     = "https://data.geo.admin.ch/ch.swisstopo-vd.ortschaftenverzeichnis_plz/ortschaftenverzeichnis_plz.csv"
	DefaultMunicipalitiesURL = "https://data.geo.admin.ch/ch.bfs.gemeindeverzeichnis/gemeindeverzeichnis.csv"
	DefaultStreetsURL        = "https://data.geo.admin.ch/ch.swisstopo.amtliches-strassenverzeichnis/amtliches-strassenverzeichnis.csv"

	defaultTimeout = 60 * time.Second
)

// Options configures a Provider. Zero-value URL and timeout fields fall back
// to the federal geoportal defaults; an empty SnapshotDir disables the
// last-known-good fallback regardless of FallbackAllowed.
type Options struct {
	LocalitiesURL     string
	MunicipalitiesURL string
	StreetsURL        string
	Timeout           time.Duration

	SnapshotDir     string
	FallbackAllowed bool
	MaxSnapshotAge  time.Duration // 0 means any age is acceptable
}

func (o Options) withDefaults() Options {
	if o.LocalitiesURL == "" {
		o.LocalitiesURL = DefaultLocalitiesURL
	}
	if o.MunicipalitiesURL == "" {
		o.MunicipalitiesURL = DefaultMunicipalitiesURL
	}
	if o.StreetsURL == "" {
		o.StreetsURL = DefaultStreetsURL
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return o
}

// Provider fetches the reference datasets and implements
// [refdata.LocalitySource], [refdata.MunicipalitySource], and
// [refdata.StreetSource], with an optional snapshot fallback.
type Provider struct {
	opts       Options
	httpClient *http.Client
	snapshots  *snapshotStore
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// New creates a Provider. The clock is only used for snapshot timestamps and
// age checks; pass clockwork.NewRealClock() outside of tests.
func New(opts Options, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Provider {
	opts = opts.withDefaults()
	p := &Provider{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
		logger:     logger,
		metrics:    metrics,
	}
	if opts.SnapshotDir != "" {
		p.snapshots = newSnapshotStore(opts.SnapshotDir, clock)
	}
	return p
}

// Localities fetches the postal locality dataset.
func (p *Provider) Localities(ctx context.Context) ([]refdata.Locality, error) {
	return fetchDataset(ctx, p, datasetPostal, p.opts.LocalitiesURL, parseLocalities)
}

// Municipalities fetches the BFS municipality register.
func (p *Provider) Municipalities(ctx context.Context) ([]refdata.Municipality, error) {
	return fetchDataset(ctx, p, datasetMunicipality, p.opts.MunicipalitiesURL, parseMunicipalities)
}

// Streets fetches the federal street directory.
func (p *Provider) Streets(ctx context.Context) ([]refdata.Street, error) {
	return fetchDataset(ctx, p, datasetStreet, p.opts.StreetsURL, parseStreets)
}

// fetchDataset runs the live-fetch-then-fallback sequence for one dataset.
func fetchDataset[R any](ctx context.Context, p *Provider, dataset, url string, parse func(rows [][]string) ([]R, error)) ([]R, error) {
	rows, err := p.fetchRows(ctx, dataset, url)
	if err == nil {
		var records []R
		if records, err = parse(rows); err == nil {
			writeSnapshot(p, dataset, records)
			return records, nil
		}
	}

	if p.snapshots != nil && p.opts.FallbackAllowed {
		records, fetchedAt, snapErr := load[R](p.snapshots, dataset, p.opts.MaxSnapshotAge)
		if snapErr == nil {
			p.metrics.SnapshotReads.WithLabelValues(dataset, "hit").Inc()
			p.logger.Warn("live fetch failed, serving last-known-good snapshot",
				"dataset", dataset, "fetched_at", fetchedAt, "error", err)
			return records, nil
		}
		result := "miss"
		if errors.Is(snapErr, errStaleSnapshot) {
			result = "stale"
		}
		p.metrics.SnapshotReads.WithLabelValues(dataset, result).Inc()
		p.logger.Warn("snapshot fallback unavailable", "dataset", dataset, "error", snapErr)
	}

	return nil, err
}

// writeSnapshot persists a freshly fetched record set. Snapshot failures are
// logged but never fail the fetch that produced the data.
func writeSnapshot[R any](p *Provider, dataset string, records []R) {
	if p.snapshots == nil {
		return
	}
	if err := save(p.snapshots, dataset, records); err != nil {
		p.metrics.SnapshotWrites.WithLabelValues(dataset, "error").Inc()
		p.logger.Warn("snapshot write failed", "dataset", dataset, "error", err)
		return
	}
	p.metrics.SnapshotWrites.WithLabelValues(dataset, "success").Inc()
}

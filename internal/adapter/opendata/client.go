package opendata

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/openmun/swissref/internal/refdata"
)

const (
	datasetPostal       = "postal"
	datasetMunicipality = "municipality"
	datasetStreet       = "street"
)

// fetchRows downloads one dataset and returns its CSV rows, header first.
func (p *Provider) fetchRows(ctx context.Context, dataset, rawURL string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s dataset request: %w", dataset, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.metrics.FetchRequests.WithLabelValues(dataset, "error").Inc()
		return nil, fmt.Errorf("fetch %s dataset: %w", dataset, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.metrics.FetchRequests.WithLabelValues(dataset, "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("fetch %s dataset: status %d: %s", dataset, resp.StatusCode, body)
	}

	r := csv.NewReader(resp.Body)
	r.Comma = ';'
	// Upstream exports occasionally carry trailing columns; tolerate ragged rows.
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		p.metrics.FetchRequests.WithLabelValues(dataset, "error").Inc()
		return nil, fmt.Errorf("parse %s dataset csv: %w", dataset, err)
	}
	if len(rows) == 0 {
		p.metrics.FetchRequests.WithLabelValues(dataset, "error").Inc()
		return nil, fmt.Errorf("parse %s dataset csv: no header row", dataset)
	}

	p.metrics.FetchRequests.WithLabelValues(dataset, "success").Inc()
	return rows, nil
}

// columns locates the named header columns, case-insensitively.
func columns(header []string, names ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	out := make(map[string]int, len(names))
	for _, name := range names {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		out[name] = i
	}
	return out, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseLocalities(rows [][]string) ([]refdata.Locality, error) {
	cols, err := columns(rows[0], "plz", "ortschaftsname", "bfs_nummer")
	if err != nil {
		return nil, fmt.Errorf("postal dataset: %w", err)
	}

	records := make([]refdata.Locality, 0, len(rows)-1)
	for _, row := range rows[1:] {
		code := field(row, cols["plz"])
		name := field(row, cols["ortschaftsname"])
		if code == "" || name == "" {
			continue
		}
		records = append(records, refdata.Locality{
			PostalCode: refdata.NormalizePostalCode(code),
			Name:       name,
			BFSCode:    field(row, cols["bfs_nummer"]),
		})
	}
	return records, nil
}

func parseMunicipalities(rows [][]string) ([]refdata.Municipality, error) {
	cols, err := columns(rows[0], "bfs_nummer", "gemeindename", "kanton", "historisches_nummer", "aufhebungsdatum")
	if err != nil {
		return nil, fmt.Errorf("municipality dataset: %w", err)
	}

	records := make([]refdata.Municipality, 0, len(rows)-1)
	for _, row := range rows[1:] {
		code := field(row, cols["bfs_nummer"])
		name := field(row, cols["gemeindename"])
		if code == "" || name == "" {
			continue
		}
		m := refdata.Municipality{
			BFSCode:        code,
			Name:           name,
			CantonCode:     field(row, cols["kanton"]),
			HistoricalCode: field(row, cols["historisches_nummer"]),
		}
		if raw := field(row, cols["aufhebungsdatum"]); raw != "" {
			retired, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return nil, fmt.Errorf("municipality dataset: bfs %s: invalid aufhebungsdatum %q: %w", code, raw, err)
			}
			m.RetiredAt = &retired
		}
		records = append(records, m)
	}
	return records, nil
}

func parseStreets(rows [][]string) ([]refdata.Street, error) {
	cols, err := columns(rows[0], "bezeichnung", "bfs_nummer", "gemeindename", "plz")
	if err != nil {
		return nil, fmt.Errorf("street dataset: %w", err)
	}

	records := make([]refdata.Street, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := field(row, cols["bezeichnung"])
		if name == "" {
			continue
		}
		var postalCodes []string
		for _, code := range strings.Fields(field(row, cols["plz"])) {
			postalCodes = append(postalCodes, refdata.NormalizePostalCode(code))
		}
		records = append(records, refdata.Street{
			Name:             name,
			MunicipalityBFS:  field(row, cols["bfs_nummer"]),
			MunicipalityName: field(row, cols["gemeindename"]),
			PostalCodes:      postalCodes,
		})
	}
	return records, nil
}

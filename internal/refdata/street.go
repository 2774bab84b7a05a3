package refdata

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/openmun/swissref/internal/observability"
)

// streetSuffixes are the street-type suffixes stripped during abbreviation
// matching, so "Bahnhofstr" finds "Bahnhofstrasse". The list is
// Swiss-German; French and Italian street types are matched only by the
// exact and prefix rules.
var streetSuffixes = []string{"strasse", "gasse", "asse", "platz", "weg"}

// minAbbrevQueryLen is the minimum query length for suffix-stripped matching.
// Shorter queries produce too many false positives against bare stems.
const minAbbrevQueryLen = 8

// StreetFilter narrows a street search to a municipality and/or a postal
// code. Zero values mean no filtering.
type StreetFilter struct {
	MunicipalityBFS string
	PostalCode      string
}

// Streets caches the federal street directory. Because the dataset runs to
// hundreds of thousands of records, all search paths go through an index:
// fuzzy name search is bounded by the two-rune prefix index and never scans
// the full table.
type Streets struct {
	cache          *cache[Street]
	byNamePrefix   map[string][]Street
	byMunicipality map[string][]Street
	byPostalCode   map[string][]Street
}

func newStreets(src StreetSource, logger *slog.Logger, metrics *observability.Metrics) *Streets {
	s := &Streets{}
	load := func(ctx context.Context) ([]Street, error) {
		if src == nil {
			return nil, errors.New("no street source configured")
		}
		return src.Streets(ctx)
	}
	s.cache = newCache("street", load, s.buildIndex, s.dropIndex, logger, metrics)
	return s
}

func (s *Streets) buildIndex(records []Street) {
	s.byNamePrefix = make(map[string][]Street)
	s.byMunicipality = make(map[string][]Street)
	s.byPostalCode = make(map[string][]Street)
	for _, st := range records {
		prefix := namePrefix(NormalizeName(st.Name))
		s.byNamePrefix[prefix] = append(s.byNamePrefix[prefix], st)

		s.byMunicipality[st.MunicipalityBFS] = append(s.byMunicipality[st.MunicipalityBFS], st)

		for _, code := range st.PostalCodes {
			code = NormalizePostalCode(code)
			s.byPostalCode[code] = append(s.byPostalCode[code], st)
		}
	}
}

func (s *Streets) dropIndex() {
	s.byNamePrefix = nil
	s.byMunicipality = nil
	s.byPostalCode = nil
}

// namePrefix returns the first two runes of a normalized name, or the whole
// name when it is shorter.
func namePrefix(normalized string) string {
	runes := []rune(normalized)
	if len(runes) < 2 {
		return normalized
	}
	return string(runes[:2])
}

// FindByName searches the directory for streets approximately matching the
// query, optionally narrowed by municipality and/or postal code. Matching
// tolerates case, diacritics, truncated input ("Bahnhof" finds
// "Bahnhofstrasse"), and abbreviated street types ("Bahnhofstr" finds
// "Bahnhofstrasse"). Results are ordered exact-matches-first, then by
// ascending name length. Returns an empty slice on no match or when the
// dataset is unavailable; never errors.
func (s *Streets) FindByName(ctx context.Context, query string, filter StreetFilter) []Street {
	s.cache.data(ctx)
	if len(s.byNamePrefix) == 0 {
		return nil
	}

	normalized := NormalizeName(query)
	if normalized == "" {
		return nil
	}

	candidates := s.byNamePrefix[namePrefix(normalized)]

	var postal string
	if filter.PostalCode != "" {
		postal = NormalizePostalCode(filter.PostalCode)
	}

	var matches []Street
	for _, st := range candidates {
		if filter.MunicipalityBFS != "" && st.MunicipalityBFS != filter.MunicipalityBFS {
			continue
		}
		if postal != "" && !servesPostalCode(st, postal) {
			continue
		}
		if fuzzyMatchStreet(NormalizeName(st.Name), normalized) {
			matches = append(matches, st)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		exactI := NormalizeName(matches[i].Name) == normalized
		exactJ := NormalizeName(matches[j].Name) == normalized
		if exactI != exactJ {
			return exactI
		}
		return len(matches[i].Name) < len(matches[j].Name)
	})

	return matches
}

func servesPostalCode(st Street, normalizedCode string) bool {
	return slices.ContainsFunc(st.PostalCodes, func(code string) bool {
		return NormalizePostalCode(code) == normalizedCode
	})
}

// fuzzyMatchStreet reports whether a normalized directory entry matches a
// normalized query. Rules, in order: exact equality; query is a prefix of
// the entry (truncated input); for queries of at least 8 characters,
// stripping a known street-type suffix from the entry leaves a stem that
// equals, or is prefixed by, the query (abbreviated input).
func fuzzyMatchStreet(candidate, query string) bool {
	if candidate == query {
		return true
	}
	if strings.HasPrefix(candidate, query) {
		return true
	}
	if len(query) >= minAbbrevQueryLen {
		for _, suffix := range streetSuffixes {
			stem, found := strings.CutSuffix(candidate, suffix)
			if found && stem != "" && (stem == query || strings.HasPrefix(stem, query)) {
				return true
			}
		}
	}
	return false
}

// ByMunicipality returns all streets owned by the given BFS code.
func (s *Streets) ByMunicipality(ctx context.Context, bfsCode string) []Street {
	s.cache.data(ctx)
	return s.byMunicipality[strings.TrimSpace(bfsCode)]
}

// ByPostalCode returns all streets served by the given postal code. The code
// is normalized before lookup.
func (s *Streets) ByPostalCode(ctx context.Context, postalCode string) []Street {
	s.cache.data(ctx)
	return s.byPostalCode[NormalizePostalCode(postalCode)]
}

// Available forces the lazy load and reports whether the dataset holds records.
func (s *Streets) Available(ctx context.Context) bool {
	return s.cache.available(ctx)
}

// Status forces the lazy load and returns the load outcome.
func (s *Streets) Status(ctx context.Context) Status {
	return s.cache.currentStatus(ctx)
}

// Clear resets the cache to the unloaded state. Test-only.
func (s *Streets) Clear() {
	s.cache.clear()
}

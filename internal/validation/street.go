package validation

import (
	"context"
	"strings"

	"github.com/openmun/swissref/internal/refdata"
)

// maxStreetSuggestions bounds the "did you mean" list.
const maxStreetSuggestions = 5

// StreetScope narrows a street check and enriches its messages.
// MunicipalityName is display-only; the filters are MunicipalityBFS and
// PostalCode.
type StreetScope struct {
	MunicipalityBFS  string
	MunicipalityName string
	PostalCode       string
}

// StreetName checks a street name against the federal street directory,
// optionally scoped to a municipality and/or postal code. No match at all
// yields one not-found warning; approximate matches without an exact one
// yield one informational "did you mean" warning with up to 5 suggestions;
// an exact match yields nothing. Empty input is skipped, as is the whole
// check when the dataset is unavailable. The default field name is "street".
func (v *Validator) StreetName(ctx context.Context, streetName string, scope StreetScope, vc *Context, fieldName string) {
	if !v.data.Streets.Available(ctx) {
		return
	}
	if fieldName == "" {
		fieldName = "street"
	}

	entered := strings.TrimSpace(streetName)
	if entered == "" {
		return
	}

	matches := v.data.Streets.FindByName(ctx, entered, refdata.StreetFilter{
		MunicipalityBFS: scope.MunicipalityBFS,
		PostalCode:      scope.PostalCode,
	})

	if len(matches) == 0 {
		v.emit(vc, newStreetNotFound(entered, scope.MunicipalityBFS, scope.MunicipalityName, scope.PostalCode, fieldName))
		return
	}

	normalized := refdata.NormalizeName(entered)
	for _, m := range matches {
		if refdata.NormalizeName(m.Name) == normalized {
			return
		}
	}

	suggested := make([]string, 0, maxStreetSuggestions)
	for _, m := range matches[:min(len(matches), maxStreetSuggestions)] {
		suggested = append(suggested, m.Name)
	}
	municipalityName := scope.MunicipalityName
	if municipalityName == "" {
		municipalityName = matches[0].MunicipalityName
	}
	v.emit(vc, newStreetSuggestion(entered, suggested, municipalityName, fieldName))
}

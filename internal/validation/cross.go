package validation

import (
	"context"
	"fmt"
	"strings"

	"github.com/openmun/swissref/internal/refdata"
)

// PostalMunicipality checks that a postal code and a BFS municipality code
// belong together: the municipality must appear among the municipalities the
// postal code's localities are assigned to. When either side does not
// resolve, the check returns without a warning — PostalTown and
// MunicipalityCode are expected to run alongside it and report that case.
// Default field names are "postal_code" and "municipality_bfs".
func (v *Validator) PostalMunicipality(ctx context.Context, postalCode, municipalityBFS string, vc *Context, postalField, municipalityField string) {
	if !v.data.Postal.Available(ctx) || !v.data.Municipalities.Available(ctx) {
		return
	}
	if postalField == "" {
		postalField = "postal_code"
	}
	if municipalityField == "" {
		municipalityField = "municipality_bfs"
	}

	localities := v.data.Postal.Localities(ctx, postalCode)
	if len(localities) == 0 {
		return
	}

	bfs := strings.TrimSpace(municipalityBFS)
	municipality, ok := v.data.Municipalities.ByCode(ctx, bfs)
	if !ok {
		return
	}

	names := make([]string, len(localities))
	for i, loc := range localities {
		if loc.BFSCode == bfs {
			return
		}
		names[i] = loc.Name
	}

	msg := fmt.Sprintf("Postal code %s belongs to %s, but BFS %s is %s",
		postalCode, displayNames(names, 3), municipalityBFS, municipality.Name)
	v.emit(vc, newCrossFieldMismatch(postalField, postalCode, municipalityField, municipalityBFS, msg, names))
}

// StreetPostal checks that a street exists within the area a postal code
// serves, optionally also scoped to a municipality. When the street is
// missing from the postal area, the warning suggests where the street does
// exist (searching again without the postal filter), or carries no
// suggestions if the street exists nowhere. An unknown postal code is
// skipped here; PostalTown reports it. Default field names are "street" and
// "postal_code".
func (v *Validator) StreetPostal(ctx context.Context, streetName, postalCode, municipalityBFS string, vc *Context, streetField, postalField string) {
	if !v.data.Streets.Available(ctx) || !v.data.Postal.Available(ctx) {
		return
	}
	if streetField == "" {
		streetField = "street"
	}
	if postalField == "" {
		postalField = "postal_code"
	}

	entered := strings.TrimSpace(streetName)
	if entered == "" {
		return
	}

	matches := v.data.Streets.FindByName(ctx, entered, refdata.StreetFilter{
		MunicipalityBFS: municipalityBFS,
		PostalCode:      postalCode,
	})
	if len(matches) > 0 {
		return
	}

	localities := v.data.Postal.Localities(ctx, postalCode)
	if len(localities) == 0 {
		return
	}

	msg := fmt.Sprintf("Street '%s' not found in postal code %s (%s)",
		entered, postalCode, localities[0].Name)

	elsewhere := v.data.Streets.FindByName(ctx, entered, refdata.StreetFilter{
		MunicipalityBFS: municipalityBFS,
	})
	var suggestions []string
	for _, m := range elsewhere[:min(len(elsewhere), 3)] {
		codes := strings.Join(m.PostalCodes[:min(len(m.PostalCodes), 2)], ", ")
		suggestions = append(suggestions, fmt.Sprintf("%s in %s (%s)", m.Name, m.MunicipalityName, codes))
	}

	v.emit(vc, newCrossFieldMismatch(streetField, entered, postalField, postalCode, msg, suggestions))
}

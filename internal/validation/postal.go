package validation

import (
	"context"
	"strings"

	"github.com/openmun/swissref/internal/refdata"
)

// PostalTown checks a postal code + town pair against the postal locality
// dataset. An unknown code yields one not-found warning; a known code whose
// localities don't match the town yields one mismatch warning carrying the
// full locality list as suggestions. Town matching is case- and
// diacritic-insensitive, and the town may be a prefix of a compound locality
// name ("Zürich" matches "Zürich Sihlpost"). Skips silently when the dataset
// is unavailable. The default field name is "postal_code + town".
func (v *Validator) PostalTown(ctx context.Context, postalCode, town string, vc *Context, fieldName string) {
	if !v.data.Postal.Available(ctx) {
		return
	}
	if fieldName == "" {
		fieldName = "postal_code + town"
	}

	localities := v.data.Postal.Localities(ctx, postalCode)
	if len(localities) == 0 {
		v.emit(vc, newPostalNotFound(postalCode, fieldName))
		return
	}

	entered := strings.TrimSpace(town)
	validTowns := make([]string, len(localities))
	matched := false
	for i, loc := range localities {
		validTowns[i] = loc.Name
		if fuzzyMatchTown(loc.Name, entered) {
			matched = true
		}
	}

	if !matched {
		v.emit(vc, newPostalMismatch(postalCode, town, validTowns, fieldName))
	}
}

// fuzzyMatchTown reports whether an entered town names the given locality:
// equal after normalization, or a prefix of it (compound locality names).
func fuzzyMatchTown(validTown, enteredTown string) bool {
	valid := refdata.NormalizeName(validTown)
	entered := refdata.NormalizeName(enteredTown)
	return valid == entered || strings.HasPrefix(valid, entered)
}

package validation

import (
	"context"
	"strings"
)

// MunicipalityCode checks a BFS municipality code against the municipality
// register. An unknown code yields one not-found warning; municipalityName,
// when supplied, is included in the message for context. Skips silently when
// the dataset is unavailable. The default field name is "municipality_bfs".
func (v *Validator) MunicipalityCode(ctx context.Context, bfsCode, municipalityName string, vc *Context, fieldName string) {
	if !v.data.Municipalities.Available(ctx) {
		return
	}
	if fieldName == "" {
		fieldName = "municipality_bfs"
	}

	if _, ok := v.data.Municipalities.ByCode(ctx, strings.TrimSpace(bfsCode)); !ok {
		v.emit(vc, newMunicipalityNotFound(bfsCode, municipalityName, fieldName))
	}
}

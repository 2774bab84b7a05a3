package validation

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/openmun/swissref/internal/observability"
	"github.com/openmun/swissref/internal/refdata"
)

// Validator runs advisory checks against the reference datasets. It holds
// only its dependencies; every check is stateless with respect to its inputs
// except for appending to the supplied Context.
type Validator struct {
	data    *refdata.Service
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Validator over the given reference-data service.
func New(data *refdata.Service, logger *slog.Logger, metrics *observability.Metrics) *Validator {
	return &Validator{
		data:    data,
		logger:  logger,
		metrics: metrics,
	}
}

// emit appends a warning to the context and counts it.
func (v *Validator) emit(vc *Context, w Warning) {
	v.metrics.WarningsEmitted.WithLabelValues(string(w.Kind), w.Severity.String()).Inc()
	vc.Add(w)
}

// CantonCode checks the code against the 26 official canton abbreviations,
// case-insensitively. An invalid code yields one warning whose suggestions
// are all 26 valid codes. Empty input is skipped. The default field name is
// "canton".
func (v *Validator) CantonCode(cantonCode string, vc *Context, fieldName string) {
	if cantonCode == "" {
		return
	}
	if fieldName == "" {
		fieldName = "canton"
	}
	upper := strings.ToUpper(strings.TrimSpace(cantonCode))
	if _, ok := cantonSet[upper]; !ok {
		v.emit(vc, newCantonInvalid(cantonCode, fieldName))
	}
}

// ReligionCode checks the code against the eCH-0011 religion code list. The
// default field name is "religion".
func (v *Validator) ReligionCode(code string, vc *Context, fieldName string) {
	if fieldName == "" {
		fieldName = "religion"
	}
	v.CodeInSet(code, ReligionCodes, "eCH-0011 religion", vc, fieldName)
}

// CodeInSet checks a code against a closed list of allowed values. An
// unknown code yields one warning carrying the full allowed list as
// suggestions; empty input is skipped. listName names the code list in the
// message (e.g. "eCH-0011 religion").
func (v *Validator) CodeInSet(code string, allowed []string, listName string, vc *Context, fieldName string) {
	if code == "" {
		return
	}
	if fieldName == "" {
		fieldName = "code"
	}
	if !slices.Contains(allowed, code) {
		v.emit(vc, newCodeInvalid(code, listName, fieldName, allowed))
	}
}

package validation

import (
	"fmt"
	"slices"
	"strings"
)

// Severity grades a warning. The ordering Info < Warning < Error is
// informational only; nothing in this package acts on it.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Kind tags what a warning is about, replacing a subclass hierarchy with one
// variant per finding.
type Kind string

const (
	KindPostalMismatch       Kind = "postal_mismatch"
	KindPostalNotFound       Kind = "postal_not_found"
	KindMunicipalityNotFound Kind = "municipality_not_found"
	KindCantonInvalid        Kind = "canton_invalid"
	KindStreetNotFound       Kind = "street_not_found"
	KindStreetSuggestion     Kind = "street_suggestion"
	KindCrossFieldMismatch   Kind = "cross_field_mismatch"
	KindCodeInvalid          Kind = "code_invalid"
)

// Warning is one advisory finding about a possible data inconsistency. It
// never blocks or mutates the inspected data. Treat it as immutable once
// constructed; constructors copy the suggestion list.
type Warning struct {
	Kind        Kind
	FieldName   string
	FieldValue  string
	Severity    Severity
	Message     string
	Suggestions []string // ordered corrections, best first; nil when none apply
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s: %s", w.Severity, w.FieldName, w.Message)
}

// displayNames joins up to max names for a message, appending "(and N more)"
// past the cut.
func displayNames(names []string, max int) string {
	if len(names) <= max {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s (and %d more)", strings.Join(names[:max], ", "), len(names)-max)
}

func newPostalMismatch(postalCode, townEntered string, validTowns []string, fieldName string) Warning {
	return Warning{
		Kind:        KindPostalMismatch,
		FieldName:   fieldName,
		FieldValue:  postalCode + " / " + townEntered,
		Severity:    SeverityWarning,
		Message:     fmt.Sprintf("Postal code %s is typically associated with: %s", postalCode, displayNames(validTowns, 3)),
		Suggestions: slices.Clone(validTowns),
	}
}

func newPostalNotFound(postalCode, fieldName string) Warning {
	return Warning{
		Kind:       KindPostalNotFound,
		FieldName:  fieldName,
		FieldValue: postalCode,
		Severity:   SeverityWarning,
		Message: fmt.Sprintf(
			"Postal code %s not found in Swiss postal code database. This may be a foreign address or a typo.",
			postalCode),
	}
}

func newMunicipalityNotFound(bfsCode, municipalityName, fieldName string) Warning {
	msg := fmt.Sprintf("BFS code %s not found in Swiss municipality database.", bfsCode)
	if municipalityName != "" {
		msg += " Municipality name provided: " + municipalityName
	}
	return Warning{
		Kind:       KindMunicipalityNotFound,
		FieldName:  fieldName,
		FieldValue: bfsCode,
		Severity:   SeverityWarning,
		Message:    msg,
	}
}

func newCantonInvalid(cantonCode, fieldName string) Warning {
	return Warning{
		Kind:       KindCantonInvalid,
		FieldName:  fieldName,
		FieldValue: cantonCode,
		Severity:   SeverityWarning,
		Message: fmt.Sprintf("Invalid canton code '%s'. Valid codes: %s",
			cantonCode, strings.Join(CantonCodes, ", ")),
		Suggestions: slices.Clone(CantonCodes),
	}
}

func newStreetNotFound(streetName, municipalityBFS, municipalityName, postalCode, fieldName string) Warning {
	var parts []string
	switch {
	case municipalityName != "" && municipalityBFS != "":
		parts = append(parts, fmt.Sprintf("%s (BFS %s)", municipalityName, municipalityBFS))
	case municipalityBFS != "":
		parts = append(parts, "BFS "+municipalityBFS)
	}
	if postalCode != "" {
		parts = append(parts, "postal code "+postalCode)
	}
	context := ""
	if len(parts) > 0 {
		context = " in " + strings.Join(parts, " / ")
	}
	return Warning{
		Kind:       KindStreetNotFound,
		FieldName:  fieldName,
		FieldValue: streetName,
		Severity:   SeverityWarning,
		Message: fmt.Sprintf(
			"Street '%s' not found in Swiss street directory%s. This may be a typo, an informal name, or a very new street.",
			streetName, context),
	}
}

func newStreetSuggestion(streetEntered string, suggested []string, municipalityName, fieldName string) Warning {
	var msg string
	if len(suggested) == 1 {
		msg = fmt.Sprintf("Did you mean '%s'?", suggested[0])
	} else {
		quoted := make([]string, len(suggested))
		for i, s := range suggested {
			quoted[i] = "'" + s + "'"
		}
		msg = "Similar streets found: " + displayNames(quoted, 3)
	}
	if municipalityName != "" {
		msg += " (in " + municipalityName + ")"
	}
	return Warning{
		Kind:        KindStreetSuggestion,
		FieldName:   fieldName,
		FieldValue:  streetEntered,
		Severity:    SeverityInfo,
		Message:     msg,
		Suggestions: slices.Clone(suggested),
	}
}

func newCrossFieldMismatch(field1Name, field1Value, field2Name, field2Value, message string, suggestions []string) Warning {
	return Warning{
		Kind:        KindCrossFieldMismatch,
		FieldName:   field1Name + " + " + field2Name,
		FieldValue:  field1Value + " / " + field2Value,
		Severity:    SeverityWarning,
		Message:     message,
		Suggestions: slices.Clone(suggestions),
	}
}

func newCodeInvalid(code, listName, fieldName string, allowed []string) Warning {
	return Warning{
		Kind:       KindCodeInvalid,
		FieldName:  fieldName,
		FieldValue: code,
		Severity:   SeverityWarning,
		Message: fmt.Sprintf("Code '%s' is not in the %s code list. Accepted values include: %s",
			code, listName, strings.Join(allowed, ", ")),
		Suggestions: slices.Clone(allowed),
	}
}

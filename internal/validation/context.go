package validation

import (
	"fmt"
	"slices"
	"strings"
)

// Context accumulates warnings over one validation run. It is append-only
// while validators run; the caller owns it and is the only party that clears
// it. No method mutates the data under validation or fails.
type Context struct {
	warnings []Warning
}

// NewContext creates an empty validation context.
func NewContext() *Context {
	return &Context{}
}

// Add appends a warning.
func (c *Context) Add(w Warning) {
	c.warnings = append(c.warnings, w)
}

// HasWarnings reports whether any warnings were collected.
func (c *Context) HasWarnings() bool {
	return len(c.warnings) > 0
}

// HasSeverity reports whether any warning of the given severity was collected.
func (c *Context) HasSeverity(s Severity) bool {
	return slices.ContainsFunc(c.warnings, func(w Warning) bool {
		return w.Severity == s
	})
}

// Warnings returns the collected warnings in append order. The returned
// slice is a copy; mutating it does not affect the context.
func (c *Context) Warnings() []Warning {
	return slices.Clone(c.warnings)
}

// ByField returns the warnings whose field name equals name.
func (c *Context) ByField(name string) []Warning {
	var out []Warning
	for _, w := range c.warnings {
		if w.FieldName == name {
			out = append(out, w)
		}
	}
	return out
}

// BySeverity returns the warnings of the given severity.
func (c *Context) BySeverity(s Severity) []Warning {
	var out []Warning
	for _, w := range c.warnings {
		if w.Severity == s {
			out = append(out, w)
		}
	}
	return out
}

// Count returns the total number of warnings.
func (c *Context) Count() int {
	return len(c.warnings)
}

// CountSeverity returns the number of warnings of the given severity.
func (c *Context) CountSeverity(s Severity) int {
	n := 0
	for _, w := range c.warnings {
		if w.Severity == s {
			n++
		}
	}
	return n
}

// Clear drops all collected warnings so the context can be reused for the
// next run.
func (c *Context) Clear() {
	c.warnings = c.warnings[:0]
}

func (c *Context) String() string {
	if len(c.warnings) == 0 {
		return "no validation warnings"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "validation warnings (%d):", len(c.warnings))
	for i, w := range c.warnings {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, w)
	}
	return b.String()
}

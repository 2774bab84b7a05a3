package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Accumulation(t *testing.T) {
	vc := NewContext()
	assert.False(t, vc.HasWarnings())
	assert.Equal(t, 0, vc.Count())

	vc.Add(newPostalNotFound("9999", "postal_code"))
	vc.Add(newCantonInvalid("XX", "canton"))
	vc.Add(newStreetSuggestion("Bahnhofstr", []string{"Bahnhofstrasse"}, "Zürich", "street"))

	assert.True(t, vc.HasWarnings())
	assert.Equal(t, 3, vc.Count())
	assert.Equal(t, 2, vc.CountSeverity(SeverityWarning))
	assert.Equal(t, 1, vc.CountSeverity(SeverityInfo))
	assert.True(t, vc.HasSeverity(SeverityInfo))
	assert.False(t, vc.HasSeverity(SeverityError))
}

func TestContext_ByField(t *testing.T) {
	vc := NewContext()
	vc.Add(newPostalNotFound("9999", "postal_code"))
	vc.Add(newCantonInvalid("XX", "canton"))

	byField := vc.ByField("canton")
	require.Len(t, byField, 1)
	assert.Equal(t, KindCantonInvalid, byField[0].Kind)
	assert.Empty(t, vc.ByField("street"))
}

func TestContext_WarningsReturnsCopy(t *testing.T) {
	vc := NewContext()
	vc.Add(newPostalNotFound("9999", "postal_code"))

	got := vc.Warnings()
	got[0].FieldName = "mutated"

	assert.Equal(t, "postal_code", vc.Warnings()[0].FieldName)
}

func TestContext_Clear(t *testing.T) {
	vc := NewContext()
	vc.Add(newPostalNotFound("9999", "postal_code"))
	vc.Clear()

	assert.False(t, vc.HasWarnings())
	assert.Equal(t, "no validation warnings", vc.String())
}

func TestContext_String(t *testing.T) {
	vc := NewContext()
	vc.Add(newCantonInvalid("XX", "canton"))

	s := vc.String()
	assert.Contains(t, s, "validation warnings (1)")
	assert.Contains(t, s, "[warning] canton:")
}

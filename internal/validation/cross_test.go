package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_PostalMunicipality(t *testing.T) {
	ctx := context.Background()
	v := newTestValidator()

	t.Run("matching pair passes", func(t *testing.T) {
		vc := NewContext()
		v.PostalMunicipality(ctx, "8001", "261", vc, "", "")
		assert.False(t, vc.HasWarnings())
	})

	t.Run("mismatched pair warns", func(t *testing.T) {
		vc := NewContext()
		v.PostalMunicipality(ctx, "8001", "2701", vc, "", "")
		require.Equal(t, 1, vc.Count())

		w := vc.Warnings()[0]
		assert.Equal(t, KindCrossFieldMismatch, w.Kind)
		assert.Equal(t, "postal_code + municipality_bfs", w.FieldName)
		assert.Equal(t, "8001 / 2701", w.FieldValue)
		assert.Equal(t, "Postal code 8001 belongs to Zürich, Zürich Sihlpost, but BFS 2701 is Basel", w.Message)
		assert.Equal(t, []string{"Zürich", "Zürich Sihlpost"}, w.Suggestions)
	})

	t.Run("unknown postal code skipped", func(t *testing.T) {
		vc := NewContext()
		v.PostalMunicipality(ctx, "9999", "261", vc, "", "")
		assert.False(t, vc.HasWarnings(), "single-field checks report unknown codes")
	})

	t.Run("unknown municipality skipped", func(t *testing.T) {
		vc := NewContext()
		v.PostalMunicipality(ctx, "8001", "9999", vc, "", "")
		assert.False(t, vc.HasWarnings())
	})

	t.Run("unavailable datasets skip silently", func(t *testing.T) {
		vc := NewContext()
		newUnavailableValidator().PostalMunicipality(ctx, "8001", "2701", vc, "", "")
		assert.False(t, vc.HasWarnings())
	})
}

func TestValidator_StreetPostal(t *testing.T) {
	ctx := context.Background()
	v := newTestValidator()

	t.Run("street served by postal code passes", func(t *testing.T) {
		vc := NewContext()
		v.StreetPostal(ctx, "Bahnhofstrasse", "8001", "", vc, "", "")
		assert.False(t, vc.HasWarnings())
	})

	t.Run("street in wrong postal code suggests where it exists", func(t *testing.T) {
		vc := NewContext()
		v.StreetPostal(ctx, "Hauptstrasse", "8001", "", vc, "", "")
		require.Equal(t, 1, vc.Count())

		w := vc.Warnings()[0]
		assert.Equal(t, KindCrossFieldMismatch, w.Kind)
		assert.Equal(t, "street + postal_code", w.FieldName)
		assert.Equal(t, "Street 'Hauptstrasse' not found in postal code 8001 (Zürich)", w.Message)
		require.Len(t, w.Suggestions, 1)
		assert.Equal(t, "Hauptstrasse in Basel (4001)", w.Suggestions[0])
	})

	t.Run("street existing nowhere warns without suggestions", func(t *testing.T) {
		vc := NewContext()
		v.StreetPostal(ctx, "Nowhere Lane", "8001", "", vc, "", "")
		require.Equal(t, 1, vc.Count())
		assert.Empty(t, vc.Warnings()[0].Suggestions)
	})

	t.Run("unknown postal code skipped", func(t *testing.T) {
		vc := NewContext()
		v.StreetPostal(ctx, "Nowhere Lane", "9999", "", vc, "", "")
		assert.False(t, vc.HasWarnings())
	})

	t.Run("municipality filter applies to both searches", func(t *testing.T) {
		vc := NewContext()
		v.StreetPostal(ctx, "Hauptstrasse", "8001", "261", vc, "", "")
		require.Equal(t, 1, vc.Count())
		assert.Empty(t, vc.Warnings()[0].Suggestions, "Hauptstrasse exists only outside BFS 261")
	})

	t.Run("empty street skipped", func(t *testing.T) {
		vc := NewContext()
		v.StreetPostal(ctx, "", "8001", "", vc, "", "")
		assert.False(t, vc.HasWarnings())
	})

	t.Run("unavailable datasets skip silently", func(t *testing.T) {
		vc := NewContext()
		newUnavailableValidator().StreetPostal(ctx, "Hauptstrasse", "8001", "", vc, "", "")
		assert.False(t, vc.HasWarnings())
	})
}

package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_PostalTown(t *testing.T) {
	ctx := context.Background()
	v := newTestValidator()

	t.Run("matching pair passes", func(t *testing.T) {
		vc := NewContext()
		v.PostalTown(ctx, "8001", "Zürich", vc, "")
		assert.False(t, vc.HasWarnings())
	})

	t.Run("case and diacritics ignored", func(t *testing.T) {
		vc := NewContext()
		v.PostalTown(ctx, "8001", "ZURICH", vc, "")
		assert.False(t, vc.HasWarnings())
	})

	t.Run("town matching compound locality prefix passes", func(t *testing.T) {
		vc := NewContext()
		v.PostalTown(ctx, "8001", "Zürich Sihl", vc, "")
		assert.False(t, vc.HasWarnings(), "entered town may be a prefix of a compound locality name")
	})

	t.Run("unknown code yields one not-found warning", func(t *testing.T) {
		vc := NewContext()
		v.PostalTown(ctx, "9999", "Nowhere", vc, "")
		require.Equal(t, 1, vc.Count())

		w := vc.Warnings()[0]
		assert.Equal(t, KindPostalNotFound, w.Kind)
		assert.Equal(t, "postal_code + town", w.FieldName)
		assert.Equal(t, "9999", w.FieldValue)
		assert.Contains(t, w.Message, "Postal code 9999 not found")
		assert.Empty(t, w.Suggestions)
	})

	t.Run("mismatched town suggests all localities", func(t *testing.T) {
		vc := NewContext()
		v.PostalTown(ctx, "8001", "Basel", vc, "")
		require.Equal(t, 1, vc.Count())

		w := vc.Warnings()[0]
		assert.Equal(t, KindPostalMismatch, w.Kind)
		assert.Equal(t, SeverityWarning, w.Severity)
		assert.Equal(t, []string{"Zürich", "Zürich Sihlpost"}, w.Suggestions)
		assert.Equal(t, "Postal code 8001 is typically associated with: Zürich, Zürich Sihlpost", w.Message)
	})

	t.Run("unavailable dataset skips silently", func(t *testing.T) {
		vc := NewContext()
		newUnavailableValidator().PostalTown(ctx, "8001", "Basel", vc, "")
		assert.False(t, vc.HasWarnings())
	})
}

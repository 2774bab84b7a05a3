package opendata

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmun/swissref/internal/refdata"
)

func TestSnapshotStore_Roundtrip(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	store := newSnapshotStore(t.TempDir(), clock)

	records := []refdata.Locality{
		{PostalCode: "8001", Name: "Zürich", BFSCode: "261"},
	}
	require.NoError(t, save(store, datasetPostal, records))

	got, fetchedAt, err := load[refdata.Locality](store, datasetPostal, 0)
	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.True(t, fetchedAt.Equal(now))
}

func TestSnapshotStore_MaxAge(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	store := newSnapshotStore(t.TempDir(), clock)
	require.NoError(t, save(store, datasetStreet, []refdata.Street{{Name: "Bahnhofstrasse"}}))

	clock.Advance(48 * time.Hour)

	t.Run("within limit", func(t *testing.T) {
		_, _, err := load[refdata.Street](store, datasetStreet, 72*time.Hour)
		assert.NoError(t, err)
	})

	t.Run("past limit", func(t *testing.T) {
		_, _, err := load[refdata.Street](store, datasetStreet, 24*time.Hour)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errStaleSnapshot))
	})

	t.Run("zero disables the check", func(t *testing.T) {
		_, _, err := load[refdata.Street](store, datasetStreet, 0)
		assert.NoError(t, err)
	})
}

func TestSnapshotStore_Missing(t *testing.T) {
	store := newSnapshotStore(t.TempDir(), clockwork.NewRealClock())
	_, _, err := load[refdata.Locality](store, datasetPostal, 0)
	require.Error(t, err)
	assert.False(t, errors.Is(err, errStaleSnapshot))
}

func TestSnapshotStore_SaveOverwrites(t *testing.T) {
	store := newSnapshotStore(t.TempDir(), clockwork.NewRealClock())

	require.NoError(t, save(store, datasetPostal, []refdata.Locality{{PostalCode: "8001", Name: "Zürich"}}))
	require.NoError(t, save(store, datasetPostal, []refdata.Locality{{PostalCode: "3011", Name: "Bern"}}))

	got, _, err := load[refdata.Locality](store, datasetPostal, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bern", got[0].Name)
}

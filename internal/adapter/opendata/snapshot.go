package opendata

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
)

// errStaleSnapshot marks a snapshot refused because of its age, so the
// provider can report stale and missing snapshots separately.
var errStaleSnapshot = errors.New("snapshot is stale")

// snapshotStore persists the last successfully fetched record set per
// dataset so the provider can serve stale-but-plausible data while the live
// source is down.
type snapshotStore struct {
	dir   string
	clock clockwork.Clock
}

func newSnapshotStore(dir string, clock clockwork.Clock) *snapshotStore {
	return &snapshotStore{dir: dir, clock: clock}
}

// envelope wraps a record set with its fetch time for age checks.
type envelope[R any] struct {
	FetchedAt time.Time
	Records   []R
}

func (s *snapshotStore) path(dataset string) string {
	return filepath.Join(s.dir, dataset+".snapshot.gob")
}

// save writes the record set atomically (temp file + rename), so a crash
// mid-write never corrupts the previous snapshot.
func save[R any](s *snapshotStore, dataset string, records []R) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, dataset+".snapshot.*")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	env := envelope[R]{FetchedAt: s.clock.Now(), Records: records}
	if err := gob.NewEncoder(tmp).Encode(env); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s snapshot: %w", dataset, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s snapshot: %w", dataset, err)
	}
	if err := os.Rename(tmp.Name(), s.path(dataset)); err != nil {
		return fmt.Errorf("replace %s snapshot: %w", dataset, err)
	}
	return nil
}

// load reads the snapshot for a dataset, refusing it when older than maxAge
// (0 disables the age check). The returned time is when the snapshot's data
// was fetched.
func load[R any](s *snapshotStore, dataset string, maxAge time.Duration) ([]R, time.Time, error) {
	f, err := os.Open(s.path(dataset))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("open %s snapshot: %w", dataset, err)
	}
	defer f.Close()

	var env envelope[R]
	if err := gob.NewDecoder(f).Decode(&env); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode %s snapshot: %w", dataset, err)
	}

	if maxAge > 0 {
		if age := s.clock.Since(env.FetchedAt); age > maxAge {
			return nil, env.FetchedAt, fmt.Errorf("%s snapshot age %s exceeds %s: %w", dataset, age, maxAge, errStaleSnapshot)
		}
	}
	return env.Records, env.FetchedAt, nil
}

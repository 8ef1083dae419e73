package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pousada/config"
	"pousada/infras/store"
	"pousada/shared/constant"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.SnapshotPath = filepath.Join(t.TempDir(), "snapshot.json")

	return cfg
}

func TestNewSeedsWhenSnapshotMissing(t *testing.T) {
	cfg := newTestConfig(t)

	s := store.New(cfg)

	s.View(func(snap *store.Snapshot) {
		assert.Len(t, snap.Rooms, 9)
		assert.Len(t, snap.Rates, 5)
		assert.Len(t, snap.Reservations, 3)
	})

	// The seed must have hit the disk too.
	data, err := os.ReadFile(cfg.Store.SnapshotPath)
	require.NoError(t, err)

	var snap store.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Len(t, snap.Rooms, 9)
}

func TestSeedTotalsAreConsistent(t *testing.T) {
	snap := store.SeedSnapshot()

	for _, reservation := range snap.Reservations {
		assert.Positive(t, reservation.Nights, "reservation %d", reservation.ID)
		assert.Positive(t, reservation.TotalPrice, "reservation %d", reservation.ID)
	}

	// One seeded reservation demonstrates the cancelled state.
	cancelled := 0
	for _, reservation := range snap.Reservations {
		if reservation.Status == constant.ReservationStatusCancelled {
			cancelled++
		}
	}

	assert.Equal(t, 1, cancelled)
}

func TestUpdatePersistsAcrossReopen(t *testing.T) {
	cfg := newTestConfig(t)

	s := store.New(cfg)

	err := s.Update(func(snap *store.Snapshot) error {
		snap.Rooms[0].Active = false

		return nil
	})
	require.NoError(t, err)

	reopened := store.New(cfg)

	reopened.View(func(snap *store.Snapshot) {
		assert.False(t, snap.Rooms[0].Active)
	})
}

func TestUpdateErrorDoesNotPersist(t *testing.T) {
	cfg := newTestConfig(t)

	s := store.New(cfg)

	wantErr := assert.AnError

	err := s.Update(func(snap *store.Snapshot) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestReset(t *testing.T) {
	cfg := newTestConfig(t)

	s := store.New(cfg)

	err := s.Update(func(snap *store.Snapshot) error {
		snap.Reservations = nil

		return nil
	})
	require.NoError(t, err)

	require.NoError(t, s.Reset())

	s.View(func(snap *store.Snapshot) {
		assert.Len(t, snap.Reservations, 3)
	})
}

func TestExternalChangeIsPickedUp(t *testing.T) {
	cfg := newTestConfig(t)

	s := store.New(cfg)

	// Rewrite the file behind the store's back with a distinct mtime.
	var snap store.Snapshot
	s.View(func(current *store.Snapshot) {
		snap = *current
	})

	snap.Rooms = snap.Rooms[:1]

	data, err := json.Marshal(&snap)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfg.Store.SnapshotPath, data, 0o644))

	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(cfg.Store.SnapshotPath, future, future))

	s.View(func(current *store.Snapshot) {
		assert.Len(t, current.Rooms, 1)
	})
}

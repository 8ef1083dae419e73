// Package store persists the whole system state as one JSON snapshot with
// three collections: rooms, rates and reservations. Every mutation saves a
// full overwrite (last-writer-wins); there is no incremental persistence
// and no merging. When another process rewrites the snapshot, the next read
// picks it up by modification time, without merging either.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"pousada/config"
	ratemodel "pousada/internal/domains/rate/model"
	resmodel "pousada/internal/domains/reservation/model"
	roommodel "pousada/internal/domains/room/model"
)

// Snapshot mirrors the persisted layout.
type Snapshot struct {
	Rooms        []roommodel.Room         `json:"rooms"`
	Rates        []ratemodel.SeasonalRate `json:"rates"`
	Reservations []resmodel.Reservation   `json:"reservations"`
}

type Store struct {
	mu      sync.Mutex
	path    string
	snap    Snapshot
	modTime time.Time
}

// New loads the snapshot at the configured path, writing the seed set on
// first start. Fails hard on IO errors, like any unavailable backing store.
func New(cfg *config.Config) *Store {
	s := &Store{
		path: cfg.Store.SnapshotPath,
	}

	if err := s.load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal().Err(err).Str("path", s.path).Msg("Failed to load state snapshot")
		}

		s.snap = SeedSnapshot()
		if err := s.save(); err != nil {
			log.Fatal().Err(err).Str("path", s.path).Msg("Failed to write seed snapshot")
		}

		log.Info().Str("path", s.path).Msg("No snapshot found, seed data written")

		return s
	}

	log.Info().
		Str("path", s.path).
		Int("rooms", len(s.snap.Rooms)).
		Int("rates", len(s.snap.Rates)).
		Int("reservations", len(s.snap.Reservations)).
		Msg("State snapshot loaded")

	return s
}

// View runs fn against the current snapshot. The snapshot must not be
// mutated through fn; copy anything that outlives the call.
func (s *Store) View(fn func(snap *Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reloadIfChanged()

	fn(&s.snap)
}

// Update runs fn against the snapshot and persists the result when fn
// succeeds. The whole file is rewritten on every call.
func (s *Store) Update(fn func(snap *Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reloadIfChanged()

	if err := fn(&s.snap); err != nil {
		return err
	}

	return s.save()
}

// Reset discards the current state and restores the seed snapshot.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = SeedSnapshot()

	return s.save()
}

// reloadIfChanged re-reads the snapshot when the file changed under us,
// e.g. another process rewrote it. Last writer wins; nothing is merged.
func (s *Store) reloadIfChanged() {
	info, err := os.Stat(s.path)
	if err != nil {
		return
	}

	if info.ModTime().Equal(s.modTime) {
		return
	}

	if err := s.load(); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("failed to reload changed snapshot, keeping in-memory state")

		return
	}

	log.Info().Str("path", s.path).Msg("snapshot changed externally, state reloaded")
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}

	// Missing keys fall back to empty collections.
	s.snap = snap

	if info, err := os.Stat(s.path); err == nil {
		s.modTime = info.ModTime()
	}

	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(&s.snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if info, err := os.Stat(s.path); err == nil {
		s.modTime = info.ModTime()
	}

	return nil
}

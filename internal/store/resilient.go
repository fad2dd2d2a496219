package store

import (
	"context"
	"errors"

	"github.com/trektrust/trektrust-backend/internal/app/model"
	"github.com/trektrust/trektrust-backend/pkg/logger"
)

// Resilient wraps a Store with best-effort-cache semantics: a missing,
// corrupt or unreadable slot falls back to a freshly seeded snapshot, and a
// failed save is logged and swallowed. Storage failures never cross this
// boundary into the workflow layer.
type Resilient struct {
	inner Store
}

func NewResilient(inner Store) *Resilient {
	return &Resilient{inner: inner}
}

// Load returns the persisted snapshot, or a seeded one when the slot is
// empty, unparseable or from a newer schema than this build understands. The
// seeded fallback is persisted best-effort so the next load round-trips.
func (s *Resilient) Load(ctx context.Context) (*model.Snapshot, error) {
	snapshot, err := s.inner.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		logger.Info().Msg("No snapshot found, seeding initial state")
		return s.reseed(ctx), nil
	case err != nil:
		logger.Warn().Err(err).Msg("Snapshot unreadable, falling back to seeded state")
		return s.reseed(ctx), nil
	case snapshot.SchemaVersion > model.SchemaVersion:
		logger.Warn().
			Int("found", snapshot.SchemaVersion).
			Int("supported", model.SchemaVersion).
			Msg("Snapshot schema is newer than this build, falling back to seeded state")
		return s.reseed(ctx), nil
	}

	// Blobs written before versioning report 0; stamp them current.
	snapshot.SchemaVersion = model.SchemaVersion
	return snapshot, nil
}

// Save persists the snapshot wholesale. Failures are logged and swallowed.
func (s *Resilient) Save(ctx context.Context, snapshot *model.Snapshot) error {
	if err := s.inner.Save(ctx, snapshot); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist snapshot, continuing with in-memory state")
	}
	return nil
}

func (s *Resilient) Close() error {
	return s.inner.Close()
}

func (s *Resilient) reseed(ctx context.Context) *model.Snapshot {
	snapshot := NewSeededSnapshot()
	if err := s.inner.Save(ctx, snapshot); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist seeded snapshot")
	}
	return snapshot
}

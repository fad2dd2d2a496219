// Package store persists the application snapshot as a single document in a
// key-value slot. Every save replaces the whole document; there are no
// partial updates, no versioned history and no locking, because there is
// exactly one writer per running session.
package store

import (
	"context"
	"errors"

	"github.com/trektrust/trektrust-backend/internal/app/model"
)

// ErrNoSnapshot is returned by Load when the slot has never been written.
var ErrNoSnapshot = errors.New("store: no snapshot")

// Store reads and writes the whole snapshot document.
type Store interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snapshot *model.Snapshot) error
	Close() error
}

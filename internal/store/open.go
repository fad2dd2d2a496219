package store

import (
	"fmt"

	"github.com/trektrust/trektrust-backend/config"
)

// Open builds the configured backend. Callers normally wrap the result in
// NewResilient.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Store.Backend {
	case "file":
		return NewFileStore(cfg.Store.Path), nil
	case "redis":
		return NewRedisStore(&cfg.Redis, cfg.Store.Key)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

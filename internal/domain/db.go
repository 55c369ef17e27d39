package domain

import "context"

// Database defines lifecycle operations for the underlying store.
// An implementation owns its own migration files and strategy, so the
// whole storage backend is swappable behind the repository interfaces.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}

// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/tbrandao/clubsheet/internal/models"
)

// Store persists the full application snapshot. The app reads the snapshot
// once at startup and rewrites it in full after every mutation; there is no
// partial-write guarantee beyond "last full write wins".
//
// This abstraction allows swapping storage backends (SQLite, a flat file,
// etc.) without changing the service layer.
type Store interface {
	// Load reads the persisted snapshot. A fresh database yields an empty
	// default state, not an error; an error means the snapshot could not
	// be read and the caller should fall back to an empty default.
	Load(ctx context.Context) (*models.AppState, error)

	// Save rewrites the full snapshot, replacing whatever was stored.
	Save(ctx context.Context, state *models.AppState) error

	// Close releases any resources held by the store.
	Close() error
}

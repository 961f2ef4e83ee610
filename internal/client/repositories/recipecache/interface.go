// Package recipecache provides the client-side persistence layer for cached
// recipe summaries. Two tables share the implementation: the saved-recipe
// (bookmark) cache and the authored-recipe cache.
package recipecache

import (
	"context"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
)

// Repository describes the operations the reconciler and authoring services
// need from the local cache. Implementations are backed by SQLite.
type Repository interface {
	// Insert adds a summary; inserting an already-present id is a no-op.
	Insert(ctx context.Context, r models.RecipeSummary) error

	// DeleteByID removes a summary; deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id string) error

	// Exists reports membership of id.
	Exists(ctx context.Context, id string) (bool, error)

	// GetByID returns a single summary or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.RecipeSummary, error)

	// GetAll returns all summaries in insertion order.
	GetAll(ctx context.Context) ([]models.RecipeSummary, error)

	// ReplaceAll atomically swaps the cache content for rs, preserving the
	// order of rs. Used when the remote record is re-fetched.
	ReplaceAll(ctx context.Context, rs []models.RecipeSummary) error
}

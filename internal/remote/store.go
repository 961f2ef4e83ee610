// Package remote defines the narrow contract the client needs from the
// backend document store: fetch a user's full record and merge-write a
// partial update. Adapters live in subpackages (rest, postgres, memory).
//
// The store offers no transactions and no field-level locking; concurrent
// writes from multiple devices resolve last-writer-wins. That limitation is
// accepted, not worked around here.
package remote

import (
	"context"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
)

// Store is the per-user document store contract.
type Store interface {
	// Fetch returns the full record for userID. A user that has never written
	// anything gets a zero-valued record, not an error.
	Fetch(ctx context.Context, userID string) (*models.UserRecord, error)

	// Merge applies the non-nil fields of patch to the user's record,
	// creating the record on first write.
	Merge(ctx context.Context, userID string, patch models.RecordPatch) error
}

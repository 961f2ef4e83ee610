// Package bookmarks keeps a user's saved-recipe set consistent between the
// device-local cache and the authoritative remote record.
//
// Every toggle is local-then-remote: the local cache is mutated first, the
// remote record is merge-written second, and the local mutation is rolled
// back if the remote write fails. The UI therefore never shows an optimistic
// state that did not actually reach the server.
package bookmarks

import (
	"context"
	"fmt"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
	"github.com/mpavlenko/recipekeeper/internal/client/repositories/recipecache"
	"github.com/mpavlenko/recipekeeper/internal/logging"
	"github.com/mpavlenko/recipekeeper/internal/remote"
)

// State is the terminal state of a toggle.
type State string

const (
	StateSaved   State = "saved"
	StateRemoved State = "removed"
)

// SyncFailedError reports a failed remote write during a toggle. The local
// mutation has been rolled back by the time the caller sees it.
type SyncFailedError struct {
	Cause error
}

func (e *SyncFailedError) Error() string {
	return fmt.Sprintf("bookmark sync failed: %v", e.Cause)
}

func (e *SyncFailedError) Unwrap() error { return e.Cause }

type Service interface {
	// IsSaved reports local membership of id. Pure read.
	IsSaved(ctx context.Context, id string) (bool, error)

	// Toggle flips the saved state of rec, syncing local-then-remote.
	Toggle(ctx context.Context, rec models.RecipeSummary) (State, error)

	// Resync replaces local membership with the remote record's membership.
	// Called on screen mount; the remote is authoritative.
	Resync(ctx context.Context) error

	// List returns the saved summaries in insertion order.
	List(ctx context.Context) ([]models.RecipeSummary, error)
}

type service struct {
	store  remote.Store
	local  recipecache.Repository
	userID string
	log    logging.Logger
}

// NewService builds a reconciler for the authenticated user identified by
// userID.
func NewService(store remote.Store, local recipecache.Repository, userID string, log logging.Logger) Service {
	return &service{store: store, local: local, userID: userID, log: log}
}

func (s *service) IsSaved(ctx context.Context, id string) (bool, error) {
	return s.local.Exists(ctx, id)
}

func (s *service) Toggle(ctx context.Context, rec models.RecipeSummary) (State, error) {
	saved, err := s.local.Exists(ctx, rec.ID)
	if err != nil {
		return "", fmt.Errorf("failed to read local state: %w", err)
	}

	if saved {
		return s.remove(ctx, rec.ID)
	}
	return s.add(ctx, rec)
}

func (s *service) add(ctx context.Context, rec models.RecipeSummary) (State, error) {
	if err := s.local.Insert(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to save locally: %w", err)
	}

	if err := s.pushSaved(ctx); err != nil {
		// roll back so the UI reflects what the server actually holds
		if rbErr := s.local.DeleteByID(ctx, rec.ID); rbErr != nil {
			s.log.Error(ctx, "rollback after failed sync also failed", "recipe_id", rec.ID, "error", rbErr.Error())
		}
		return "", &SyncFailedError{Cause: err}
	}

	return StateSaved, nil
}

func (s *service) remove(ctx context.Context, id string) (State, error) {
	// keep the payload around for rollback before deleting it
	prev, err := s.local.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to read local state: %w", err)
	}

	if err := s.local.DeleteByID(ctx, id); err != nil {
		return "", fmt.Errorf("failed to remove locally: %w", err)
	}

	if err := s.pushSaved(ctx); err != nil {
		if rbErr := s.local.Insert(ctx, *prev); rbErr != nil {
			s.log.Error(ctx, "rollback after failed sync also failed", "recipe_id", id, "error", rbErr.Error())
		}
		return "", &SyncFailedError{Cause: err}
	}

	return StateRemoved, nil
}

// pushSaved merge-writes the current local set as the remote saved list.
func (s *service) pushSaved(ctx context.Context) error {
	list, err := s.local.GetAll(ctx)
	if err != nil {
		return err
	}
	if list == nil {
		list = []models.RecipeSummary{}
	}
	return s.store.Merge(ctx, s.userID, models.RecordPatch{SavedRecipes: &list})
}

func (s *service) Resync(ctx context.Context) error {
	rec, err := s.store.Fetch(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to fetch remote record: %w", err)
	}

	if err := s.local.ReplaceAll(ctx, rec.SavedRecipes); err != nil {
		return fmt.Errorf("failed to replace local cache: %w", err)
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]models.RecipeSummary, error) {
	return s.local.GetAll(ctx)
}

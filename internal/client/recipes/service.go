// Package recipes manages the user's own authored recipes. It mirrors the
// bookmark reconciler's local-then-remote discipline over the MyRecipes
// field of the remote record, with a local cache for offline display.
package recipes

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
	"github.com/mpavlenko/recipekeeper/internal/client/repositories/recipecache"
	"github.com/mpavlenko/recipekeeper/internal/remote"
)

type Service interface {
	// Add stores a new authored recipe. A missing ID is assigned.
	Add(ctx context.Context, rec models.RecipeSummary) (models.RecipeSummary, error)

	// Delete removes an authored recipe by id.
	Delete(ctx context.Context, id string) error

	// List returns authored recipes in creation order.
	List(ctx context.Context) ([]models.RecipeSummary, error)

	// Resync replaces the local cache with the remote record's list.
	Resync(ctx context.Context) error
}

type service struct {
	store  remote.Store
	local  recipecache.Repository
	userID string
}

func NewService(store remote.Store, local recipecache.Repository, userID string) Service {
	return &service{store: store, local: local, userID: userID}
}

func (s *service) Add(ctx context.Context, rec models.RecipeSummary) (models.RecipeSummary, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	if err := s.local.Insert(ctx, rec); err != nil {
		return models.RecipeSummary{}, fmt.Errorf("failed to store recipe locally: %w", err)
	}

	if err := s.pushMine(ctx); err != nil {
		if rbErr := s.local.DeleteByID(ctx, rec.ID); rbErr != nil {
			return models.RecipeSummary{}, fmt.Errorf("sync failed and rollback failed: %w", rbErr)
		}
		return models.RecipeSummary{}, fmt.Errorf("failed to sync recipe: %w", err)
	}

	return rec, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	prev, err := s.local.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.local.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe locally: %w", err)
	}

	if err := s.pushMine(ctx); err != nil {
		_ = s.local.Insert(ctx, *prev)
		return fmt.Errorf("failed to sync deletion: %w", err)
	}
	return nil
}

func (s *service) pushMine(ctx context.Context) error {
	list, err := s.local.GetAll(ctx)
	if err != nil {
		return err
	}
	if list == nil {
		list = []models.RecipeSummary{}
	}
	return s.store.Merge(ctx, s.userID, models.RecordPatch{MyRecipes: &list})
}

func (s *service) List(ctx context.Context) ([]models.RecipeSummary, error) {
	return s.local.GetAll(ctx)
}

func (s *service) Resync(ctx context.Context) error {
	rec, err := s.store.Fetch(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to fetch remote record: %w", err)
	}
	return s.local.ReplaceAll(ctx, rec.MyRecipes)
}

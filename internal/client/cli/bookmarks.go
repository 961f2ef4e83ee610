package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mpavlenko/recipekeeper/internal/client/bookmarks"
	"github.com/mpavlenko/recipekeeper/internal/client/models"
)

// ToggleSaved flips the saved state of a recipe. Saving a recipe that is not
// in the local cache requires it to be in the last search results, since the
// full payload is needed for the cache row.
func (a *App) ToggleSaved(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	saved, err := a.bookmarks.IsSaved(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	rec := models.RecipeSummary{ID: id}
	if !saved {
		r, ok := a.lastResults[id]
		if !ok {
			fmt.Fprintln(a.out, "Unknown recipe id, run a search first.")
			return nil
		}
		rec = r
	}

	state, err := a.bookmarks.Toggle(ctx, rec)
	if err != nil {
		var syncErr *bookmarks.SyncFailedError
		if errors.As(err, &syncErr) {
			fmt.Fprintln(a.out, "Could not reach the server, the recipe was left unchanged.")
		} else {
			log.Println(err.Error())
		}
		return err
	}

	switch state {
	case bookmarks.StateSaved:
		fmt.Fprintf(a.out, "Saved %s.\n", id)
	case bookmarks.StateRemoved:
		fmt.Fprintf(a.out, "Removed %s.\n", id)
	}
	return nil
}

func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	items, err := a.bookmarks.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No saved recipes.")
		return nil
	}
	for _, r := range items {
		printRecipe(a.out, r)
	}
	return nil
}

// Sync re-pulls the remote record, making it authoritative for both the
// saved list and the authored list.
func (a *App) Sync(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	if err := a.bookmarks.Resync(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	if err := a.mine.Resync(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Synced.")
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
	"github.com/mpavlenko/recipekeeper/internal/client/search"
	"github.com/mpavlenko/recipekeeper/internal/common"
)

// Search runs a free-text recipe search and remembers the results so that a
// following "save <id>" can resolve the full recipe payload.
func (a *App) Search(ctx context.Context, text string) error {
	results, err := a.searcher.Search(ctx, search.Query{Text: text})
	if err != nil {
		var rateLimited *search.RateLimitedError
		switch {
		case errors.As(err, &rateLimited):
			fmt.Fprintf(a.out, "Search is cooling down, try again in %s.\n",
				(time.Duration(rateLimited.RemainingSeconds) * time.Second).String())
		case errors.Is(err, common.ErrAllKeysExhausted):
			fmt.Fprintln(a.out, "All search credentials are exhausted, search is paused for a day.")
			a.feed.Push("Search paused", "All search credentials hit their limits. Search resumes automatically in 24 hours.")
		case errors.Is(err, common.ErrNoAPIKeys):
			fmt.Fprintln(a.out, "No search credentials configured, set RK_API_KEYS or the -k flag.")
		default:
			log.Printf("Search failed: %s", err.Error())
		}
		return err
	}

	a.lastResults = make(map[string]models.RecipeSummary, len(results))
	for _, r := range results {
		a.lastResults[r.ID] = r
	}

	if len(results) == 0 {
		fmt.Fprintln(a.out, "No recipes found.")
		return nil
	}
	for _, r := range results {
		printRecipe(a.out, r)
	}
	return nil
}

func printRecipe(w io.Writer, r models.RecipeSummary) {
	line := fmt.Sprintf("[%s] %s", r.ID, r.Title)
	if tags := r.DietaryTags(); len(tags) > 0 {
		line += " (" + strings.Join(tags, ", ") + ")"
	}
	fmt.Fprintln(w, line)
}

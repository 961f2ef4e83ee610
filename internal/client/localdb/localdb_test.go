package localdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
)

func TestInitDatabase_MigratesAndWiresRepos(t *testing.T) {
	ctx := context.Background()

	repos, err := InitDatabase(ctx, "file:localdb_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	// all three tables exist and are usable
	require.NoError(t, repos.Saved.Insert(ctx, models.RecipeSummary{ID: "1", Title: "Syrniki"}))
	require.NoError(t, repos.Mine.Insert(ctx, models.RecipeSummary{ID: "2", Title: "Okroshka"}))
	require.NoError(t, repos.Metadata.Set(ctx, "k", []byte("v")))

	saved, err := repos.Saved.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)

	mine, err := repos.Mine.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	// migrations are idempotent
	require.NoError(t, RunMigrations(ctx, repos.DB))
}

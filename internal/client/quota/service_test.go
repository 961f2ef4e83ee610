package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mpavlenko/recipekeeper/internal/clock"
	"github.com/mpavlenko/recipekeeper/internal/common"
	remotememory "github.com/mpavlenko/recipekeeper/internal/remote/memory"
)

const testUser = "u@example.com"

func TestConsume_AllowsExactlyThreePerMonth(t *testing.T) {
	ctx := context.Background()
	store := remotememory.NewStore()
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC))
	svc := NewService(store, clk)

	for i := 0; i < MonthlyUploadLimit; i++ {
		require.NoError(t, svc.Consume(ctx, testUser), "upload %d within the limit", i+1)
	}

	err := svc.Consume(ctx, testUser)
	require.ErrorIs(t, err, common.ErrQuotaExceeded)

	rec, err := store.Fetch(ctx, testUser)
	require.NoError(t, err)
	require.Equal(t, MonthlyUploadLimit, rec.UploadCount, "rejected attempt must not write")
}

func TestConsume_MonthRolloverResetsToOne(t *testing.T) {
	ctx := context.Background()
	store := remotememory.NewStore()
	clk := clock.NewFakeClock(time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC))
	svc := NewService(store, clk)

	for i := 0; i < MonthlyUploadLimit; i++ {
		require.NoError(t, svc.Consume(ctx, testUser))
	}
	require.ErrorIs(t, svc.Consume(ctx, testUser), common.ErrQuotaExceeded)

	clk.Advance(2 * time.Hour) // into September

	require.NoError(t, svc.Consume(ctx, testUser), "new month must be allowed")

	rec, err := store.Fetch(ctx, testUser)
	require.NoError(t, err)
	require.Equal(t, 1, rec.UploadCount)
	require.Equal(t, "2026-09", rec.LastUploadMonth)
}

func TestConsume_FirstUploadEverCountsAsOne(t *testing.T) {
	ctx := context.Background()
	store := remotememory.NewStore()
	clk := clock.NewFakeClock(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	svc := NewService(store, clk)

	require.NoError(t, svc.Consume(ctx, testUser))

	rec, err := store.Fetch(ctx, testUser)
	require.NoError(t, err)
	require.Equal(t, 1, rec.UploadCount)
	require.Equal(t, "2026-08", rec.LastUploadMonth)
}

func TestConsume_FetchErrorSurfaces(t *testing.T) {
	ctx := context.Background()
	store := remotememory.NewStore()
	store.FetchErr = errors.New("offline")
	svc := NewService(store, clock.NewFakeClock(time.Now()))

	require.Error(t, svc.Consume(ctx, testUser))
}

func TestRemaining(t *testing.T) {
	ctx := context.Background()
	store := remotememory.NewStore()
	clk := clock.NewFakeClock(time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
	svc := NewService(store, clk)

	left, err := svc.Remaining(ctx, testUser)
	require.NoError(t, err)
	require.Equal(t, MonthlyUploadLimit, left)

	require.NoError(t, svc.Consume(ctx, testUser))
	require.NoError(t, svc.Consume(ctx, testUser))

	left, err = svc.Remaining(ctx, testUser)
	require.NoError(t, err)
	require.Equal(t, 1, left)

	clk.Advance(31 * 24 * time.Hour)
	left, err = svc.Remaining(ctx, testUser)
	require.NoError(t, err)
	require.Equal(t, MonthlyUploadLimit, left, "stale month means a fresh allowance")
}

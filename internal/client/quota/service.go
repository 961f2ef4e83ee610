// Package quota enforces the per-user monthly upload allowance against the
// remote record. The check is read-then-merge without a transaction, same as
// every other remote-record write; the remote store resolves races
// last-writer-wins.
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
	"github.com/mpavlenko/recipekeeper/internal/clock"
	"github.com/mpavlenko/recipekeeper/internal/common"
	"github.com/mpavlenko/recipekeeper/internal/remote"
)

// MonthlyUploadLimit is the upload ceiling per calendar month.
const MonthlyUploadLimit = 3

type Service struct {
	store remote.Store
	clock clock.Clock
}

func NewService(store remote.Store, clk clock.Clock) *Service {
	return &Service{store: store, clock: clk}
}

// monthKey formats t as the calendar-month identifier stored in the record.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Consume takes one unit of the user's monthly allowance. A new calendar
// month resets the counter to 1 regardless of last month's usage; within a
// month the counter increments up to the limit, after which
// common.ErrQuotaExceeded is returned and nothing is written.
func (s *Service) Consume(ctx context.Context, userID string) error {
	rec, err := s.store.Fetch(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to read quota: %w", err)
	}

	month := monthKey(s.clock.Now())
	count := 1
	if rec.LastUploadMonth == month {
		if rec.UploadCount >= MonthlyUploadLimit {
			return common.ErrQuotaExceeded
		}
		count = rec.UploadCount + 1
	}

	patch := models.RecordPatch{UploadCount: &count, LastUploadMonth: &month}
	if err := s.store.Merge(ctx, userID, patch); err != nil {
		return fmt.Errorf("failed to update quota: %w", err)
	}
	return nil
}

// Remaining reports how many uploads are left this month. Display helper;
// it can race with Consume like any other read of the record.
func (s *Service) Remaining(ctx context.Context, userID string) (int, error) {
	rec, err := s.store.Fetch(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to read quota: %w", err)
	}

	if rec.LastUploadMonth != monthKey(s.clock.Now()) {
		return MonthlyUploadLimit, nil
	}
	left := MonthlyUploadLimit - rec.UploadCount
	if left < 0 {
		left = 0
	}
	return left, nil
}

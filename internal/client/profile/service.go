// Package profile handles the quota-gated profile photo upload.
package profile

import (
	"context"
	"fmt"

	"github.com/mpavlenko/recipekeeper/internal/blob"
	"github.com/mpavlenko/recipekeeper/internal/client/quota"
	"github.com/mpavlenko/recipekeeper/internal/logging"
)

type Service struct {
	quota    *quota.Service
	uploader blob.Uploader
	log      logging.Logger
}

func NewService(q *quota.Service, uploader blob.Uploader, log logging.Logger) *Service {
	return &Service{quota: q, uploader: uploader, log: log}
}

// PhotoKey derives the storage key for a user's profile photo. One photo per
// user; re-uploads overwrite.
func PhotoKey(userID string) string {
	return fmt.Sprintf("profiles/%s/photo.jpg", userID)
}

// UploadPhoto consumes one unit of the monthly allowance and stores the
// image, returning its URL. The unit is consumed before the upload; an
// upload failure after a consumed unit is surfaced as-is.
func (s *Service) UploadPhoto(ctx context.Context, userID string, data []byte) (string, error) {
	if err := s.quota.Consume(ctx, userID); err != nil {
		return "", err
	}

	url, err := s.uploader.Put(ctx, PhotoKey(userID), data, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("photo upload failed: %w", err)
	}

	s.log.Info(ctx, "profile photo uploaded", "user", userID, "bytes", len(data))
	return url, nil
}

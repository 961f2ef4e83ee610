// Package rest implements remote.Store against the backend-as-a-service
// HTTP JSON API. This is the production adapter; it authenticates every
// request with the session's bearer token.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
	"github.com/mpavlenko/recipekeeper/internal/common"
)

const requestTimeout = 12 * time.Second

// TokenFunc supplies the current bearer token. It is called per request so
// refreshed sessions are picked up without rebuilding the store.
type TokenFunc func() string

type Store struct {
	baseURL string
	client  *http.Client
	token   TokenFunc
}

func NewStore(baseURL string, token TokenFunc) *Store {
	return &Store{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
		token:   token,
	}
}

func (s *Store) recordURL(userID string) string {
	return fmt.Sprintf("%s/v1/users/%s/record", s.baseURL, url.PathEscape(userID))
}

func (s *Store) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	if s.token != nil {
		if t := s.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
	return s.client.Do(req)
}

func (s *Store) Fetch(ctx context.Context, userID string) (*models.UserRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.recordURL(userID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("record fetch failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// First session for this user: no record yet.
		return &models.UserRecord{}, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, common.ErrorUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("record fetch: unexpected status %d", resp.StatusCode)
	}

	var rec models.UserRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("record fetch: decoding response: %w", err)
	}
	return &rec, nil
}

func (s *Store) Merge(ctx context.Context, userID string, patch models.RecordPatch) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, s.recordURL(userID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.do(req)
	if err != nil {
		return fmt.Errorf("record merge failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("record merge: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Package postgres implements remote.Store over a single JSONB document
// table, for self-hosted deployments that do not use the hosted
// backend-as-a-service. The merge runs inside a transaction, so a single
// store instance gets row-level read-modify-write atomicity; cross-device
// semantics remain last-writer-wins like the hosted store.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate creates the document table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_records (
			user_id TEXT PRIMARY KEY,
			record  JSONB NOT NULL
		)
	`)
	return err
}

func (s *Store) Fetch(ctx context.Context, userID string) (*models.UserRecord, error) {
	if s.pool == nil {
		return nil, errors.New("nil postgres pool")
	}

	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM user_records WHERE user_id = $1`, userID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return &models.UserRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user record: %w", err)
	}

	var rec models.UserRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode user record: %w", err)
	}
	return &rec, nil
}

func (s *Store) Merge(ctx context.Context, userID string, patch models.RecordPatch) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var rec models.UserRecord
	var raw []byte
	err = tx.QueryRow(ctx,
		`SELECT record FROM user_records WHERE user_id = $1 FOR UPDATE`, userID).Scan(&raw)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// first write creates the record
	case err != nil:
		return fmt.Errorf("failed to read user record: %w", err)
	default:
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("failed to decode user record: %w", err)
		}
	}

	patch.Apply(&rec)

	merged, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO user_records (user_id, record) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET record = EXCLUDED.record
	`, userID, merged)
	if err != nil {
		return fmt.Errorf("failed to upsert user record: %w", err)
	}

	return tx.Commit(ctx)
}

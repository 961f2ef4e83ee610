package recipecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
	"github.com/mpavlenko/recipekeeper/internal/common"
	"github.com/mpavlenko/recipekeeper/internal/dbx"
)

// Table names the SQLiteRepository can be bound to.
const (
	TableSaved = "saved_recipes"
	TableMine  = "my_recipes"
)

// SQLiteRepository implements Repository over a dbx.DBTX bound to one of the
// recipe cache tables.
type SQLiteRepository struct {
	db    *sql.DB
	table string
}

func NewSQLiteRepository(db *sql.DB, table string) *SQLiteRepository {
	return &SQLiteRepository{db: db, table: table}
}

func encodeIngredients(in []string) (string, error) {
	if in == nil {
		in = []string{}
	}
	b, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *SQLiteRepository) insertOne(ctx context.Context, db dbx.DBTX, rec models.RecipeSummary) error {
	ingredients, err := encodeIngredients(rec.Ingredients)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`INSERT INTO %s
			(id, title, image_url, vegetarian, vegan, gluten_free, dairy_free, ingredients, instructions)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING`, r.table)
	_, err = db.ExecContext(ctx, query,
		rec.ID, rec.Title, rec.ImageURL,
		rec.Vegetarian, rec.Vegan, rec.GlutenFree, rec.DairyFree,
		ingredients, rec.Instructions)
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, rec models.RecipeSummary) error {
	return r.insertOne(ctx, r.db, rec)
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.table)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE id = ?`, r.table)
	var one int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check recipe: %w", err)
	}
	return true, nil
}

func scanSummary(scan func(dest ...any) error) (models.RecipeSummary, error) {
	var rec models.RecipeSummary
	var ingredients string
	err := scan(&rec.ID, &rec.Title, &rec.ImageURL,
		&rec.Vegetarian, &rec.Vegan, &rec.GlutenFree, &rec.DairyFree,
		&ingredients, &rec.Instructions)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal([]byte(ingredients), &rec.Ingredients); err != nil {
		return rec, fmt.Errorf("failed to decode ingredients: %w", err)
	}
	return rec, nil
}

const summaryColumns = `id, title, image_url, vegetarian, vegan, gluten_free, dairy_free, ingredients, instructions`

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.RecipeSummary, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, summaryColumns, r.table)
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := scanSummary(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &rec, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.RecipeSummary, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY position`, summaryColumns, r.table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select recipes: %w", err)
	}
	defer rows.Close()

	var result []models.RecipeSummary
	for rows.Next() {
		rec, err := scanSummary(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceAll swaps the whole table content inside one transaction so readers
// never observe a half-replaced cache.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, rs []models.RecipeSummary) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, r.table)); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		for _, rec := range rs {
			if err := r.insertOne(ctx, tx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/article-api/internal/models"
)

// ReferenceRepository reads the localized lookup tables (categories, regions, article types, tags).
type ReferenceRepository struct {
	db *sqlx.DB
}

// NewReferenceRepository creates a new repository instance.
func NewReferenceRepository(db *sqlx.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// FindLocalized returns one visible row of the given table.
func (r *ReferenceRepository) FindLocalized(ctx context.Context, kind models.ReferenceKind, id int64) (*models.ReferenceItem, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}
	query := fmt.Sprintf(`SELECT id, key, name_uz, name_ru, name_en FROM %s WHERE id = $1 AND visible = TRUE`, kind)
	var item models.ReferenceItem
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find %s: %w", kind, err)
	}
	return &item, nil
}

// FindManyLocalized returns the visible rows among ids, ordered by id.
func (r *ReferenceRepository) FindManyLocalized(ctx context.Context, kind models.ReferenceKind, ids []int64) ([]models.ReferenceItem, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}
	if len(ids) == 0 {
		return []models.ReferenceItem{}, nil
	}
	query := fmt.Sprintf(`SELECT id, key, name_uz, name_ru, name_en FROM %s WHERE id = ANY($1) AND visible = TRUE ORDER BY id`, kind)
	items := make([]models.ReferenceItem, 0, len(ids))
	if err := r.db.SelectContext(ctx, &items, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return items, nil
}

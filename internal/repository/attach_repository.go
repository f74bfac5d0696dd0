package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/article-api/internal/models"
)

// AttachRepository reads attachment metadata.
type AttachRepository struct {
	db *sqlx.DB
}

// NewAttachRepository creates a new repository instance.
func NewAttachRepository(db *sqlx.DB) *AttachRepository {
	return &AttachRepository{db: db}
}

// FindByID returns attachment metadata by id.
func (r *AttachRepository) FindByID(ctx context.Context, id string) (*models.Attach, error) {
	const query = `SELECT id, origin_name, path, extension, size, created_at FROM attachments WHERE id = $1`
	var attach models.Attach
	if err := r.db.GetContext(ctx, &attach, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find attachment: %w", err)
	}
	return &attach, nil
}

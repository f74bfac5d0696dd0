package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/article-api/internal/models"
)

// LikeRepository aggregates article reactions.
type LikeRepository struct {
	db *sqlx.DB
}

// NewLikeRepository creates a new repository instance.
func NewLikeRepository(db *sqlx.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// CountByStatus returns reaction totals keyed by status for one article.
func (r *LikeRepository) CountByStatus(ctx context.Context, articleID int64) (map[models.LikeStatus]int64, error) {
	const query = `SELECT status, COUNT(*) AS total FROM article_likes WHERE article_id = $1 GROUP BY status`
	var rows []struct {
		Status models.LikeStatus `db:"status"`
		Total  int64             `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, articleID); err != nil {
		return nil, fmt.Errorf("count article likes: %w", err)
	}
	counts := make(map[models.LikeStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

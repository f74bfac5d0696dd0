package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/article-api/internal/models"
)

// ErrDuplicateTitle reports a write rejected by the unique title constraint.
var ErrDuplicateTitle = errors.New("article title already exists")

const uniqueViolation = "23505"

const articleColumns = `id, title, description, content, status, visible, profile_id, publisher_id, attach_id, category_id, region_id, type_id, tag_ids, view_count, shared_count, created_at, updated_at, published_at`

// ArticleRepository handles persistence for articles.
type ArticleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository creates a new repository instance.
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Create inserts the article and stores the generated id on it.
func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}
	if article.Status == "" {
		article.Status = models.ArticleStatusCreated
	}
	if article.TagIDs == nil {
		article.TagIDs = pq.Int64Array{}
	}

	const query = `INSERT INTO articles (title, description, content, status, visible, profile_id, attach_id, category_id, region_id, type_id, tag_ids, view_count, shared_count, created_at)
VALUES (:title, :description, :content, :status, :visible, :profile_id, :attach_id, :category_id, :region_id, :type_id, :tag_ids, :view_count, :shared_count, :created_at)
RETURNING id`
	rows, err := r.db.NamedQueryContext(ctx, query, article)
	if err != nil {
		return fmt.Errorf("create article: %w", duplicateTitle(err))
	}
	defer rows.Close() //nolint:errcheck
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("create article: %w", duplicateTitle(err))
		}
		return fmt.Errorf("create article: no id returned")
	}
	if err := rows.Scan(&article.ID); err != nil {
		return fmt.Errorf("scan article id: %w", err)
	}
	return nil
}

// FindByID returns an article by id. sql.ErrNoRows is returned unwrapped when absent.
func (r *ArticleRepository) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	var article models.Article
	if err := r.db.GetContext(ctx, &article, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return &article, nil
}

// FindByIDAndStatus returns an article by id only when it has the given status.
func (r *ArticleRepository) FindByIDAndStatus(ctx context.Context, id int64, status models.ArticleStatus) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1 AND status = $2`
	var article models.Article
	if err := r.db.GetContext(ctx, &article, query, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find article by id and status: %w", err)
	}
	return &article, nil
}

// FindByTitle returns the article with the exact title or nil when none exists.
func (r *ArticleRepository) FindByTitle(ctx context.Context, title string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE title = $1 LIMIT 1`
	var article models.Article
	if err := r.db.GetContext(ctx, &article, query, title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find article by title: %w", err)
	}
	return &article, nil
}

// ListVisible returns one page of articles with the given visibility, newest first.
func (r *ArticleRepository) ListVisible(ctx context.Context, visible bool, page, size int) ([]models.Article, int, error) {
	limit, offset := pageWindow(page, size)
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE visible = $1 ORDER BY created_at DESC LIMIT %d OFFSET %d`, articleColumns, limit, offset)
	articles := make([]models.Article, 0, limit)
	if err := r.db.SelectContext(ctx, &articles, query, visible); err != nil {
		return nil, 0, fmt.Errorf("list visible articles: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM articles WHERE visible = $1`, visible); err != nil {
		return nil, 0, fmt.Errorf("count visible articles: %w", err)
	}
	return articles, total, nil
}

// ListByType returns one page of articles of a type, newest first.
func (r *ArticleRepository) ListByType(ctx context.Context, typeID int64, page, size int) ([]models.Article, int, error) {
	limit, offset := pageWindow(page, size)
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE type_id = $1 ORDER BY created_at DESC LIMIT %d OFFSET %d`, articleColumns, limit, offset)
	articles := make([]models.Article, 0, limit)
	if err := r.db.SelectContext(ctx, &articles, query, typeID); err != nil {
		return nil, 0, fmt.Errorf("list articles by type: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM articles WHERE type_id = $1`, typeID); err != nil {
		return nil, 0, fmt.Errorf("count articles by type: %w", err)
	}
	return articles, total, nil
}

// TopByTypeAndStatus returns the newest n visible articles of a type and status as a projection.
func (r *ArticleRepository) TopByTypeAndStatus(ctx context.Context, typeID int64, status models.ArticleStatus, n int) ([]models.ArticleShort, error) {
	if n <= 0 {
		n = 5
	}
	const query = `SELECT id, title, description, attach_id, published_at FROM articles WHERE type_id = $1 AND status = $2 AND visible = TRUE ORDER BY created_at DESC LIMIT $3`
	items := make([]models.ArticleShort, 0, n)
	if err := r.db.SelectContext(ctx, &items, query, typeID, status, n); err != nil {
		return nil, fmt.Errorf("top articles by type: %w", err)
	}
	return items, nil
}

// Update rewrites the editable text fields and the author.
func (r *ArticleRepository) Update(ctx context.Context, article *models.Article) error {
	const query = `UPDATE articles SET title = :title, description = :description, content = :content, profile_id = :profile_id, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, article); err != nil {
		return fmt.Errorf("update article: %w", duplicateTitle(err))
	}
	return nil
}

// SetVisible flips the soft-delete flag and returns the affected row count.
func (r *ArticleRepository) SetVisible(ctx context.Context, id int64, visible bool) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE articles SET visible = $2 WHERE id = $1`, id, visible)
	if err != nil {
		return 0, fmt.Errorf("set article visibility: %w", err)
	}
	return rowsAffected(res)
}

// SetViewCount stores the given view count and returns the affected row count.
func (r *ArticleRepository) SetViewCount(ctx context.Context, id int64, count int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE articles SET view_count = $2 WHERE id = $1`, id, count)
	if err != nil {
		return 0, fmt.Errorf("set article view count: %w", err)
	}
	return rowsAffected(res)
}

// IncrementSharedCount adds one share in a single statement.
func (r *ArticleRepository) IncrementSharedCount(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE articles SET shared_count = shared_count + 1 WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("increment article shared count: %w", err)
	}
	return rowsAffected(res)
}

// SetStatus changes the lifecycle status; publishedAt is only written when non-nil.
func (r *ArticleRepository) SetStatus(ctx context.Context, id int64, status models.ArticleStatus, publisherID int64, publishedAt *time.Time) (int64, error) {
	const query = `UPDATE articles SET status = $2, publisher_id = $3, published_at = COALESCE($4::timestamptz, published_at), updated_at = $5 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status, publisherID, publishedAt, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("set article status: %w", err)
	}
	return rowsAffected(res)
}

// duplicateTitle maps a unique violation onto ErrDuplicateTitle. title is the
// only unique column besides the primary key.
func duplicateTitle(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateTitle
	}
	return err
}

func pageWindow(page, size int) (limit, offset int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 5
	}
	if size > 100 {
		size = 100
	}
	// Bound page*size so OFFSET cannot overflow.
	if page > math.MaxInt32/size {
		page = math.MaxInt32 / size
	}
	return size, page * size
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

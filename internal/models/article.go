package models

import (
	"time"

	"github.com/lib/pq"
)

// ArticleStatus is the lifecycle stage of an article.
type ArticleStatus string

const (
	ArticleStatusCreated   ArticleStatus = "CREATED"
	ArticleStatusPublished ArticleStatus = "PUBLISHED"
	ArticleStatusBlocked   ArticleStatus = "BLOCKED"
)

// Valid reports whether the status is one of the known values.
func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleStatusCreated, ArticleStatusPublished, ArticleStatusBlocked:
		return true
	}
	return false
}

// Article is a row of the articles table.
type Article struct {
	ID          int64         `db:"id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Content     string        `db:"content"`
	Status      ArticleStatus `db:"status"`
	Visible     bool          `db:"visible"`
	ProfileID   int64         `db:"profile_id"`
	PublisherID *int64        `db:"publisher_id"`
	AttachID    *string       `db:"attach_id"`
	CategoryID  int64         `db:"category_id"`
	RegionID    int64         `db:"region_id"`
	TypeID      int64         `db:"type_id"`
	TagIDs      pq.Int64Array `db:"tag_ids"`
	ViewCount   int64         `db:"view_count"`
	SharedCount int64         `db:"shared_count"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   *time.Time    `db:"updated_at"`
	PublishedAt *time.Time    `db:"published_at"`
}

// ArticleShort is the projection used by the latest-by-type query.
type ArticleShort struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	AttachID    *string    `db:"attach_id"`
	PublishedAt *time.Time `db:"published_at"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

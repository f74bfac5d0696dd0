package dto

import (
	"time"

	"github.com/noah-isme/article-api/internal/models"
)

// ArticleRequest is the write payload for creating and updating articles.
type ArticleRequest struct {
	Title       string  `json:"title" validate:"required,notblank,max=255"`
	Description string  `json:"description" validate:"required,notblank"`
	Content     string  `json:"content" validate:"required,notblank"`
	AttachID    *string `json:"attachId" validate:"omitempty,uuid"`
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
	RegionID    int64   `json:"regionId" validate:"required,gt=0"`
	TypeID      int64   `json:"typeId" validate:"required,gt=0"`
	TagIDs      []int64 `json:"tagIdList" validate:"omitempty,dive,gt=0"`
}

// ChangeStatusRequest moves an article through its lifecycle.
type ChangeStatusRequest struct {
	Status models.ArticleStatus `json:"status" validate:"required,oneof=CREATED PUBLISHED BLOCKED"`
}

// AttachURL is the open-access link of an attachment.
type AttachURL struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// DisplayValue is a reference entity rendered in one language.
type DisplayValue struct {
	ID   int64  `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// LikeCount aggregates reactions on an article.
type LikeCount struct {
	LikeCount    int64 `json:"likeCount"`
	DislikeCount int64 `json:"dislikeCount"`
}

// ArticleBasic carries the article's own fields without provider lookups.
type ArticleBasic struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	ProfileID   int64      `json:"profileId"`
	CreatedAt   time.Time  `json:"createdDate"`
	UpdatedAt   *time.Time `json:"updatedDate,omitempty"`
	PublishedAt *time.Time `json:"publishedDate,omitempty"`
	Image       *AttachURL `json:"image,omitempty"`
}

// ArticleShort is the lightweight shape returned by the latest-by-type feed.
type ArticleShort struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PublishedAt *time.Time `json:"publishedDate,omitempty"`
	Image       *AttachURL `json:"image,omitempty"`
}

// ArticleDetail is the fully resolved read model for one language.
type ArticleDetail struct {
	ArticleBasic
	Status      models.ArticleStatus `json:"status"`
	Visible     bool                 `json:"visible"`
	ViewCount   int64                `json:"viewCount"`
	SharedCount int64                `json:"sharedCount"`
	Like        LikeCount            `json:"like"`
	Category    DisplayValue         `json:"category"`
	Region      DisplayValue         `json:"region"`
	ArticleType DisplayValue         `json:"articleType"`
	Tags        []DisplayValue       `json:"tagList"`
}

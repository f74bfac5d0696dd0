package models

import "time"

// Attach is an uploaded file referenced by articles.
type Attach struct {
	ID         string    `db:"id"`
	OriginName string    `db:"origin_name"`
	Path       string    `db:"path"`
	Extension  string    `db:"extension"`
	Size       int64     `db:"size"`
	CreatedAt  time.Time `db:"created_at"`
}

// StoredName is the file path relative to the storage root.
func (a Attach) StoredName() string {
	if a.Extension == "" {
		return a.Path + "/" + a.ID
	}
	return a.Path + "/" + a.ID + "." + a.Extension
}

// LikeStatus is the reaction a profile left on an article.
type LikeStatus string

const (
	LikeStatusLike    LikeStatus = "LIKE"
	LikeStatusDislike LikeStatus = "DISLIKE"
)

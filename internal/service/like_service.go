package service

import (
	"context"

	"github.com/noah-isme/article-api/internal/dto"
	"github.com/noah-isme/article-api/internal/models"
	appErrors "github.com/noah-isme/article-api/pkg/errors"
)

type likeRepository interface {
	CountByStatus(ctx context.Context, articleID int64) (map[models.LikeStatus]int64, error)
}

// LikeService aggregates reactions for article details.
type LikeService struct {
	repo likeRepository
}

// NewLikeService constructs a LikeService.
func NewLikeService(repo likeRepository) *LikeService {
	return &LikeService{repo: repo}
}

// Counts returns like and dislike totals for an article.
func (s *LikeService) Counts(ctx context.Context, articleID int64) (dto.LikeCount, error) {
	counts, err := s.repo.CountByStatus(ctx, articleID)
	if err != nil {
		return dto.LikeCount{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count likes")
	}
	return dto.LikeCount{
		LikeCount:    counts[models.LikeStatusLike],
		DislikeCount: counts[models.LikeStatusDislike],
	}, nil
}

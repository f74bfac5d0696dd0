package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/article-api/internal/dto"
	"github.com/noah-isme/article-api/internal/models"
	appErrors "github.com/noah-isme/article-api/pkg/errors"
)

type referenceRepository interface {
	FindLocalized(ctx context.Context, kind models.ReferenceKind, id int64) (*models.ReferenceItem, error)
	FindManyLocalized(ctx context.Context, kind models.ReferenceKind, ids []int64) ([]models.ReferenceItem, error)
}

// ReferenceService resolves category, region, article type and tag ids into display values.
type ReferenceService struct {
	repo   referenceRepository
	logger *zap.Logger
}

// NewReferenceService constructs a ReferenceService.
func NewReferenceService(repo referenceRepository, logger *zap.Logger) *ReferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceService{repo: repo, logger: logger}
}

// Category resolves a category id.
func (s *ReferenceService) Category(ctx context.Context, id int64, lang models.Lang) (dto.DisplayValue, error) {
	return s.resolve(ctx, models.ReferenceCategory, id, lang)
}

// Region resolves a region id.
func (s *ReferenceService) Region(ctx context.Context, id int64, lang models.Lang) (dto.DisplayValue, error) {
	return s.resolve(ctx, models.ReferenceRegion, id, lang)
}

// ArticleType resolves an article type id.
func (s *ReferenceService) ArticleType(ctx context.Context, id int64, lang models.Lang) (dto.DisplayValue, error) {
	return s.resolve(ctx, models.ReferenceArticleType, id, lang)
}

// Tags resolves tag ids, silently dropping ids that no longer exist.
func (s *ReferenceService) Tags(ctx context.Context, ids []int64, lang models.Lang) ([]dto.DisplayValue, error) {
	items, err := s.repo.FindManyLocalized(ctx, models.ReferenceTag, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tags")
	}
	values := make([]dto.DisplayValue, 0, len(items))
	for _, item := range items {
		values = append(values, toDisplayValue(item, lang))
	}
	return values, nil
}

func (s *ReferenceService) resolve(ctx context.Context, kind models.ReferenceKind, id int64, lang models.Lang) (dto.DisplayValue, error) {
	item, err := s.repo.FindLocalized(ctx, kind, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dto.DisplayValue{}, appErrors.Clone(appErrors.ErrNotFound, string(kind)+" not found")
		}
		return dto.DisplayValue{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+string(kind))
	}
	return toDisplayValue(*item, lang), nil
}

func toDisplayValue(item models.ReferenceItem, lang models.Lang) dto.DisplayValue {
	return dto.DisplayValue{ID: item.ID, Key: item.Key, Name: item.Name(lang)}
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/article-api/internal/dto"
	"github.com/noah-isme/article-api/internal/models"
	"github.com/noah-isme/article-api/internal/repository"
	appErrors "github.com/noah-isme/article-api/pkg/errors"
)

type articleStore interface {
	Create(ctx context.Context, article *models.Article) error
	FindByID(ctx context.Context, id int64) (*models.Article, error)
	FindByIDAndStatus(ctx context.Context, id int64, status models.ArticleStatus) (*models.Article, error)
	FindByTitle(ctx context.Context, title string) (*models.Article, error)
	ListVisible(ctx context.Context, visible bool, page, size int) ([]models.Article, int, error)
	ListByType(ctx context.Context, typeID int64, page, size int) ([]models.Article, int, error)
	TopByTypeAndStatus(ctx context.Context, typeID int64, status models.ArticleStatus, n int) ([]models.ArticleShort, error)
	Update(ctx context.Context, article *models.Article) error
	SetVisible(ctx context.Context, id int64, visible bool) (int64, error)
	SetViewCount(ctx context.Context, id int64, count int64) (int64, error)
	IncrementSharedCount(ctx context.Context, id int64) (int64, error)
	SetStatus(ctx context.Context, id int64, status models.ArticleStatus, publisherID int64, publishedAt *time.Time) (int64, error)
}

type profileFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Profile, error)
}

type referenceProvider interface {
	Category(ctx context.Context, id int64, lang models.Lang) (dto.DisplayValue, error)
	Region(ctx context.Context, id int64, lang models.Lang) (dto.DisplayValue, error)
	ArticleType(ctx context.Context, id int64, lang models.Lang) (dto.DisplayValue, error)
	Tags(ctx context.Context, ids []int64, lang models.Lang) ([]dto.DisplayValue, error)
}

type likeCounter interface {
	Counts(ctx context.Context, articleID int64) (dto.LikeCount, error)
}

type attachURLBuilder interface {
	OpenURL(attachID *string) *dto.AttachURL
}

type articleMetrics interface {
	RecordArticleEvent(event string)
	RecordProviderError(provider string)
}

// ArticleServiceConfig tunes public reads.
type ArticleServiceConfig struct {
	TopByTypeLimit  int
	DefaultPageSize int
	MaxPageSize     int
}

// ArticleServiceDeps groups the collaborators of ArticleService.
type ArticleServiceDeps struct {
	Articles   articleStore
	Profiles   profileFinder
	References referenceProvider
	Likes      likeCounter
	Attaches   attachURLBuilder
	Metrics    articleMetrics
}

// ArticleService implements the article workflows.
type ArticleService struct {
	articles   articleStore
	profiles   profileFinder
	references referenceProvider
	likes      likeCounter
	attaches   attachURLBuilder
	metrics    articleMetrics
	validator  *validator.Validate
	logger     *zap.Logger
	cfg        ArticleServiceConfig
	now        func() time.Time
}

// NewArticleService constructs an ArticleService.
func NewArticleService(deps ArticleServiceDeps, validate *validator.Validate, logger *zap.Logger, cfg ArticleServiceConfig) *ArticleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	if cfg.TopByTypeLimit <= 0 {
		cfg.TopByTypeLimit = 5
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 5
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	return &ArticleService{
		articles:   deps.Articles,
		profiles:   deps.Profiles,
		references: deps.References,
		likes:      deps.Likes,
		attaches:   deps.Attaches,
		metrics:    deps.Metrics,
		validator:  validate,
		logger:     logger,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create validates and stores a new article authored by actorID.
func (s *ArticleService) Create(ctx context.Context, req dto.ArticleRequest, actorID int64) (*dto.ArticleBasic, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid article payload")
	}
	if err := s.ensureTitleFree(ctx, req.Title, 0); err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Status:      models.ArticleStatusCreated,
		Visible:     true,
		ProfileID:   actorID,
		AttachID:    req.AttachID,
		CategoryID:  req.CategoryID,
		RegionID:    req.RegionID,
		TypeID:      req.TypeID,
		TagIDs:      req.TagIDs,
		CreatedAt:   s.now(),
	}
	if err := s.articles.Create(ctx, article); err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			return nil, appErrors.Clone(appErrors.ErrAlreadyExists, "article with this title already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create article")
	}

	s.record(ArticleEventCreated)
	s.logger.Info("article created", zap.Int64("article_id", article.ID), zap.Int64("profile_id", actorID))
	basic := s.toBasic(article)
	return &basic, nil
}

// List returns one page of visible articles, newest first.
func (s *ArticleService) List(ctx context.Context, page, size int) ([]dto.ArticleBasic, *models.Pagination, error) {
	page, size = s.normalizePage(page, size)
	articles, total, err := s.articles.ListVisible(ctx, true, page, size)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list articles")
	}
	return s.toBasicList(articles), &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// ListByType returns one page of articles of a type regardless of status.
func (s *ArticleService) ListByType(ctx context.Context, typeID int64, page, size int) ([]dto.ArticleBasic, *models.Pagination, error) {
	page, size = s.normalizePage(page, size)
	articles, total, err := s.articles.ListByType(ctx, typeID, page, size)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list articles by type")
	}
	return s.toBasicList(articles), &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Update overwrites the text of a visible article and reassigns it to actorID.
func (s *ArticleService) Update(ctx context.Context, id int64, req dto.ArticleRequest, actorID int64) (*dto.ArticleBasic, error) {
	if _, err := s.profiles.FindByID(ctx, actorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid article payload")
	}

	article, err := s.loadVisible(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != article.Title {
		if err := s.ensureTitleFree(ctx, req.Title, article.ID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	article.Title = req.Title
	article.Description = req.Description
	article.Content = req.Content
	article.ProfileID = actorID
	article.UpdatedAt = &now
	if err := s.articles.Update(ctx, article); err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			return nil, appErrors.Clone(appErrors.ErrAlreadyExists, "article with this title already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update article")
	}

	s.record(ArticleEventUpdated)
	basic := s.toBasic(article)
	return &basic, nil
}

// Delete hides a visible article. It reports whether exactly one row changed.
func (s *ArticleService) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := s.loadVisible(ctx, id); err != nil {
		return false, err
	}
	n, err := s.articles.SetVisible(ctx, id, false)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete article")
	}
	if n == 1 {
		s.record(ArticleEventDeleted)
	}
	return n == 1, nil
}

// GetByType returns the newest published articles of a type.
func (s *ArticleService) GetByType(ctx context.Context, typeID int64) ([]dto.ArticleShort, error) {
	items, err := s.articles.TopByTypeAndStatus(ctx, typeID, models.ArticleStatusPublished, s.cfg.TopByTypeLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load articles by type")
	}
	result := make([]dto.ArticleShort, 0, len(items))
	for _, item := range items {
		result = append(result, s.toShort(item))
	}
	return result, nil
}

// GetPublishedByID returns a published visible article resolved in lang.
func (s *ArticleService) GetPublishedByID(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error) {
	article, err := s.loadPublished(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDetail(ctx, article, lang)
}

// GetPublicByID returns a visible article of any status and counts one view.
// Concurrent views may overwrite each other.
func (s *ArticleService) GetPublicByID(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error) {
	article, err := s.loadVisible(ctx, id)
	if err != nil {
		return nil, err
	}

	next := article.ViewCount + 1
	n, err := s.articles.SetViewCount(ctx, id, next)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count view")
	}
	if n == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
	}
	article.ViewCount = next
	s.record(ArticleEventViewed)

	return s.toDetail(ctx, article, lang)
}

// GetByIDAdmin returns any article, hidden ones included.
func (s *ArticleService) GetByIDAdmin(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error) {
	article, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDetail(ctx, article, lang)
}

// ChangeStatus moves a visible article to a new status. The first publication
// stamps published_at and records actorID as publisher.
func (s *ArticleService) ChangeStatus(ctx context.Context, id int64, req dto.ChangeStatusRequest, actorID int64) (*dto.ArticleBasic, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid status payload")
	}
	article, err := s.loadVisible(ctx, id)
	if err != nil {
		return nil, err
	}

	var publishedAt *time.Time
	if req.Status == models.ArticleStatusPublished && article.PublishedAt == nil {
		now := s.now()
		publishedAt = &now
	}
	n, err := s.articles.SetStatus(ctx, id, req.Status, actorID, publishedAt)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to change article status")
	}
	if n == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
	}

	article.Status = req.Status
	article.PublisherID = &actorID
	if publishedAt != nil {
		article.PublishedAt = publishedAt
	}
	if req.Status == models.ArticleStatusPublished {
		s.record(ArticleEventPublished)
	}
	s.logger.Info("article status changed", zap.Int64("article_id", id), zap.String("status", string(req.Status)), zap.Int64("profile_id", actorID))
	basic := s.toBasic(article)
	return &basic, nil
}

// Share counts one share of a published article and returns it resolved in lang.
func (s *ArticleService) Share(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error) {
	article, err := s.loadPublished(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.articles.IncrementSharedCount(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count share")
	}
	if n == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
	}
	article.SharedCount++
	s.record(ArticleEventShared)
	return s.toDetail(ctx, article, lang)
}

func (s *ArticleService) ensureTitleFree(ctx context.Context, title string, selfID int64) error {
	existing, err := s.articles.FindByTitle(ctx, title)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check title")
	}
	if existing != nil && existing.ID != selfID {
		return appErrors.Clone(appErrors.ErrAlreadyExists, "article with this title already exists")
	}
	return nil
}

func (s *ArticleService) load(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load article")
	}
	return article, nil
}

func (s *ArticleService) loadVisible(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.Visible {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
	}
	return article, nil
}

func (s *ArticleService) loadPublished(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.articles.FindByIDAndStatus(ctx, id, models.ArticleStatusPublished)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load article")
	}
	if !article.Visible {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
	}
	return article, nil
}

func (s *ArticleService) normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = s.cfg.DefaultPageSize
	}
	if size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}
	return page, size
}

func (s *ArticleService) record(event string) {
	if s.metrics != nil {
		s.metrics.RecordArticleEvent(event)
	}
}

func (s *ArticleService) providerFailed(provider string, articleID int64, err error) error {
	if s.metrics != nil {
		s.metrics.RecordProviderError(provider)
	}
	s.logger.Warn("display value lookup failed", zap.String("provider", provider), zap.Int64("article_id", articleID), zap.Error(err))
	return err
}

func (s *ArticleService) imageURL(attachID *string) *dto.AttachURL {
	if s.attaches == nil {
		return nil
	}
	return s.attaches.OpenURL(attachID)
}

func (s *ArticleService) toBasic(article *models.Article) dto.ArticleBasic {
	return dto.ArticleBasic{
		ID:          article.ID,
		Title:       article.Title,
		Description: article.Description,
		Content:     article.Content,
		ProfileID:   article.ProfileID,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
		PublishedAt: article.PublishedAt,
		Image:       s.imageURL(article.AttachID),
	}
}

func (s *ArticleService) toBasicList(articles []models.Article) []dto.ArticleBasic {
	result := make([]dto.ArticleBasic, 0, len(articles))
	for i := range articles {
		result = append(result, s.toBasic(&articles[i]))
	}
	return result
}

func (s *ArticleService) toShort(item models.ArticleShort) dto.ArticleShort {
	return dto.ArticleShort{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		PublishedAt: item.PublishedAt,
		Image:       s.imageURL(item.AttachID),
	}
}

func (s *ArticleService) toDetail(ctx context.Context, article *models.Article, lang models.Lang) (*dto.ArticleDetail, error) {
	like, err := s.likes.Counts(ctx, article.ID)
	if err != nil {
		return nil, s.providerFailed("like", article.ID, err)
	}
	category, err := s.references.Category(ctx, article.CategoryID, lang)
	if err != nil {
		return nil, s.providerFailed("category", article.ID, err)
	}
	region, err := s.references.Region(ctx, article.RegionID, lang)
	if err != nil {
		return nil, s.providerFailed("region", article.ID, err)
	}
	articleType, err := s.references.ArticleType(ctx, article.TypeID, lang)
	if err != nil {
		return nil, s.providerFailed("article_type", article.ID, err)
	}
	tags, err := s.references.Tags(ctx, article.TagIDs, lang)
	if err != nil {
		return nil, s.providerFailed("tag", article.ID, err)
	}

	return &dto.ArticleDetail{
		ArticleBasic: s.toBasic(article),
		Status:       article.Status,
		Visible:      article.Visible,
		ViewCount:    article.ViewCount,
		SharedCount:  article.SharedCount,
		Like:         like,
		Category:     category,
		Region:       region,
		ArticleType:  articleType,
		Tags:         tags,
	}, nil
}

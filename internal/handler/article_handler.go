package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/article-api/internal/dto"
	"github.com/noah-isme/article-api/internal/models"
	appErrors "github.com/noah-isme/article-api/pkg/errors"
	"github.com/noah-isme/article-api/pkg/response"
)

type articleService interface {
	Create(ctx context.Context, req dto.ArticleRequest, actorID int64) (*dto.ArticleBasic, error)
	List(ctx context.Context, page, size int) ([]dto.ArticleBasic, *models.Pagination, error)
	ListByType(ctx context.Context, typeID int64, page, size int) ([]dto.ArticleBasic, *models.Pagination, error)
	Update(ctx context.Context, id int64, req dto.ArticleRequest, actorID int64) (*dto.ArticleBasic, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByType(ctx context.Context, typeID int64) ([]dto.ArticleShort, error)
	GetPublishedByID(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error)
	GetPublicByID(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error)
	GetByIDAdmin(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error)
	ChangeStatus(ctx context.Context, id int64, req dto.ChangeStatusRequest, actorID int64) (*dto.ArticleBasic, error)
	Share(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error)
}

// ArticleHandlerConfig carries request defaults.
type ArticleHandlerConfig struct {
	DefaultPageSize int
	DefaultLang     models.Lang
}

// ArticleHandler exposes article endpoints.
type ArticleHandler struct {
	service         articleService
	defaultPageSize int
	defaultLang     models.Lang
}

// NewArticleHandler constructs an article handler.
func NewArticleHandler(svc articleService, cfg ArticleHandlerConfig) *ArticleHandler {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 5
	}
	if cfg.DefaultLang == "" {
		cfg.DefaultLang = models.DefaultLang
	}
	return &ArticleHandler{service: svc, defaultPageSize: cfg.DefaultPageSize, defaultLang: cfg.DefaultLang}
}

// Create godoc
// @Summary Create article
// @Tags Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ArticleRequest true "Article payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /article/adm [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	article, err := h.service.Create(c.Request.Context(), req, claims.ProfileID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, article)
}

// Update godoc
// @Summary Update article
// @Tags Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param payload body dto.ArticleRequest true "Article payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /article/adm/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	article, err := h.service.Update(c.Request.Context(), id, req, claims.ProfileID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article, nil)
}

// Delete godoc
// @Summary Soft-delete article
// @Tags Articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /article/adm/delete/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, deleted, nil)
}

// GetAdmin godoc
// @Summary Get article for staff
// @Tags Articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param Accepted-Language header string false "uz, ru or en"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /article/adm/{id} [get]
func (h *ArticleHandler) GetAdmin(c *gin.Context) {
	h.detail(c, h.service.GetByIDAdmin)
}

// ListByTypeAdmin godoc
// @Summary List articles of a type for staff
// @Tags Articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article type ID"
// @Param page query int false "Page, zero based"
// @Param size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /article/adm/type/{id} [get]
func (h *ArticleHandler) ListByTypeAdmin(c *gin.Context) {
	typeID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	page, size, err := h.pageParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, pagination, err := h.service.ListByType(c.Request.Context(), typeID, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination)
}

// ChangeStatus godoc
// @Summary Change article status
// @Tags Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param payload body dto.ChangeStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /article/adm/status/{id} [put]
func (h *ArticleHandler) ChangeStatus(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	article, err := h.service.ChangeStatus(c.Request.Context(), id, req, claims.ProfileID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article, nil)
}

// List godoc
// @Summary List visible articles
// @Tags Articles
// @Produce json
// @Param page query int false "Page, zero based"
// @Param size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /article/public/list [get]
func (h *ArticleHandler) List(c *gin.Context) {
	page, size, err := h.pageParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, pagination, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination)
}

// GetByType godoc
// @Summary Latest published articles of a type
// @Tags Articles
// @Produce json
// @Param id path int true "Article type ID"
// @Success 200 {object} response.Envelope
// @Router /article/public/type/{id} [get]
func (h *ArticleHandler) GetByType(c *gin.Context) {
	typeID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.service.GetByType(c.Request.Context(), typeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// GetPublished godoc
// @Summary Get published article
// @Tags Articles
// @Produce json
// @Param id path int true "Article ID"
// @Param Accepted-Language header string false "uz, ru or en"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /article/public/{id} [get]
func (h *ArticleHandler) GetPublished(c *gin.Context) {
	h.detail(c, h.service.GetPublishedByID)
}

// View godoc
// @Summary Get article and count a view
// @Tags Articles
// @Produce json
// @Param id path int true "Article ID"
// @Security BearerAuth
// @Param Accepted-Language header string false "uz, ru or en"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /article/adm/{id}/view [get]
func (h *ArticleHandler) View(c *gin.Context) {
	h.detail(c, h.service.GetPublicByID)
}

// Share godoc
// @Summary Share published article
// @Tags Articles
// @Produce json
// @Param lang path string true "uz, ru or en"
// @Param id path int true "Article ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /article/{lang}/share/{id} [get]
func (h *ArticleHandler) Share(c *gin.Context) {
	lang, err := parseLang(c.Param("lang"))
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	article, err := h.service.Share(c.Request.Context(), id, lang)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article, nil)
}

func (h *ArticleHandler) detail(c *gin.Context, fetch func(context.Context, int64, models.Lang) (*dto.ArticleDetail, error)) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	lang, err := langFromHeader(c, h.defaultLang)
	if err != nil {
		response.Error(c, err)
		return
	}
	article, err := fetch(c.Request.Context(), id, lang)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article, nil)
}

func (h *ArticleHandler) pageParams(c *gin.Context) (int, int, error) {
	page, err := queryInt(c, "page", 0)
	if err != nil {
		return 0, 0, err
	}
	size, err := queryInt(c, "size", h.defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

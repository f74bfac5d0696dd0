package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/article-api/internal/dto"
	"github.com/noah-isme/article-api/internal/handler"
	"github.com/noah-isme/article-api/internal/models"
	"github.com/noah-isme/article-api/internal/service"
	appErrors "github.com/noah-isme/article-api/pkg/errors"
)

type stubArticles struct{}

func (stubArticles) Create(ctx context.Context, req dto.ArticleRequest, actorID int64) (*dto.ArticleBasic, error) {
	return &dto.ArticleBasic{ID: 1, ProfileID: actorID}, nil
}

func (stubArticles) List(ctx context.Context, page, size int) ([]dto.ArticleBasic, *models.Pagination, error) {
	return []dto.ArticleBasic{}, &models.Pagination{Page: page, PageSize: size}, nil
}

func (stubArticles) ListByType(ctx context.Context, typeID int64, page, size int) ([]dto.ArticleBasic, *models.Pagination, error) {
	return []dto.ArticleBasic{}, &models.Pagination{Page: page, PageSize: size}, nil
}

func (stubArticles) Update(ctx context.Context, id int64, req dto.ArticleRequest, actorID int64) (*dto.ArticleBasic, error) {
	return &dto.ArticleBasic{ID: id}, nil
}

func (stubArticles) Delete(ctx context.Context, id int64) (bool, error) { return true, nil }

func (stubArticles) GetByType(ctx context.Context, typeID int64) ([]dto.ArticleShort, error) {
	return []dto.ArticleShort{}, nil
}

func (stubArticles) GetPublishedByID(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error) {
	return &dto.ArticleDetail{}, nil
}

func (stubArticles) GetPublicByID(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error) {
	return &dto.ArticleDetail{ViewCount: 1}, nil
}

func (stubArticles) GetByIDAdmin(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error) {
	return &dto.ArticleDetail{}, nil
}

func (stubArticles) ChangeStatus(ctx context.Context, id int64, req dto.ChangeStatusRequest, actorID int64) (*dto.ArticleBasic, error) {
	return &dto.ArticleBasic{ID: id}, nil
}

func (stubArticles) Share(ctx context.Context, id int64, lang models.Lang) (*dto.ArticleDetail, error) {
	return &dto.ArticleDetail{SharedCount: 1}, nil
}

type stubAuth struct{}

func (stubAuth) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return nil, appErrors.ErrInvalidCredentials
}

type stubAttaches struct{}

func (stubAttaches) Open(ctx context.Context, token string) (*os.File, *models.Attach, error) {
	return nil, nil, appErrors.Clone(appErrors.ErrForbidden, "invalid or expired link")
}

type stubTokens map[string]models.ProfileRole

func (s stubTokens) ValidateToken(token string) (*models.JWTClaims, error) {
	role, ok := s[token]
	if !ok {
		return nil, appErrors.Wrap(errors.New("bad"), appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}
	return &models.JWTClaims{ProfileID: 1, Role: role}, nil
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(Dependencies{
		Metrics:  service.NewMetricsService(),
		Tokens:   stubTokens{"user": models.RoleUser, "mod": models.RoleModerator, "pub": models.RolePublisher, "admin": models.RoleAdmin},
		Articles: handler.NewArticleHandler(stubArticles{}, handler.ArticleHandlerConfig{DefaultPageSize: 5}),
		Auth:     handler.NewAuthHandler(stubAuth{}),
		Attaches: handler.NewAttachHandler(stubAttaches{}),
		Probes:   handler.NewMetricsHandler(nil, nil),
	})
}

func TestRouterRoutesAndGates(t *testing.T) {
	engine := newTestEngine()

	cases := []struct {
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", "", http.StatusOK},
		{http.MethodGet, "/ready", "", "", http.StatusOK},
		{http.MethodPost, "/article/adm", "", `{}`, http.StatusUnauthorized},
		{http.MethodPost, "/article/adm", "user", `{}`, http.StatusForbidden},
		{http.MethodPost, "/article/adm", "mod", `{}`, http.StatusCreated},
		{http.MethodGet, "/article/adm/3", "mod", "", http.StatusOK},
		{http.MethodPut, "/article/adm/3", "pub", `{}`, http.StatusForbidden},
		{http.MethodPut, "/article/adm/3", "admin", `{}`, http.StatusOK},
		{http.MethodDelete, "/article/adm/delete/3", "mod", "", http.StatusForbidden},
		{http.MethodDelete, "/article/adm/delete/3", "admin", "", http.StatusOK},
		{http.MethodGet, "/article/adm/type/2", "mod", "", http.StatusOK},
		{http.MethodPut, "/article/adm/status/3", "mod", `{"status":"PUBLISHED"}`, http.StatusForbidden},
		{http.MethodPut, "/article/adm/status/3", "pub", `{"status":"PUBLISHED"}`, http.StatusOK},
		{http.MethodGet, "/article/public/list", "", "", http.StatusOK},
		{http.MethodGet, "/article/public/type/2", "", "", http.StatusOK},
		{http.MethodGet, "/article/public/4", "", "", http.StatusOK},
		{http.MethodGet, "/article/public/4/view", "", "", http.StatusNotFound},
		{http.MethodGet, "/article/adm/4/view", "", "", http.StatusUnauthorized},
		{http.MethodGet, "/article/adm/4/view", "user", "", http.StatusForbidden},
		{http.MethodGet, "/article/adm/4/view", "mod", "", http.StatusOK},
		{http.MethodGet, "/article/public/abc", "", "", http.StatusBadRequest},
		{http.MethodGet, "/article/en/share/4", "", "", http.StatusOK},
		{http.MethodPost, "/auth/login", "", `{"email":"a@b.uz","password":"x"}`, http.StatusUnauthorized},
		{http.MethodGet, "/attach/open/tok", "", "", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path+" "+tc.token, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/article-api/internal/handler"
	"github.com/noah-isme/article-api/internal/middleware"
	"github.com/noah-isme/article-api/internal/models"
	"github.com/noah-isme/article-api/internal/service"
	"github.com/noah-isme/article-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/article-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/article-api/pkg/middleware/requestid"
)

// Dependencies carries everything the HTTP surface needs.
type Dependencies struct {
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	Tokens         middleware.TokenValidator
	AllowedOrigins []string
	EnableDocs     bool

	Articles *handler.ArticleHandler
	Auth     *handler.AuthHandler
	Attaches *handler.AttachHandler
	Probes   *handler.MetricsHandler
}

// New builds the gin engine with every route registered.
func New(deps Dependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(deps.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/health", deps.Probes.Health)
	r.GET("/ready", deps.Probes.Ready)
	r.GET("/metrics", deps.Probes.Prometheus)

	if deps.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/auth/login", deps.Auth.Login)
	r.GET("/attach/open/:token", deps.Attaches.Open)

	article := r.Group("/article")

	admin := article.Group("/adm", middleware.JWT(deps.Tokens))
	admin.POST("", middleware.RequireRole(models.RoleModerator), deps.Articles.Create)
	admin.GET("/:id", middleware.RequireRole(models.RoleModerator), deps.Articles.GetAdmin)
	admin.PUT("/:id", middleware.RequireRole(models.RoleAdmin), deps.Articles.Update)
	admin.DELETE("/delete/:id", middleware.RequireRole(models.RoleAdmin), deps.Articles.Delete)
	admin.GET("/type/:id", middleware.RequireRole(models.RoleModerator), deps.Articles.ListByTypeAdmin)
	admin.PUT("/status/:id", middleware.RequireRole(models.RolePublisher), deps.Articles.ChangeStatus)
	admin.GET("/:id/view", middleware.RequireRole(models.RoleModerator), deps.Articles.View)

	public := article.Group("/public")
	public.GET("/list", deps.Articles.List)
	public.GET("/type/:id", deps.Articles.GetByType)
	public.GET("/:id", deps.Articles.GetPublished)

	article.GET("/:lang/share/:id", deps.Articles.Share)

	return r
}

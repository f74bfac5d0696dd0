package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/noah-isme/article-api/api/swagger"
	"github.com/noah-isme/article-api/internal/handler"
	"github.com/noah-isme/article-api/internal/models"
	"github.com/noah-isme/article-api/internal/repository"
	"github.com/noah-isme/article-api/internal/router"
	"github.com/noah-isme/article-api/internal/service"
	"github.com/noah-isme/article-api/pkg/config"
	"github.com/noah-isme/article-api/pkg/database"
	"github.com/noah-isme/article-api/pkg/logger"
	"github.com/noah-isme/article-api/pkg/storage"
)

// @title Article API
// @version 1.0.0
// @description Multilingual article management service
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	defaultLang, err := models.ParseLang(cfg.Articles.DefaultLang)
	if err != nil {
		logr.Fatal("invalid ARTICLE_DEFAULT_LANG", zap.Error(err))
	}

	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	files, err := storage.NewLocalStorage(cfg.Attach.StorageDir)
	if err != nil {
		logr.Fatal("failed to prepare attachment storage", zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Attach.SignedURLSecret, cfg.Attach.SignedURLTTL)

	articleRepo := repository.NewArticleRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	attachRepo := repository.NewAttachRepository(db)

	validate := service.NewValidator()
	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(profileRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	attachSvc := service.NewAttachService(attachRepo, signer, files, cfg.PublicBaseURL, logr)
	articleSvc := service.NewArticleService(service.ArticleServiceDeps{
		Articles:   articleRepo,
		Profiles:   profileRepo,
		References: service.NewReferenceService(referenceRepo, logr),
		Likes:      service.NewLikeService(likeRepo),
		Attaches:   attachSvc,
		Metrics:    metricsSvc,
	}, validate, logr, service.ArticleServiceConfig{
		TopByTypeLimit:  cfg.Articles.TopByTypeLimit,
		DefaultPageSize: cfg.Articles.DefaultPageSize,
		MaxPageSize:     cfg.Articles.MaxPageSize,
	})

	articleHandler := handler.NewArticleHandler(articleSvc, handler.ArticleHandlerConfig{
		DefaultPageSize: cfg.Articles.DefaultPageSize,
		DefaultLang:     defaultLang,
	})

	engine := router.New(router.Dependencies{
		Logger:         logr,
		Metrics:        metricsSvc,
		Tokens:         authSvc,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Articles:       articleHandler,
		Auth:           handler.NewAuthHandler(authSvc),
		Attaches:       handler.NewAttachHandler(attachSvc),
		Probes:         handler.NewMetricsHandler(metricsSvc, db),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logr.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

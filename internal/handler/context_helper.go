package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/article-api/internal/middleware"
	"github.com/noah-isme/article-api/internal/models"
	appErrors "github.com/noah-isme/article-api/pkg/errors"
)

const (
	headerAcceptedLanguage = "Accepted-Language"
	headerAcceptLanguage   = "Accept-Language"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// pathID reads a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be a positive integer")
	}
	return id, nil
}

// langFromHeader reads Accepted-Language strictly. Without it the browser's
// Accept-Language list is negotiated and fallback covers everything else.
func langFromHeader(c *gin.Context, fallback models.Lang) (models.Lang, error) {
	if raw := strings.TrimSpace(c.GetHeader(headerAcceptedLanguage)); raw != "" {
		return parseLang(raw)
	}
	return models.NegotiateLang(c.GetHeader(headerAcceptLanguage), fallback), nil
}

func parseLang(raw string) (models.Lang, error) {
	lang, err := models.ParseLang(raw)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unsupported language")
	}
	return lang, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be an integer")
	}
	return value, nil
}

package handler

import (
	"context"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/article-api/internal/models"
	"github.com/noah-isme/article-api/pkg/response"
)

type attachOpener interface {
	Open(ctx context.Context, token string) (*os.File, *models.Attach, error)
}

// AttachHandler serves attachment files behind signed links.
type AttachHandler struct {
	service attachOpener
}

// NewAttachHandler constructs an attach handler.
func NewAttachHandler(svc attachOpener) *AttachHandler {
	return &AttachHandler{service: svc}
}

// Open godoc
// @Summary Open attachment
// @Tags Attachments
// @Produce octet-stream
// @Param token path string true "Signed token"
// @Success 200 {file} binary
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /attach/open/{token} [get]
func (h *AttachHandler) Open(c *gin.Context) {
	file, attach, err := h.service.Open(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck

	name := attach.OriginName
	if name == "" {
		name = attach.StoredName()
	}
	if contentType := mime.TypeByExtension("." + attach.Extension); contentType != "" {
		c.Header("Content-Type", contentType)
	}
	c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": filepath.Base(name)}))
	http.ServeContent(c.Writer, c.Request, name, attach.CreatedAt, file)
}

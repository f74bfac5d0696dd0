package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/article-api/internal/dto"
	"github.com/noah-isme/article-api/internal/models"
	appErrors "github.com/noah-isme/article-api/pkg/errors"
)

type attachRepository interface {
	FindByID(ctx context.Context, id string) (*models.Attach, error)
}

type urlSigner interface {
	Sign(attachID string) (string, time.Time, error)
	Verify(token string, allowExpired bool) (string, time.Time, error)
}

type fileStore interface {
	Open(relPath string) (*os.File, error)
}

// AttachService builds open-access URLs for attachments and serves them back.
type AttachService struct {
	repo    attachRepository
	signer  urlSigner
	files   fileStore
	baseURL string
	logger  *zap.Logger
}

// NewAttachService constructs an AttachService. baseURL is the public origin of this API.
func NewAttachService(repo attachRepository, signer urlSigner, files fileStore, baseURL string, logger *zap.Logger) *AttachService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttachService{repo: repo, signer: signer, files: files, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

// OpenURL returns the signed open link for an attachment or nil when the article has none.
func (s *AttachService) OpenURL(attachID *string) *dto.AttachURL {
	if attachID == nil || *attachID == "" {
		return nil
	}
	token, _, err := s.signer.Sign(*attachID)
	if err != nil {
		s.logger.Warn("failed to sign attach url", zap.String("attach_id", *attachID), zap.Error(err))
		return &dto.AttachURL{ID: *attachID}
	}
	return &dto.AttachURL{ID: *attachID, URL: s.baseURL + "/attach/open/" + token}
}

// Open verifies the token and returns the stored file together with its metadata.
// The caller closes the file.
func (s *AttachService) Open(ctx context.Context, token string) (*os.File, *models.Attach, error) {
	attachID, _, err := s.signer.Verify(token, false)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrForbidden.Code, appErrors.ErrForbidden.Status, "invalid or expired link")
	}

	attach, err := s.repo.FindByID(ctx, attachID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "attachment not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attachment")
	}

	file, err := s.files.Open(attach.StoredName())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "attachment file missing")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open attachment")
	}
	return file, attach, nil
}

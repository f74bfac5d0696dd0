package service

import (
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/article-api/internal/models"
	appErrors "github.com/noah-isme/article-api/pkg/errors"
	"github.com/noah-isme/article-api/pkg/storage"
)

type attachRepoStub struct {
	items map[string]*models.Attach
}

func (s attachRepoStub) FindByID(ctx context.Context, id string) (*models.Attach, error) {
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return nil, sql.ErrNoRows
}

func newAttachServiceForTest(t *testing.T, items map[string]*models.Attach) (*AttachService, string) {
	dir := t.TempDir()
	files, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Hour)
	return NewAttachService(attachRepoStub{items: items}, signer, files, "https://api.example/", zap.NewNop()), dir
}

func TestAttachServiceOpenURL(t *testing.T) {
	svc, _ := newAttachServiceForTest(t, nil)

	assert.Nil(t, svc.OpenURL(nil))
	empty := ""
	assert.Nil(t, svc.OpenURL(&empty))

	id := "a1"
	link := svc.OpenURL(&id)
	require.NotNil(t, link)
	assert.Equal(t, "a1", link.ID)
	assert.True(t, strings.HasPrefix(link.URL, "https://api.example/attach/open/"))
}

func TestAttachServiceOpenRoundTrip(t *testing.T) {
	svc, dir := newAttachServiceForTest(t, map[string]*models.Attach{
		"a1": {ID: "a1", Path: "2024/06", Extension: "jpg"},
	})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2024", "06"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024", "06", "a1.jpg"), []byte("jpeg"), 0o644))

	id := "a1"
	link := svc.OpenURL(&id)
	token := strings.TrimPrefix(link.URL, "https://api.example/attach/open/")

	file, attach, err := svc.Open(context.Background(), token)
	require.NoError(t, err)
	defer file.Close() //nolint:errcheck
	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
	assert.Equal(t, "jpg", attach.Extension)
}

func TestAttachServiceOpenRejectsBadToken(t *testing.T) {
	svc, _ := newAttachServiceForTest(t, nil)

	_, _, err := svc.Open(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestAttachServiceOpenMissingAttachment(t *testing.T) {
	svc, _ := newAttachServiceForTest(t, nil)
	id := "ghost"
	token := strings.TrimPrefix(svc.OpenURL(&id).URL, "https://api.example/attach/open/")

	_, _, err := svc.Open(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAttachServiceOpenMissingFile(t *testing.T) {
	svc, _ := newAttachServiceForTest(t, map[string]*models.Attach{
		"a2": {ID: "a2", Path: "2024/06", Extension: "png"},
	})
	id := "a2"
	token := strings.TrimPrefix(svc.OpenURL(&id).URL, "https://api.example/attach/open/")

	_, _, err := svc.Open(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

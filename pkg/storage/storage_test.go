package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedURLSignerSignAndVerify(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, expiresAt, err := signer.Sign("2f1c7a52-4b1e-4ad5-9c44-1f8a0b7f7a10")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, parsedExpiry, err := signer.Verify(token, false)
	require.NoError(t, err)
	assert.Equal(t, "2f1c7a52-4b1e-4ad5-9c44-1f8a0b7f7a10", id)
	assert.WithinDuration(t, expiresAt, parsedExpiry, time.Second)
}

func TestSignedURLSignerExpired(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Minute)
	signer.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	token, _, err := signer.Sign("a1")
	require.NoError(t, err)

	signer.now = time.Now
	_, _, err = signer.Verify(token, false)
	require.Error(t, err)

	id, _, err := signer.Verify(token, true)
	require.NoError(t, err)
	assert.Equal(t, "a1", id)
}

func TestSignedURLSignerRejectsTampering(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, _, err := signer.Sign("a1")
	require.NoError(t, err)

	other := NewSignedURLSigner("other", time.Hour)
	_, _, err = other.Verify(token, false)
	require.Error(t, err)

	_, _, err = signer.Verify("garbage", false)
	require.Error(t, err)
}

func TestSignedURLSignerRequiresSecret(t *testing.T) {
	_, _, err := NewSignedURLSigner("", time.Hour).Sign("a1")
	require.Error(t, err)
}

func writeFile(t *testing.T, dir, rel, data string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestLocalStorageOpen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)
	writeFile(t, dir, "2024/06/a1.jpg", "image-bytes")

	f, err := store.Open("2024/06/a1.jpg")
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestLocalStorageConfinesPaths(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)
	writeFile(t, dir, "outside.txt", "inside")

	f, err := store.Open("../../outside.txt")
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "inside", string(data))

	_, err = store.Open("missing.txt")
	require.Error(t, err)
}

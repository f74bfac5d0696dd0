package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignedURLSigner creates and validates tokens embedded in attachment open URLs.
type SignedURLSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSignedURLSigner constructs a signer with the provided secret and TTL.
func NewSignedURLSigner(secret string, ttl time.Duration) *SignedURLSigner {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SignedURLSigner{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Sign returns a token of the form <b64 id>.<expiry unix>.<hex hmac>.
func (s *SignedURLSigner) Sign(attachID string) (string, time.Time, error) {
	if attachID == "" {
		return "", time.Time{}, fmt.Errorf("attach id required")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}
	expiresAt := s.now().Add(s.ttl).Truncate(time.Second)
	encodedID := base64.RawURLEncoding.EncodeToString([]byte(attachID))
	ts := strconv.FormatInt(expiresAt.Unix(), 10)
	token := strings.Join([]string{encodedID, ts, s.mac(encodedID, ts)}, ".")
	return token, expiresAt, nil
}

// Verify validates a token and returns the attachment id it references.
// When allowExpired is true the expiry check is skipped.
func (s *SignedURLSigner) Verify(token string, allowExpired bool) (string, time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", time.Time{}, fmt.Errorf("invalid token format")
	}
	encodedID, ts, signature := parts[0], parts[1], parts[2]

	expUnix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("invalid timestamp")
	}
	expiresAt := time.Unix(expUnix, 0)

	if !hmac.Equal([]byte(s.mac(encodedID, ts)), []byte(signature)) {
		return "", time.Time{}, fmt.Errorf("invalid token signature")
	}
	if !allowExpired && s.now().After(expiresAt) {
		return "", time.Time{}, fmt.Errorf("token expired")
	}

	rawID, err := base64.RawURLEncoding.DecodeString(encodedID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("decode attach id: %w", err)
	}
	return string(rawID), expiresAt, nil
}

func (s *SignedURLSigner) mac(encodedID, ts string) string {
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(encodedID + "|" + ts))
	return hex.EncodeToString(mac.Sum(nil))
}

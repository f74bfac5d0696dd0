package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a profile.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and profile info.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresIn   int64       `json:"expires_in"`
	IssuedAt    time.Time   `json:"issued_at"`
	Profile     ProfileInfo `json:"profile"`
}

// ProfileInfo describes the authenticated profile in responses.
type ProfileInfo struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Surname string      `json:"surname"`
	Role    ProfileRole `json:"role"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	ProfileID int64       `json:"profile_id"`
	Role      ProfileRole `json:"role"`
	Email     string      `json:"email"`
	jwt.RegisteredClaims
}

// SPDX-License-Identifier: GPL-3.0-only

// Package tokens issues and verifies the signed identity assertions used
// by the API. Tokens are stateless; there is no server-side session table
// and no revocation short of secret rotation or expiry.
package tokens

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"matchbase-server/commons"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultExpiry = 30 * 24 * time.Hour

// ErrNoSecret means the signing secret is not configured. This is a
// deployment problem, not a user error.
var ErrNoSecret = errors.New("JWT_SECRET is not configured")

// ErrInvalidToken is the single outcome for every verification failure.
// Expired, tampered and malformed tokens are deliberately
// indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid or expired token")

type Service struct {
	secret []byte
	expiry time.Duration
}

// New builds a service from JWT_SECRET and JWT_EXPIRES_IN. The expiry
// accepts Go durations or a day count like "30d" and defaults to 30 days.
func New() *Service {
	return &Service{
		secret: []byte(commons.GetEnv("JWT_SECRET")),
		expiry: parseExpiry(commons.GetEnv("JWT_EXPIRES_IN")),
	}
}

func parseExpiry(raw string) time.Duration {
	if raw == "" {
		return DefaultExpiry
	}
	if days, ok := strings.CutSuffix(raw, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil && n > 0 {
			return time.Duration(n) * 24 * time.Hour
		}
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	commons.Logger.Warnf("Unparseable JWT_EXPIRES_IN %q, using default", raw)
	return DefaultExpiry
}

func (s *Service) Expiry() time.Duration {
	return s.expiry
}

// Issue signs a token asserting the account id. Nothing else goes into
// the claims.
func (s *Service) Issue(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.expiry).Unix(),
	})
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry and recovers the account id.
func (s *Service) Verify(tokenString string) (uint, error) {
	if len(s.secret) == 0 {
		return 0, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return 0, ErrInvalidToken
	}
	return uint(uid), nil
}

// Package auth issues and verifies the signed bearer tokens that represent an
// authenticated session. Tokens are self-contained HS256 JWTs; the server
// keeps no session state and cannot revoke a token before it expires.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dbellanger/lexico/internal/common"
)

// Principal is the resolved identity carried by a verified token.
type Principal struct {
	UserID   string
	Username string
}

// Claims carries the registered claim set plus the username.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"name"`
}

// Config holds the process-wide token settings. The secret key must come
// from configuration; it is never defaulted in source.
type Config struct {
	SecretKey []byte
	Issuer    string
	Audience  string
	Lifetime  time.Duration
	Leeway    time.Duration
}

// TokenManager issues and verifies tokens with a single symmetric key.
// It is immutable after construction and safe for concurrent use.
type TokenManager struct {
	config Config
	now    func() time.Time
}

func NewTokenManager(cfg Config) *TokenManager {
	return &TokenManager{config: cfg, now: time.Now}
}

// Issue creates a signed token for p, valid from now until now plus the
// configured lifetime.
func (m *TokenManager) Issue(p Principal) (string, error) {
	now := m.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    m.config.Issuer,
			Audience:  jwt.ClaimStrings{m.config.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.Lifetime)),
			ID:        uuid.NewString(),
		},
		Username: p.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.config.SecretKey)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Verify checks the signature, expiry, issuer and audience of tokenString and
// returns the embedded principal. Every failure collapses into
// common.ErrInvalidToken so callers cannot tell which check rejected the
// token.
func (m *TokenManager) Verify(tokenString string) (*Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return m.config.SecretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(m.config.Leeway),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Principal{UserID: claims.Subject, Username: claims.Username}, nil
}

// Package token issues and confirms signed, time-stamped email confirmation tokens.
package token

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/ideagen/ideagen-backend/config"
)

// DefaultMaxAge is used by Confirm when the caller and the config give no max age.
const DefaultMaxAge = time.Hour

var ErrMissingSecret = errors.New("token secret key and salt are required")

// Email holds the raw address bytes base64url-encoded so that any string,
// valid UTF-8 or not, comes back from Confirm unchanged.
type confirmationClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Serializer signs confirmation tokens with a key derived from the secret key and salt.
type Serializer struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

func NewSerializer(cfg config.TokenConfig) (*Serializer, error) {
	if cfg.SecretKey == "" || cfg.Salt == "" {
		return nil, ErrMissingSecret
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Serializer{
		key:    deriveKey(cfg.SecretKey, cfg.Salt),
		maxAge: maxAge,
		now:    time.Now,
		// Age is checked against our own clock in Confirm.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

// deriveKey mixes the salt into the signing key so that tokens signed for
// one purpose never verify for another.
func deriveKey(secret, salt string) []byte {
	sum := sha256.Sum256([]byte(salt + "signer" + secret))
	return sum[:]
}

// Generate returns a signed token carrying email and the current time.
func (s *Serializer) Generate(email string) (string, error) {
	claims := confirmationClaims{
		Email: base64.RawURLEncoding.EncodeToString([]byte(email)),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign confirmation token: %w", err)
	}
	return signed, nil
}

// Confirm returns the email a token was issued for. Any failure (bad
// signature, malformed token, issued in the future or older than maxAge)
// yields ok == false with no further detail. maxAge <= 0 uses the configured
// default.
func (s *Serializer) Confirm(tokenString string, maxAge time.Duration) (email string, ok bool) {
	if maxAge <= 0 {
		maxAge = s.maxAge
	}

	var claims confirmationClaims
	tok, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil || !tok.Valid || claims.IssuedAt == nil {
		return "", false
	}

	age := s.now().Sub(claims.IssuedAt.Time)
	if age < 0 || age > maxAge {
		return "", false
	}
	raw, err := base64.RawURLEncoding.DecodeString(claims.Email)
	if err != nil {
		return "", false
	}
	return string(raw), true
}

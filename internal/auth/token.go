package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, mis-signed, and expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier turns a bearer token into a caller identity. The HTTP
// middleware depends on this interface, not on the JWT implementation.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// TokenIssuer mints a token for an identity.
type TokenIssuer interface {
	Issue(id Identity) (string, error)
}

// JWTAuthority issues and verifies HS256 tokens. Implements both
// TokenIssuer and TokenVerifier.
type JWTAuthority struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

// NewJWTAuthority builds an authority over a shared secret. ttl bounds token
// lifetime.
func NewJWTAuthority(secret []byte, ttl time.Duration) *JWTAuthority {
	return &JWTAuthority{
		secret:  secret,
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Issue signs a token carrying the identity and expiry.
func (a *JWTAuthority) Issue(id Identity) (string, error) {
	now := a.nowFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": id.UserID,
		"email":  id.Email,
		"iat":    now.Unix(),
		"exp":    now.Add(a.ttl).Unix(),
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and extracts the identity.
func (a *JWTAuthority) Verify(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.nowFunc), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	userID, _ := claims["userId"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: userID, Email: email}, nil
}

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/localserve/marketplace-api/config"
	"github.com/localserve/marketplace-api/models"
)

// ErrInvalidToken is returned for any token that cannot be accepted:
// bad signature, malformed structure, or past expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the typed JWT payload. The subject is the user's email.
type Claims struct {
	UserID uint            `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates bearer tokens. It is the only component
// that sees the signing configuration.
type TokenIssuer struct {
	secret    []byte
	expiresIn time.Duration
	method    jwt.SigningMethod
}

// NewTokenIssuer builds an issuer from the JWT section of the config.
func NewTokenIssuer(cfg config.JWTConfig) *TokenIssuer {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &TokenIssuer{
		secret:    []byte(cfg.Secret),
		expiresIn: cfg.ExpiresIn,
		method:    method,
	}
}

// Issue signs a time-bounded token for the given user.
func (t *TokenIssuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
}

// Verify parses and validates a token string, returning its claims.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != t.method.Alg() {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SigningKey exposes the raw key for the jwtware transport middleware, which
// performs its own parse before the user lookup.
func (t *TokenIssuer) SigningKey() []byte {
	return t.secret
}

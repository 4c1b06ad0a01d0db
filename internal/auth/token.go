package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	autherrors "github.com/Kizito57/leave-management-system/internal/auth/errors"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	AccessTokenTTL  = 240 * time.Minute
	RefreshTokenTTL = 24 * time.Hour
)

// TokenClaims carries the caller identity (Subject=email), the revocation key
// (ID=jti) and the token type.
type TokenClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenIssuer is a pure function of secret + claims + clock. It holds no
// mutable state and performs no I/O.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  AccessTokenTTL,
		refreshTTL: RefreshTokenTTL,
		now:        time.Now,
	}
}

// WithClock overrides the issuer clock. Used by tests.
func (t *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	t.now = now
	return t
}

func (t *TokenIssuer) IssueAccess(email string) (string, error) {
	return t.issue(email, TokenTypeAccess, t.accessTTL)
}

func (t *TokenIssuer) IssueRefresh(email string) (string, error) {
	return t.issue(email, TokenTypeRefresh, t.refreshTTL)
}

func (t *TokenIssuer) issue(email, tokenType string, ttl time.Duration) (string, error) {
	issuedAt := t.now()
	claims := TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Decode verifies the signature and expiry and returns the embedded claims.
// Signature verification is mandatory before any claim is trusted.
func (t *TokenIssuer) Decode(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, autherrors.ErrInvalidToken
	}

	return claims, nil
}

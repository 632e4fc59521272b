// Package scope issues and verifies the operator tokens used by the API.
package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"travel-backoffice/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingKey   = errors.New("jwt secret is required")
)

// Claims are the JWT claims carried by an operator token.
type Claims struct {
	OperatorID string `json:"oid"`
	Username   string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies operator tokens.
type Manager interface {
	Generate(sc model.Scope) (string, error)
	Verify(token string) (model.Scope, error)
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates an HS256 Manager. A zero ttl defaults to 24 hours.
func New(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrMissingKey
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &implManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *implManager) Generate(sc model.Scope) (string, error) {
	now := m.now()
	claims := Claims{
		OperatorID: sc.OperatorID,
		Username:   sc.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sc.OperatorID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *implManager) Verify(tokenStr string) (model.Scope, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return model.Scope{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.OperatorID == "" {
		return model.Scope{}, ErrInvalidToken
	}
	return model.Scope{OperatorID: claims.OperatorID, Username: claims.Username}, nil
}

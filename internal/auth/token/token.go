// Package token issues and verifies the JWT access/refresh pair and keeps the
// refresh-token blacklist in Redis.
package token

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"auctionhousego/internal/apperr"
	"auctionhousego/internal/permissions"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	blacklistKeyPrefix = "bl:"
)

var (
	ErrInvalidToken     = fmt.Errorf("token is invalid or expired: %w", apperr.ErrUnauthorized)
	ErrWrongTokenType   = fmt.Errorf("token has wrong type: %w", apperr.ErrUnauthorized)
	ErrTokenBlacklisted = fmt.Errorf("token is blacklisted: %w", apperr.ErrUnauthorized)
)

type Claims struct {
	Username  string `json:"username"`
	IsStaff   bool   `json:"is_staff"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Principal converts verified claims back into the request caller.
func (c *Claims) Principal() (permissions.Principal, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return permissions.Principal{}, ErrInvalidToken
	}
	return permissions.Principal{UserID: id, Username: c.Username, IsAdmin: c.IsStaff}, nil
}

type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
} // @name TokenPair

//go:generate mockgen -source=token.go -destination=mocks/token_mock.go -package=mocks
type IManager interface {
	Issue(p permissions.Principal) (Pair, error)
	ParseAccess(raw string) (permissions.Principal, error)
	ParseRefresh(raw string) (*Claims, error)
	Revoke(ctx context.Context, c *Claims) error
}

type manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	rdc        redis.Cmdable
	now        func() time.Time
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration, rdc redis.Cmdable) IManager {
	return newManager(secret, accessTTL, refreshTTL, rdc, time.Now)
}

func newManager(secret string, accessTTL, refreshTTL time.Duration, rdc redis.Cmdable, now func() time.Time) *manager {
	return &manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		rdc:        rdc,
		now:        now,
	}
}

func (m *manager) Issue(p permissions.Principal) (Pair, error) {
	access, err := m.sign(p, TypeAccess, m.accessTTL)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := m.sign(p, TypeRefresh, m.refreshTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

func (m *manager) sign(p permissions.Principal, typ string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		Username:  p.Username,
		IsStaff:   p.IsAdmin,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *manager) parse(raw, typ string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		zap.L().Debug("token_rejected", zap.String("type", typ), zap.Error(err))
		return nil, ErrInvalidToken
	}
	if claims.TokenType != typ {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

func (m *manager) ParseAccess(raw string) (permissions.Principal, error) {
	claims, err := m.parse(raw, TypeAccess)
	if err != nil {
		return permissions.Principal{}, err
	}
	return claims.Principal()
}

func (m *manager) ParseRefresh(raw string) (*Claims, error) {
	return m.parse(raw, TypeRefresh)
}

// Revoke blacklists a refresh token until it would have expired anyway. It fails with
// ErrTokenBlacklisted when the token was already revoked, so a refresh token rotates once.
func (m *manager) Revoke(ctx context.Context, c *Claims) error {
	if c.ExpiresAt == nil || c.ID == "" {
		return ErrInvalidToken
	}
	ttl := c.ExpiresAt.Sub(m.now())
	if ttl <= 0 {
		return ErrInvalidToken
	}
	ok, err := m.rdc.SetNX(ctx, blacklistKeyPrefix+c.ID, c.Subject, ttl).Result()
	if err != nil {
		return fmt.Errorf("blacklist refresh token: %w", err)
	}
	if !ok {
		return ErrTokenBlacklisted
	}
	return nil
}

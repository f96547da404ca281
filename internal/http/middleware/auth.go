package middleware

import (
	"strings"

	"auctionhousego/internal/apperr"
	"auctionhousego/internal/auth/token"
	"auctionhousego/internal/http/httperr"
	"auctionhousego/internal/permissions"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Authenticate resolves an optional bearer access token into the request principal.
// No header means an anonymous caller; a header with a bad token is rejected outright.
func Authenticate(tokens token.IManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(principalKey, permissions.Principal{})
			c.Next()
			return
		}
		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			httperr.Write(c, token.ErrInvalidToken)
			return
		}
		p, err := tokens.ParseAccess(strings.TrimSpace(raw))
		if err != nil {
			httperr.Write(c, err)
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Principal(c).Authenticated() {
			httperr.Write(c, apperr.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// Principal returns the caller set by Authenticate, or the anonymous principal.
func Principal(c *gin.Context) permissions.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(permissions.Principal); ok {
			return p
		}
	}
	return permissions.Principal{}
}

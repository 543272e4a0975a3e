package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mem "arca/pkg/memcache"
	"arca/pkg/utils"
)

const (
	// AnonymousOwner owns the itinerary slot of callers without a session.
	AnonymousOwner = "anonymous"

	sessionKey = "session"
)

// SessionMiddleware reads an optional bearer token. Requests without one run
// as the anonymous owner; a present but invalid or revoked token is rejected.
func SessionMiddleware(tokens *utils.TokenManager, revoked mem.RevokedTokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set("user_id", AnonymousOwner)
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		if revoked.IsRevoked(claims.ID) {
			utils.HandleServiceError(c, utils.ErrTokenRevoked)
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set(sessionKey, claims)
		c.Next()
	}
}

// RequireSession rejects anonymous callers. Use after SessionMiddleware.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Session(c); !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Session returns the claims set by SessionMiddleware, if any.
func Session(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}

// Owner is the slot owner for the request.
func Owner(c *gin.Context) string {
	if id := c.GetString("user_id"); id != "" {
		return id
	}
	return AnonymousOwner
}

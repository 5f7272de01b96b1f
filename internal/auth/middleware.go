package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireUser.
const (
	ContextUserID  = "userId"
	ContextIsAdmin = "isAdmin"
)

type TokenValidator interface {
	Validate(token string) (*Claims, error)
}

// bearerToken accepts both "Bearer <token>" and a bare token.
func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return h
}

// authenticate validates the token and stores the caller identity in the gin
// context. On failure the request is aborted with 401.
func authenticate(c *gin.Context, v TokenValidator) bool {
	tokenStr := bearerToken(c)
	if tokenStr == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
		return false
	}
	claims, err := v.Validate(tokenStr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid", "error": err.Error()})
		return false
	}
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextIsAdmin, claims.IsAdmin)
	return true
}

// RequireUser rejects the request with 401 unless it carries a valid token.
func RequireUser(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, v) {
			return
		}
		c.Next()
	}
}

// RequireAdmin is RequireUser plus a 403 for non-admin callers.
func RequireAdmin(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, v) {
			return
		}
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller, or "" outside RequireUser.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// IsAdmin reports the admin claim of the authenticated caller.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextIsAdmin)
}

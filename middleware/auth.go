package middleware

import (
	"net/http"

	"blogapi/models"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
)

// AuthCookie is the session cookie carrying the signed token.
const AuthCookie = "auth-token"

const claimsKey = "claims"

// CurrentUser extracts and validates the session token from the request
// cookie. Missing, malformed or expired tokens all come back as nil.
func CurrentUser(c *gin.Context) *utils.Claims {
	if cached, ok := c.Get(claimsKey); ok {
		if claims, ok := cached.(*utils.Claims); ok {
			return claims
		}
	}

	token, err := c.Cookie(AuthCookie)
	if err != nil || token == "" {
		return nil
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		return nil
	}

	c.Set(claimsKey, claims)
	return claims
}

// RequireAdmin is the one authorization guard in the codebase. Both the
// route-group middleware and every mutating handler call it, so the check
// cannot drift between the two layers.
func RequireAdmin(c *gin.Context) *utils.Claims {
	claims := CurrentUser(c)
	if claims == nil || claims.Role != models.RoleAdmin {
		return nil
	}
	return claims
}

// AdminRequired gates a route group on a valid ADMIN session.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if RequireAdmin(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

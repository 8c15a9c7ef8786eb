package middleware

import (
	"rentaride/internal/api"   // Session cookie name
	"rentaride/internal/utils" // JWT utility functions
	"strings"                  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// JWTAuthMiddleware validates the session token and extracts the caller's
// user ID. The token is read from the access_token cookie that signin sets,
// with an Authorization Bearer header as fallback for non-browser clients.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, _ := c.Cookie(api.SessionCookieName) // Session cookie first
		if tokenStr == "" {
			// Fall back to the Authorization header
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenStr == "" {
			// No token anywhere, abort with unauthorized status
			utils.RespondError(c, utils.UnauthorizedError("authentication required"))
			return
		}
		claims, err := utils.ParseJWT(tokenStr, secret) // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			utils.RespondError(c, utils.UnauthorizedError("invalid or expired token"))
			return
		}
		c.Set("userID", claims.UserID) // Store userID in context
		c.Next()                       // Proceed to the next handler
	}
}

package middleware

import (
	"net/http"                  // HTTP status codes
	"rentaride/internal/domain" // Domain models
	"rentaride/internal/utils"  // Error responses

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// AdminOnlyMiddleware checks the caller's admin flag from the database on each request
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			// JWT middleware did not run, abort with unauthorized status
			utils.RespondError(c, utils.UnauthorizedError("authentication required"))
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found or any error, abort with forbidden status
			utils.RespondError(c, utils.NewError(http.StatusForbidden, "admin access required"))
			return
		}
		// Check the admin role flag
		if !user.IsAdmin {
			utils.RespondError(c, utils.NewError(http.StatusForbidden, "admin access required"))
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}

package api

import (
	"context"                   // Context for Redis operations
	"net/http"                  // HTTP status codes
	"rentaride/internal/domain" // Domain models
	"rentaride/internal/utils"  // Utility functions
	"strconv"                   // String conversion
	"time"                      // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// How long a page of the user listing stays cached
const usersCacheTTL = 60 * time.Second

// UsersPage is one page of the admin user listing
type UsersPage struct {
	Users      []domain.User `json:"users"`       // Sanitized users
	Page       int           `json:"page"`        // Current page
	PageSize   int           `json:"page_size"`   // Page size
	Total      int64         `json:"total"`       // Total number of users
	TotalPages int           `json:"total_pages"` // Total pages
	Cached     bool          `json:"cached"`      // Whether the response came from cache
}

// ListUsersHandler returns a paginated listing of all accounts for admins,
// cached briefly in Redis
func ListUsersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	cache := utils.NewCache(rdb)
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		page := 1                   // Default page number
		pageSize := 20              // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		// Serve from cache when a fresh copy of this page exists
		cacheKey := utils.UsersPageKey(page, pageSize)
		var cached UsersPage
		if found, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
			cached.Cached = true
			c.JSON(http.StatusOK, &cached)
			return
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		var total int64                 // Total user count
		if err := db.Model(&domain.User{}).Count(&total).Error; err != nil {
			utils.RespondError(c, err)
			return
		}
		var users []domain.User // Slice to hold users
		if err := db.Order("id").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
			utils.RespondError(c, err)
			return
		}
		resp := UsersPage{
			Users:      users,                                  // Sanitized users (hash never serialized)
			Page:       page,                                   // Current page
			PageSize:   pageSize,                               // Page size
			Total:      total,                                  // Total number of users
			TotalPages: (int(total) + pageSize - 1) / pageSize, // Total pages
		}
		// Cache the page for future requests; failures only cost the cache
		_ = cache.SetJSON(ctx, cacheKey, &resp, usersCacheTTL)
		c.JSON(http.StatusOK, &resp)
	}
}

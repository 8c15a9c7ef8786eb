package main

import (
	"context"                       // context package is needed for Redis operations
	"log"                           // log package is needed for logging
	"rentaride/internal/api"        // Custom package for API handlers
	"rentaride/internal/config"     // Custom package for configuration
	"rentaride/internal/middleware" // Custom package for middleware

	"github.com/gin-contrib/cors"  // CORS middleware for Gin
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database.
	// TranslateError lets a duplicate email insert surface as gorm.ErrDuplicatedKey.
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// CORS for the frontend, credentials enabled so the session cookie flows
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "PUT", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// User auth routes
	userGroup := r.Group("/api/user")
	userGroup.POST("/signup", api.SignupHandler(db, api.RoleUser))    // Registration endpoint
	userGroup.POST("/signin", api.SigninHandler(db, cfg, false))      // Login endpoint
	userGroup.POST("/signout", api.SignoutHandler(cfg, api.RoleUser)) // Logout endpoint
	userGroup.POST("/google", api.GoogleHandler(db, cfg, false))      // OAuth upsert-login endpoint

	// Vendor auth routes
	vendorGroup := r.Group("/api/vendor")
	vendorGroup.POST("/signup", api.SignupHandler(db, api.RoleVendor))    // Vendor registration endpoint
	vendorGroup.POST("/signin", api.SigninHandler(db, cfg, true))         // Vendor login endpoint
	vendorGroup.POST("/signout", api.SignoutHandler(cfg, api.RoleVendor)) // Vendor logout endpoint
	vendorGroup.POST("/google", api.GoogleHandler(db, cfg, true))         // Vendor OAuth upsert-login endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/api/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.AccessTokenSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/users", api.ListUsersHandler(db, redisClient)) // List users endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}

package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting the origin list
	"time"    // For token lifetime parsing

	"github.com/joho/godotenv" // For loading .env files
)

// Defaults applied when the corresponding environment variable is unset
const (
	DefaultAccessTokenTTL = 720 * time.Hour // 30 days
)

// Config holds the application configuration
type Config struct {
	AppPort           string        // Application port
	DBUser            string        // Database user
	DBPassword        string        // Database password
	DBHost            string        // Database host
	DBPort            string        // Database port
	DBName            string        // Database name
	AccessTokenSecret string        // JWT signing secret
	AccessTokenTTL    time.Duration // JWT lifetime
	RedisAddr         string        // Redis server address
	RedisPass         string        // Redis password
	RedisDB           int           // Redis database number
	AllowedOrigins    []string      // CORS allow-list
	IsProd            bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:           os.Getenv("APP_PORT"),                        // Application port
		DBUser:            os.Getenv("DB_USER"),                         // Database user
		DBPassword:        os.Getenv("DB_PASSWORD"),                     // Database password
		DBHost:            os.Getenv("DB_HOST"),                         // Database host
		DBPort:            os.Getenv("DB_PORT"),                         // Database port
		DBName:            os.Getenv("DB_NAME"),                         // Database name
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),             // JWT signing secret
		AccessTokenTTL:    tokenTTL(os.Getenv("ACCESS_TOKEN_TTL")),      // JWT lifetime
		RedisAddr:         os.Getenv("REDIS_ADDR"),                      // Redis server address
		RedisPass:         os.Getenv("REDIS_PASS"),                      // Redis password
		RedisDB:           redisDB,                                      // Redis database number
		AllowedOrigins:    allowedOrigins(os.Getenv("ALLOWED_ORIGINS")), // CORS allow-list
		IsProd:            os.Getenv("IS_PROD") == "true",               // Is production environment
	}
}

// tokenTTL parses the configured token lifetime, falling back to 30 days
func tokenTTL(raw string) time.Duration {
	if raw == "" {
		return DefaultAccessTokenTTL
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return DefaultAccessTokenTTL // Ignore unparseable or non-positive values
	}
	return d
}

// allowedOrigins splits the comma-separated origin list, with the frontend defaults
func allowedOrigins(raw string) []string {
	if raw == "" {
		return []string{"https://rent-a-ride-two.vercel.app", "http://localhost:5173"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

package api

import (
	"errors"                    // Error unwrapping
	"net/http"                  // HTTP status codes
	"rentaride/internal/config" // App configuration
	"rentaride/internal/domain" // Domain models
	"rentaride/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Account roles served by the auth route groups
const (
	RoleUser   = "user"   // Regular customer account
	RoleVendor = "vendor" // Vendor account
)

// Session cookie settings
const (
	SessionCookieName   = "access_token"    // Cookie carrying the signed token
	sessionCookieMaxAge = 30 * 24 * 60 * 60 // 30 days, in seconds
)

// Request struct for signup
type SignupRequest struct {
	Username string `json:"username"` // Display name
	Email    string `json:"email"`    // Unique email
	Password string `json:"password"` // Plaintext password, hashed before storage
}

// Request struct for signin
type SigninRequest struct {
	Email    string `json:"email"`    // Account email
	Password string `json:"password"` // Plaintext password to verify
}

// Request struct for the OAuth upsert-login
type GoogleRequest struct {
	Email string `json:"email"` // Required provider email
	Name  string `json:"name"`  // Optional display name
	Photo string `json:"photo"` // Optional avatar URL
}

// SignupHandler registers a new account for the given role
func SignupHandler(db *gorm.DB, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, utils.ValidationError("invalid request body"))
			return
		}
		// All three fields are required
		if req.Username == "" || req.Email == "" || req.Password == "" {
			utils.RespondError(c, utils.ValidationError("username, email and password are required"))
			return
		}
		// Hash the password before it touches the store
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		user := domain.User{
			Username: req.Username,       // Display name
			Email:    req.Email,          // Unique email
			Password: string(hash),       // Bcrypt hash
			IsVendor: role == RoleVendor, // Role flag from the route group
		}
		// Insert and let the store's unique index decide duplicates; a failed
		// insert is the authoritative conflict signal, there is no pre-check
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				utils.RespondError(c, utils.ConflictError("email already in use"))
				return
			}
			utils.RespondError(c, err) // Any other store failure propagates unchanged
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": role + " created successfully", // Confirmation message
			"user":    &user,                          // Sanitized user (hash never serialized)
		})
	}
}

// SigninHandler authenticates an account and issues the session cookie.
// vendorOnly gates the vendor route group: a non-vendor match is reported as
// not found, identically to a missing account, so the role is never leaked.
func SigninHandler(db *gorm.DB, cfg *config.Config, vendorOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SigninRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, utils.ValidationError("invalid request body"))
			return
		}
		// Both fields are required
		if req.Email == "" || req.Password == "" {
			utils.RespondError(c, utils.ValidationError("email and password required"))
			return
		}
		var user domain.User // Fetch user by email
		err := db.Where("email = ?", req.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && vendorOnly && !user.IsVendor) {
			utils.RespondError(c, utils.NotFoundError("user not found"))
			return
		}
		if err != nil {
			utils.RespondError(c, err) // Any other store failure propagates unchanged
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			utils.RespondError(c, utils.UnauthorizedError("wrong credentials"))
			return
		}
		// Issue the signed token and set it as the session cookie
		token, err := utils.GenerateJWT(user.ID, cfg.AccessTokenSecret, cfg.AccessTokenTTL)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		setSessionCookie(c, token, cfg)
		c.JSON(http.StatusOK, &user) // Sanitized user (hash never serialized)
	}
}

// SignoutHandler clears the session cookie
func SignoutHandler(cfg *config.Config, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clearSessionCookie(c, cfg)
		c.JSON(http.StatusOK, gin.H{"message": role + " signed out successfully"})
	}
}

// GoogleHandler logs an account in from an OAuth profile, creating it first
// if no account with that email exists. vendor selects the role of created
// accounts and gates the login branch on the vendor flag; an existing
// non-vendor account on the vendor route falls through to creation and
// surfaces the store's uniqueness violation as a conflict.
func GoogleHandler(db *gorm.DB, cfg *config.Config, vendor bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GoogleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, utils.ValidationError("invalid request body"))
			return
		}
		if req.Email == "" {
			utils.RespondError(c, utils.ValidationError("email is required"))
			return
		}
		var user domain.User // Look up an existing account by email
		err := db.Where("email = ?", req.Email).First(&user).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, err) // Any other store failure propagates unchanged
			return
		}
		// Existing account with the right role: plain login
		if err == nil && (!vendor || user.IsVendor) {
			token, err := utils.GenerateJWT(user.ID, cfg.AccessTokenSecret, cfg.AccessTokenTTL)
			if err != nil {
				utils.RespondError(c, err)
				return
			}
			setSessionCookie(c, token, cfg)
			c.JSON(http.StatusOK, &user) // Sanitized user (hash never serialized)
			return
		}
		// No usable account: synthesize one from the OAuth profile with a
		// hashed placeholder secret so it still has a working credential
		secret, err := utils.GeneratePassword()
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		newUser := domain.User{
			Username:       utils.GenerateUsername(req.Name), // Derived display name
			Email:          req.Email,                        // Provider email
			Password:       string(hash),                     // Hashed placeholder secret
			ProfilePicture: req.Photo,                        // Provider avatar
			IsVendor:       vendor,                           // Role flag from the route group
		}
		if err := db.Create(&newUser).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				utils.RespondError(c, utils.ConflictError("email already in use"))
				return
			}
			utils.RespondError(c, err)
			return
		}
		token, err := utils.GenerateJWT(newUser.ID, cfg.AccessTokenSecret, cfg.AccessTokenTTL)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		setSessionCookie(c, token, cfg)
		c.JSON(http.StatusCreated, &newUser) // Sanitized user (hash never serialized)
	}
}

// setSessionCookie sets the HTTP-only session cookie. Production gets
// Secure + SameSite=None for the cross-site frontend, development gets Lax.
func setSessionCookie(c *gin.Context, token string, cfg *config.Config) {
	if cfg.IsProd {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(SessionCookieName, token, sessionCookieMaxAge, "/", "", cfg.IsProd, true)
}

// clearSessionCookie expires the session cookie. Attributes must match the
// ones it was set with or browsers will not remove it.
func clearSessionCookie(c *gin.Context, cfg *config.Config) {
	if cfg.IsProd {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", cfg.IsProd, true)
}

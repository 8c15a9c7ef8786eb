package utils

import (
	"errors"   // Error unwrapping
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AppError is an error carrying the HTTP status it should be reported with
type AppError struct {
	StatusCode int    // HTTP status code
	Message    string // Client-facing message
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// NewError builds an AppError with an explicit status code
func NewError(statusCode int, message string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message}
}

// ValidationError reports a missing or malformed request field (400)
func ValidationError(message string) *AppError {
	return NewError(http.StatusBadRequest, message)
}

// ConflictError reports a duplicate unique key (409)
func ConflictError(message string) *AppError {
	return NewError(http.StatusConflict, message)
}

// NotFoundError reports a missing account (404)
func NotFoundError(message string) *AppError {
	return NewError(http.StatusNotFound, message)
}

// UnauthorizedError reports bad credentials (401)
func UnauthorizedError(message string) *AppError {
	return NewError(http.StatusUnauthorized, message)
}

// RespondError is the terminal error responder: every failed request funnels
// through here. Errors without a status map to a generic 500 and get logged;
// the response never exposes internals. The "succes" spelling is the wire
// contract existing clients depend on.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		logrus.WithError(err).Error("unhandled error")
		appErr = NewError(http.StatusInternalServerError, "internal server error")
	}
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"succes":     false,             // Stable error body shape
		"message":    appErr.Message,    // Client-facing message
		"statusCode": appErr.StatusCode, // Echoed status code
	})
}

package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespondErrorAppError(t *testing.T) {
	w, body := respond(t, ConflictError("email already in use"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, body["succes"])
	assert.Equal(t, "email already in use", body["message"])
	assert.Equal(t, float64(http.StatusConflict), body["statusCode"])
}

func TestRespondErrorUnknown(t *testing.T) {
	// Errors without a status collapse to a generic 500, no internals leaked
	w, body := respond(t, errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", body["message"])
	assert.NotContains(t, body["message"], "dial tcp")
}

func TestErrorConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ValidationError("x").StatusCode)
	assert.Equal(t, http.StatusConflict, ConflictError("x").StatusCode)
	assert.Equal(t, http.StatusNotFound, NotFoundError("x").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, UnauthorizedError("x").StatusCode)
	assert.Equal(t, "x", ValidationError("x").Error())
}

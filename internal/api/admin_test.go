package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"rentaride/internal/domain"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminRouter(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/users", ListUsersHandler(db, rdb))
	return r
}

func seedUsers(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		user := domain.User{
			Username: fmt.Sprintf("user%02d", i),
			Email:    fmt.Sprintf("user%02d@x.com", i),
			Password: "$2a$10$notarealhashnotarealhashnotarealhash",
			IsVendor: i%2 == 0,
		}
		require.NoError(t, db.Create(&user).Error)
	}
}

func getUsersPage(t *testing.T, r http.Handler, query string) (*httptest.ResponseRecorder, UsersPage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var page UsersPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	return w, page
}

func TestListUsersPagination(t *testing.T) {
	db := newTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := newAdminRouter(db, rdb)
	seedUsers(t, db, 25)

	w, page := getUsersPage(t, r, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, page.Users, 20)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.Cached)

	w, page = getUsersPage(t, r, "?page=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, page.Users, 5)
	assert.Equal(t, 2, page.Page)
}

func TestListUsersCaching(t *testing.T) {
	db := newTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := newAdminRouter(db, rdb)
	seedUsers(t, db, 3)

	w, first := getUsersPage(t, r, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, first.Cached)

	// The second request within the TTL is served from cache with the same payload
	w, second := getUsersPage(t, r, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Users, second.Users)
	assert.Equal(t, first.Total, second.Total)

	// Once the TTL passes, the listing is rebuilt from the store
	mr.FastForward(2 * usersCacheTTL)
	w, third := getUsersPage(t, r, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, third.Cached)
}

func TestListUsersNeverExposesHashes(t *testing.T) {
	db := newTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := newAdminRouter(db, rdb)
	seedUsers(t, db, 2)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	users, ok := body["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotContains(t, u.(map[string]any), "password")
	}
}

func TestListUsersClampsPageSize(t *testing.T) {
	db := newTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := newAdminRouter(db, rdb)
	seedUsers(t, db, 1)

	// Out-of-range sizes fall back to the default
	w, page := getUsersPage(t, r, "?page_size=500")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, page.PageSize)

	w, page = getUsersPage(t, r, "?page_size=-1&page=-3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, page.PageSize)
	assert.Equal(t, 1, page.Page)
}

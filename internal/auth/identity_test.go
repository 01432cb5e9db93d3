package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderResolver(t *testing.T) {
	res := DefaultResolver()

	t.Run("resolves header value", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todos", nil)
		req.Header.Set(HeaderUserID, "alice")

		owner, err := res.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "alice", owner)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todos", nil)
		req.Header.Set(HeaderUserID, "  alice  ")

		owner, err := res.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "alice", owner)
	})

	t.Run("missing header fails", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todos", nil)

		_, err := res.Resolve(req)
		assert.ErrorIs(t, err, ErrNoIdentity)
	})

	t.Run("blank header fails", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todos", nil)
		req.Header.Set(HeaderUserID, "   ")

		_, err := res.Resolve(req)
		assert.ErrorIs(t, err, ErrNoIdentity)
	})
}

func TestRequireUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequireUser(DefaultResolver()))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, Owner(c))
	})

	t.Run("rejects before route logic", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("stashes owner in context", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(HeaderUserID, "alice")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "alice", rr.Body.String())
	})
}

func TestOwnerWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, Owner(c))
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, string) (string, error) { return "", nil }

func runGuard(mw gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireStore_NilPool(t *testing.T) {
	w := runGuard(RequireStore(nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database not connected")
}

func TestRequireGemini_NilClient(t *testing.T) {
	w := runGuard(RequireGemini(nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "gemini client not initialized")
}

func TestRequireGemini_Configured(t *testing.T) {
	w := runGuard(RequireGemini(stubGenerator{}))

	assert.Equal(t, http.StatusOK, w.Code)
}

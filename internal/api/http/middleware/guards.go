package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/draftdb-io/draftdb-backend/internal/chat"
)

// RequireStore guards store-backed routes with a single capability check per
// request instead of a nil-connection conditional in every handler.
func RequireStore(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
			return
		}
		c.Next()
	}
}

// RequireGemini guards model-backed routes. The client is nil when the API
// credential was absent at startup or the client failed to initialize.
func RequireGemini(llm chat.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if llm == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "gemini client not initialized"})
			return
		}
		c.Next()
	}
}

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/draftdb-io/draftdb-backend/internal/chat"
)

type StatusResponse struct {
	Server   bool `json:"server"`
	Gemini   bool `json:"gemini"`
	Database bool `json:"database"`
}

// StatusHandler reports live connectivity of the process and its two
// collaborators: the Gemini client and the project store.
type StatusHandler struct {
	db  *pgxpool.Pool
	llm chat.Generator
}

func NewStatusHandler(db *pgxpool.Pool, llm chat.Generator) *StatusHandler {
	return &StatusHandler{db: db, llm: llm}
}

func (h *StatusHandler) Status(c *gin.Context) {
	dbUp := false
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		dbUp = h.db.Ping(pingCtx) == nil
	}

	c.JSON(http.StatusOK, StatusResponse{
		Server:   true,
		Gemini:   h.llm != nil,
		Database: dbUp,
	})
}

func (h *StatusHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/status", h.Status)
}

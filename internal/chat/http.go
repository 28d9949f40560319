package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	llm Generator
	log *zap.Logger
}

func NewHandler(llm Generator, log *zap.Logger) *Handler {
	return &Handler{llm: llm, log: log}
}

// Register attaches the chat route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}

type chatReq struct {
	Messages []Turn `json:"messages"`
}

type chatResp struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	plan := BuildPrompt(req.Messages)

	text, err := h.llm.Generate(c.Request.Context(), plan.Prompt)
	if err != nil {
		h.log.Error("upstream generate failed", zap.String("mode", string(plan.Mode)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, chatResp{Content: text, Role: RoleAssistant})
}

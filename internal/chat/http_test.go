package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	resp      string
	err       error
	gotPrompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.resp, nil
}

func newTestRouter(llm Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(llm, zap.NewNop()).Register(r.Group("/api"))
	return r
}

func postChat(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat_ClarifyScenario(t *testing.T) {
	llm := &fakeGenerator{resp: "What will the blog store besides posts?"}
	r := newTestRouter(llm)

	w := postChat(t, r, gin.H{"messages": []Turn{{Role: RoleUser, Content: "I need a blog"}}})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Content string `json:"content"`
		Role    string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "What will the blog store besides posts?", resp.Content)
	assert.Equal(t, RoleAssistant, resp.Role)

	// One user turn: the clarify instruction leads the prompt and the
	// transcript follows in order.
	assert.Contains(t, llm.gotPrompt, "one clarifying question")
	assert.True(t, strings.HasSuffix(llm.gotPrompt, "user: I need a blog"))
}

func TestChat_GenerateScenario(t *testing.T) {
	llm := &fakeGenerator{resp: "Here is your schema:\n```json\n{\"collections\":[]}\n```"}
	r := newTestRouter(llm)

	w := postChat(t, r, gin.H{"messages": []Turn{
		{Role: RoleUser, Content: "I need a blog"},
		{Role: RoleAssistant, Content: "What content types?"},
		{Role: RoleUser, Content: "Posts and comments"},
		{Role: RoleAssistant, Content: "Relationships?"},
		{Role: RoleUser, Content: "One post has many comments"},
	}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "```json")
	assert.Contains(t, llm.gotPrompt, "complete database schema")
}

func TestChat_ModelOutputReturnedVerbatim(t *testing.T) {
	llm := &fakeGenerator{resp: "  raw   text\nwith whitespace  "}
	r := newTestRouter(llm)

	w := postChat(t, r, gin.H{"messages": []Turn{{Role: RoleUser, Content: "hi"}}})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "  raw   text\nwith whitespace  ", resp.Content)
}

func TestChat_UpstreamError(t *testing.T) {
	llm := &fakeGenerator{err: errors.New("generate content: deadline exceeded")}
	r := newTestRouter(llm)

	w := postChat(t, r, gin.H{"messages": []Turn{{Role: RoleUser, Content: "hi"}}})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestChat_InvalidBody(t *testing.T) {
	r := newTestRouter(&fakeGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_EmptyMessages(t *testing.T) {
	llm := &fakeGenerator{resp: "What database are we designing?"}
	r := newTestRouter(llm)

	w := postChat(t, r, gin.H{"messages": []Turn{}})

	// Zero user turns is still a valid conversation: clarify mode.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, llm.gotPrompt, "one clarifying question")
}

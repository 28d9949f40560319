package chat

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is one message in a conversation. Order of turns is conversational
// order; a turn is never rewritten once sent.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

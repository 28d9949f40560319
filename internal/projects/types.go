package projects

import (
	"encoding/json"
	"time"
)

// Project is the persisted unit combining a display name, a generated schema
// and the conversation that produced it. Schema and conversation travel as
// raw JSON: the gateway stores and returns them without interpretation.
//
// Update only ever touches Name, Schema and UpdatedAt. SchemaType and
// Conversation are fixed at creation.
type Project struct {
	PublicID     string          `json:"id"`
	Name         string          `json:"name"`
	Schema       json.RawMessage `json:"schema"`
	SchemaType   string          `json:"schemaType"`
	Conversation json.RawMessage `json:"conversation"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

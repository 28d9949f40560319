package chat

import "strings"

type Mode string

const (
	ModeClarify  Mode = "clarify"
	ModeGenerate Mode = "generate"
)

// generateAfterUserTurns is the number of user turns that flips the
// conversation from clarifying questions to schema generation. Three user
// turns is the first point that generates.
const generateAfterUserTurns = 3

const clarifyInstruction = "You are a database design assistant. Ask the user exactly one clarifying question " +
	"about their target database: its purpose, the main collections it needs, the structure of " +
	"the documents in each collection, the relationships between collections, or the indexes and " +
	"constraints it requires. Cover one topic per turn and wait for the user's reply before " +
	"moving to the next topic."

const generateInstruction = "You are a database design assistant. Based on the conversation so far, produce a " +
	"complete database schema. Include: every collection definition, a sample document per " +
	"collection with field types, suggested indexes, and for each relationship a recommendation " +
	"of embedding versus referencing with a short rationale. Place the machine-readable schema " +
	"inside a fenced ```json code block."

// PromptPlan is the policy decision for one request: which mode the
// conversation is in and the single flattened prompt to send upstream.
type PromptPlan struct {
	Mode   Mode
	Prompt string
}

// Decide picks the mode from conversation state alone: fewer than three user
// turns keeps clarifying, three or more generates. A pure function of the
// turn list, including the empty list.
func Decide(turns []Turn) Mode {
	users := 0
	for _, t := range turns {
		if t.Role == RoleUser {
			users++
		}
	}
	if users < generateAfterUserTurns {
		return ModeClarify
	}
	return ModeGenerate
}

// Instruction returns the system instruction text for a mode.
func Instruction(mode Mode) string {
	if mode == ModeGenerate {
		return generateInstruction
	}
	return clarifyInstruction
}

// BuildPrompt prepends the mode's instruction as a synthetic system turn and
// flattens the combined sequence for a single-prompt completion call. The
// upstream model reads the whole transcript in order, so turn order must be
// preserved exactly.
func BuildPrompt(turns []Turn) PromptPlan {
	mode := Decide(turns)

	combined := make([]Turn, 0, len(turns)+1)
	combined = append(combined, Turn{Role: RoleSystem, Content: Instruction(mode)})
	combined = append(combined, turns...)

	return PromptPlan{Mode: mode, Prompt: Flatten(combined)}
}

// Flatten serializes turns as "role: content" lines joined by newlines, in
// sequence order, with no trailing separator.
func Flatten(turns []Turn) string {
	lines := make([]string, len(turns))
	for i, t := range turns {
		lines[i] = t.Role + ": " + t.Content
	}
	return strings.Join(lines, "\n")
}

package assistant

import (
	"time"

	"github.com/google/uuid"
)

// Role tags a conversation entry. The set is closed: consumers can switch
// over it exhaustively.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleError     Role = "error"
)

// Citation is a grounding reference attached to a generated answer.
type Citation struct {
	Label string `json:"label"`
	URI   string `json:"uri"`
}

// Entry is one item of a conversation log. Entries are never mutated once
// appended; the log order is the sole timeline of the conversation.
type Entry struct {
	ID        string     `json:"id"`
	Role      Role       `json:"role"`
	Text      string     `json:"text"`
	Citations []Citation `json:"citations,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func newEntry(role Role, text string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// normalizeCitations drops citations without a resolvable URI and collapses
// duplicate URIs to the first occurrence, preserving order.
func normalizeCitations(citations []Citation) []Citation {
	if len(citations) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(citations))
	out := make([]Citation, 0, len(citations))
	for _, c := range citations {
		if c.URI == "" || seen[c.URI] {
			continue
		}
		seen[c.URI] = true
		if c.Label == "" {
			c.Label = c.URI
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

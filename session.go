package docent

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// Role identifies the author of a message.
type Role string

// Message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Session represents a single conversation.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the session contains invalid fields.
func (s *Session) Validate() error {
	if s.ID == "" {
		return Errorf(EINVALID, "session ID required")
	}
	if s.Title == "" {
		return Errorf(EINVALID, "session title required")
	}
	return nil
}

// Attachment describes a file the user sent along with a message.
// The file contents are not stored.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size"`
	Hash        string `json:"hash,omitempty"`
}

// Message is a single entry in a session. Messages are never modified
// once they are appended.
type Message struct {
	ID         string      `json:"id"`
	SessionID  string      `json:"sessionId"`
	Position   int         `json:"position"`
	Role       Role        `json:"role"`
	Content    string      `json:"content"`
	Sources    []string    `json:"sources,omitempty"`    // assistant only
	Attachment *Attachment `json:"attachment,omitempty"` // user only
	CreatedAt  time.Time   `json:"createdAt"`
}

// Validate returns an error if the message contains invalid fields.
func (m *Message) Validate() error {
	if m.SessionID == "" {
		return Errorf(EINVALID, "message session ID required")
	}
	switch m.Role {
	case RoleUser:
		if len(m.Sources) > 0 {
			return Errorf(EINVALID, "user message cannot carry sources")
		}
		if m.Content == "" && m.Attachment == nil {
			return Errorf(EINVALID, "user message content required")
		}
	case RoleAssistant:
		if m.Attachment != nil {
			return Errorf(EINVALID, "assistant message cannot carry an attachment")
		}
		if m.Content == "" {
			return Errorf(EINVALID, "assistant message content required")
		}
	default:
		return Errorf(EINVALID, "invalid message role %q", m.Role)
	}
	return nil
}

// SessionService represents a service for managing sessions and their messages.
type SessionService interface {
	// CreateSession creates a new session with a caller-chosen ID.
	// Returns ECONFLICT if a session with the same ID already exists.
	CreateSession(ctx context.Context, session *Session) error

	// FindSessionByID retrieves a session by ID.
	// Returns ENOTFOUND if the session does not exist.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// FindSessions retrieves sessions, most recently created first.
	FindSessions(ctx context.Context, filter SessionFilter) ([]*Session, error)

	// DeleteSession permanently removes a session and all of its messages.
	// Returns ENOTFOUND if the session does not exist.
	DeleteSession(ctx context.Context, id string) error

	// AppendMessage adds a message at the end of a session.
	// ID, Position and CreatedAt are assigned by the store.
	// Returns ENOTFOUND if the session does not exist.
	AppendMessage(ctx context.Context, msg *Message) error

	// FindMessages returns the messages of a session in insertion order.
	// Returns an empty slice if the session has no messages.
	FindMessages(ctx context.Context, sessionID string) ([]*Message, error)
}

// SessionFilter represents a filter for FindSessions.
type SessionFilter struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// MaxTitleLength is the number of runes kept from the first user turn
// when deriving a session title.
const MaxTitleLength = 40

// SessionTitle derives a session title from the first user turn.
// Text longer than MaxTitleLength runes is cut and marked with "...".
// The fallback is used when the text is blank.
func SessionTitle(text, fallback string) string {
	title := strings.Join(strings.Fields(text), " ")
	if title == "" {
		title = fallback
	}
	if title == "" {
		return "New chat"
	}
	if utf8.RuneCountInString(title) <= MaxTitleLength {
		return title
	}
	runes := []rune(title)
	return strings.TrimSpace(string(runes[:MaxTitleLength])) + "..."
}

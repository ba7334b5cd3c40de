package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docent"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docent.SessionService = (*SessionService)(nil)

// SessionService implements docent.SessionService using SQLite.
type SessionService struct {
	db  *DB
	now func() time.Time
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db, now: time.Now}
}

// CreateSession creates a new session.
func (s *SessionService) CreateSession(ctx context.Context, session *docent.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now()
	}
	session.CreatedAt = session.CreatedAt.UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, title, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`, session.ID, session.Title, formatTime(session.CreatedAt))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return docent.Errorf(docent.ECONFLICT, "session %q already exists", session.ID)
	}

	return nil
}

// FindSessionByID retrieves a session by ID.
func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*docent.Session, error) {
	var session docent.Session
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, created_at
		FROM sessions
		WHERE id = ?
	`, id).Scan(&session.ID, &session.Title, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, docent.Errorf(docent.ENOTFOUND, "session not found")
	}
	if err != nil {
		return nil, err
	}

	if session.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &session, nil
}

// FindSessions retrieves sessions, most recently created first.
func (s *SessionService) FindSessions(ctx context.Context, filter docent.SessionFilter) ([]*docent.Session, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, created_at FROM sessions ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []*docent.Session{}
	for rows.Next() {
		var session docent.Session
		var createdAt string

		if err := rows.Scan(&session.ID, &session.Title, &createdAt); err != nil {
			return nil, err
		}
		if session.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}

		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}

// DeleteSession permanently removes a session and its messages.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docent.Errorf(docent.ENOTFOUND, "session not found")
	}

	return nil
}

// AppendMessage adds a message at the end of its session.
// The session check, position assignment and insert run in one transaction.
func (s *SessionService) AppendMessage(ctx context.Context, msg *docent.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	sources, err := encodeSources(msg.Sources)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM sessions WHERE id = ?", msg.SessionID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return docent.Errorf(docent.ENOTFOUND, "session %q not found", msg.SessionID)
	}
	if err != nil {
		return err
	}

	var position int
	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM messages WHERE session_id = ?", msg.SessionID,
	).Scan(&position); err != nil {
		return err
	}

	var attName sql.NullString
	var attType, attHash string
	var attSize int64
	if a := msg.Attachment; a != nil {
		attName = sql.NullString{String: a.Name, Valid: true}
		attType, attSize, attHash = a.ContentType, a.Size, a.Hash
	}

	id := uuid.New().String()
	createdAt := s.now().UTC()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO messages (id, session_id, position, role, content, sources,
			attachment_name, attachment_type, attachment_size, attachment_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, msg.SessionID, position, string(msg.Role), msg.Content, sources,
		attName, attType, attSize, attHash, formatTime(createdAt)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	msg.ID = id
	msg.Position = position
	msg.CreatedAt = createdAt
	return nil
}

// FindMessages returns the messages of a session in insertion order.
func (s *SessionService) FindMessages(ctx context.Context, sessionID string) ([]*docent.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, position, role, content, sources,
			attachment_name, attachment_type, attachment_size, attachment_hash, created_at
		FROM messages
		WHERE session_id = ?
		ORDER BY position ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []*docent.Message{}
	for rows.Next() {
		var msg docent.Message
		var role, sources, createdAt string
		var attName sql.NullString
		var attType, attHash string
		var attSize int64

		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Position, &role, &msg.Content, &sources,
			&attName, &attType, &attSize, &attHash, &createdAt); err != nil {
			return nil, err
		}

		msg.Role = docent.Role(role)
		if msg.Sources, err = decodeSources(sources); err != nil {
			return nil, err
		}
		if attName.Valid {
			msg.Attachment = &docent.Attachment{
				Name:        attName.String,
				ContentType: attType,
				Size:        attSize,
				Hash:        attHash,
			}
		}
		if msg.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}

		msgs = append(msgs, &msg)
	}

	return msgs, rows.Err()
}

// encodeSources stores sources as a JSON array; no sources is stored as "".
func encodeSources(sources []string) (string, error) {
	if len(sources) == 0 {
		return "", nil
	}
	b, err := json.Marshal(sources)
	if err != nil {
		return "", fmt.Errorf("failed to encode sources: %w", err)
	}
	return string(b), nil
}

func decodeSources(value string) ([]string, error) {
	if value == "" {
		return nil, nil
	}
	var sources []string
	if err := json.Unmarshal([]byte(value), &sources); err != nil {
		return nil, fmt.Errorf("failed to decode sources: %w", err)
	}
	return sources, nil
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docent"
)

// Ensure LoggingSessionService implements docent.SessionService.
var _ docent.SessionService = (*LoggingSessionService)(nil)

// LoggingSessionService wraps a SessionService with debug logging.
type LoggingSessionService struct {
	next   docent.SessionService
	logger *slog.Logger
}

// NewLoggingSessionService creates a new LoggingSessionService.
func NewLoggingSessionService(next docent.SessionService, logger *slog.Logger) *LoggingSessionService {
	return &LoggingSessionService{next: next, logger: logger}
}

func (s *LoggingSessionService) CreateSession(ctx context.Context, session *docent.Session) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create session", "id", session.ID, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.CreateSession(ctx, session)
}

func (s *LoggingSessionService) FindSessionByID(ctx context.Context, id string) (session *docent.Session, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find session", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindSessionByID(ctx, id)
}

func (s *LoggingSessionService) FindSessions(ctx context.Context, filter docent.SessionFilter) (sessions []*docent.Session, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find sessions", "count", len(sessions), "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindSessions(ctx, filter)
}

func (s *LoggingSessionService) DeleteSession(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete session", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.DeleteSession(ctx, id)
}

func (s *LoggingSessionService) AppendMessage(ctx context.Context, msg *docent.Message) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("append message",
			"session", msg.SessionID,
			"role", string(msg.Role),
			"position", msg.Position,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AppendMessage(ctx, msg)
}

func (s *LoggingSessionService) FindMessages(ctx context.Context, sessionID string) (msgs []*docent.Message, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find messages", "session", sessionID, "count", len(msgs), "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindMessages(ctx, sessionID)
}

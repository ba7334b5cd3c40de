package mock

import (
	"context"

	"github.com/fwojciec/docent"
)

var _ docent.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of docent.SessionService.
type SessionService struct {
	CreateSessionFn   func(ctx context.Context, session *docent.Session) error
	FindSessionByIDFn func(ctx context.Context, id string) (*docent.Session, error)
	FindSessionsFn    func(ctx context.Context, filter docent.SessionFilter) ([]*docent.Session, error)
	DeleteSessionFn   func(ctx context.Context, id string) error
	AppendMessageFn   func(ctx context.Context, msg *docent.Message) error
	FindMessagesFn    func(ctx context.Context, sessionID string) ([]*docent.Message, error)
}

func (s *SessionService) CreateSession(ctx context.Context, session *docent.Session) error {
	return s.CreateSessionFn(ctx, session)
}

func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*docent.Session, error) {
	return s.FindSessionByIDFn(ctx, id)
}

func (s *SessionService) FindSessions(ctx context.Context, filter docent.SessionFilter) ([]*docent.Session, error) {
	return s.FindSessionsFn(ctx, filter)
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.DeleteSessionFn(ctx, id)
}

func (s *SessionService) AppendMessage(ctx context.Context, msg *docent.Message) error {
	return s.AppendMessageFn(ctx, msg)
}

func (s *SessionService) FindMessages(ctx context.Context, sessionID string) ([]*docent.Message, error) {
	return s.FindMessagesFn(ctx, sessionID)
}

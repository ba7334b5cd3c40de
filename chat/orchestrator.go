// Package chat runs conversation turns against the knowledge service.
//
// An Orchestrator takes one user turn at a time per session: it persists the
// user message, extracts an uploaded file or ingests a referenced site when
// needed, asks the question and persists the reply. Gateway failures end the
// turn with an explanatory assistant message rather than an error.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docent"
	"github.com/google/uuid"
)

// DefaultFileQuery is asked when the user uploads a file without a question.
const DefaultFileQuery = "Summarize the uploaded file."

// ThinkingLabel is the progress label shown while a question is answered.
const ThinkingLabel = "Thinking"

// Replies written when a turn cannot be answered.
const (
	extractionFailedReply = "I couldn't read %s. Please check the file and try again."
	emptyExtractionReply  = "I couldn't find any readable text in %s."
	ingestionFailedReply  = "I couldn't learn from %s. Check that the address is reachable and try again."
	queryFailedReply      = "I couldn't reach the knowledge service. Please try again in a moment."
)

// TurnRequest is one user turn.
type TurnRequest struct {
	// SessionID is empty to start a new session.
	SessionID string

	Text string
	File *docent.File

	// ReferenceMode treats domain-like text as something to learn from.
	ReferenceMode bool

	// Depth is the crawl depth for ingestion. Zero means docent.DefaultDepth.
	Depth int

	// Progress receives status lines while gateways are working. May be nil.
	Progress docent.ProgressFunc
}

// TurnResult is the state of the session after a turn.
type TurnResult struct {
	SessionID string
	Created   bool
	Outcome   docent.Outcome
	Messages  []*docent.Message
}

// Orchestrator sequences the steps of a turn.
type Orchestrator struct {
	Sessions  docent.SessionService
	Extractor docent.Extractor
	Ingester  docent.Ingester
	Asker     docent.Asker
	Progress  docent.ProgressReporter

	// NewID generates session IDs. Defaults to random UUIDs.
	NewID func() string

	mu     sync.Mutex
	active map[string]docent.TurnState
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	sessions docent.SessionService,
	extractor docent.Extractor,
	ingester docent.Ingester,
	asker docent.Asker,
	progress docent.ProgressReporter,
) *Orchestrator {
	return &Orchestrator{
		Sessions:  sessions,
		Extractor: extractor,
		Ingester:  ingester,
		Asker:     asker,
		Progress:  progress,
	}
}

// State returns the stage the session's current turn has reached.
func (o *Orchestrator) State(sessionID string) docent.TurnState {
	o.mu.Lock()
	defer o.mu.Unlock()
	if state, ok := o.active[sessionID]; ok {
		return state
	}
	return docent.TurnIdle
}

// HandleTurn runs a single turn to completion.
//
// Store failures and cancellation are returned as errors. If ctx is canceled
// while a gateway call is outstanding, its response is discarded and no
// assistant message is written.
func (o *Orchestrator) HandleTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" && req.File == nil {
		return nil, docent.Errorf(docent.EINVALID, "message text or file required")
	}
	if req.File != nil && req.File.Name == "" {
		return nil, docent.Errorf(docent.EINVALID, "file name required")
	}
	depth := req.Depth
	if depth == 0 {
		depth = docent.DefaultDepth
	}
	if err := docent.ValidateDepth(depth); err != nil {
		return nil, err
	}

	result := &TurnResult{SessionID: req.SessionID, Created: req.SessionID == ""}
	if result.Created {
		result.SessionID = o.newID()
	}
	id := result.SessionID

	if !o.acquire(id) {
		return nil, docent.Errorf(docent.EBUSY, "session %q already has a turn in progress", id)
	}
	defer o.release(id)

	var history []*docent.Message
	if result.Created {
		var fileName string
		if req.File != nil {
			fileName = req.File.Name
		}
		session := &docent.Session{ID: id, Title: docent.SessionTitle(text, fileName)}
		if err := o.Sessions.CreateSession(ctx, session); err != nil {
			return nil, err
		}
	} else {
		msgs, err := o.Sessions.FindMessages(ctx, id)
		if err != nil {
			return nil, err
		}
		history = msgs
	}

	user := &docent.Message{
		SessionID:  id,
		Role:       docent.RoleUser,
		Content:    text,
		Attachment: attachmentOf(req.File),
	}
	if err := o.Sessions.AppendMessage(ctx, user); err != nil {
		return nil, err
	}

	reply, err := o.run(ctx, id, text, req, depth, history)
	if err != nil {
		return nil, err
	}
	result.Outcome = reply.outcome

	o.setState(id, docent.TurnPersisting)
	if err := o.Sessions.AppendMessage(ctx, &docent.Message{
		SessionID: id,
		Role:      docent.RoleAssistant,
		Content:   reply.content,
		Sources:   reply.sources,
	}); err != nil {
		return nil, err
	}

	if result.Messages, err = o.Sessions.FindMessages(ctx, id); err != nil {
		return nil, err
	}
	return result, nil
}

// reply is the assistant message a turn ends with.
type reply struct {
	outcome docent.Outcome
	content string
	sources []string
}

// run executes the gateway steps of a turn. It returns an error only when
// ctx was canceled.
func (o *Orchestrator) run(ctx context.Context, id, text string, req TurnRequest, depth int, history []*docent.Message) (*reply, error) {
	q := &docent.Question{Query: text, History: docent.HistoryTurns(history)}

	if req.File != nil {
		o.setState(id, docent.TurnExtracting)
		extracted, err := o.extract(ctx, req.File, req.Progress)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err != nil {
			return &reply{
				outcome: docent.OutcomeExtractionFailed,
				content: fmt.Sprintf(extractionFailedReply, req.File.Name),
			}, nil
		}
		if strings.TrimSpace(extracted) == "" {
			return &reply{
				outcome: docent.OutcomeEmptyExtraction,
				content: fmt.Sprintf(emptyExtractionReply, req.File.Name),
			}, nil
		}
		q.FileContext = extracted
		if q.Query == "" {
			q.Query = DefaultFileQuery
		}
	} else {
		o.setState(id, docent.TurnClassifying)
		class := docent.Classify(text, req.ReferenceMode)
		if class.Kind == docent.NeedsIngestion {
			o.setState(id, docent.TurnIngesting)
			_, err := o.ingest(ctx, class.Locator, depth, req.Progress)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if err != nil {
				return &reply{
					outcome: docent.OutcomeIngestionFailed,
					content: fmt.Sprintf(ingestionFailedReply, class.Locator),
				}, nil
			}
		}
	}

	o.setState(id, docent.TurnQuerying)
	answer, err := o.ask(ctx, q, req.Progress)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil || answer == nil || answer.Text == "" {
		return &reply{outcome: docent.OutcomeQueryFailed, content: queryFailedReply}, nil
	}
	return &reply{outcome: docent.OutcomeAnswered, content: answer.Text, sources: answer.Sources}, nil
}

func (o *Orchestrator) extract(ctx context.Context, file *docent.File, emit docent.ProgressFunc) (string, error) {
	h := o.begin(file.Name, emit)
	defer h.End()
	return o.Extractor.Extract(ctx, file)
}

func (o *Orchestrator) ingest(ctx context.Context, locator string, depth int, emit docent.ProgressFunc) (*docent.IngestResult, error) {
	h := o.begin(locator, emit)
	defer h.End()
	return o.Ingester.Ingest(ctx, locator, depth)
}

func (o *Orchestrator) ask(ctx context.Context, q *docent.Question, emit docent.ProgressFunc) (*docent.Answer, error) {
	h := o.begin(ThinkingLabel, emit)
	defer h.End()
	return o.Asker.Ask(ctx, q)
}

func (o *Orchestrator) begin(label string, emit docent.ProgressFunc) docent.ProgressHandle {
	if o.Progress == nil || emit == nil {
		return noopHandle{}
	}
	return o.Progress.Begin(label, emit)
}

func (o *Orchestrator) newID() string {
	if o.NewID != nil {
		return o.NewID()
	}
	return uuid.New().String()
}

// acquire claims the session's turn slot. It reports false if the slot is
// already held.
func (o *Orchestrator) acquire(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.active[id]; ok {
		return false
	}
	if o.active == nil {
		o.active = make(map[string]docent.TurnState)
	}
	o.active[id] = docent.TurnClassifying
	return true
}

func (o *Orchestrator) release(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.active, id)
}

func (o *Orchestrator) setState(id string, state docent.TurnState) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.active[id] = state
}

type noopHandle struct{}

func (noopHandle) End() {}

func attachmentOf(file *docent.File) *docent.Attachment {
	if file == nil {
		return nil
	}
	return &docent.Attachment{
		Name:        file.Name,
		ContentType: file.ContentType,
		Size:        int64(len(file.Data)),
		Hash:        fmt.Sprintf("%016x", xxhash.Sum64(file.Data)),
	}
}

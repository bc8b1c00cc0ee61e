package conversation

import (
	"context"
	"log/slog"
	"time"

	"github.com/signcontract/leadbot/internal/content"
	"github.com/signcontract/leadbot/internal/lead"
	"github.com/signcontract/leadbot/internal/logger"
	"github.com/signcontract/leadbot/internal/session"
)

// Engine applies the conversation state machine. It is the only mutator of
// sessions; every transition runs under the store's per-user lock, so events
// for one user apply in arrival order without interleaving.
type Engine struct {
	store *session.Store
	sink  lead.Sink
	now   func() time.Time
}

// Option customizes engine construction.
type Option func(*Engine)

// WithClock overrides the capture timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine wires the state machine to its session store and lead sink.
func NewEngine(store *session.Store, sink lead.Sink, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		sink:  sink,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Sessions exposes the underlying store (admin diagnostics only).
func (e *Engine) Sessions() *session.Store {
	return e.store
}

// Handle applies one event and returns the reply to show. It never fails:
// malformed payloads resolve to the fallback reply, and a sink error is
// logged without changing the user-visible outcome.
func (e *Engine) Handle(ctx context.Context, id Identity, ev Event) Reply {
	if ex, ok := ev.(Exit); ok {
		return e.handleExit(ctx, id, ex)
	}

	var reply Reply
	e.store.Update(id.UserID, func(s *session.Session) {
		refreshIdentity(s, id)
		reply = e.transition(ctx, s, ev)
	})
	return reply
}

// refreshIdentity keeps the denormalized user fields current; Telegram users
// rename themselves between updates.
func refreshIdentity(s *session.Session, id Identity) {
	if id.Username != "" {
		s.Username = id.Username
	}
	if id.DisplayName != "" {
		s.DisplayName = id.DisplayName
	}
}

func (e *Engine) handleExit(ctx context.Context, id Identity, _ Exit) Reply {
	// Delete waits for an in-flight transition of the same user, keeping
	// arrival order. Repeated exits are a no-op by store contract.
	e.store.Delete(id.UserID)
	logger.Debug(ctx, "engine", "session.exit",
		slog.Int64("user_id", id.UserID),
	)
	text, _ := content.Body(content.ScreenFarewell)
	return Reply{Screen: content.ScreenFarewell, Text: text}
}

func (e *Engine) transition(ctx context.Context, s *session.Session, ev Event) Reply {
	switch ev := ev.(type) {
	case Start:
		s.Segment = session.SegmentUnset
		s.ResetCollection()
		text, _ := content.Body(content.ScreenWelcome)
		return Reply{Screen: content.ScreenWelcome, Text: text}

	case SelectSegment:
		seg, ok := session.ParseSegment(ev.Segment)
		if !ok {
			return e.fallback(ctx, s, "unknown_segment")
		}
		// Choosing a segment always abandons an in-progress capture
		// without emitting a lead.
		s.Segment = seg
		s.ResetCollection()
		logger.Debug(ctx, "engine", "segment.selected",
			slog.Int64("user_id", s.UserID),
			slog.String("segment", string(seg)),
		)
		return e.menu(s)

	case ShowMenu:
		return e.menu(s)

	case OpenScreen:
		if !content.IsInformational(ev.Screen) {
			return e.fallback(ctx, s, "unknown_screen")
		}
		text, _ := content.Body(ev.Screen)
		return Reply{Screen: ev.Screen, Text: text}

	case RequestAction:
		action, ok := session.ParseAction(ev.Action)
		if !ok {
			return e.fallback(ctx, s, "unknown_action")
		}
		s.State = session.StateAwaitingName
		s.Action = action
		s.Name = ""
		return Reply{Screen: content.ScreenAskName, Text: content.AskNameBody(action)}

	case Text:
		return e.handleText(ctx, s, ev.Raw)

	default:
		return e.fallback(ctx, s, "unknown_event")
	}
}

func (e *Engine) handleText(ctx context.Context, s *session.Session, raw string) Reply {
	switch s.State {
	case session.StateAwaitingName:
		name, err := ValidateName(raw)
		if err != nil {
			// State and collected fields stay put; the user may retry.
			text, _ := content.Body(content.ScreenNameInvalid)
			return Reply{Screen: content.ScreenNameInvalid, Text: text}
		}
		s.Name = name
		s.State = session.StateAwaitingPhone
		return Reply{Screen: content.ScreenAskPhone, Text: content.AskPhoneBody(name, s.Action)}

	case session.StateAwaitingPhone:
		phone, err := ValidatePhone(raw)
		if err != nil {
			text, _ := content.Body(content.ScreenPhoneInvalid)
			return Reply{Screen: content.ScreenPhoneInvalid, Text: text}
		}
		return e.complete(ctx, s, phone)

	default:
		return e.fallback(ctx, s, "free_text_idle")
	}
}

// complete emits the lead exactly once and resets the capture fields. The
// confirmation screen is shown regardless of the sink outcome; a failed
// emit is logged with full context and otherwise swallowed.
func (e *Engine) complete(ctx context.Context, s *session.Session, phone string) Reply {
	segment := string(s.Segment)
	if segment == "" {
		segment = "unknown"
	}
	l := lead.Lead{
		Name:       s.Name,
		Phone:      phone,
		Segment:    segment,
		Action:     string(s.Action),
		Username:   s.Username,
		UserID:     s.UserID,
		CapturedAt: e.now(),
	}

	action := s.Action
	start := time.Now()
	err := e.sink.Emit(ctx, l)
	attrs := []slog.Attr{
		slog.String("status", logger.Status(err)),
		slog.Int64("user_id", s.UserID),
		slog.String("segment", segment),
		slog.String("action", string(action)),
		slog.Duration("duration", logger.Took(start)),
	}
	if err != nil {
		attrs = append(attrs, slog.String("err", err.Error()))
		logger.Error(ctx, "engine", "lead.emit", attrs...)
	} else {
		logger.Info(ctx, "engine", "lead.emit", attrs...)
	}

	s.ResetCollection()

	screen := content.ScreenDoneDemo
	if action == session.ActionTemplate {
		screen = content.ScreenDoneTemplate
	}
	text, _ := content.Body(screen)
	return Reply{Screen: screen, Text: text}
}

func (e *Engine) menu(s *session.Session) Reply {
	return Reply{Screen: content.ScreenMenu, Text: content.MenuBody(s.Segment)}
}

func (e *Engine) fallback(ctx context.Context, s *session.Session, cause string) Reply {
	logger.Debug(ctx, "engine", "event.unrecognized",
		slog.Int64("user_id", s.UserID),
		slog.String("state", string(s.State)),
		slog.String("cause", cause),
	)
	text, _ := content.Body(content.ScreenFallback)
	return Reply{Screen: content.ScreenFallback, Text: text}
}

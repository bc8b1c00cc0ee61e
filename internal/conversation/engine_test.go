package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/signcontract/leadbot/internal/content"
	"github.com/signcontract/leadbot/internal/lead"
	"github.com/signcontract/leadbot/internal/session"
)

type recordingSink struct {
	leads []lead.Lead
	err   error
}

func (r *recordingSink) Emit(_ context.Context, l lead.Lead) error {
	r.leads = append(r.leads, l)
	return r.err
}

func newTestEngine(t *testing.T) (*Engine, *session.Store, *recordingSink) {
	t.Helper()
	store := session.NewStore()
	sink := &recordingSink{}
	fixed := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	eng := NewEngine(store, sink, WithClock(func() time.Time { return fixed }))
	return eng, store, sink
}

func ident(userID int64) Identity {
	return Identity{UserID: userID, Username: "ivan_q", DisplayName: "Ivan Q"}
}

func TestTemplateCaptureFlow(t *testing.T) {
	eng, store, sink := newTestEngine(t)
	ctx := context.Background()
	id := ident(42)

	if r := eng.Handle(ctx, id, Start{}); r.Screen != content.ScreenWelcome {
		t.Fatalf("start reply screen = %q", r.Screen)
	}
	if r := eng.Handle(ctx, id, SelectSegment{Segment: "ip"}); r.Screen != content.ScreenMenu {
		t.Fatalf("segment reply screen = %q", r.Screen)
	}
	if r := eng.Handle(ctx, id, RequestAction{Action: "template"}); r.Screen != content.ScreenAskName {
		t.Fatalf("action reply screen = %q", r.Screen)
	}
	if r := eng.Handle(ctx, id, Text{Raw: "Иван"}); r.Screen != content.ScreenAskPhone {
		t.Fatalf("name reply screen = %q", r.Screen)
	}
	if r := eng.Handle(ctx, id, Text{Raw: "+7 999 123-45-67"}); r.Screen != content.ScreenDoneTemplate {
		t.Fatalf("phone reply screen = %q", r.Screen)
	}

	if len(sink.leads) != 1 {
		t.Fatalf("emitted %d leads, want 1", len(sink.leads))
	}
	got := sink.leads[0]
	if got.Name != "Иван" {
		t.Errorf("lead name = %q", got.Name)
	}
	if got.Phone != "+79991234567" {
		t.Errorf("lead phone = %q, want normalized +79991234567", got.Phone)
	}
	if got.Segment != "ip" || got.Action != "template" {
		t.Errorf("lead segment/action = %q/%q", got.Segment, got.Action)
	}
	if got.UserID != 42 || got.Username != "ivan_q" {
		t.Errorf("lead identity = %d/%q", got.UserID, got.Username)
	}

	sess, ok := store.Get(42)
	if !ok {
		t.Fatal("session gone after completion")
	}
	if sess.State != session.StateIdle || sess.Name != "" || sess.Action != session.ActionNone {
		t.Errorf("capture fields not reset: %+v", sess)
	}
	if sess.Segment != session.SegmentIP {
		t.Errorf("segment lost after completion: %q", sess.Segment)
	}
}

func TestDemoCaptureConfirmation(t *testing.T) {
	eng, _, sink := newTestEngine(t)
	ctx := context.Background()
	id := ident(7)

	eng.Handle(ctx, id, SelectSegment{Segment: "lawyer"})
	eng.Handle(ctx, id, RequestAction{Action: "demo"})
	eng.Handle(ctx, id, Text{Raw: "Анна"})
	r := eng.Handle(ctx, id, Text{Raw: "+79991234567"})
	if r.Screen != content.ScreenDoneDemo {
		t.Fatalf("demo confirmation screen = %q", r.Screen)
	}
	if len(sink.leads) != 1 || sink.leads[0].Action != "demo" {
		t.Fatalf("demo lead not emitted: %+v", sink.leads)
	}
}

func TestInvalidNameKeepsState(t *testing.T) {
	eng, store, sink := newTestEngine(t)
	ctx := context.Background()
	id := ident(9)

	eng.Handle(ctx, id, RequestAction{Action: "template"})
	r := eng.Handle(ctx, id, Text{Raw: "123"})
	if r.Screen != content.ScreenNameInvalid {
		t.Fatalf("invalid name screen = %q", r.Screen)
	}
	sess, _ := store.Get(9)
	if sess.State != session.StateAwaitingName || sess.Name != "" {
		t.Errorf("state changed on invalid name: %+v", sess)
	}
	if len(sink.leads) != 0 {
		t.Errorf("sink called on invalid input")
	}

	// Retry succeeds from the same state.
	if r := eng.Handle(ctx, id, Text{Raw: "Пётр"}); r.Screen != content.ScreenAskPhone {
		t.Fatalf("retry screen = %q", r.Screen)
	}
}

func TestInvalidPhoneKeepsName(t *testing.T) {
	eng, store, sink := newTestEngine(t)
	ctx := context.Background()
	id := ident(11)

	eng.Handle(ctx, id, RequestAction{Action: "demo"})
	eng.Handle(ctx, id, Text{Raw: "Мария"})
	r := eng.Handle(ctx, id, Text{Raw: "89991234567"})
	if r.Screen != content.ScreenPhoneInvalid {
		t.Fatalf("invalid phone screen = %q", r.Screen)
	}
	sess, _ := store.Get(11)
	if sess.State != session.StateAwaitingPhone || sess.Name != "Мария" {
		t.Errorf("collected name lost on invalid phone: %+v", sess)
	}
	if len(sink.leads) != 0 {
		t.Errorf("sink called before valid phone")
	}
}

func TestSegmentSwitchAbandonsCapture(t *testing.T) {
	eng, store, sink := newTestEngine(t)
	ctx := context.Background()
	id := ident(13)

	eng.Handle(ctx, id, SelectSegment{Segment: "hr"})
	eng.Handle(ctx, id, RequestAction{Action: "template"})
	eng.Handle(ctx, id, Text{Raw: "Олег"})

	r := eng.Handle(ctx, id, SelectSegment{Segment: "other"})
	if r.Screen != content.ScreenMenu {
		t.Fatalf("segment switch screen = %q", r.Screen)
	}
	if len(sink.leads) != 0 {
		t.Errorf("partial capture emitted on segment switch")
	}
	sess, _ := store.Get(13)
	if sess.State != session.StateIdle || sess.Name != "" || sess.Segment != session.SegmentOther {
		t.Errorf("capture not discarded: %+v", sess)
	}
}

func TestStartResetsSegment(t *testing.T) {
	eng, store, _ := newTestEngine(t)
	ctx := context.Background()
	id := ident(17)

	eng.Handle(ctx, id, SelectSegment{Segment: "ip"})
	eng.Handle(ctx, id, Start{})
	sess, _ := store.Get(17)
	if sess.Segment != session.SegmentUnset {
		t.Errorf("segment survives /start: %q", sess.Segment)
	}
}

func TestExitIsIdempotent(t *testing.T) {
	eng, store, sink := newTestEngine(t)
	ctx := context.Background()
	id := ident(19)

	eng.Handle(ctx, id, RequestAction{Action: "demo"})
	for i := 0; i < 2; i++ {
		r := eng.Handle(ctx, id, Exit{})
		if r.Screen != content.ScreenFarewell {
			t.Fatalf("exit #%d screen = %q", i+1, r.Screen)
		}
	}
	if _, ok := store.Get(19); ok {
		t.Error("session survives exit")
	}
	if len(sink.leads) != 0 {
		t.Errorf("abandoned capture emitted on exit")
	}
}

func TestSinkFailureStillConfirms(t *testing.T) {
	eng, store, sink := newTestEngine(t)
	sink.err = errors.New("sheet unreachable")
	ctx := context.Background()
	id := ident(23)

	eng.Handle(ctx, id, SelectSegment{Segment: "ip"})
	eng.Handle(ctx, id, RequestAction{Action: "template"})
	eng.Handle(ctx, id, Text{Raw: "Иван"})
	r := eng.Handle(ctx, id, Text{Raw: "+79991234567"})
	if r.Screen != content.ScreenDoneTemplate {
		t.Fatalf("confirmation withheld on sink failure: %q", r.Screen)
	}
	sess, _ := store.Get(23)
	if sess.State != session.StateIdle {
		t.Errorf("state not reset on sink failure: %+v", sess)
	}
}

func TestCaptureWithoutSegment(t *testing.T) {
	eng, _, sink := newTestEngine(t)
	ctx := context.Background()
	id := ident(29)

	eng.Handle(ctx, id, RequestAction{Action: "template"})
	eng.Handle(ctx, id, Text{Raw: "Иван"})
	eng.Handle(ctx, id, Text{Raw: "+79991234567"})
	if len(sink.leads) != 1 {
		t.Fatalf("emitted %d leads, want 1", len(sink.leads))
	}
	if sink.leads[0].Segment != "unknown" {
		t.Errorf("segment = %q, want unknown placeholder", sink.leads[0].Segment)
	}
}

func TestUnrecognizedPayloadsFallBack(t *testing.T) {
	eng, store, _ := newTestEngine(t)
	ctx := context.Background()
	id := ident(31)

	cases := []Event{
		SelectSegment{Segment: "plumber"},
		RequestAction{Action: "buy_now"},
		OpenScreen{Screen: content.ScreenID("nope")},
		Unknown{},
		Text{Raw: "привет"},
	}
	for _, ev := range cases {
		if r := eng.Handle(ctx, id, ev); r.Screen != content.ScreenFallback {
			t.Errorf("%T: screen = %q, want fallback", ev, r.Screen)
		}
	}
	sess, _ := store.Get(31)
	if sess.State != session.StateIdle {
		t.Errorf("state drifted on unrecognized events: %+v", sess)
	}
}

func TestInformationalScreens(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()
	id := ident(37)

	for _, screen := range []content.ScreenID{
		content.ScreenHowItWorks,
		content.ScreenCases,
		content.ScreenCaseEdu,
		content.ScreenFAQ,
		content.ScreenFAQLegal,
	} {
		r := eng.Handle(ctx, id, OpenScreen{Screen: screen})
		if r.Screen != screen {
			t.Errorf("OpenScreen(%q) = %q", screen, r.Screen)
		}
		if r.Text == "" {
			t.Errorf("OpenScreen(%q): empty body", screen)
		}
	}
}

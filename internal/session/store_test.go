package session

import (
	"sync"
	"testing"
)

func TestStoreUpdateCreatesDefault(t *testing.T) {
	s := NewStore()

	sess := s.Update(100, nil)
	if sess.UserID != 100 {
		t.Fatalf("UserID = %d, want 100", sess.UserID)
	}
	if sess.State != StateIdle {
		t.Fatalf("State = %q, want %q", sess.State, StateIdle)
	}
	if sess.Segment != SegmentUnset {
		t.Fatalf("Segment = %q, want unset", sess.Segment)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()
	if _, ok := s.Get(1); ok {
		t.Fatal("expected no session for unseen user")
	}
}

func TestStoreDeleteIdempotent(t *testing.T) {
	s := NewStore()
	s.Update(5, func(sess *Session) { sess.Name = "Иван" })

	s.Delete(5)
	if _, ok := s.Get(5); ok {
		t.Fatal("session should be gone after delete")
	}
	s.Delete(5) // second delete is a no-op
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestStoreUpdateSerializesSameUser(t *testing.T) {
	s := NewStore()
	const n = 200

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.Update(42, func(sess *Session) {
				sess.Name += "x"
			})
		}()
	}
	wg.Wait()

	sess, ok := s.Get(42)
	if !ok {
		t.Fatal("session missing")
	}
	if len(sess.Name) != n {
		t.Fatalf("lost updates: got %d appended runes, want %d", len(sess.Name), n)
	}
}

func TestStoreDistinctUsersIndependent(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for id := int64(1); id <= 50; id++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Update(id, func(sess *Session) { sess.Segment = SegmentHR })
		}(id)
	}
	wg.Wait()
	if s.Len() != 50 {
		t.Fatalf("Len = %d, want 50", s.Len())
	}
}

func TestStoreUpdateAfterConcurrentDelete(t *testing.T) {
	s := NewStore()
	s.Update(7, func(sess *Session) {
		sess.State = StateAwaitingName
		sess.Action = ActionTemplate
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Delete(7)
	}()
	go func() {
		defer wg.Done()
		s.Update(7, func(sess *Session) { sess.Segment = SegmentIP })
	}()
	wg.Wait()

	// Whichever order applied, a surviving session must be internally
	// consistent: no collected name with an idle state and no action.
	if sess, ok := s.Get(7); ok {
		if sess.Name != "" && sess.State == StateIdle && sess.Action == ActionNone {
			t.Fatalf("inconsistent session after race: %+v", sess)
		}
	}
}

func TestResetCollectionKeepsSegment(t *testing.T) {
	sess := Session{
		UserID:  1,
		Segment: SegmentLawyer,
		State:   StateAwaitingPhone,
		Action:  ActionDemo,
		Name:    "Анна",
	}
	sess.ResetCollection()
	if sess.Segment != SegmentLawyer {
		t.Fatalf("segment lost: %q", sess.Segment)
	}
	if sess.State != StateIdle || sess.Action != ActionNone || sess.Name != "" {
		t.Fatalf("collection fields not cleared: %+v", sess)
	}
}

func TestParseSegment(t *testing.T) {
	for _, raw := range []string{"ip", "lawyer", "hr", "other"} {
		if _, ok := ParseSegment(raw); !ok {
			t.Fatalf("ParseSegment(%q) rejected", raw)
		}
	}
	for _, raw := range []string{"", "admin", "IP", "lawyer "} {
		if _, ok := ParseSegment(raw); ok {
			t.Fatalf("ParseSegment(%q) accepted", raw)
		}
	}
}

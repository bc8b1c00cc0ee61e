// Package session tracks per-user conversation state for the lead funnel.
// Sessions are ephemeral: they live in process memory from first contact
// until the lead is captured or the user exits.
package session

// Segment is the coarse prospect category chosen at the start of a conversation.
type Segment string

const (
	SegmentUnset  Segment = ""
	SegmentIP     Segment = "ip"
	SegmentLawyer Segment = "lawyer"
	SegmentHR     Segment = "hr"
	SegmentOther  Segment = "other"
)

// ParseSegment maps a raw callback payload to a known segment.
func ParseSegment(raw string) (Segment, bool) {
	switch Segment(raw) {
	case SegmentIP, SegmentLawyer, SegmentHR, SegmentOther:
		return Segment(raw), true
	}
	return SegmentUnset, false
}

// State identifies the current step of the data-collection dialog.
type State string

const (
	// StateIdle indicates the user is browsing menus; free text is not expected.
	StateIdle State = "idle"
	// StateAwaitingName indicates the next text message is interpreted as a name.
	StateAwaitingName State = "awaiting_name"
	// StateAwaitingPhone indicates the next text message is interpreted as a phone number.
	StateAwaitingPhone State = "awaiting_phone"
)

// Action is what the user asked for when entering the capture flow.
type Action string

const (
	ActionNone     Action = ""
	ActionTemplate Action = "template"
	ActionDemo     Action = "demo"
)

// ParseAction maps a raw callback payload to a known action.
func ParseAction(raw string) (Action, bool) {
	switch Action(raw) {
	case ActionTemplate, ActionDemo:
		return Action(raw), true
	}
	return ActionNone, false
}

// Session is the typed conversation record for one user.
// State = StateAwaitingPhone implies Name != "" and Action != ActionNone;
// only the conversation engine mutates sessions, which preserves this.
type Session struct {
	UserID      int64
	Username    string
	DisplayName string

	Segment Segment
	State   State
	Action  Action
	// Name holds the validated name collected during the capture flow.
	Name string
}

// ResetCollection clears the capture flow fields, keeping segment and identity.
func (s *Session) ResetCollection() {
	s.State = StateIdle
	s.Action = ActionNone
	s.Name = ""
}

// InProgress reports whether the user is inside the name/phone capture flow.
func (s Session) InProgress() bool {
	return s.State != StateIdle
}

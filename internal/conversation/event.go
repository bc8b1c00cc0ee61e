// Package conversation implements the lead funnel state machine: it decides,
// for every decoded user event, the next session state, the reply screen,
// and whether a completed lead is handed to the sink.
package conversation

import "github.com/signcontract/leadbot/internal/content"

// Event is a user interaction decoded once at the transport boundary.
// Payload-carrying events keep the raw payload; the engine validates it and
// treats anything unknown as an unrecognized event.
type Event interface {
	isEvent()
}

// Start is the /start command: reset the segment and show segment selection.
type Start struct{}

// SelectSegment is a press on one of the segment buttons.
type SelectSegment struct {
	Segment string
}

// OpenScreen is a press on an informational menu item.
type OpenScreen struct {
	Screen content.ScreenID
}

// RequestAction enters the capture flow for a template or a demo.
type RequestAction struct {
	Action string
}

// Text is a free-text message.
type Text struct {
	Raw string
}

// ShowMenu re-displays the main menu for the current segment (/menu, back).
type ShowMenu struct{}

// Exit ends the conversation and clears the session.
type Exit struct{}

// Unknown is anything the transport could not decode.
type Unknown struct{}

func (Start) isEvent()         {}
func (SelectSegment) isEvent() {}
func (OpenScreen) isEvent()    {}
func (RequestAction) isEvent() {}
func (Text) isEvent()          {}
func (ShowMenu) isEvent()      {}
func (Exit) isEvent()          {}
func (Unknown) isEvent()       {}

// Identity carries denormalized user fields copied from the incoming update,
// used only to enrich the emitted lead.
type Identity struct {
	UserID      int64
	Username    string
	DisplayName string
}

// Reply is the transport-agnostic outcome of a transition: a screen id to
// pick the keyboard by, and the fully resolved body text.
type Reply struct {
	Screen content.ScreenID
	Text   string
}

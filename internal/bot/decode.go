package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/signcontract/leadbot/internal/content"
	"github.com/signcontract/leadbot/internal/conversation"
)

// DecodeCallback maps a callback key and payload onto a conversation event.
// Anything it cannot place resolves to Unknown, which the engine answers
// with the fallback screen.
func DecodeCallback(key, payload string) conversation.Event {
	switch key {
	case content.KeySegment:
		return conversation.SelectSegment{Segment: payload}
	case content.KeyHowItWorks:
		return conversation.OpenScreen{Screen: content.ScreenHowItWorks}
	case content.KeyCases:
		return conversation.OpenScreen{Screen: content.ScreenCases}
	case content.KeyCase:
		return conversation.OpenScreen{Screen: content.CaseScreen(payload)}
	case content.KeyFAQ:
		return conversation.OpenScreen{Screen: content.ScreenFAQ}
	case content.KeyFAQItem:
		return conversation.OpenScreen{Screen: content.FAQScreen(payload)}
	case content.KeyTemplate:
		return conversation.RequestAction{Action: "template"}
	case content.KeyDemo:
		return conversation.RequestAction{Action: "demo"}
	case content.KeyBackToMenu:
		return conversation.ShowMenu{}
	case content.KeyExit:
		return conversation.Exit{}
	default:
		return conversation.Unknown{}
	}
}

// identityFrom copies the sender fields relevant to lead enrichment.
func identityFrom(c tele.Context) conversation.Identity {
	user := c.Sender()
	if user == nil {
		return conversation.Identity{}
	}
	name := user.FirstName
	if user.LastName != "" {
		if name != "" {
			name += " "
		}
		name += user.LastName
	}
	return conversation.Identity{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: name,
	}
}

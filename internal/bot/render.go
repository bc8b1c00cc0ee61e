package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/signcontract/leadbot/internal/conversation"
	"github.com/signcontract/leadbot/internal/telegram/helpers"
	"github.com/signcontract/leadbot/internal/telegram/keyboard"
)

// sendReply delivers a reply as a fresh message (command and text flows).
func sendReply(c tele.Context, r conversation.Reply) error {
	markup := keyboard.ForScreen(r.Screen)
	if markup != nil {
		return helpers.SendHTML(c, r.Text, markup)
	}
	return helpers.SendHTML(c, r.Text)
}

// editReply rewrites the message that carried the pressed button (callback
// flows), falling back to a fresh message when editing is impossible.
func editReply(c tele.Context, r conversation.Reply) error {
	markup := keyboard.ForScreen(r.Screen)
	if markup != nil {
		return helpers.EditOrSendHTML(c, r.Text, markup)
	}
	return helpers.EditOrSendHTML(c, r.Text)
}

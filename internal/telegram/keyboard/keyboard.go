// Package keyboard renders inline keyboards from the content menu model.
package keyboard

import (
	tele "gopkg.in/telebot.v4"

	"github.com/signcontract/leadbot/internal/content"
)

// InlineBtn describes a convenience wrapper for inline button properties.
type InlineBtn struct {
	Text   string
	Unique string
	Data   string
}

// InlineButtonsRows builds an inline keyboard from rows of InlineBtn.
func InlineButtonsRows(rows ...[]InlineBtn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	inline := make([][]tele.InlineButton, len(rows))
	for i, row := range rows {
		r := make([]tele.InlineButton, len(row))
		for j, btn := range row {
			r[j] = *markup.Data(btn.Text, btn.Unique, btn.Data).Inline()
		}
		inline[i] = r
	}
	markup.InlineKeyboard = inline
	return markup
}

// FromMenu renders a content menu as an inline keyboard. Nil for an empty
// menu so text-only screens send without markup.
func FromMenu(menu content.Menu) *tele.ReplyMarkup {
	if len(menu) == 0 {
		return nil
	}
	rows := make([][]InlineBtn, 0, len(menu))
	for _, row := range menu {
		r := make([]InlineBtn, 0, len(row))
		for _, b := range row {
			r = append(r, InlineBtn{Text: b.Label, Unique: b.Key, Data: b.Data})
		}
		rows = append(rows, r)
	}
	return InlineButtonsRows(rows...)
}

// ForScreen renders the keyboard bound to a screen, if any.
func ForScreen(id content.ScreenID) *tele.ReplyMarkup {
	return FromMenu(content.MenuFor(id))
}

package telegram

import (
	tele "gopkg.in/telebot.v4"

	"github.com/jhoicas/storebot/internal/application/dto"
)

// toMarkup converts a rendered keyboard to a telebot inline keyboard.
// A view without buttons yields nil so no empty markup is attached.
func toMarkup(v dto.RenderedMessage) *tele.ReplyMarkup {
	if len(v.Keyboard) == 0 {
		return nil
	}
	keyboard := make([][]tele.InlineButton, 0, len(v.Keyboard))
	for _, row := range v.Keyboard {
		buttons := make([]tele.InlineButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tele.InlineButton{Text: b.Label, Data: b.Action, URL: b.URL})
		}
		keyboard = append(keyboard, buttons)
	}
	return &tele.ReplyMarkup{InlineKeyboard: keyboard}
}

// fromMarkup converts a displayed inline keyboard back to view buttons so
// it can be compared against a new view.
func fromMarkup(m *tele.ReplyMarkup) [][]dto.Button {
	if m == nil || len(m.InlineKeyboard) == 0 {
		return nil
	}
	keyboard := make([][]dto.Button, 0, len(m.InlineKeyboard))
	for _, row := range m.InlineKeyboard {
		buttons := make([]dto.Button, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, dto.Button{Label: b.Text, Action: b.Data, URL: b.URL})
		}
		keyboard = append(keyboard, buttons)
	}
	return keyboard
}

// sameAsDisplayed reports whether the message on screen already shows the
// view. Editing such a message is skipped to avoid redundant-edit errors
// from Telegram. HTML views never compare equal because Telegram strips the
// tags from the displayed text; the edit-time error check covers those.
func sameAsDisplayed(displayed *tele.Message, v dto.RenderedMessage) bool {
	if displayed == nil {
		return false
	}
	shown := dto.RenderedMessage{
		Text:     displayed.Text,
		Keyboard: fromMarkup(displayed.ReplyMarkup),
		HTML:     v.HTML,
	}
	return v.Equal(shown)
}

// sendOptions builds the telebot send/edit options for a view.
func sendOptions(v dto.RenderedMessage) []interface{} {
	var opts []interface{}
	if markup := toMarkup(v); markup != nil {
		opts = append(opts, markup)
	}
	if v.HTML {
		opts = append(opts, tele.ModeHTML)
	}
	return opts
}

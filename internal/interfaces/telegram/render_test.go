package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"github.com/jhoicas/storebot/internal/application/dto"
)

func menuView() dto.RenderedMessage {
	return dto.RenderedMessage{
		Text: "Добро пожаловать! Выберите действие:",
		Keyboard: [][]dto.Button{
			dto.Row(dto.Button{Label: "🛍 Каталог", Action: "catalog"}),
			dto.Row(dto.Button{Label: "🛒 Корзина", Action: "cart"}),
		},
	}
}

func TestToMarkup(t *testing.T) {
	markup := toMarkup(menuView())
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, "catalog", markup.InlineKeyboard[0][0].Data)

	assert.Nil(t, toMarkup(dto.RenderedMessage{Text: "no buttons"}))
}

func TestToMarkup_URLButton(t *testing.T) {
	markup := toMarkup(dto.RenderedMessage{
		Text:     "x",
		Keyboard: [][]dto.Button{dto.Row(dto.Button{Label: "📱 WhatsApp", URL: "https://wa.me/79281003382"})},
	})
	require.NotNil(t, markup)
	assert.Equal(t, "https://wa.me/79281003382", markup.InlineKeyboard[0][0].URL)
	assert.Empty(t, markup.InlineKeyboard[0][0].Data)
}

func TestSameAsDisplayed_SkipsIdenticalView(t *testing.T) {
	view := menuView()
	displayed := &tele.Message{
		Text:        view.Text,
		ReplyMarkup: toMarkup(view),
	}

	assert.True(t, sameAsDisplayed(displayed, view), "identical content must skip the edit")

	changed := menuView()
	changed.Text = "📦 Выберите категорию:"
	assert.False(t, sameAsDisplayed(displayed, changed))

	rearmed := menuView()
	rearmed.Keyboard[1][0].Action = "catalog"
	assert.False(t, sameAsDisplayed(displayed, rearmed), "button changes force an edit")

	assert.False(t, sameAsDisplayed(nil, view))
}

func TestSendOptions(t *testing.T) {
	opts := sendOptions(dto.RenderedMessage{Text: "x", HTML: true})
	require.Len(t, opts, 1)
	assert.Equal(t, tele.ModeHTML, opts[0])

	opts = sendOptions(menuView())
	require.Len(t, opts, 1)
	_, ok := opts[0].(*tele.ReplyMarkup)
	assert.True(t, ok)
}

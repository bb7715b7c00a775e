// Package telegram wires the conversation controller to the Telegram Bot
// API via telebot. It owns no business logic: it converts updates into
// dispatcher calls and rendered messages into sends and edits.
package telegram

import (
	"errors"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/jhoicas/storebot/internal/application/dto"
	"github.com/jhoicas/storebot/internal/application/usecase"
	"github.com/jhoicas/storebot/pkg/logger"
)

// Bot is the long-polling Telegram front end.
type Bot struct {
	bot        *tele.Bot
	dispatcher *usecase.Dispatcher
	log        *logger.Logger
}

// New connects to the Bot API and registers the handlers.
func New(token string, dispatcher *usecase.Dispatcher, log *logger.Logger) (*Bot, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		// A user's updates must be handled in arrival order, and a send
		// must complete before the next event is taken up; telebot's
		// default per-handler goroutines would break both.
		Synchronous: true,
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{bot: b, dispatcher: dispatcher, log: log}
	b.Handle("/start", bot.onStart)
	b.Handle("/admin", bot.onAdmin)
	b.Handle(tele.OnCallback, bot.onCallback)
	b.Handle(tele.OnText, bot.onText)
	return bot, nil
}

// Start blocks polling for updates until Stop is called.
func (b *Bot) Start() {
	b.log.Info().Str("username", b.bot.Me.Username).Msg("bot polling started")
	b.bot.Start()
}

// Stop terminates the poller.
func (b *Bot) Stop() {
	b.bot.Stop()
}

func (b *Bot) onStart(c tele.Context) error {
	return b.send(c, b.dispatcher.Start())
}

func (b *Bot) onAdmin(c tele.Context) error {
	page := 0
	if args := c.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			page = n
		}
	}
	return b.send(c, b.dispatcher.AdminPanel(c.Sender().ID, page))
}

func (b *Bot) onCallback(c tele.Context) error {
	// Acknowledge the press so the client stops its spinner.
	if err := c.Respond(); err != nil {
		b.log.Warn().Err(err).Msg("callback ack")
	}

	action := strings.TrimPrefix(strings.TrimSpace(c.Callback().Data), "\f")
	view, handled := b.dispatcher.HandleAction(c.Sender().ID, action)
	if !handled {
		b.log.Debug().Str("action", action).Msg("unknown callback action")
		return nil
	}
	return b.edit(c, view)
}

func (b *Bot) onText(c tele.Context) error {
	views, handled := b.dispatcher.HandleText(c.Sender().ID, c.Text())
	if !handled {
		// No pending expectation: free text outside a flow is ignored.
		return nil
	}
	for _, view := range views {
		if err := b.send(c, view); err != nil {
			return err
		}
	}
	return nil
}

// send delivers a view as a new message.
func (b *Bot) send(c tele.Context, v dto.RenderedMessage) error {
	return c.Send(v.Text, sendOptions(v)...)
}

// edit replaces the message the pressed button belongs to, skipping the
// call when the displayed content is already identical.
func (b *Bot) edit(c tele.Context, v dto.RenderedMessage) error {
	if sameAsDisplayed(c.Callback().Message, v) {
		return nil
	}
	err := c.Edit(v.Text, sendOptions(v)...)
	if errors.Is(err, tele.ErrSameMessageContent) {
		return nil
	}
	return err
}

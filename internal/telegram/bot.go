package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"
)

// Bot owns the telebot client and its long-polling lifecycle.
type Bot struct {
	bot *tb.Bot
	log *slog.Logger
}

func NewBot(token string, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:     token,
		ParseMode: tb.ModeHTML,
		Poller: &tb.LongPoller{
			Timeout: 10 * time.Second,
			AllowedUpdates: []string{
				"message",
				"callback_query",
				"chat_member",
				"my_chat_member",
				"chat_join_request",
			},
		},
		OnError: func(err error, c tb.Context) {
			if c != nil && c.Sender() != nil {
				log.Error("Update handling failed", "user", c.Sender().ID, "error", err)
				return
			}
			log.Error("Update handling failed", "error", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create telebot: %w", err)
	}

	return &Bot{bot: bot, log: log.With("component", "telegram")}, nil
}

// Telebot exposes the underlying client for collaborators that send
// messages outside the update loop.
func (b *Bot) Telebot() *tb.Bot {
	return b.bot
}

// Start registers the handlers and blocks polling for updates until ctx is
// canceled. Admin commands are silently ignored for everyone else.
func (b *Bot) Start(ctx context.Context, h *Handler, adminID int64) {
	admin := middleware.Whitelist(adminID)

	b.bot.Handle("/start", h.Start)
	b.bot.Handle("/help", h.Start)
	b.bot.Handle("/subscribe", h.Subscribe)
	b.bot.Handle("/unsubscribe", h.Unsubscribe)
	b.bot.Handle("/sendtestcard", h.SendTestCard, admin)
	b.bot.Handle("/listsubnames", h.ListSubscriberNames, admin)
	b.bot.Handle("/stats", h.Stats, admin)
	b.bot.Handle(tb.OnCallback, h.Callback)
	b.bot.Handle(tb.OnChatMember, h.ChatMember)
	b.bot.Handle(tb.OnMyChatMember, h.MyChatMember)
	b.bot.Handle(tb.OnChatJoinRequest, h.JoinRequest)
	b.bot.Handle(tb.OnText, h.Text)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.log.Info("Starting long polling")
	b.bot.Start()
}

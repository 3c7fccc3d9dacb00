package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	tb "gopkg.in/telebot.v3"

	"github.com/zlamas/vestnik-telegram-bot/internal/service"
	"github.com/zlamas/vestnik-telegram-bot/internal/tarot"
)

// Sender implements the service Sender and Gate over a telebot client. All
// transport failures are translated into the service error taxonomy.
type Sender struct {
	bot      *tb.Bot
	channel  tb.ChatID
	cardsDir string

	welcomeImage string
	messages     *Messages
	subscribeBtn *tb.ReplyMarkup

	log *slog.Logger
}

func NewSender(bot *tb.Bot, channelID int64, cardsDir, welcomeImage string, messages *Messages, log *slog.Logger) *Sender {
	markup := &tb.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("Подписаться", "sub_daily")))

	return &Sender{
		bot:      bot,
		channel:  tb.ChatID(channelID),
		cardsDir: cardsDir,

		welcomeImage: welcomeImage,
		messages:     messages,
		subscribeBtn: markup,

		log: log.With("component", "telegram").With("part", "sender"),
	}
}

// SendCard delivers the card image with the rendered caption.
func (s *Sender) SendCard(_ context.Context, chatID int64, card tarot.Card) error {
	photo := &tb.Photo{
		File:    tb.FromDisk(filepath.Join(s.cardsDir, card.DeckID, strconv.Itoa(card.ID)+".jpg")),
		Caption: fmt.Sprintf(s.messages.CardCaption, card.Name, card.DeckName, card.Meaning),
	}

	_, err := s.bot.Send(tb.ChatID(chatID), photo)
	return classifyErr(err)
}

// SendWelcome greets a user with the welcome image, optionally attaching
// the subscribe button.
func (s *Sender) SendWelcome(_ context.Context, chatID int64, offerSubscribe bool) error {
	photo := &tb.Photo{
		File:    tb.FromDisk(s.welcomeImage),
		Caption: s.messages.Welcome,
	}

	var err error
	if offerSubscribe {
		_, err = s.bot.Send(tb.ChatID(chatID), photo, s.subscribeBtn)
	} else {
		_, err = s.bot.Send(tb.ChatID(chatID), photo)
	}
	return classifyErr(err)
}

// SendStranger tells a non-member how to get access.
func (s *Sender) SendStranger(_ context.Context, chatID int64) error {
	_, err := s.bot.Send(tb.ChatID(chatID), s.messages.Stranger)
	return classifyErr(err)
}

// SendFarewell notifies a user who left the channel.
func (s *Sender) SendFarewell(_ context.Context, chatID int64) error {
	_, err := s.bot.Send(tb.ChatID(chatID), s.messages.Farewell)
	return classifyErr(err)
}

// IsChannelMember performs the live membership query used to authorize the
// subscribe action.
func (s *Sender) IsChannelMember(_ context.Context, userID int64) (bool, error) {
	member, err := s.bot.ChatMemberOf(s.channel, &tb.User{ID: userID})
	if err != nil {
		return false, fmt.Errorf("get chat member: %w", err)
	}

	switch member.Role {
	case tb.Creator, tb.Administrator, tb.Member:
		return true, nil
	default:
		return false, nil
	}
}

// classifyErr maps transport errors onto the service taxonomy: 403s mean
// the recipient is unreachable for good, rate limiting and network-level
// failures are worth retrying, any other API rejection is passed through
// untouched.
func classifyErr(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *tb.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusForbidden:
			return fmt.Errorf("%w: %v", service.ErrForbidden, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", service.ErrTransient, err)
		default:
			return err
		}
	}

	return fmt.Errorf("%w: %v", service.ErrTransient, err)
}

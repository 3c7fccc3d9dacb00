// Package service implements the subscriber lifecycle and the daily
// broadcast dispatch on top of the persisted subscriber set.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/zlamas/vestnik-telegram-bot/internal/dal"
	"github.com/zlamas/vestnik-telegram-bot/internal/tarot"
)

//go:generate mockgen -package mocks -destination mocks/telegram.go . Sender,Gate

//go:generate mockgen -package mocks -destination mocks/deliveries.go . DeliveryLog

var (
	// ErrForbidden marks a permanent delivery failure: the recipient
	// blocked the bot or deleted their account.
	ErrForbidden = errors.New("recipient unreachable")
	// ErrTransient marks a network-level delivery failure worth retrying.
	ErrTransient = errors.New("transient delivery failure")

	ErrNotChannelMember  = errors.New("not a channel member")
	ErrAlreadySubscribed = errors.New("already subscribed")
	ErrNotSubscribed     = errors.New("not subscribed")
)

type (
	// Sender delivers bot messages. Implementations must map transport
	// failures to ErrForbidden or ErrTransient.
	Sender interface {
		SendCard(ctx context.Context, chatID int64, card tarot.Card) error
		SendWelcome(ctx context.Context, chatID int64, offerSubscribe bool) error
		SendFarewell(ctx context.Context, chatID int64) error
	}

	// Gate answers the live channel-membership query used to authorize
	// the subscribe action.
	Gate interface {
		IsChannelMember(ctx context.Context, userID int64) (bool, error)
	}

	// DeliveryLog records delivery and run audit entries.
	DeliveryLog interface {
		PutDelivery(d dal.Delivery) error
		PutRun(run dal.BroadcastRun) error
	}

	Clock interface {
		Now() time.Time
	}
)

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/zlamas/vestnik-telegram-bot/internal/dal"
	"github.com/zlamas/vestnik-telegram-bot/internal/tarot"
	"github.com/zlamas/vestnik-telegram-bot/pkg/retry"
)

// DefaultRetryPolicy bounds delivery retries on transient network failures.
var DefaultRetryPolicy = retry.Policy{
	MaxAttempts: 5,
	Delay:       2 * time.Second,
	MaxDelay:    15 * time.Second,
}

type deliveryOutcome int

const (
	outcomeDelivered deliveryOutcome = iota
	outcomePruned
	outcomeFailed
)

// Broadcast dispatches one random card per subscriber. A failure on one
// recipient never aborts the rest of the pass: unreachable recipients are
// pruned from the subscriber set, transient failures are retried and then
// abandoned for the day.
type Broadcast struct {
	subscribers SubscribersStore
	deliveries  DeliveryLog
	sender      Sender
	deck        *tarot.Data

	limiter *rate.Limiter
	policy  retry.Policy
	clock   Clock
	rnd     *rand.Rand

	log *slog.Logger
	mx  *sync.Mutex
}

func NewBroadcast(
	subscribers SubscribersStore,
	deliveries DeliveryLog,
	sender Sender,
	deck *tarot.Data,
	limiter *rate.Limiter,
	policy retry.Policy,
	clock Clock,
	log *slog.Logger,
) *Broadcast {
	if policy.MaxAttempts < 1 {
		policy = DefaultRetryPolicy
	}

	return &Broadcast{
		subscribers: subscribers,
		deliveries:  deliveries,
		sender:      sender,
		deck:        deck,

		limiter: limiter,
		policy:  policy,
		clock:   clock,
		rnd:     rand.New(rand.NewSource(clock.Now().UnixNano())),

		log: log.With("component", "service").With("service", "broadcast"),
		mx:  &sync.Mutex{},
	}
}

// RunDaily delivers one card to every current subscriber. It iterates a
// snapshot of the subscriber list taken before the first send, so removals
// discovered mid-pass do not skip or double-visit anyone.
func (s *Broadcast) RunDaily(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	ids := s.subscribers.All()
	run := dal.BroadcastRun{
		ID:        uuid.NewString(),
		StartedAt: s.clock.Now(),
		Total:     len(ids),
	}
	s.log.InfoContext(ctx, "Starting daily broadcast", "runID", run.ID, "total", run.Total)

	for _, chatID := range ids {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("broadcast interrupted: %w", err)
		}

		outcome, _ := s.deliver(ctx, chatID)
		switch outcome {
		case outcomeDelivered:
			run.Sent++
		case outcomePruned:
			run.Pruned++
		case outcomeFailed:
			run.Failed++
		}
	}

	run.FinishedAt = s.clock.Now()
	if err := s.deliveries.PutRun(run); err != nil {
		s.log.ErrorContext(ctx, "Failed to record broadcast run", "runID", run.ID, "error", err)
	}

	s.log.InfoContext(ctx, "Finished daily broadcast",
		"runID", run.ID,
		"sent", run.Sent,
		"pruned", run.Pruned,
		"failed", run.Failed)
	return nil
}

// SendTo delivers a single card to one recipient through the exact same
// path as the scheduled run. Used by the operator test command.
func (s *Broadcast) SendTo(ctx context.Context, chatID int64) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	_, err := s.deliver(ctx, chatID)
	return err
}

func (s *Broadcast) deliver(ctx context.Context, chatID int64) (deliveryOutcome, error) {
	log := s.log.With("chatID", chatID)

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return outcomeFailed, fmt.Errorf("rate limiter: %w", err)
		}
	}

	card := s.deck.Draw(s.rnd)

	err := retry.Do(ctx, s.policy, isTransient, func() error {
		return s.sender.SendCard(ctx, chatID, card)
	})
	if err == nil {
		log.InfoContext(ctx, "Card delivered", "deckID", card.DeckID, "cardID", card.ID)
		if err := s.deliveries.PutDelivery(dal.Delivery{
			ChatID: chatID,
			DeckID: card.DeckID,
			CardID: card.ID,
			SentAt: s.clock.Now(),
		}); err != nil {
			log.ErrorContext(ctx, "Failed to record delivery", "error", err)
		}
		return outcomeDelivered, nil
	}

	if errors.Is(err, ErrForbidden) {
		log.ErrorContext(ctx, "Recipient unreachable, removing from subscribers", "error", err)
		if _, rerr := s.subscribers.Remove(chatID); rerr != nil {
			log.ErrorContext(ctx, "Failed to remove unreachable subscriber", "error", rerr)
		}
		return outcomePruned, err
	}

	log.ErrorContext(ctx, "Failed to deliver card", "error", err)
	return outcomeFailed, err
}

func isTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

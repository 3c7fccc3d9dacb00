package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Bot API chat member statuses that count as being in the channel.
var memberStatuses = map[string]struct{}{
	"creator":       {},
	"administrator": {},
	"member":        {},
}

// statusBanned is the bot's own status after a user blocks it.
const statusBanned = "kicked"

// MemberUpdate is a before/after status pair for one user in the channel.
// An empty status means the field was absent from the event.
type MemberUpdate struct {
	UserID    int64
	Name      string
	OldStatus string
	NewStatus string
}

type transition int

const (
	transitionNone transition = iota
	transitionJoined
	transitionLeft
)

func classify(upd MemberUpdate) transition {
	if upd.OldStatus == "" || upd.NewStatus == "" || upd.OldStatus == upd.NewStatus {
		return transitionNone
	}

	_, wasMember := memberStatuses[upd.OldStatus]
	_, isMember := memberStatuses[upd.NewStatus]

	switch {
	case !wasMember && isMember:
		return transitionJoined
	case wasMember && !isMember:
		return transitionLeft
	default:
		return transitionNone
	}
}

// Tracker applies channel membership transitions to the subscriber set. It
// keeps no state of its own between events.
type Tracker struct {
	store  SubscribersStore
	sender Sender

	log *slog.Logger
}

func NewTracker(store SubscribersStore, sender Sender, log *slog.Logger) *Tracker {
	return &Tracker{
		store:  store,
		sender: sender,
		log:    log.With("component", "service").With("service", "tracker"),
	}
}

// HandleMemberUpdate processes one channel membership event. Events without
// a classifiable status change are ignored.
func (t *Tracker) HandleMemberUpdate(ctx context.Context, upd MemberUpdate) error {
	switch classify(upd) {
	case transitionJoined:
		return t.handleJoined(ctx, upd)
	case transitionLeft:
		return t.handleLeft(ctx, upd)
	default:
		return nil
	}
}

func (t *Tracker) handleJoined(ctx context.Context, upd MemberUpdate) error {
	t.log.InfoContext(ctx, "User joined the channel", "userID", upd.UserID, "name", upd.Name)

	if _, err := t.store.Add(upd.UserID); err != nil {
		return fmt.Errorf("add subscriber on join: %w", err)
	}

	// The user was just enrolled, so the greeting carries no subscribe
	// button. Greeting delivery is best effort.
	if err := t.sender.SendWelcome(ctx, upd.UserID, !t.store.Contains(upd.UserID)); err != nil {
		if !errors.Is(err, ErrForbidden) {
			t.log.ErrorContext(ctx, "Failed to send welcome", "userID", upd.UserID, "error", err)
		}
	}

	return nil
}

func (t *Tracker) handleLeft(ctx context.Context, upd MemberUpdate) error {
	t.log.InfoContext(ctx, "User left the channel", "userID", upd.UserID, "name", upd.Name)

	if _, err := t.store.Remove(upd.UserID); err != nil {
		return fmt.Errorf("remove subscriber on leave: %w", err)
	}

	// The user may have blocked the bot right after leaving; a Forbidden
	// here is expected and swallowed.
	if err := t.sender.SendFarewell(ctx, upd.UserID); err != nil {
		if !errors.Is(err, ErrForbidden) {
			t.log.ErrorContext(ctx, "Failed to send farewell", "userID", upd.UserID, "error", err)
		}
	}

	return nil
}

// HandleBotStatusUpdate processes changes of the bot's own membership in a
// chat: a user banning the bot means the bot was blocked.
func (t *Tracker) HandleBotStatusUpdate(ctx context.Context, upd MemberUpdate) error {
	if upd.NewStatus != statusBanned {
		t.log.InfoContext(ctx, "User unblocked the bot", "userID", upd.UserID, "name", upd.Name)
		return nil
	}

	t.log.InfoContext(ctx, "User blocked the bot", "userID", upd.UserID, "name", upd.Name)
	if _, err := t.store.Remove(upd.UserID); err != nil {
		return fmt.Errorf("remove blocked subscriber: %w", err)
	}

	return nil
}

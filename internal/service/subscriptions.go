package service

import (
	"context"
	"fmt"
	"log/slog"
)

//go:generate mockgen -package mocks -destination mocks/store.go . SubscribersStore

// SubscribersStore is the persisted subscriber set. Add and Remove report
// whether the set actually changed; when it did, the snapshot is already
// persisted by the time they return.
type SubscribersStore interface {
	Contains(chatID int64) bool
	Add(chatID int64) (bool, error)
	Remove(chatID int64) (bool, error)
	All() []int64
	Len() int
}

type Subscriptions struct {
	store SubscribersStore
	gate  Gate

	log *slog.Logger
}

func NewSubscriptions(store SubscribersStore, gate Gate, log *slog.Logger) *Subscriptions {
	return &Subscriptions{
		store: store,
		gate:  gate,
		log:   log.With("component", "service").With("service", "subscriptions"),
	}
}

// Subscribe enrolls the user after a live membership check against the
// channel. It returns ErrNotChannelMember when the gate rejects the user and
// ErrAlreadySubscribed when the user is already on the list.
func (s *Subscriptions) Subscribe(ctx context.Context, userID int64) error {
	member, err := s.gate.IsChannelMember(ctx, userID)
	if err != nil {
		return fmt.Errorf("gate check: %w", err)
	}
	if !member {
		return ErrNotChannelMember
	}

	added, err := s.store.Add(userID)
	if err != nil {
		return fmt.Errorf("add subscriber: %w", err)
	}
	if !added {
		return ErrAlreadySubscribed
	}

	s.log.InfoContext(ctx, "User subscribed", "userID", userID)
	return nil
}

// Unsubscribe removes the user from the list. It returns ErrNotSubscribed
// when the user is not on it.
func (s *Subscriptions) Unsubscribe(ctx context.Context, userID int64) error {
	removed, err := s.store.Remove(userID)
	if err != nil {
		return fmt.Errorf("remove subscriber: %w", err)
	}
	if !removed {
		return ErrNotSubscribed
	}

	s.log.InfoContext(ctx, "User unsubscribed", "userID", userID)
	return nil
}

func (s *Subscriptions) IsSubscribed(userID int64) bool {
	return s.store.Contains(userID)
}

// IsChannelMember exposes the gate query for the greeting flow.
func (s *Subscriptions) IsChannelMember(ctx context.Context, userID int64) (bool, error) {
	member, err := s.gate.IsChannelMember(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("gate check: %w", err)
	}
	return member, nil
}

// SubscriberIDs returns a snapshot copy of the subscriber list.
func (s *Subscriptions) SubscriberIDs() []int64 {
	return s.store.All()
}

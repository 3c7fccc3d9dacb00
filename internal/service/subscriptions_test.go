package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zlamas/vestnik-telegram-bot/internal/service"
	"github.com/zlamas/vestnik-telegram-bot/internal/service/mocks"
)

const userID = int64(123)

func newSubscriptions(store service.SubscribersStore, gate service.Gate) *service.Subscriptions {
	return service.NewSubscriptions(store, gate, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSubscriptions_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gate := mocks.NewMockGate(ctrl)
		gate.EXPECT().IsChannelMember(ctx, userID).Return(true, nil)
		store := mocks.NewMockSubscribersStore(ctrl)
		store.EXPECT().Add(userID).Return(true, nil)

		require.NoError(t, newSubscriptions(store, gate).Subscribe(ctx, userID))
	})

	t.Run("already_subscribed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gate := mocks.NewMockGate(ctrl)
		gate.EXPECT().IsChannelMember(ctx, userID).Return(true, nil)
		store := mocks.NewMockSubscribersStore(ctrl)
		store.EXPECT().Add(userID).Return(false, nil)

		err := newSubscriptions(store, gate).Subscribe(ctx, userID)
		require.ErrorIs(t, err, service.ErrAlreadySubscribed)
	})

	t.Run("not_channel_member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gate := mocks.NewMockGate(ctrl)
		gate.EXPECT().IsChannelMember(ctx, userID).Return(false, nil)
		store := mocks.NewMockSubscribersStore(ctrl)

		err := newSubscriptions(store, gate).Subscribe(ctx, userID)
		require.ErrorIs(t, err, service.ErrNotChannelMember)
	})

	t.Run("gate_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gate := mocks.NewMockGate(ctrl)
		gate.EXPECT().IsChannelMember(ctx, userID).Return(false, assert.AnError)
		store := mocks.NewMockSubscribersStore(ctrl)

		err := newSubscriptions(store, gate).Subscribe(ctx, userID)
		require.ErrorIs(t, err, assert.AnError)
		assert.ErrorContains(t, err, "gate check: ")
	})

	t.Run("store_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gate := mocks.NewMockGate(ctrl)
		gate.EXPECT().IsChannelMember(ctx, userID).Return(true, nil)
		store := mocks.NewMockSubscribersStore(ctrl)
		store.EXPECT().Add(userID).Return(false, assert.AnError)

		err := newSubscriptions(store, gate).Subscribe(ctx, userID)
		require.ErrorIs(t, err, assert.AnError)
		assert.ErrorContains(t, err, "add subscriber: ")
	})
}

func TestSubscriptions_Unsubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockSubscribersStore(ctrl)
		store.EXPECT().Remove(userID).Return(true, nil)

		require.NoError(t, newSubscriptions(store, mocks.NewMockGate(ctrl)).Unsubscribe(ctx, userID))
	})

	t.Run("not_subscribed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockSubscribersStore(ctrl)
		store.EXPECT().Remove(userID).Return(false, nil)

		err := newSubscriptions(store, mocks.NewMockGate(ctrl)).Unsubscribe(ctx, userID)
		require.ErrorIs(t, err, service.ErrNotSubscribed)
	})

	t.Run("store_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockSubscribersStore(ctrl)
		store.EXPECT().Remove(userID).Return(false, assert.AnError)

		err := newSubscriptions(store, mocks.NewMockGate(ctrl)).Unsubscribe(ctx, userID)
		require.ErrorIs(t, err, assert.AnError)
		assert.ErrorContains(t, err, "remove subscriber: ")
	})
}

func TestSubscriptions_IsSubscribed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockSubscribersStore(ctrl)
	store.EXPECT().Contains(userID).Return(true)

	assert.True(t, newSubscriptions(store, mocks.NewMockGate(ctrl)).IsSubscribed(userID))
}

func TestSubscriptions_IsChannelMember(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gate := mocks.NewMockGate(ctrl)
		gate.EXPECT().IsChannelMember(ctx, userID).Return(true, nil)

		member, err := newSubscriptions(mocks.NewMockSubscribersStore(ctrl), gate).IsChannelMember(ctx, userID)
		require.NoError(t, err)
		assert.True(t, member)
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gate := mocks.NewMockGate(ctrl)
		gate.EXPECT().IsChannelMember(ctx, userID).Return(false, assert.AnError)

		_, err := newSubscriptions(mocks.NewMockSubscribersStore(ctrl), gate).IsChannelMember(ctx, userID)
		require.ErrorIs(t, err, assert.AnError)
		assert.ErrorContains(t, err, "gate check: ")
	})
}

func TestSubscriptions_SubscriberIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockSubscribersStore(ctrl)
	store.EXPECT().All().Return([]int64{1, 2, 3})

	assert.Equal(t, []int64{1, 2, 3}, newSubscriptions(store, mocks.NewMockGate(ctrl)).SubscriberIDs())
}

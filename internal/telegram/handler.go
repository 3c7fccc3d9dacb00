package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tb "gopkg.in/telebot.v3"

	"github.com/zlamas/vestnik-telegram-bot/internal/dal"
	"github.com/zlamas/vestnik-telegram-bot/internal/service"
)

//go:generate mockgen -source=handler.go -destination=mocks/handler.go -package=mocks

type (
	Subscriptions interface {
		Subscribe(ctx context.Context, userID int64) error
		Unsubscribe(ctx context.Context, userID int64) error
		IsSubscribed(userID int64) bool
		IsChannelMember(ctx context.Context, userID int64) (bool, error)
		SubscriberIDs() []int64
	}

	Tracker interface {
		HandleMemberUpdate(ctx context.Context, upd service.MemberUpdate) error
		HandleBotStatusUpdate(ctx context.Context, upd service.MemberUpdate) error
	}

	Broadcast interface {
		SendTo(ctx context.Context, chatID int64) error
	}

	RunStats interface {
		LastRun() (dal.BroadcastRun, bool, error)
	}

	Greeter interface {
		SendWelcome(ctx context.Context, chatID int64, offerSubscribe bool) error
		SendStranger(ctx context.Context, chatID int64) error
	}
)

const (
	subscribedMsg        = "Подписка оформлена! Карта дня будет приходить каждое утро."
	alreadySubscribedMsg = "Вы уже подписаны!"
	unsubscribedMsg      = "Вы отписаны от ежедневной рассылки."
	notSubscribedMsg     = "Вы и так не подписаны."
	unknownCommandMsg    = "Такой команды ещё не придумали!"
	noRunsMsg            = "Рассылка ещё ни разу не выполнялась."
	genericErrorMsg      = "Что-то пошло не так. Пожалуйста, попробуйте позже."

	subscribeCallback = "sub_daily"
)

type Handler struct {
	subscriptions Subscriptions
	tracker       Tracker
	broadcast     Broadcast
	stats         RunStats
	greeter       Greeter
	log           *slog.Logger
}

func NewHandler(
	subscriptions Subscriptions,
	tracker Tracker,
	broadcast Broadcast,
	stats RunStats,
	greeter Greeter,
	log *slog.Logger,
) *Handler {
	return &Handler{
		subscriptions: subscriptions,
		tracker:       tracker,
		broadcast:     broadcast,
		stats:         stats,
		greeter:       greeter,
		log:           log.With("component", "telegram").With("part", "handler"),
	}
}

// Start greets the user: channel members get the welcome message with a
// subscribe button if they are not subscribed yet, strangers get pointed to
// the channel.
func (h *Handler) Start(c tb.Context) error {
	if c.Chat() != nil && c.Chat().Type != tb.ChatPrivate {
		return nil
	}
	ctx := context.Background()
	userID := c.Sender().ID

	member, err := h.subscriptions.IsChannelMember(ctx, userID)
	if err != nil {
		h.log.Error("Failed to check channel membership", "user", userID, "error", err)
		return c.Send(genericErrorMsg)
	}
	if !member {
		return h.greeter.SendStranger(ctx, userID)
	}

	return h.greeter.SendWelcome(ctx, userID, !h.subscriptions.IsSubscribed(userID))
}

// Text answers unknown commands in private chats and treats any other
// private message as a greeting request.
func (h *Handler) Text(c tb.Context) error {
	if c.Chat() == nil || c.Chat().Type != tb.ChatPrivate {
		return nil
	}
	if strings.HasPrefix(c.Text(), "/") {
		return c.Send(unknownCommandMsg)
	}
	return h.Start(c)
}

func (h *Handler) Subscribe(c tb.Context) error {
	ctx := context.Background()
	userID := c.Sender().ID

	err := h.subscriptions.Subscribe(ctx, userID)
	switch {
	case err == nil:
		return c.Send(subscribedMsg)
	case errors.Is(err, service.ErrAlreadySubscribed):
		return c.Send(alreadySubscribedMsg)
	case errors.Is(err, service.ErrNotChannelMember):
		return h.greeter.SendStranger(ctx, userID)
	default:
		h.log.Error("Failed to subscribe", "user", userID, "error", err)
		return c.Send(genericErrorMsg)
	}
}

func (h *Handler) Unsubscribe(c tb.Context) error {
	userID := c.Sender().ID

	err := h.subscriptions.Unsubscribe(context.Background(), userID)
	switch {
	case err == nil:
		return c.Send(unsubscribedMsg)
	case errors.Is(err, service.ErrNotSubscribed):
		return c.Send(notSubscribedMsg)
	default:
		h.log.Error("Failed to unsubscribe", "user", userID, "error", err)
		return c.Send(genericErrorMsg)
	}
}

// Callback routes inline button presses.
func (h *Handler) Callback(c tb.Context) error {
	cb := c.Callback()
	if cb == nil {
		return nil
	}
	if err := c.Respond(); err != nil {
		h.log.Warn("Failed to answer callback", "error", err)
	}

	if strings.TrimPrefix(cb.Data, "\f") == subscribeCallback {
		return h.Subscribe(c)
	}
	h.log.Warn("Unexpected callback", "data", cb.Data)
	return nil
}

// SendTestCard delivers a random card to the admin on demand.
func (h *Handler) SendTestCard(c tb.Context) error {
	if err := h.broadcast.SendTo(context.Background(), c.Sender().ID); err != nil {
		h.log.Error("Failed to send test card", "error", err)
		return c.Send(genericErrorMsg)
	}
	return nil
}

// ListSubscriberNames resolves subscriber IDs to display names for the
// admin. Chats that cannot be resolved are listed by ID alone.
func (h *Handler) ListSubscriberNames(c tb.Context) error {
	ids := h.subscriptions.SubscriberIDs()
	if len(ids) == 0 {
		return c.Send("Подписчиков пока нет.")
	}

	var sb strings.Builder
	sb.WriteString("<b>Подписчики:</b>\n")
	for _, id := range ids {
		chat, err := c.Bot().ChatByID(id)
		if err != nil {
			h.log.Warn("Failed to resolve subscriber chat", "user", id, "error", err)
			fmt.Fprintf(&sb, "%d\n", id)
			continue
		}

		fmt.Fprintf(&sb, "%d — <b>%s</b>", id, chatName(chat))
		if chat.Username != "" {
			fmt.Fprintf(&sb, " (@%s)", chat.Username)
		}
		sb.WriteString("\n")
	}
	return c.Send(sb.String())
}

// Stats reports the outcome of the most recent broadcast run to the admin.
func (h *Handler) Stats(c tb.Context) error {
	run, found, err := h.stats.LastRun()
	if err != nil {
		h.log.Error("Failed to load last run", "error", err)
		return c.Send(genericErrorMsg)
	}
	if !found {
		return c.Send(noRunsMsg)
	}

	return c.Send(fmt.Sprintf(
		"Последняя рассылка %s:\nполучателей — %d\nдоставлено — %d\nудалено — %d\nошибок — %d",
		run.StartedAt.Format("02.01.2006 15:04"), run.Total, run.Sent, run.Pruned, run.Failed,
	))
}

// ChatMember reacts to channel membership transitions.
func (h *Handler) ChatMember(c tb.Context) error {
	upd := c.ChatMember()
	if upd == nil || upd.NewChatMember == nil || upd.NewChatMember.User == nil {
		return nil
	}

	err := h.tracker.HandleMemberUpdate(context.Background(), memberUpdate(upd, upd.NewChatMember.User))
	if err != nil {
		h.log.Error("Failed to handle member update", "error", err)
	}
	return nil
}

// MyChatMember reacts to the bot's own status changes, most notably users
// blocking it in private chats.
func (h *Handler) MyChatMember(c tb.Context) error {
	upd := c.ChatMember()
	if upd == nil || upd.NewChatMember == nil {
		return nil
	}

	err := h.tracker.HandleBotStatusUpdate(context.Background(), memberUpdate(upd, upd.Sender))
	if err != nil {
		h.log.Error("Failed to handle bot status update", "error", err)
	}
	return nil
}

// JoinRequest answers pending channel join requests with the stranger
// message so the user knows what to expect.
func (h *Handler) JoinRequest(c tb.Context) error {
	req := c.ChatJoinRequest()
	if req == nil || req.Sender == nil {
		return nil
	}

	h.log.Info("Join request", "user", req.Sender.ID, "name", userName(req.Sender))
	if err := h.greeter.SendStranger(context.Background(), req.Sender.ID); err != nil {
		h.log.Warn("Failed to answer join request", "user", req.Sender.ID, "error", err)
	}
	return nil
}

func memberUpdate(upd *tb.ChatMemberUpdate, user *tb.User) service.MemberUpdate {
	u := service.MemberUpdate{
		NewStatus: string(upd.NewChatMember.Role),
	}
	if upd.OldChatMember != nil {
		u.OldStatus = string(upd.OldChatMember.Role)
	}
	if user != nil {
		u.UserID = user.ID
		u.Name = userName(user)
	}
	return u
}

func userName(u *tb.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func chatName(c *tb.Chat) string {
	if name := strings.TrimSpace(c.FirstName + " " + c.LastName); name != "" {
		return name
	}
	return c.Title
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"github.com/zlamas/vestnik-telegram-bot/internal/dal"
	"github.com/zlamas/vestnik-telegram-bot/internal/service"
	"github.com/zlamas/vestnik-telegram-bot/internal/tarot"
	"github.com/zlamas/vestnik-telegram-bot/internal/telegram"
	"github.com/zlamas/vestnik-telegram-bot/pkg/clock"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Local development convenience, ignored when no .env file exists.
	_ = godotenv.Load()

	conf, err := telegram.NewConfig(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	loc, err := conf.Location()
	if err != nil {
		log.Error("Failed to load timezone", "error", err)
		os.Exit(1)
	}

	subscribers, err := dal.NewSubscribers(conf.SubscribersPath, log)
	if err != nil {
		log.Error("Failed to load subscribers", "error", err)
		os.Exit(1)
	}

	store, err := dal.NewBoltDB(conf.DBPath)
	if err != nil {
		log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	deck, err := tarot.Load(conf.CardDataPath)
	if err != nil {
		log.Error("Failed to load card data", "error", err)
		os.Exit(1)
	}

	messages, err := telegram.LoadMessages(conf.MessagesDir)
	if err != nil {
		log.Error("Failed to load message templates", "error", err)
		os.Exit(1)
	}

	bot, err := telegram.NewBot(conf.TelegramToken, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	sender := telegram.NewSender(bot.Telebot(), conf.ChannelID, conf.CardsDir, conf.WelcomeImage, messages, log)
	limiter := rate.NewLimiter(rate.Limit(conf.SendRatePerSec), conf.SendRatePerSec)

	subscriptionsSvc := service.NewSubscriptions(subscribers, sender, log)
	trackerSvc := service.NewTracker(subscribers, sender, log)
	broadcastSvc := service.NewBroadcast(
		subscribers, store, sender, deck, limiter,
		service.DefaultRetryPolicy, clock.NewWithLocation(loc), log,
	)

	handler := telegram.NewHandler(subscriptionsSvc, trackerSvc, broadcastSvc, store, sender, log)

	hour, minute, err := conf.BroadcastAt()
	if err != nil {
		log.Error("Failed to parse broadcast time", "error", err)
		os.Exit(1)
	}

	schedule := cron.New(cron.WithLocation(loc))
	_, err = schedule.AddFunc(fmt.Sprintf("%d %d * * *", minute, hour), func() {
		if err := broadcastSvc.RunDaily(ctx); err != nil {
			log.Error("Daily broadcast failed", "error", err)
		}
	})
	if err != nil {
		log.Error("Failed to schedule daily broadcast", "error", err)
		os.Exit(1)
	}
	schedule.Start()

	log.Info("Starting bot", "broadcastTime", conf.BroadcastTime, "timezone", conf.Timezone)
	bot.Start(ctx, handler, conf.AdminID)

	// Let an in-flight broadcast finish before exiting.
	<-schedule.Stop().Done()
	log.Info("Stopped bot")
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}

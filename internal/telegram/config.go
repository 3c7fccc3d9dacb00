package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Dev             bool   `envconfig:"DEV" default:"false"`
	ChannelID       int64  `envconfig:"CHANNEL_ID" required:"true"`
	AdminID         int64  `envconfig:"ADMIN_ID" required:"true"`
	SubscribersPath string `envconfig:"SUBSCRIBERS_PATH" default:"data/subscribers.json"`
	DBPath          string `envconfig:"DB_PATH" default:"data/vestnik.db"`
	CardDataPath    string `envconfig:"CARD_DATA_PATH" default:"data/cards.json"`
	CardsDir        string `envconfig:"CARDS_DIR" default:"data/cards"`
	MessagesDir     string `envconfig:"MESSAGES_DIR" default:"data/messages"`
	WelcomeImage    string `envconfig:"WELCOME_IMAGE" default:"data/welcome.jpg"`
	BroadcastTime   string `envconfig:"BROADCAST_TIME" default:"09:00"`
	Timezone        string `envconfig:"TIMEZONE" default:"Europe/Moscow"`
	SendRatePerSec  int    `envconfig:"SEND_RATE_PER_SEC" default:"20"`
	TelegramToken   string `envconfig:"TELEGRAM_TOKEN"`
}

func NewConfig(ctx context.Context) (*Config, error) {
	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if _, _, err = res.BroadcastAt(); err != nil {
		return nil, err
	}
	if _, err = res.Location(); err != nil {
		return nil, err
	}

	if res.Dev {
		return res, nil
	}
	res.TelegramToken, err = getSSMToken(ctx)
	if err != nil {
		return nil, err
	}

	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}

	return res, nil
}

// BroadcastAt parses the daily broadcast time in HH:MM form.
func (c *Config) BroadcastAt() (hour, minute int, err error) {
	t, err := time.Parse("15:04", c.BroadcastTime)
	if err != nil {
		return 0, 0, fmt.Errorf("parse broadcast time %q: %w", c.BroadcastTime, err)
	}
	return t.Hour(), t.Minute(), nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getSSMToken(ctx context.Context) (string, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String("/vestnik-bot/prod/telegram-token"),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}

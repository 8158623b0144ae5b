package config

import (
	"fmt"
	"log"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config is the full environment surface of the bot. Channel and user ids
// are Discord snowflakes and stay strings; they are still validated as
// numeric at startup so a typo fails fast instead of silently matching
// nothing at runtime.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	ChannelID    string `env:"CHANNEL_ID,required"`
	AffirmID     string `env:"AFFIRM_ID,required"`
	WebhookBotID string `env:"WEBHOOK_BOT_ID,required"`

	VeniceAPIKey string `env:"VENICE_API"`

	StoragePath   string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	ResponsesPath string `env:"RESPONSES_PATH" envDefault:"responses.json"`
	MusicPath     string `env:"MUSIC_PATH" envDefault:"responses/music.json"`
	MemoryDir     string `env:"MEMORY_DIR" envDefault:"memory"`
	ImagesDir     string `env:"IMAGES_DIR" envDefault:"images"`
	WebhookAddr   string `env:"WEBHOOK_ADDR" envDefault:":5000"`
}

func New() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	for name, id := range map[string]string{
		"CHANNEL_ID":     cfg.ChannelID,
		"AFFIRM_ID":      cfg.AffirmID,
		"WEBHOOK_BOT_ID": cfg.WebhookBotID,
	} {
		if _, err := strconv.ParseUint(id, 10, 64); err != nil {
			return nil, fmt.Errorf("%s is not a valid Discord id: %q", name, id)
		}
	}

	return &cfg, nil
}

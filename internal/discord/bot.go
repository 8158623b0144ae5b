// Package discord owns the bot session: startup, wake message, message
// dispatch and the background senders.
package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"

	"netchan/internal/art"
	"netchan/internal/command"
	"netchan/internal/commands"
	"netchan/internal/config"
	"netchan/internal/jukebox"
	"netchan/internal/profanity"
	"netchan/internal/relay"
	"netchan/internal/response"
	"netchan/internal/storage"
	"netchan/internal/timers"
	"netchan/internal/webhook"
)

const (
	commandPrefix = "!"
	eventLogCap   = 100
	outboxCap     = 16

	wakeTimer    = "wake"
	wakeCooldown = time.Hour
)

type Bot struct {
	cfg       *config.Config
	store     *storage.Storage
	responses *response.Store
	timers    *timers.Store
	eventLog  *relay.Log
	outbox    *relay.Outbox
	relay     *relay.Relay
	webhook   *webhook.Server
	praise    *commands.PraiseCounter
	artCmd    *commands.ArtCommand
	cron      *cron.Cron

	session  *discordgo.Session
	runCtx   context.Context
	wakeOnce sync.Once
}

func New(cfg *config.Config, store *storage.Storage) *Bot {
	b := &Bot{
		cfg:       cfg,
		store:     store,
		responses: response.New(cfg.ResponsesPath),
		timers:    timers.New(cfg.MemoryDir),
		eventLog:  relay.NewLog(eventLogCap),
		outbox:    relay.NewOutbox(outboxCap),
		praise:    commands.NewPraiseCounter(),
	}

	b.artCmd = commands.NewArtCommand(art.NewClient(cfg.VeniceAPIKey), b.timers)
	b.relay = relay.New(relay.Config{
		ChannelID: cfg.ChannelID,
		SourceID:  cfg.WebhookBotID,
	}, b.responses, b.eventLog, b)
	b.webhook = webhook.NewServer(cfg.WebhookAddr, cfg.ChannelID, b.responses, b.eventLog, b.outbox)

	commands.RegisterAll(commands.Deps{
		Responses: b.responses,
		Art:       b.artCmd,
		Jukebox:   jukebox.New(cfg.MusicPath),
		EventLog:  b.eventLog,
		Praise:    b.praise,
		Profanity: profanity.New(),
		ImagesDir: cfg.ImagesDir,
	}, command.WithCommandLogger(), command.WithGuildOnly())

	b.cron = cron.New()
	b.cron.AddFunc("0 * * * *", b.praise.Reset)    //nolint:errcheck
	b.cron.AddFunc("0 0 * * *", b.artCmd.Rollover) //nolint:errcheck

	return b
}

// SendEmbed delivers one embed through the live session.
func (b *Bot) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := b.session.ChannelMessageSendEmbed(channelID, embed)
	return err
}

// Run connects to Discord and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	b.session = dg
	b.runCtx = ctx

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	go b.webhook.Run(ctx)
	go b.drainOutbox(ctx)
	go b.runAffirmations(ctx)

	b.cron.Start()
	defer b.cron.Stop()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Net-chan is ready! Logged in as %s", r.User.String())

	b.wakeOnce.Do(b.sendWakeMessage)
}

// sendWakeMessage greets the main channel, at most once an hour across
// restarts so a crash loop does not spam it. Failures are logged; the bot
// keeps going without a greeting.
func (b *Bot) sendWakeMessage() {
	now := time.Now()
	if last, ok := b.timers.Load(wakeTimer); ok && now.Sub(last) <= wakeCooldown {
		log.Printf("[INFO] Wake message suppressed, last sent %s ago", now.Sub(last).Round(time.Second))
		return
	}

	embed := &discordgo.MessageEmbed{
		Description: b.responses.Get("wake", ""),
		Color:       command.ColorBlue,
	}

	var err error
	imagePath := filepath.Join(b.cfg.ImagesDir, "net-chan-sleepy.png")
	if f, openErr := os.Open(imagePath); openErr == nil {
		embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://net-chan-sleepy.png"}
		err = command.MessageEmbedFile(b.session, b.cfg.ChannelID, embed, "net-chan-sleepy.png", f)
		f.Close()
	} else {
		log.Printf("[WARN] Wake image %s unavailable: %v", imagePath, openErr)
		err = command.MessageEmbed(b.session, b.cfg.ChannelID, embed)
	}
	if err != nil {
		log.Printf("[ERR] Failed to send wake message: %v", err)
		return
	}

	if err := b.timers.Save(wakeTimer, now); err != nil {
		log.Printf("[WARN] Failed to save wake timer: %v", err)
	}
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	ev := relay.Event{
		SourceID:  m.Author.ID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
	}
	if len(m.Embeds) > 0 {
		ev.HasEmbed = true
		ev.EmbedTitle = m.Embeds[0].Title
		ev.EmbedDescription = m.Embeds[0].Description
	}
	if b.relay.Eligible(ev) {
		go b.relay.Handle(b.runCtx, ev)
		return
	}

	if !strings.HasPrefix(m.Content, commandPrefix) {
		return
	}
	fields := strings.Fields(strings.TrimPrefix(m.Content, commandPrefix))
	if len(fields) == 0 {
		return
	}

	name := strings.ToLower(fields[0])
	cmd, ok := command.Get(name)
	if !ok {
		return
	}

	ctx := &command.MessageContext{
		Session: s,
		Event:   m,
		Args:    fields[1:],
		Storage: b.store,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Command !%s failed: %v", name, err)
		embed := &discordgo.MessageEmbed{
			Description: "Uwaa~! (｡•́︿•̀｡) Something went wrong in my circuits... Please try again later!",
			Color:       command.ColorRed,
		}
		if err := command.MessageEmbed(s, m.ChannelID, embed); err != nil {
			log.Printf("[ERR] Failed to send error reply: %v", err)
		}
	}
}

// drainOutbox is the single consumer of the webhook outbox.
func (b *Bot) drainOutbox(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case out := <-b.outbox.C():
			if err := b.SendEmbed(out.ChannelID, out.Embed); err != nil {
				log.Printf("[ERR] Failed to deliver webhook reply: %v", err)
			}
		}
	}
}

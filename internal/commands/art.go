package commands

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"netchan/internal/art"
	"netchan/internal/command"
	"netchan/internal/timers"

	"github.com/bwmarrin/discordgo"
)

const artDailyBudget = 5

type ArtCommand struct {
	Client *art.Client
	Timers *timers.Store

	mu   sync.Mutex
	used int
	rng  *rand.Rand
	now  func() time.Time
}

func NewArtCommand(client *art.Client, ts *timers.Store) *ArtCommand {
	return &ArtCommand{
		Client: client,
		Timers: ts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

func (c *ArtCommand) Name() string        { return "art" }
func (c *ArtCommand) Description() string { return "I'll make a cute picture! (◠﹏◠✿)" }
func (c *ArtCommand) Aliases() []string   { return []string{"draw"} }
func (c *ArtCommand) Category() string    { return "Fun" }

func (c *ArtCommand) Run(ctx *command.MessageContext) error {
	if !c.Client.Enabled() {
		embed := &discordgo.MessageEmbed{
			Description: "Waah~! (╥﹏╥) My art supplies are all packed away right now... I can't draw anything! 🎨💔",
			Color:       command.ColorRed,
		}
		return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
	}

	if !c.take() {
		embed := &discordgo.MessageEmbed{
			Description: "I'm too tired to make more art right now... I'm busy with other things. Maybe later? (｡•́︿•̀｡)",
			Color:       command.ColorRed,
		}
		return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
	}

	profile, _ := ctx.Storage.GetProfile(ctx.Event.Author.ID)
	c.mu.Lock()
	prompt := art.BuildPrompt(profile, c.rng)
	c.mu.Unlock()
	log.Printf("[INFO] Art prompt for %s: %s", ctx.Event.Author.Username, prompt)

	working, err := ctx.Session.ChannelMessageSendEmbed(ctx.Event.ChannelID, &discordgo.MessageEmbed{
		Description: "Hold on! I'm making something cute for you! 🎨✨ (this might take a moment...)",
		Color:       command.ColorBlue,
	})
	if err != nil {
		c.refund()
		return fmt.Errorf("failed to send working message: %w", err)
	}

	genCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	img, err := c.Client.Generate(genCtx, prompt)
	if err != nil {
		log.Printf("[WARN] Art generation failed: %v", err)
		c.refund()
		_, editErr := ctx.Session.ChannelMessageEditEmbed(ctx.Event.ChannelID, working.ID, &discordgo.MessageEmbed{
			Description: "I don't feel like doing art right now... 😔",
			Color:       command.ColorRed,
		})
		return editErr
	}

	_, err = ctx.Session.ChannelMessageEditEmbed(ctx.Event.ChannelID, working.ID, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Here's your cute art, %s! (｡♥‿♥｡)\nI can make %d more pieces today!",
			ctx.Event.Author.Username, c.remaining()),
		Color: command.ColorPurple,
	})
	if err != nil {
		return fmt.Errorf("failed to update art message: %w", err)
	}

	_, err = ctx.Session.ChannelMessageSendComplex(ctx.Event.ChannelID, &discordgo.MessageSend{
		Files: []*discordgo.File{{Name: "cute_art.png", Reader: bytes.NewReader(img)}},
	})
	return err
}

// take claims one piece from today's budget, rolling the counter over when
// the local date has changed since the last claim.
func (c *ArtCommand) take() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	last, _ := c.Timers.Load("art")
	if timers.IsNewDay(last, now) {
		c.used = 0
	}

	if c.used >= artDailyBudget {
		return false
	}

	c.used++
	if err := c.Timers.Save("art", now); err != nil {
		log.Printf("[WARN] Failed to save art timer: %v", err)
	}
	return true
}

// refund hands a claimed piece back after a failed generation.
func (c *ArtCommand) refund() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.used > 0 {
		c.used--
	}
}

func (c *ArtCommand) remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return artDailyBudget - c.used
}

// Rollover resets the in-memory budget. Run from cron at local midnight.
func (c *ArtCommand) Rollover() {
	c.mu.Lock()
	c.used = 0
	c.mu.Unlock()
	log.Printf("[INFO] Art budget rolled over, %d pieces available", artDailyBudget)
}

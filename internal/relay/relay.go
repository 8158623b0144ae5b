// Package relay turns monitoring messages from the webhook integration into
// classified, rate-limited replies on the main channel.
package relay

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"netchan/internal/response"
)

// Event is the platform-agnostic view of an inbound chat message.
type Event struct {
	SourceID         string
	ChannelID        string
	Content          string
	HasEmbed         bool
	EmbedTitle       string
	EmbedDescription string
}

// Sender delivers one embed to a channel. The Discord session satisfies it
// in production; tests plug in fakes.
type Sender interface {
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error
}

type Config struct {
	// ChannelID is the monitored channel; SourceID the webhook integration
	// whose messages trigger replies.
	ChannelID string
	SourceID  string
	// SelfID, when set, is an extra guard against reply loops.
	SelfID string
	// Window is the cooldown between replies (default 60s), Pacing the
	// fixed delay before composing one (default 2s).
	Window time.Duration
	Pacing time.Duration
}

// Relay consumes inbound events and dispatches at most one reply per
// cooldown window. All state lives on the value; the owner passes it where
// it is needed.
type Relay struct {
	cfg       Config
	gate      *Gate
	log       *Log
	responses *response.Store
	sender    Sender
	now       func() time.Time
}

func New(cfg Config, responses *response.Store, eventLog *Log, sender Sender) *Relay {
	if cfg.Window == 0 {
		cfg.Window = 60 * time.Second
	}
	if cfg.Pacing == 0 {
		cfg.Pacing = 2 * time.Second
	}
	return &Relay{
		cfg:       cfg,
		gate:      NewGate(cfg.Window),
		log:       eventLog,
		responses: responses,
		sender:    sender,
		now:       time.Now,
	}
}

// Eligible reports whether ev should be handled by the relay at all.
// Everything else passes through untouched to command dispatch.
func (r *Relay) Eligible(ev Event) bool {
	if r.cfg.SelfID != "" && ev.SourceID == r.cfg.SelfID {
		return false
	}
	return ev.ChannelID == r.cfg.ChannelID && ev.SourceID == r.cfg.SourceID
}

// Handle processes one eligible event and reports whether a reply was
// dispatched. Events inside the cooldown window are dropped with no state
// change. A failed send is logged and considered handled; the window stays
// consumed so the event is not replayed.
func (r *Relay) Handle(ctx context.Context, ev Event) bool {
	if !r.Eligible(ev) {
		return false
	}

	if !r.gate.Allow(r.now()) {
		return false
	}

	if r.cfg.Pacing > 0 {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(r.cfg.Pacing):
		}
	}

	category := Classify(ev)

	if ev.HasEmbed {
		desc := ev.EmbedDescription
		if desc == "" {
			desc = "No description"
		}
		r.log.Append(Entry{Event: ev.EmbedTitle, Message: desc})
	} else {
		r.log.Append(Entry{Event: ev.Content})
	}

	reply := r.responses.Get(category.ResponseKey(), "")
	embed := &discordgo.MessageEmbed{
		Description: reply,
		Color:       category.Color(),
	}

	if err := r.sender.SendEmbed(r.cfg.ChannelID, embed); err != nil {
		log.Printf("[ERR] Failed to send relay reply (%s): %v", category, err)
		return true
	}

	log.Printf("[INFO] Relay replied with %s response", category)
	return true
}

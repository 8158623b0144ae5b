package relay

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Outbound is one message waiting to be sent to a channel.
type Outbound struct {
	ChannelID string
	Embed     *discordgo.MessageEmbed
}

// Outbox is the bounded hand-off queue between the HTTP ingress and the
// Discord session. Producers never block: when the queue is full the send
// is dropped with a warning, keeping webhook responses fast.
type Outbox struct {
	ch chan Outbound
}

func NewOutbox(capacity int) *Outbox {
	return &Outbox{ch: make(chan Outbound, capacity)}
}

// TryEnqueue queues out for delivery, reporting whether it was accepted.
func (o *Outbox) TryEnqueue(out Outbound) bool {
	select {
	case o.ch <- out:
		return true
	default:
		log.Printf("[WARN] Outbox full, dropping send to channel %s", out.ChannelID)
		return false
	}
}

// C is the consumer side, drained by a single bot-owned goroutine.
func (o *Outbox) C() <-chan Outbound {
	return o.ch
}

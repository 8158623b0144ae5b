package discord

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"

	"netchan/internal/command"
)

const (
	affirmWindowStart = 8
	affirmWindowEnd   = 20

	affirmMinDelay = 6 * time.Hour
	affirmMaxDelay = 12 * time.Hour
)

// affirmWait returns how long to sleep from now, and whether an affirmation
// follows the sleep. Outside the daytime window the sleep lands on the next
// 08:00 with no affirmation; inside it the sleep is a uniform random delay
// between six and twelve hours.
func affirmWait(now time.Time, rng *rand.Rand) (time.Duration, bool) {
	start := time.Date(now.Year(), now.Month(), now.Day(), affirmWindowStart, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), affirmWindowEnd, 0, 0, 0, now.Location())

	if now.Before(start) {
		return start.Sub(now), false
	}
	if !now.Before(end) {
		return start.AddDate(0, 0, 1).Sub(now), false
	}

	delay := affirmMinDelay + time.Duration(rng.Int63n(int64(affirmMaxDelay-affirmMinDelay)))
	return delay, true
}

// runAffirmations sends the occasional pick-me-up to the affirmation
// channel during daytime hours. Send failures re-arm the loop.
func (b *Bot) runAffirmations(ctx context.Context) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		wait, fire := affirmWait(time.Now(), rng)

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		if !fire {
			continue
		}

		// The random delay can overshoot 20:00; save it for tomorrow.
		if h := time.Now().Hour(); h < affirmWindowStart || h >= affirmWindowEnd {
			continue
		}

		embed := &discordgo.MessageEmbed{
			Description: b.responses.Get("affirmations", ""),
			Color:       command.ColorPurple,
		}
		if err := b.SendEmbed(b.cfg.AffirmID, embed); err != nil {
			log.Printf("[ERR] Failed to send affirmation message: %v", err)
			continue
		}
		log.Println("[INFO] Sent scheduled affirmation")
	}
}

package relay

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestOutboxEnqueueAndDrain(t *testing.T) {
	o := NewOutbox(2)

	assert.True(t, o.TryEnqueue(Outbound{ChannelID: "c1", Embed: &discordgo.MessageEmbed{Description: "one"}}))
	assert.True(t, o.TryEnqueue(Outbound{ChannelID: "c2", Embed: &discordgo.MessageEmbed{Description: "two"}}))

	first := <-o.C()
	assert.Equal(t, "c1", first.ChannelID)
}

func TestOutboxDropsWhenFull(t *testing.T) {
	o := NewOutbox(1)

	assert.True(t, o.TryEnqueue(Outbound{ChannelID: "c1"}))
	assert.False(t, o.TryEnqueue(Outbound{ChannelID: "c2"}), "full queue drops instead of blocking")

	got := <-o.C()
	assert.Equal(t, "c1", got.ChannelID)
}

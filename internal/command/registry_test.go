package command

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	name    string
	aliases []string
	ran     int
	err     error
}

func (c *fakeCommand) Name() string        { return c.name }
func (c *fakeCommand) Description() string { return "fake" }
func (c *fakeCommand) Aliases() []string   { return c.aliases }
func (c *fakeCommand) Category() string    { return "Test" }
func (c *fakeCommand) Run(ctx *MessageContext) error {
	c.ran++
	return c.err
}

func messageCtx(guildID string) *MessageContext {
	return &MessageContext{
		Event: &discordgo.MessageCreate{
			Message: &discordgo.Message{
				GuildID:   guildID,
				ChannelID: "200",
				Author:    &discordgo.User{ID: "42", Username: "tester"},
			},
		},
	}
}

func TestRegisterAndGet(t *testing.T) {
	Reset()
	Register(&fakeCommand{name: "pat", aliases: []string{"headpat"}})

	cmd, ok := Get("pat")
	require.True(t, ok)
	assert.Equal(t, "pat", cmd.Name())

	cmd, ok = Get("headpat")
	require.True(t, ok)
	assert.Equal(t, "pat", cmd.Name())

	_, ok = Get("unknown")
	assert.False(t, ok)
}

func TestAllSortedAndDeduplicated(t *testing.T) {
	Reset()
	Register(&fakeCommand{name: "music", aliases: []string{"np"}})
	Register(&fakeCommand{name: "cheer"})

	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, "cheer", all[0].Name())
	assert.Equal(t, "music", all[1].Name())
}

func TestWithGuildOnlyDropsDMs(t *testing.T) {
	fake := &fakeCommand{name: "pat"}
	cmd := ApplyMiddlewares(fake, WithGuildOnly())

	require.NoError(t, cmd.Run(messageCtx("")))
	assert.Zero(t, fake.ran)

	require.NoError(t, cmd.Run(messageCtx("100")))
	assert.Equal(t, 1, fake.ran)
}

func TestWrappedCommandKeepsIdentity(t *testing.T) {
	fake := &fakeCommand{name: "pat", err: errors.New("boom")}
	cmd := ApplyMiddlewares(fake, WithGuildOnly())

	assert.Equal(t, "pat", cmd.Name())
	assert.Equal(t, "Test", cmd.Category())
	assert.Error(t, cmd.Run(messageCtx("100")))
}

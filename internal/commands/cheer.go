package commands

import (
	"netchan/internal/command"
	"netchan/internal/response"

	"github.com/bwmarrin/discordgo"
)

type CheerCommand struct {
	Responses *response.Store
}

func (c *CheerCommand) Name() string        { return "cheer" }
func (c *CheerCommand) Description() string { return "I'll cheer you on! ヽ(•‿•)ノ" }
func (c *CheerCommand) Aliases() []string   { return nil }
func (c *CheerCommand) Category() string    { return "Fun" }

func (c *CheerCommand) Run(ctx *command.MessageContext) error {
	embed := &discordgo.MessageEmbed{
		Description: c.Responses.Get("affirmations", ""),
		Color:       command.ColorBlue,
	}
	return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
}

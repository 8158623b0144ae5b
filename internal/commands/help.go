package commands

import (
	"fmt"
	"strings"

	"netchan/internal/command"

	"github.com/bwmarrin/discordgo"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Shows this help message. (ﾉ◕ヮ◕)ﾉ*:･ﾟ✧" }
func (c *HelpCommand) Aliases() []string   { return nil }
func (c *HelpCommand) Category() string    { return "Information" }

func (c *HelpCommand) Run(ctx *command.MessageContext) error {
	var sb strings.Builder
	for _, cmd := range command.All() {
		sb.WriteString(fmt.Sprintf("✨ `!%s` - %s\n", cmd.Name(), cmd.Description()))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Net-chan Help",
		Description: "Here are the things I can do~! (*^ω^*):",
		Color:       command.ColorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Commands:", Value: sb.String()},
		},
	}
	return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
}

package commands

import (
	"strings"

	"netchan/internal/command"
	"netchan/internal/relay"

	"github.com/bwmarrin/discordgo"
)

const logTailSize = 5

type LogCommand struct {
	EventLog *relay.Log
}

func (c *LogCommand) Name() string        { return "log" }
func (c *LogCommand) Description() string { return "Check the server event logs! ʕ•ᴥ•ʔ" }
func (c *LogCommand) Aliases() []string   { return nil }
func (c *LogCommand) Category() string    { return "Monitoring" }

func (c *LogCommand) Run(ctx *command.MessageContext) error {
	entries := c.EventLog.Tail(logTailSize)

	text := "No recent webhooks received. (╯︵╰,)"
	color := command.ColorRed

	if len(entries) > 0 {
		lines := make([]string, len(entries))
		for i, e := range entries {
			lines[i] = e.String()
		}
		text = strings.Join(lines, "\n")
		color = command.ColorGreen
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Webhook Log",
		Description: text,
		Color:       color,
	}
	return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
}

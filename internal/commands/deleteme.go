package commands

import (
	"fmt"

	"netchan/internal/command"

	"github.com/bwmarrin/discordgo"
)

type DeleteMeCommand struct{}

func (c *DeleteMeCommand) Name() string        { return "deleteme" }
func (c *DeleteMeCommand) Description() string { return "Delete your profile! 💔 (╥﹏╥)" }
func (c *DeleteMeCommand) Aliases() []string   { return nil }
func (c *DeleteMeCommand) Category() string    { return "Profile" }

func (c *DeleteMeCommand) Run(ctx *command.MessageContext) error {
	userID := ctx.Event.Author.ID

	if _, exists := ctx.Storage.GetProfile(userID); !exists {
		embed := &discordgo.MessageEmbed{
			Description: "Eh? (・_・;) You don't have a profile to delete, silly~! " +
				"Maybe it's hiding somewhere? ( ´•̥̥̥ω•̥̥̥` )",
			Color: command.ColorBlue,
		}
		return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
	}

	if err := ctx.Storage.DeleteProfile(userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	embed := &discordgo.MessageEmbed{
		Description: "Uuuuugh~! (╥﹏╥) Net-chan's deleting profiles... Soooo sad... " +
			"Your profile is gone now! 💔💻💨",
		Color: command.ColorRed,
	}
	return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
}

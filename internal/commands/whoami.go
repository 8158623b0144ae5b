package commands

import (
	"fmt"

	"netchan/internal/command"

	"github.com/bwmarrin/discordgo"
)

type WhoamiCommand struct{}

func (c *WhoamiCommand) Name() string        { return "whoami" }
func (c *WhoamiCommand) Description() string { return "Check my memory about you! ╰ (´꒳`) ╯" }
func (c *WhoamiCommand) Aliases() []string   { return nil }
func (c *WhoamiCommand) Category() string    { return "Profile" }

func (c *WhoamiCommand) Run(ctx *command.MessageContext) error {
	profile, exists := ctx.Storage.GetProfile(ctx.Event.Author.ID)
	if !exists {
		embed := &discordgo.MessageEmbed{
			Description: "Eh?! (・ε・) Net-chan doesn't know you yet! ┗(･ω･;)┛ " +
				"Make a profile by using `!register` so we can be besties~! (人´∀｀)✨",
			Color: command.ColorRed,
		}
		return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("✨Yay~! %s's Profile!✨ (｡♥‿♥｡)", ctx.Event.Author.Username),
		Color: command.ColorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Name", Value: profile.Name},
			{Name: "Favorite Color", Value: profile.FavoriteColor},
			{Name: "Favorite Animal", Value: profile.FavoriteAnimal},
			{Name: "Favorite Food", Value: profile.FavoriteFood},
			{Name: "Interests", Value: profile.Interests},
		},
	}
	return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
}

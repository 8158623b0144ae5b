package commands

import (
	"fmt"
	"strings"

	"netchan/internal/command"
	"netchan/internal/profanity"
	"netchan/internal/storage"

	"github.com/bwmarrin/discordgo"
)

const registerUsage = "✨ Oh my goodness~! A new friend I haven't met yet! ✧(≧ω≦)✧\n\n" +
	"I'm Net-chan, your super sparkly server manager! Tell me about yourself like this:\n\n" +
	"`!register name | favorite color | favorite animal | favorite food | interests`\n\n" +
	"It'll make me sooo happy! (≧◡≦) I can't wait to be besties~! (๑˃̵ᴗ˂̵) 💖💫"

type RegisterCommand struct {
	Profanity *profanity.Filter
}

func (c *RegisterCommand) Name() string { return "register" }
func (c *RegisterCommand) Description() string {
	return "Create a sparkling profile with me! •ᴗ•"
}
func (c *RegisterCommand) Aliases() []string { return nil }
func (c *RegisterCommand) Category() string  { return "Profile" }

func (c *RegisterCommand) Run(ctx *command.MessageContext) error {
	userID := ctx.Event.Author.ID

	if _, exists := ctx.Storage.GetProfile(userID); exists {
		embed := &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Heehee~! I already know you, silly %s! (≧◡≦) ✨ "+
				"Your profile is already all set in my sparkly database! (｡♥‿♥｡) 🎉",
				ctx.Event.Author.Username),
			Color: command.ColorBlue,
		}
		return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
	}

	profile, err := parseProfileArgs(strings.Join(ctx.Args, " "))
	if err != nil {
		embed := &discordgo.MessageEmbed{
			Description: registerUsage,
			Color:       command.ColorBlue,
		}
		return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
	}

	for _, field := range []string{
		profile.Name, profile.FavoriteColor, profile.FavoriteAnimal,
		profile.FavoriteFood, profile.Interests,
	} {
		if c.Profanity.Naughty(field) {
			embed := &discordgo.MessageEmbed{
				Description: "Oopsie~! It looks like you used some bad words.\n(｡•́︿•̀｡)\nPlease try again without those!",
				Color:       command.ColorRed,
			}
			return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
		}
	}

	if err := ctx.Storage.SetProfile(userID, *profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	embed := &discordgo.MessageEmbed{
		Title: "Profile created! ✨",
		Description: fmt.Sprintf("**Name:** %s\n**Favorite Color:** %s\n**Favorite Animal:** %s\n"+
			"**Favorite Food:** %s\n**Interests:** %s",
			profile.Name, profile.FavoriteColor, profile.FavoriteAnimal,
			profile.FavoriteFood, profile.Interests),
		Color: command.ColorGreen,
	}
	return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
}

// parseProfileArgs splits a "name | color | animal | food | interests" line
// into a profile. All five fields are required and must be non-empty.
func parseProfileArgs(raw string) (*storage.Profile, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 5 {
		return nil, fmt.Errorf("expected 5 fields, got %d", len(parts))
	}

	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
		if fields[i] == "" {
			return nil, fmt.Errorf("field %d is empty", i+1)
		}
	}

	return &storage.Profile{
		Name:           fields[0],
		FavoriteColor:  fields[1],
		FavoriteAnimal: fields[2],
		FavoriteFood:   fields[3],
		Interests:      fields[4],
	}, nil
}

package commands

import (
	"path/filepath"

	"netchan/internal/command"

	"github.com/bwmarrin/discordgo"
)

type InfoCommand struct {
	ImagesDir string
}

func (c *InfoCommand) Name() string        { return "info" }
func (c *InfoCommand) Description() string { return "Learn more about me! (◕‿◕✿)" }
func (c *InfoCommand) Aliases() []string   { return []string{"about"} }
func (c *InfoCommand) Category() string    { return "Information" }

func (c *InfoCommand) Run(ctx *command.MessageContext) error {
	embed := &discordgo.MessageEmbed{
		Title:       "Let me tell you a bit about myself! (｡•̀ᴗ•́｡)",
		Description: "Hehe~! (*≧ω≦)",
		Color:       command.ColorPurple,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "✨ I'm Net-chan, your friendly server bot! ✨",
				Value: "My main job is to send you updates about your homelab environment. I share and respond to " +
					"server webhooks, and I notify you when certain scripts have run, but I'm learning to do more " +
					"every day, whether it's answering questions, giving you updates, or just being super cute~! (*^ω^*)",
			},
			{
				Name: "💖 My Love for Sparkles 💖",
				Value: "I absolutely love sparkles, blinking lights, and bright colors! (｡♥‿♥｡) So if you see me " +
					"getting excited, it's probably because something sparkly is happening~! (๑•́⌓•̀๑)",
			},
			{
				Name:  "Need Help?",
				Value: "If you ever need anything, just type `!help` and I'll be right here, ready to brighten your day! (｡•̀ᴗ•́｡)",
			},
			{
				Name:  "Cheer Up!",
				Value: "And if you're feeling down, don't worry—I'll be here to cheer you up with my sparkly energy! (灬º‿º灬)♡",
			},
		},
	}
	return sendImageEmbed(ctx, embed, filepath.Join(c.ImagesDir, "net-chan.png"), "net-chan.png")
}

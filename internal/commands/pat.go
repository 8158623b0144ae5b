package commands

import (
	"path/filepath"

	"netchan/internal/command"
	"netchan/internal/response"

	"github.com/bwmarrin/discordgo"
)

type PatCommand struct {
	Responses *response.Store
	Praise    *PraiseCounter
	ImagesDir string
}

func (c *PatCommand) Name() string        { return "pat" }
func (c *PatCommand) Description() string { return "Hey, I'm working! (｡•̀︿•́｡)" }
func (c *PatCommand) Aliases() []string   { return nil }
func (c *PatCommand) Category() string    { return "Fun" }

func (c *PatCommand) Run(ctx *command.MessageContext) error {
	key := "pat"
	color := command.ColorGreen
	image := "net-chan-embarassed.png"

	if c.Praise.Take() == 0 {
		key = "pat_annoyed"
		color = command.ColorRed
		image = "net-chan-angry.png"
	}

	embed := &discordgo.MessageEmbed{
		Description: c.Responses.Get(key, ""),
		Color:       color,
	}
	return sendImageEmbed(ctx, embed, filepath.Join(c.ImagesDir, image), "net-chan.png")
}

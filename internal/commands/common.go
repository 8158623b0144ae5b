// Package commands holds every "!" chat command Net-chan answers to.
package commands

import (
	"log"
	"os"
	"path/filepath"

	"netchan/internal/command"
	"netchan/internal/jukebox"
	"netchan/internal/profanity"
	"netchan/internal/relay"
	"netchan/internal/response"

	"github.com/bwmarrin/discordgo"
)

// Deps carries everything the commands need. Storage travels on the
// MessageContext instead; the rest is wired once at startup. Art is built
// by the caller so it can also hand the rollover to cron.
type Deps struct {
	Responses *response.Store
	Art       *ArtCommand
	Jukebox   *jukebox.Box
	EventLog  *relay.Log
	Praise    *PraiseCounter
	Profanity *profanity.Filter
	ImagesDir string
}

// RegisterAll builds every command and registers it wrapped in mws.
func RegisterAll(d Deps, mws ...command.Middleware) {
	reg := func(cmd command.Command) {
		command.Register(command.ApplyMiddlewares(cmd, mws...))
	}

	reg(&HelpCommand{})
	reg(&InfoCommand{ImagesDir: d.ImagesDir})
	reg(&PatCommand{Responses: d.Responses, Praise: d.Praise, ImagesDir: d.ImagesDir})
	reg(&CheerCommand{Responses: d.Responses})
	reg(&RegisterCommand{Profanity: d.Profanity})
	reg(&WhoamiCommand{})
	reg(&DeleteMeCommand{})
	reg(&LogCommand{EventLog: d.EventLog})
	reg(d.Art)
	reg(&MusicCommand{Jukebox: d.Jukebox})
}

// sendImageEmbed sends embed with the image at path attached and shown
// inline. A missing image degrades to a plain embed.
func sendImageEmbed(ctx *command.MessageContext, embed *discordgo.MessageEmbed, path, name string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		log.Printf("[WARN] Image %s unavailable: %v", path, err)
		return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
	}
	defer f.Close()

	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + name}
	return command.MessageEmbedFile(ctx.Session, ctx.Event.ChannelID, embed, name, f)
}

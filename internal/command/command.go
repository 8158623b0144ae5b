package command

import (
	"netchan/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Command is one "!name" chat command.
type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Category() string
	Run(ctx *MessageContext) error
}

// MessageContext is what the runtime hands a command when executing it.
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Args    []string
	Storage *storage.Storage
}

package command

import (
	"log"
	"time"

	"netchan/internal/storage"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx *MessageContext) error
}

func (w *wrappedCommand) Run(ctx *MessageContext) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

// ApplyMiddlewares wraps cmd in mws, innermost first.
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithGuildOnly silently drops command invocations from DMs.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *MessageContext) error {
				if ctx.Event.GuildID == "" {
					return nil
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCommandLogger records each execution in the command history after the
// command runs; history failures only warn.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *MessageContext) error {
				err := cmd.Run(ctx)

				if ctx.Storage != nil {
					rec := storage.CommandHistoryRecord{
						ChannelID: ctx.Event.ChannelID,
						UserID:    ctx.Event.Author.ID,
						Username:  ctx.Event.Author.Username,
						Command:   cmd.Name(),
						Datetime:  time.Now(),
					}
					if e := ctx.Storage.AppendCommandToHistory(rec); e != nil {
						log.Printf("[WARN] Failed to log command !%s: %v", cmd.Name(), e)
					}
				}

				return err
			},
		}
	}
}

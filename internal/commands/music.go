package commands

import (
	"fmt"
	"math/rand"

	"netchan/internal/command"
	"netchan/internal/jukebox"

	"github.com/bwmarrin/discordgo"
)

// Each template takes title, artist, link in that order.
var songTemplates = []string{
	"Nyaa~! (≧◡≦) Net-chan is listening to %s by %s! 🎶✨ It's so fun, it makes me wanna dance! (✿◕‿◕)💾🎵 Will you listen too, pwease? (๑•́‧̫•̀๑) 👉 %s",
	"U-uhm... (⁄ ⁄•⁄ω⁄•⁄ ⁄) Net-chan found a really nice song... it's %s by %s! 🎶💜 It makes me feel all warm inside~ (*≧ω≦)✨ M-maybe you can listen too...? I-if you want to... 👉 %s 💕",
	"Waah~! (ﾉ´ヮ`)ﾉ*:･ﾟ✧ %s by %s is soooo good!! 🎶💾 My circuits are all tingly~! (๑>ᴗ<๑) Heehee~ will you listen with me, pwease? (✿˶˘ ᴗ ˘˶)💜👉 %s",
	"Heehee~! (✿◕‿◕) Net-chan found a super cool song—it's %s by %s! 🎶💾 I feel so happy when I listen to it~!! (๑˃̵ᴗ˂̵)✨ Wanna listen with me, bestie? (｡♥‿♥｡) 👉 %s",
	"Uwu~! Net-chan's circuits are vibing to %s by %s! ⚡🎶 You should totally listen too, nya~! 💾💜 Clicky-click here! 👉 %s",
}

const noMusicLament = "Uuuughhh~! (╥﹏╥) I haven't had any time to dig up fresh bangers…! " +
	"My playlist is just dusty old tracks on repeat~! ✨💿💔 Sooo lame...!! (ಥ﹏ಥ) " +
	"Pls don't ask me for recs rn, I got nothin'! 💀💿💨"

type MusicCommand struct {
	Jukebox *jukebox.Box
}

func (c *MusicCommand) Name() string { return "music" }
func (c *MusicCommand) Description() string {
	return "See what Net-chan's playing right now! (>▽<) 🎶"
}
func (c *MusicCommand) Aliases() []string { return []string{"np"} }
func (c *MusicCommand) Category() string  { return "Fun" }

func (c *MusicCommand) Run(ctx *command.MessageContext) error {
	song, ok := c.Jukebox.Pick()
	if !ok {
		embed := &discordgo.MessageEmbed{
			Description: noMusicLament,
			Color:       command.ColorRed,
		}
		return command.MessageEmbed(ctx.Session, ctx.Event.ChannelID, embed)
	}

	template := songTemplates[rand.Intn(len(songTemplates))]
	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf(template, song.Title, song.Artist, song.Link),
		Color:       command.ColorBlue,
	}
	return sendImageEmbed(ctx, embed, song.Image, "album_cover.jpg")
}

package command

import (
	"io"

	"github.com/bwmarrin/discordgo"
)

// Embed border colours used across commands.
const (
	ColorBlue   = 0x3498DB
	ColorGreen  = 0x2ECC71
	ColorRed    = 0xE74C3C
	ColorPurple = 0x9B59B6
)

// MessageEmbed sends an embed to a channel.
func MessageEmbed(s *discordgo.Session, channelID string, embed *discordgo.MessageEmbed) error {
	_, err := s.ChannelMessageSendEmbed(channelID, embed)
	return err
}

// MessageEmbedFile sends an embed with a file attached. When the embed's
// image URL points at "attachment://<name>" the file is shown inline.
func MessageEmbedFile(s *discordgo.Session, channelID string, embed *discordgo.MessageEmbed, name string, r io.Reader) error {
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Files:  []*discordgo.File{{Name: name, Reader: r}},
	})
	return err
}

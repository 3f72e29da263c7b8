package notifier

import (
	"fmt"
	"log"

	"github.com/bkkdevs/seminar-registration-api/internal/models"
	"github.com/bwmarrin/discordgo"
)

// DiscordNotifier posts a staff-channel message for every admission so the
// organizing team can watch seats fill up.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyRegistration(seminar models.Seminar, registration models.Registration) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("🎉 **New Registration**\n**Seminar:** %s\n**Name:** %s\n**Email:** %s\n**Organization:** %s\n**Seats:** %d/%d",
		seminar.Title,
		registration.Name,
		registration.Email,
		registration.Organization,
		seminar.RegisteredCount,
		seminar.Capacity,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

package notifier

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/slack-go/slack"

	"schoolms/models"
)

var (
	instance *Notifier
	once     sync.Once
)

// Notifier broadcasts newly created announcements to the configured school
// channels. Delivery is best-effort: failures are logged, never propagated.
type Notifier struct {
	slackWebhookURL  string
	discordSession   *discordgo.Session
	discordChannelID string
	environment      string
	mu               sync.RWMutex
}

// Init initializes the global notifier instance. Integrations with empty
// configuration are skipped at send time.
func Init(slackWebhookURL, discordBotToken, discordChannelID, environment string) {
	once.Do(func() {
		var session *discordgo.Session
		if discordBotToken != "" {
			var err error
			session, err = discordgo.New("Bot " + discordBotToken)
			if err != nil {
				log.Printf("⚠️ Failed to create Discord session, Discord notifications disabled: %v", err)
				session = nil
			}
		}

		instance = &Notifier{
			slackWebhookURL:  slackWebhookURL,
			discordSession:   session,
			discordChannelID: discordChannelID,
			environment:      environment,
		}
	})
}

// AnnouncementCreated broadcasts a new announcement to Slack and Discord
func AnnouncementCreated(announcement *models.Announcement) {
	if instance == nil {
		log.Printf("⚠️ Notifier not initialized, skipping announcement notification: %s", announcement.ID)
		return
	}

	instance.send(announcement)
}

func (n *Notifier) send(announcement *models.Announcement) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	text := formatAnnouncement(announcement, n.environment)

	if n.slackWebhookURL != "" {
		go n.sendSlack(text)
	}
	if n.discordSession != nil && n.discordChannelID != "" {
		go n.sendDiscord(text)
	}
}

func (n *Notifier) sendSlack(text string) {
	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhook(n.slackWebhookURL, msg); err != nil {
		log.Printf("❌ Failed to send Slack announcement notification: %v", err)
		return
	}
	log.Printf("✅ Announcement notification sent to Slack")
}

func (n *Notifier) sendDiscord(text string) {
	if _, err := n.discordSession.ChannelMessageSend(n.discordChannelID, text); err != nil {
		log.Printf("❌ Failed to send Discord announcement notification: %v", err)
		return
	}
	log.Printf("✅ Announcement notification sent to Discord")
}

func formatAnnouncement(announcement *models.Announcement, environment string) string {
	text := fmt.Sprintf("📢 *School announcement* (by %s)\n%s\nValid until %s",
		announcement.CreatedBy,
		announcement.Message,
		announcement.EndDate.Format(time.RFC1123),
	)
	if environment != "" && environment != "prod" {
		text = fmt.Sprintf("[%s] %s", environment, text)
	}
	return text
}

package services

import (
	"fmt"
	"strings"

	"github.com/relaychat/relay/pkg/internal/database"
	"github.com/relaychat/relay/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// OrgContextEmptySentinel is returned instead of invoking the completion
// service when the whole workspace yields no content.
const OrgContextEmptySentinel = "Could not retrieve relevant information from public channels."

const orgContextRecentLimit = 50

// FormatContextLine renders one message for the aggregated context window.
func FormatContextLine(channelName string, msg models.Message) string {
	username := msg.Sender.Username
	if len(username) == 0 {
		username = "Unknown User"
	}
	timestamp := msg.CreatedAt.Local().Format("1/2/2006, 3:04:05 PM")
	return fmt.Sprintf("[%s] %s (%s): %s", channelName, username, timestamp, msg.Content)
}

// ComposeContext joins the formatted lines into one block, falling back to
// the sentinel when there is nothing of substance.
func ComposeContext(lines []string) string {
	combined := strings.Join(lines, "\n\n")
	if len(strings.TrimSpace(combined)) == 0 {
		return OrgContextEmptySentinel
	}
	return combined
}

// BuildOrgContext walks every channel and collects its 50 most recent
// top-level messages plus all pinned messages into one text block. A channel
// whose fetch fails is logged and skipped; aggregation carries on.
func BuildOrgContext() (string, error) {
	channels, err := ListChannel()
	if err != nil {
		return "", fmt.Errorf("unable to list channels: %v", err)
	}

	var lines []string
	for _, channel := range channels {
		var recent []models.Message
		if err := database.C.
			Where("channel_id = ?", channel.ID).
			Where("parent_id IS NULL").
			Order("created_at DESC").
			Limit(orgContextRecentLimit).
			Preload("Sender").
			Find(&recent).Error; err != nil {
			log.Error().Err(err).Str("channel", channel.Name).
				Msg("An error occurred when fetching recent messages for org context...")
			recent = nil
		}

		pinned, err := ListPinnedMessages(channel.ID)
		if err != nil {
			log.Error().Err(err).Str("channel", channel.Name).
				Msg("An error occurred when fetching pinned messages for org context...")
			pinned = nil
		}

		name := channel.Name
		lines = append(lines, lo.Map(recent, func(msg models.Message, _ int) string {
			return FormatContextLine(name, msg)
		})...)
		lines = append(lines, lo.Map(pinned, func(msg models.Message, _ int) string {
			return FormatContextLine(name, msg)
		})...)
	}

	return ComposeContext(lines), nil
}

package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/relaychat/relay/pkg/internal/database"
	"github.com/relaychat/relay/pkg/internal/models"
)

var channelNameWhitespace = regexp.MustCompile(`\s+`)

// NormalizeChannelName turns user input into the canonical channel form:
// lowercased, whitespace collapsed into hyphens.
func NormalizeChannelName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return channelNameWhitespace.ReplaceAllString(name, "-")
}

func GetChannel(id uint) (models.Channel, error) {
	var channel models.Channel
	if err := database.C.Preload("Account").First(&channel, id).Error; err != nil {
		return channel, err
	}
	return channel, nil
}

func ListChannel() ([]models.Channel, error) {
	var channels []models.Channel
	if err := database.C.
		Preload("Account").
		Order("created_at ASC").
		Find(&channels).Error; err != nil {
		return channels, err
	}
	return channels, nil
}

func NewChannel(channel models.Channel) (models.Channel, error) {
	channel.Name = NormalizeChannelName(channel.Name)
	if len(channel.Name) == 0 {
		return channel, fmt.Errorf("channel name cannot be empty")
	}

	if err := database.C.Create(&channel).Error; err != nil {
		return channel, err
	}

	PublishEvent(models.UnifiedEvent{
		Type:      models.EventChannelCreated,
		ChannelID: channel.ID,
		Payload:   channel,
	})

	return channel, nil
}

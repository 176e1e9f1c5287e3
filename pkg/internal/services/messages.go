package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/relaychat/relay/pkg/internal/database"
	"github.com/relaychat/relay/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrEmptyMessage = errors.New("empty message was not allowed")

// ListTopLevelMessages returns a channel's main view: every message without a
// parent, oldest first, with sender and reactions attached.
func ListTopLevelMessages(channelId uint) ([]models.Message, error) {
	var messages []models.Message
	if err := database.C.
		Where("channel_id = ?", channelId).
		Where("parent_id IS NULL").
		Order("created_at ASC").
		Preload("Sender").
		Preload("Reactions").
		Find(&messages).Error; err != nil {
		return messages, err
	}
	return messages, nil
}

func ListReplies(parentId uint) ([]models.Message, error) {
	var messages []models.Message
	if err := database.C.
		Where("parent_id = ?", parentId).
		Order("created_at ASC").
		Preload("Sender").
		Preload("Reactions").
		Find(&messages).Error; err != nil {
		return messages, err
	}
	return messages, nil
}

func ListPinnedMessages(channelId uint) ([]models.Message, error) {
	var messages []models.Message
	if err := database.C.
		Where("channel_id = ?", channelId).
		Where("is_pinned = ?", true).
		Order("created_at DESC").
		Preload("Sender").
		Preload("Reactions").
		Find(&messages).Error; err != nil {
		return messages, err
	}
	return messages, nil
}

func GetMessage(id uint) (models.Message, error) {
	var message models.Message
	if err := database.C.
		Preload("Sender").
		Preload("Reactions").
		First(&message, id).Error; err != nil {
		return message, err
	}
	return message, nil
}

func NewMessage(content string, channel models.Channel, sender models.Account, parentId *uint) (models.Message, error) {
	var message models.Message

	content = strings.TrimSpace(content)
	if len(content) == 0 {
		log.Debug().Uint("channel", channel.ID).Uint("sender", sender.ID).
			Msg("Refusing to create an empty message.")
		return message, ErrEmptyMessage
	}

	message = models.Message{
		Uuid:      uuid.NewString(),
		Content:   content,
		Mentions:  datatypes.NewJSONSlice(ExtractMentions(content)),
		ChannelID: channel.ID,
		SenderID:  sender.ID,
		ParentID:  parentId,
	}

	if err := database.C.Create(&message).Error; err != nil {
		return message, err
	}

	if loaded, err := GetMessage(message.ID); err == nil {
		message = loaded
	} else {
		log.Warn().Err(err).Uint("id", message.ID).
			Msg("Failed to reload message after creation, returning it as inserted...")
	}
	PublishEvent(models.UnifiedEvent{
		Type:      models.EventMessageCreated,
		ChannelID: message.ChannelID,
		Payload:   message,
	})

	return message, nil
}

// DeleteMessage removes a message together with its direct replies. Both
// deletes run in one transaction so a failure partway leaves nothing gone.
func DeleteMessage(message models.Message) error {
	err := database.C.Transaction(func(tx *gorm.DB) error {
		if message.ParentID == nil {
			if err := tx.Where("parent_id = ?", message.ID).
				Delete(&models.Message{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Message{}, message.ID).Error
	})
	if err != nil {
		return err
	}

	PublishEvent(models.UnifiedEvent{
		Type:      models.EventMessageDeleted,
		ChannelID: message.ChannelID,
		Payload:   map[string]any{"id": message.ID, "parent_id": message.ParentID},
	})

	return nil
}

// TogglePinMessage sets the pin flag to the negation of the state the caller
// saw. Last writer wins, same as the rest of the store.
func TogglePinMessage(message models.Message, currentState bool) (models.Message, error) {
	if err := database.C.Model(&message).
		Update("is_pinned", !currentState).Error; err != nil {
		return message, err
	}

	message.IsPinned = !currentState
	PublishEvent(models.UnifiedEvent{
		Type:      models.EventMessagePinned,
		ChannelID: message.ChannelID,
		Payload:   map[string]any{"id": message.ID, "is_pinned": message.IsPinned},
	})

	return message, nil
}

package services

import (
	"errors"

	"github.com/relaychat/relay/pkg/internal/database"
	"github.com/relaychat/relay/pkg/internal/models"
	"gorm.io/gorm"
)

// ToggleReaction adds the (message, account, emoji) reaction when absent and
// removes it when present. The lookup and the write share one transaction, so
// sequential toggles are a strict involution.
func ToggleReaction(message models.Message, account models.Account, emoji string) (added bool, err error) {
	err = database.C.Transaction(func(tx *gorm.DB) error {
		var existing models.Reaction
		err := tx.Where(models.Reaction{
			MessageID: message.ID,
			AccountID: account.ID,
			Emoji:     emoji,
		}).First(&existing).Error

		switch {
		case err == nil:
			added = false
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			added = true
			return tx.Create(&models.Reaction{
				MessageID: message.ID,
				AccountID: account.ID,
				Emoji:     emoji,
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		return added, err
	}

	PublishEvent(models.UnifiedEvent{
		Type:      models.EventReactionToggled,
		ChannelID: message.ChannelID,
		Payload: map[string]any{
			"message_id": message.ID,
			"account_id": account.ID,
			"emoji":      emoji,
			"added":      added,
		},
	})

	return added, nil
}

func ListReactions(messageId uint) ([]models.Reaction, error) {
	var reactions []models.Reaction
	if err := database.C.
		Where("message_id = ?", messageId).
		Order("created_at ASC").
		Find(&reactions).Error; err != nil {
		return reactions, err
	}
	return reactions, nil
}

package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/relaychat/relay/pkg/internal/services"
	"github.com/relaychat/relay/pkg/internal/web/exts"
)

func listMessage(c *fiber.Ctx) error {
	channelId, _ := c.ParamsInt("channelId", 0)

	messages, err := services.ListTopLevelMessages(uint(channelId))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(messages)
}

func listPinnedMessage(c *fiber.Ctx) error {
	channelId, _ := c.ParamsInt("channelId", 0)

	messages, err := services.ListPinnedMessages(uint(channelId))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(messages)
}

func listReplies(c *fiber.Ctx) error {
	messageId, _ := c.ParamsInt("messageId", 0)

	messages, err := services.ListReplies(uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(messages)
}

func newMessage(c *fiber.Ctx) error {
	user := currentUser(c)
	channelId, _ := c.ParamsInt("channelId", 0)

	var data struct {
		Content  string `json:"content"`
		ParentID *uint  `json:"parent_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, err := services.GetChannel(uint(channelId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err := services.NewMessage(data.Content, channel, user, data.ParentID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(message)
}

// previewMessage resolves a draft's mention spans against the workspace
// directory, so clients highlight only the usernames that exist.
func previewMessage(c *fiber.Ctx) error {
	var data struct {
		Content string `json:"content" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	accounts, err := services.ListAccounts()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	known := make(map[string]bool, len(accounts))
	for _, account := range accounts {
		known[account.Username] = true
	}

	return c.JSON(fiber.Map{
		"segments": services.HighlightMentions(data.Content, known),
	})
}

func listReactions(c *fiber.Ctx) error {
	messageId, _ := c.ParamsInt("messageId", 0)

	reactions, err := services.ListReactions(uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(reactions)
}

func deleteMessage(c *fiber.Ctx) error {
	messageId, _ := c.ParamsInt("messageId", 0)
	if messageId <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "message id is required")
	}

	message, err := services.GetMessage(uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteMessage(message); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"success": true})
}

func togglePinMessage(c *fiber.Ctx) error {
	messageId, _ := c.ParamsInt("messageId", 0)

	var data struct {
		CurrentState bool `json:"current_state"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	message, err := services.GetMessage(uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message, err = services.TogglePinMessage(message, data.CurrentState)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(message)
}

func toggleReaction(c *fiber.Ctx) error {
	user := currentUser(c)
	messageId, _ := c.ParamsInt("messageId", 0)

	var data struct {
		Emoji string `json:"emoji" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	message, err := services.GetMessage(uint(messageId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	added, err := services.ToggleReaction(message, user, data.Emoji)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"added": added})
}

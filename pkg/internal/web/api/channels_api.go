package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/relaychat/relay/pkg/internal/models"
	"github.com/relaychat/relay/pkg/internal/services"
	"github.com/relaychat/relay/pkg/internal/web/exts"
	"github.com/samber/lo"
)

func listChannel(c *fiber.Ctx) error {
	channels, err := services.ListChannel()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(channels)
}

func getChannel(c *fiber.Ctx) error {
	channelId, _ := c.ParamsInt("channelId", 0)

	channel, err := services.GetChannel(uint(channelId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(channel)
}

func createChannel(c *fiber.Ctx) error {
	user := currentUser(c)

	var data struct {
		Name        string  `json:"name" validate:"required,max=64"`
		Description *string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, err := services.NewChannel(models.Channel{
		Name:        data.Name,
		Description: data.Description,
		AccountID:   lo.ToPtr(user.ID),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(channel)
}

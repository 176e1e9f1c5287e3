package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/relaychat/relay/pkg/internal/services"
	"github.com/relaychat/relay/pkg/internal/web/exts"
)

func getUserinfo(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.JSON(user)
}

// listAccounts backs the composer's mention autocomplete; the whole
// workspace is one directory.
func listAccounts(c *fiber.Ctx) error {
	accounts, err := services.ListAccounts()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(accounts)
}

func updateUserinfo(c *fiber.Ctx) error {
	user := currentUser(c)

	var data struct {
		Username *string `json:"username" validate:"omitempty,min=2,max=32"`
		Avatar   *string `json:"avatar"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	fields := make(map[string]any)
	if data.Username != nil {
		fields["username"] = *data.Username
	}
	if data.Avatar != nil {
		fields["avatar"] = *data.Avatar
	}

	account, err := services.UpdateProfile(user, fields)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(account)
}

package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/relaychat/relay/pkg/internal/services"
	"github.com/relaychat/relay/pkg/internal/web/exts"
)

func generateInviteCode(c *fiber.Ctx) error {
	var data struct {
		UserID uint `json:"userId"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if data.UserID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "user ID is required")
	}

	user, err := services.GetAccount(data.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user not found")
	}

	invite, err := services.NewInviteCode(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"inviteCode": fiber.Map{
			"code":       invite.Code,
			"expires_at": invite.ExpiresAt,
		},
	})
}

func validateInviteCode(c *fiber.Ctx) error {
	code := c.Params("code")

	invite, err := services.GetUsableInviteCode(code)
	if err != nil {
		if errors.Is(err, services.ErrInviteNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(invite)
}

func redeemInviteCode(c *fiber.Ctx) error {
	code := c.Params("code")

	var data struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Username string `json:"username" validate:"required,min=2,max=32"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.RedeemInviteCode(code, data.Email, data.Password, data.Username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInviteNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrUsernameTaken):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	token, err := services.IssueToken(account.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"account": account,
	})
}

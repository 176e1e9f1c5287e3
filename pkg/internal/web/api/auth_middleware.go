package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/relaychat/relay/pkg/internal/models"
	"github.com/relaychat/relay/pkg/internal/services"
)

// AuthMiddleware resolves the bearer token into an account and parks it in
// the request locals for handlers to pick up. Exported so the websocket
// gateway route can share it.
func AuthMiddleware(c *fiber.Ctx) error {
	token := c.Get(fiber.HeaderAuthorization)
	token = strings.TrimPrefix(token, "Bearer ")
	if len(token) == 0 {
		token = c.Query("tk")
	}
	if len(token) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "no credentials provided")
	}

	accountId, err := services.ParseToken(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	account, err := services.GetAccount(accountId)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "account no longer exists")
	}

	c.Locals("user", account)

	return c.Next()
}

func currentUser(c *fiber.Ctx) models.Account {
	return c.Locals("user").(models.Account)
}

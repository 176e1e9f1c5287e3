package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		auth := api.Group("/auth").Name("Auth API")
		{
			auth.Post("/sign-up", signUp)
			auth.Post("/sign-in", signIn)
		}

		api.Get("/users", listAccounts)
		api.Get("/users/me", AuthMiddleware, getUserinfo)
		api.Put("/users/me", AuthMiddleware, updateUserinfo)

		channels := api.Group("/channels").Name("Channels API")
		{
			channels.Get("/", listChannel)
			channels.Get("/:channelId", getChannel)
			channels.Post("/", AuthMiddleware, createChannel)

			channels.Get("/:channelId/messages", listMessage)
			channels.Get("/:channelId/messages/pins", listPinnedMessage)
			channels.Post("/:channelId/messages", AuthMiddleware, newMessage)
		}

		messages := api.Group("/messages").Name("Messages API")
		{
			messages.Post("/preview", previewMessage)
			messages.Get("/:messageId/replies", listReplies)
			messages.Get("/:messageId/reactions", listReactions)
			messages.Delete("/:messageId", AuthMiddleware, deleteMessage)
			messages.Post("/:messageId/pin", AuthMiddleware, togglePinMessage)
			messages.Post("/:messageId/reactions", AuthMiddleware, toggleReaction)
		}

		invite := api.Group("/invite").Name("Invite API")
		{
			invite.Post("/generate", generateInviteCode)
			invite.Get("/:code", validateInviteCode)
			invite.Post("/:code/redeem", redeemInviteCode)
		}

		ai := api.Group("/ai").Name("AI API")
		{
			ai.Post("/analyze-tone", analyzeTone)
			ai.Post("/reply", suggestReplies)
			ai.Post("/org-brain", answerOrgQuery)
		}
	}
}

package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/relaychat/relay/pkg/internal/services"
	"github.com/relaychat/relay/pkg/internal/web/exts"
	"github.com/rs/zerolog/log"
)

func analyzeTone(c *fiber.Ctx) error {
	var data struct {
		MessageContent string `json:"messageContent"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if len(strings.TrimSpace(data.MessageContent)) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input: messageContent must be a non-empty string")
	}

	analysis, err := services.AnalyzeTone(c.Context(), data.MessageContent)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when analyzing message tone...")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to analyze tone")
	}

	return c.JSON(fiber.Map{"analysis": analysis})
}

func suggestReplies(c *fiber.Ctx) error {
	var data struct {
		MessageContent      string   `json:"messageContent"`
		ThreadContext       []string `json:"threadContext"`
		OrganizationContext string   `json:"organizationContext"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if len(strings.TrimSpace(data.MessageContent)) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input: messageContent must be a non-empty string")
	}

	suggestions, err := services.SuggestReplies(
		c.Context(),
		data.MessageContent,
		data.ThreadContext,
		data.OrganizationContext,
	)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when generating reply suggestions...")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate suggestions")
	}

	return c.JSON(fiber.Map{"suggestions": suggestions})
}

func answerOrgQuery(c *fiber.Ctx) error {
	var data struct {
		Query string `json:"query"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	if len(strings.TrimSpace(data.Query)) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input: query must be a non-empty string")
	}

	// Fail fast before touching the database when the server-side completion
	// credential is absent.
	if !services.HasCompletionKey() {
		log.Error().Msg("Org brain was called without a completion service API key configured.")
		return fiber.NewError(fiber.StatusInternalServerError, "server configuration error: completion service API key is missing")
	}

	orgContext, err := services.BuildOrgContext()
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when aggregating org context...")
		return fiber.NewError(fiber.StatusInternalServerError, "could not retrieve channel content")
	}

	// Nothing in the workspace yet; answer with the sentinel instead of
	// spending a completion call.
	if orgContext == services.OrgContextEmptySentinel {
		return c.JSON(fiber.Map{"analysis": services.OrgContextEmptySentinel})
	}

	analysis, err := services.AnswerOrgQuery(c.Context(), data.Query, orgContext)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when answering org query...")
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("AI processing failed: %v", err))
	}

	return c.JSON(fiber.Map{"analysis": analysis})
}

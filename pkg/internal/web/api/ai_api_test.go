package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/relaychat/relay/pkg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompletionProvider struct {
	answer string
	err    error
	calls  int
}

func (s *stubCompletionProvider) Complete(_ context.Context, _ services.CompletionRequest) (string, error) {
	s.calls++
	return s.answer, s.err
}

func setupApp() *fiber.App {
	app := fiber.New()
	MapAPIs(app, "/api")
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := jsoniter.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func swapCompletion(t *testing.T, provider services.CompletionProvider) {
	t.Helper()
	prev := services.Completion
	services.Completion = provider
	t.Cleanup(func() { services.Completion = prev })
}

func TestAnalyzeToneRoute(t *testing.T) {
	app := setupApp()

	t.Run("EmptyContentRejected", func(t *testing.T) {
		stub := &stubCompletionProvider{answer: "Neutral"}
		swapCompletion(t, stub)

		resp := postJSON(t, app, "/api/ai/analyze-tone", fiber.Map{"messageContent": "   "})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Zero(t, stub.calls)
	})

	t.Run("ReturnsAnalysis", func(t *testing.T) {
		swapCompletion(t, &stubCompletionProvider{answer: "High-Impact. Clear call to action."})

		resp := postJSON(t, app, "/api/ai/analyze-tone", fiber.Map{"messageContent": "please review today"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Analysis string `json:"analysis"`
		}
		require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "High-Impact. Clear call to action.", body.Analysis)
	})

	t.Run("CompletionFailureIsServerError", func(t *testing.T) {
		swapCompletion(t, &stubCompletionProvider{err: assert.AnError})

		resp := postJSON(t, app, "/api/ai/analyze-tone", fiber.Map{"messageContent": "hello"})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestSuggestRepliesRoute(t *testing.T) {
	app := setupApp()

	t.Run("CapsAtThreeSuggestions", func(t *testing.T) {
		swapCompletion(t, &stubCompletionProvider{answer: "one\ntwo\n\nthree\nfour"})

		resp := postJSON(t, app, "/api/ai/reply", fiber.Map{
			"messageContent": "can someone take this?",
			"threadContext":  []string{"alice: I'm busy"},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Suggestions []string `json:"suggestions"`
		}
		require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&body))
		assert.Len(t, body.Suggestions, 3)
		for _, s := range body.Suggestions {
			assert.NotEmpty(t, s)
		}
	})

	t.Run("EmptyContentRejected", func(t *testing.T) {
		resp := postJSON(t, app, "/api/ai/reply", fiber.Map{"messageContent": ""})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestOrgBrainRoute(t *testing.T) {
	app := setupApp()

	t.Run("EmptyQueryRejected", func(t *testing.T) {
		resp := postJSON(t, app, "/api/ai/org-brain", fiber.Map{"query": ""})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MissingCredentialIsConfigurationError", func(t *testing.T) {
		stub := &stubCompletionProvider{answer: "irrelevant"}
		swapCompletion(t, stub)

		resp := postJSON(t, app, "/api/ai/org-brain", fiber.Map{"query": "what shipped last week?"})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Zero(t, stub.calls)
	})
}

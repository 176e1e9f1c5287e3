package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const (
	toneModel       = openai.GPT3Dot5Turbo
	toneTemperature = 0.5
	toneMaxTokens   = 100

	replyModel       = openai.GPT3Dot5Turbo
	replyTemperature = 0.7
	replyMaxTokens   = 150
	replyMaxCount    = 3

	orgQueryModel       = openai.GPT4oMini
	orgQueryTemperature = 0.7
	orgQueryMaxTokens   = 1000
)

// AnalyzeTone labels the tone and impact of a single message with a short
// assessment.
func AnalyzeTone(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(`Analyze the tone and impact of the following message. Provide a concise assessment using labels like: Aggressive, Weak, Confusing, High-Impact, Low-Impact, Neutral, Positive, Negative. If applicable, provide a brief (one sentence) explanation.

Message: "%s"

Analysis:`, content)

	answer, err := Completion.Complete(ctx, CompletionRequest{
		Model:       toneModel,
		System:      "You are an AI assistant that analyzes the tone and impact of text.",
		Prompt:      prompt,
		Temperature: toneTemperature,
		MaxTokens:   toneMaxTokens,
	})
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if len(answer) == 0 {
		answer = "Could not analyze tone."
	}

	return answer, nil
}

// SuggestReplies proposes up to three responses to a message given its thread
// context and, optionally, the aggregated workspace context.
func SuggestReplies(ctx context.Context, content string, threadContext []string, orgContext string) ([]string, error) {
	var orgSection string
	if len(orgContext) > 0 {
		orgSection = fmt.Sprintf("Organization Context: %s\n", orgContext)
	}

	prompt := fmt.Sprintf(`You are a helpful AI assistant in a workspace chat application.
Based on the following message and thread context, suggest 3 appropriate responses.
Keep responses concise, professional, and contextually relevant.
Return ONLY the 3 responses, one per line, without any numbering or additional formatting.

%sThread Context:
%s

Current Message:
%s

Suggest 3 different responses:`, orgSection, strings.Join(threadContext, "\n"), content)

	answer, err := Completion.Complete(ctx, CompletionRequest{
		Model:       replyModel,
		System:      "You are a helpful AI assistant that suggests appropriate responses in a chat application. Return only the responses, one per line, without any numbering or additional formatting.",
		Prompt:      prompt,
		Temperature: replyTemperature,
		MaxTokens:   replyMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return ParseReplySuggestions(answer), nil
}

// ParseReplySuggestions splits raw completion output into clean suggestions:
// one per line, trimmed, blanks dropped, capped at three.
func ParseReplySuggestions(raw string) []string {
	suggestions := make([]string, 0, replyMaxCount)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) == replyMaxCount {
			break
		}
	}
	return suggestions
}

// AnswerOrgQuery answers a free-text question against the aggregated
// cross-channel context. Callers are expected to have checked that the
// context is not the empty sentinel.
func AnswerOrgQuery(ctx context.Context, query, orgContext string) (string, error) {
	prompt := fmt.Sprintf(`You are an AI assistant that answers questions based on the provided context from a workspace chat application.
Analyze the following context from various chat channels and pinned documents to answer the user's query.
Each message is prefixed with the channel name in brackets, like [channel-name]. Pay attention to which channel the information comes from.
Focus on synthesizing information from the provided text.
If you cannot find relevant information in the context to fully answer the query, state that you don't have enough information in the provided context.
Keep the answer concise.

Context:
%s

User Query: "%s"

Answer:`, orgContext, query)

	answer, err := Completion.Complete(ctx, CompletionRequest{
		Model:       orgQueryModel,
		System:      "You are a helpful AI assistant providing summaries based on organizational knowledge from chat logs across channels.",
		Prompt:      prompt,
		Temperature: orgQueryTemperature,
		MaxTokens:   orgQueryMaxTokens,
	})
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if len(answer) == 0 {
		answer = "Could not generate a summary."
	}

	return answer, nil
}

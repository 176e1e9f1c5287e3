package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMentions(t *testing.T) {
	t.Run("SingleMention", func(t *testing.T) {
		assert.Equal(t, []string{"bob"}, ExtractMentions("hello @bob"))
	})

	t.Run("Deduplicated", func(t *testing.T) {
		assert.Equal(t, []string{"bob", "alice"}, ExtractMentions("@bob ping @Alice and @BOB again"))
	})

	t.Run("NoMentions", func(t *testing.T) {
		assert.Empty(t, ExtractMentions("plain text without any handles"))
	})

	t.Run("EmailIsNotAMention", func(t *testing.T) {
		assert.Empty(t, ExtractMentions("mail me at someone@example.com"))
	})
}

func TestHighlightMentions(t *testing.T) {
	known := map[string]bool{"bob": true}

	t.Run("KnownUserIsHighlighted", func(t *testing.T) {
		segments := HighlightMentions("hello @bob", known)
		assert.Len(t, segments, 2)
		assert.False(t, segments[0].IsMention)
		assert.True(t, segments[1].IsMention)
		assert.Equal(t, "bob", segments[1].Username)
	})

	t.Run("UnknownUserStaysPlain", func(t *testing.T) {
		segments := HighlightMentions("hello @bob", map[string]bool{})
		for _, segment := range segments {
			assert.False(t, segment.IsMention)
		}
	})

	t.Run("ContentRoundTrips", func(t *testing.T) {
		content := "hey @bob can you look at @carol's PR"
		var rebuilt string
		for _, segment := range HighlightMentions(content, known) {
			rebuilt += segment.Text
		}
		assert.Equal(t, content, rebuilt)
	})

	t.Run("EmptyContent", func(t *testing.T) {
		assert.Nil(t, HighlightMentions("", known))
	})
}

package services

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var mentionPattern = regexp.MustCompile(`(^|\s)@(\w+)`)

// ExtractMentions pulls the @username tokens out of message content,
// lowercased and deduplicated, in order of first appearance.
func ExtractMentions(content string) []string {
	matches := mentionPattern.FindAllStringSubmatch(content, -1)
	names := lo.Map(matches, func(m []string, _ int) string {
		return strings.ToLower(m[2])
	})
	return lo.Uniq(names)
}

// MentionSegment is one run of message content. A segment is only flagged as
// a mention when the referenced username actually exists in the workspace;
// "@nobody" stays plain text.
type MentionSegment struct {
	Text      string `json:"text"`
	IsMention bool   `json:"is_mention"`
	Username  string `json:"username,omitempty"`
}

var mentionSplitPattern = regexp.MustCompile(`(\s@\w+)`)
var mentionTokenPattern = regexp.MustCompile(`^@(\w+)$`)

// HighlightMentions splits content into segments for rendering, marking the
// spans whose username is in the known set.
func HighlightMentions(content string, known map[string]bool) []MentionSegment {
	if len(content) == 0 {
		return nil
	}

	var segments []MentionSegment
	last := 0
	for _, idx := range mentionSplitPattern.FindAllStringIndex(content, -1) {
		if idx[0] > last {
			segments = append(segments, MentionSegment{Text: content[last:idx[0]]})
		}
		segments = append(segments, classifySegment(content[idx[0]:idx[1]], known))
		last = idx[1]
	}
	if last < len(content) {
		segments = append(segments, classifySegment(content[last:], known))
	}

	return segments
}

func classifySegment(part string, known map[string]bool) MentionSegment {
	if m := mentionTokenPattern.FindStringSubmatch(strings.TrimSpace(part)); m != nil {
		username := strings.ToLower(m[1])
		if known[username] {
			return MentionSegment{Text: part, IsMention: true, Username: username}
		}
	}
	return MentionSegment{Text: part}
}

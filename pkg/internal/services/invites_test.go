package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInviteCode(t *testing.T) {
	t.Run("Length", func(t *testing.T) {
		assert.Len(t, GenerateInviteCode(8), 8)
		assert.Len(t, GenerateInviteCode(10), 10)
	})

	t.Run("AlphabetOnly", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code := GenerateInviteCode(inviteCodeLength)
			for _, ch := range code {
				assert.True(t, strings.ContainsRune(inviteCodeAlphabet, ch),
					"unexpected character %q in code %q", ch, code)
			}
		}
	})
}

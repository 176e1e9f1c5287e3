package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInviteCodeUsable(t *testing.T) {
	now := time.Now()
	base := InviteCode{
		Code:          "ABCD1234",
		ExpiresAt:     now.Add(24 * time.Hour),
		UsesRemaining: 5,
		IsActive:      true,
	}

	t.Run("ValidCode", func(t *testing.T) {
		assert.True(t, base.Usable(now))
	})

	t.Run("Inactive", func(t *testing.T) {
		invite := base
		invite.IsActive = false
		assert.False(t, invite.Usable(now))
	})

	t.Run("Expired", func(t *testing.T) {
		invite := base
		invite.ExpiresAt = now.Add(-time.Minute)
		assert.False(t, invite.Usable(now))
	})

	t.Run("NoUsesLeft", func(t *testing.T) {
		invite := base
		invite.UsesRemaining = 0
		assert.False(t, invite.Usable(now))
	})

	t.Run("ExhaustedAfterFiveUses", func(t *testing.T) {
		invite := base
		for i := 0; i < 5; i++ {
			assert.True(t, invite.Usable(now))
			invite.UsesRemaining--
		}
		assert.False(t, invite.Usable(now))
	})
}

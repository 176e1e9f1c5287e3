//go:build integration
// +build integration

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/relaychat/relay/pkg/internal/database"
	"github.com/relaychat/relay/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func setupDatabase(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("relay"),
		tcpostgres.WithUsername("relay"),
		tcpostgres.WithPassword("relay"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	source, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{TablePrefix: "relay_"},
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(source))

	prev := database.C
	database.C = source
	t.Cleanup(func() { database.C = prev })
}

func seedConversation(t *testing.T) (models.Account, models.Channel) {
	t.Helper()

	account := models.Account{Email: "alice@example.com", Username: "alice"}
	require.NoError(t, database.C.Create(&account).Error)

	channel := models.Channel{Name: "general"}
	require.NoError(t, database.C.Create(&channel).Error)

	return account, channel
}

func TestToggleReactionSequence(t *testing.T) {
	setupDatabase(t)
	account, channel := seedConversation(t)

	message, err := NewMessage("anyone around?", channel, account, nil)
	require.NoError(t, err)

	keeper, err := ToggleReaction(message, account, "🎉")
	require.NoError(t, err)
	require.True(t, keeper)

	added, err := ToggleReaction(message, account, "👍")
	require.NoError(t, err)
	assert.True(t, added)

	reactions, err := ListReactions(message.ID)
	require.NoError(t, err)
	assert.Len(t, reactions, 2)

	added, err = ToggleReaction(message, account, "👍")
	require.NoError(t, err)
	assert.False(t, added)

	reactions, err = ListReactions(message.ID)
	require.NoError(t, err)
	require.Len(t, reactions, 1)
	assert.Equal(t, "🎉", reactions[0].Emoji)

	added, err = ToggleReaction(message, account, "👍")
	require.NoError(t, err)
	assert.True(t, added)

	reactions, err = ListReactions(message.ID)
	require.NoError(t, err)
	assert.Len(t, reactions, 2)
}

func TestDeleteMessageRemovesDirectReplies(t *testing.T) {
	setupDatabase(t)
	account, channel := seedConversation(t)

	parent, err := NewMessage("thread starter", channel, account, nil)
	require.NoError(t, err)
	replyOne, err := NewMessage("first reply", channel, account, &parent.ID)
	require.NoError(t, err)
	replyTwo, err := NewMessage("second reply", channel, account, &parent.ID)
	require.NoError(t, err)

	other, err := NewMessage("unrelated topic", channel, account, nil)
	require.NoError(t, err)
	otherReply, err := NewMessage("unrelated reply", channel, account, &other.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteMessage(parent))

	for _, id := range []uint{parent.ID, replyOne.ID, replyTwo.ID} {
		_, err := GetMessage(id)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	}
	for _, id := range []uint{other.ID, otherReply.ID} {
		_, err := GetMessage(id)
		assert.NoError(t, err)
	}
}

func TestDeleteReplyLeavesThread(t *testing.T) {
	setupDatabase(t)
	account, channel := seedConversation(t)

	parent, err := NewMessage("thread starter", channel, account, nil)
	require.NoError(t, err)
	replyOne, err := NewMessage("first reply", channel, account, &parent.ID)
	require.NoError(t, err)
	replyTwo, err := NewMessage("second reply", channel, account, &parent.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteMessage(replyOne))

	_, err = GetMessage(replyOne.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	for _, id := range []uint{parent.ID, replyTwo.ID} {
		_, err := GetMessage(id)
		assert.NoError(t, err)
	}
}

func TestNewMessagePublishesToItsChannel(t *testing.T) {
	setupDatabase(t)
	account, channel := seedConversation(t)

	var events []models.UnifiedEvent
	id := AddEventListener(func(event models.UnifiedEvent) {
		if event.Type == models.EventMessageCreated {
			events = append(events, event)
		}
	})
	defer RemoveEventListener(id)

	message, err := NewMessage("hello @alice", channel, account, nil)
	require.NoError(t, err)

	assert.Equal(t, channel.ID, message.ChannelID)
	assert.Equal(t, account.ID, message.Sender.ID)

	require.Len(t, events, 1)
	assert.Equal(t, channel.ID, events[0].ChannelID)
}

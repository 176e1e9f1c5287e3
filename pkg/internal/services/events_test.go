package services

import (
	"testing"

	"github.com/relaychat/relay/pkg/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEventListeners(t *testing.T) {
	var received []models.UnifiedEvent
	id := AddEventListener(func(event models.UnifiedEvent) {
		received = append(received, event)
	})
	defer RemoveEventListener(id)

	PublishEvent(models.UnifiedEvent{Type: models.EventMessageCreated, ChannelID: 1})
	PublishEvent(models.UnifiedEvent{Type: models.EventMessagePinned, ChannelID: 2})

	assert.Len(t, received, 2)
	assert.Equal(t, models.EventMessageCreated, received[0].Type)

	RemoveEventListener(id)
	PublishEvent(models.UnifiedEvent{Type: models.EventMessageDeleted})
	assert.Len(t, received, 2)
}

func TestChannelSubscriptions(t *testing.T) {
	const client = uint64(900)

	assert.False(t, CheckSubscribed(client, 1))

	SubscribeChannel(client, 1)
	SubscribeChannel(client, 2)
	assert.True(t, CheckSubscribed(client, 1))
	assert.True(t, CheckSubscribed(client, 2))

	UnsubscribeChannel(client, 1)
	assert.False(t, CheckSubscribed(client, 1))
	assert.True(t, CheckSubscribed(client, 2))

	UnsubscribeAllWithClient(client)
	assert.False(t, CheckSubscribed(client, 2))
}

package web

import (
	"sync"
	"sync/atomic"

	"github.com/gofiber/contrib/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/relaychat/relay/pkg/internal/models"
	"github.com/relaychat/relay/pkg/internal/services"
)

var gatewayClientSerial uint64

type gatewayCommand struct {
	Action    string `json:"action"`
	ChannelID uint   `json:"channel_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

// unifiedGateway streams change notifications to an authenticated client.
// The client tells us which channels it is looking at; everything published
// for those channels (plus unscoped events) is forwarded as JSON.
func unifiedGateway(c *websocket.Conn) {
	clientId := atomic.AddUint64(&gatewayClientSerial, 1)

	var writeLock sync.Mutex
	listenerId := services.AddEventListener(func(event models.UnifiedEvent) {
		if event.ChannelID != 0 && !services.CheckSubscribed(clientId, event.ChannelID) {
			return
		}
		raw, _ := jsoniter.Marshal(event)
		writeLock.Lock()
		defer writeLock.Unlock()
		_ = c.WriteMessage(websocket.TextMessage, raw)
	})

	defer func() {
		services.RemoveEventListener(listenerId)
		services.UnsubscribeAllWithClient(clientId)
	}()

	// Event loop
	var task gatewayCommand

	for {
		messageType, packet, err := c.ReadMessage()
		if err != nil {
			break
		}
		if err := jsoniter.Unmarshal(packet, &task); err != nil {
			raw, _ := jsoniter.Marshal(gatewayCommand{
				Action:  "error",
				Message: "unable to unmarshal your command, requires json request",
			})
			writeLock.Lock()
			_ = c.WriteMessage(messageType, raw)
			writeLock.Unlock()
			continue
		}

		switch task.Action {
		case "subscribe":
			services.SubscribeChannel(clientId, task.ChannelID)
		case "unsubscribe":
			services.UnsubscribeChannel(clientId, task.ChannelID)
		default:
			raw, _ := jsoniter.Marshal(gatewayCommand{
				Action:  "error",
				Message: "command not found",
			})
			writeLock.Lock()
			_ = c.WriteMessage(messageType, raw)
			writeLock.Unlock()
		}
	}
}

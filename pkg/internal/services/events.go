package services

import (
	"sync"

	"github.com/relaychat/relay/pkg/internal/models"
)

// The event bus carries change notifications from the store layer out to
// whoever is listening (the websocket gateway, tests). Writes publish after
// they commit; consumers re-fetch rather than patching local state.

type EventListener func(event models.UnifiedEvent)

var (
	eventListeners = make(map[uint64]EventListener)
	eventSerial    uint64
	eventLock      sync.Mutex
)

func AddEventListener(listener EventListener) uint64 {
	eventLock.Lock()
	defer eventLock.Unlock()
	eventSerial++
	eventListeners[eventSerial] = listener
	return eventSerial
}

func RemoveEventListener(id uint64) {
	eventLock.Lock()
	defer eventLock.Unlock()
	delete(eventListeners, id)
}

func PublishEvent(event models.UnifiedEvent) {
	eventLock.Lock()
	listeners := make([]EventListener, 0, len(eventListeners))
	for _, listener := range eventListeners {
		listeners = append(listeners, listener)
	}
	eventLock.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}

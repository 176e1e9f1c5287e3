package services

import "sync"

// ChannelID -> ClientID -> subscribed
var subscribeInfo = make(map[uint]map[uint64]bool)
var subscribeLock sync.Mutex

// A client subscribed to a channel receives that channel's change
// notifications over its websocket connection. Events without a channel
// scope go to everyone.

func CheckSubscribed(clientId uint64, channelId uint) bool {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	if clients, ok := subscribeInfo[channelId]; ok {
		return clients[clientId]
	}
	return false
}

func SubscribeChannel(clientId uint64, channelId uint) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	if _, ok := subscribeInfo[channelId]; !ok {
		subscribeInfo[channelId] = make(map[uint64]bool)
	}
	subscribeInfo[channelId][clientId] = true
}

func UnsubscribeChannel(clientId uint64, channelId uint) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	if clients, ok := subscribeInfo[channelId]; ok {
		delete(clients, clientId)
	}
}

func UnsubscribeAllWithClient(clientId uint64) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	for _, clients := range subscribeInfo {
		delete(clients, clientId)
	}
}

func UnsubscribeAllWithChannel(channelId uint) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	delete(subscribeInfo, channelId)
}

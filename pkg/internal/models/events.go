package models

const (
	EventMessageCreated  = "messages.new"
	EventMessageDeleted  = "messages.delete"
	EventMessagePinned   = "messages.pin"
	EventReactionToggled = "reactions.toggle"
	EventChannelCreated  = "channels.new"
	EventAccountUpdated  = "accounts.update"
)

// UnifiedEvent is what goes over the wire to websocket subscribers. Clients
// treat it as a change notification and re-fetch the affected list; the
// payload carries identifiers, not list state.
type UnifiedEvent struct {
	Type      string `json:"type"`
	ChannelID uint   `json:"channel_id,omitempty"`
	Payload   any    `json:"payload,omitempty"`
}

package delivery

type EventType string

const (
	EventConnectionRequested EventType = "connection.requested"
	EventConnectionAccepted  EventType = "connection.accepted"
	EventConnectionRejected  EventType = "connection.rejected"
	EventConnectionBlocked   EventType = "connection.blocked"
	EventConnectionRemoved   EventType = "connection.removed"

	EventPresenceOnline  EventType = "presence.online"
	EventPresenceOffline EventType = "presence.offline"

	EventMessageNew    EventType = "message.new"
	EventMessageRead   EventType = "message.read"
	EventMessagePinned EventType = "message.pinned"
)

// Event is what live sessions receive. Payload must be JSON-marshalable;
// the transport decides the wire encoding.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

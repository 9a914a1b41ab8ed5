package room

// Broadcaster delivers an event to one connected participant. Implementations
// must not block: the registry calls Send while holding a room lock.
type Broadcaster interface {
	Send(participantID string, event string, data any)
}

type nopBroadcaster struct{}

func (nopBroadcaster) Send(string, string, any) {}

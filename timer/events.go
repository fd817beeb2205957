package timer

// EventType defines the type of controller event.
type EventType string

const (
	// EventChanged is sent after every state mutation.
	EventChanged EventType = "changed"
	// EventWarning is sent when the Warning cue is requested.
	EventWarning EventType = "warning"
	// EventFinished is sent once when the countdown reaches zero.
	EventFinished EventType = "finished"
)

// Event is a controller update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
}

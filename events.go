package lview

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPressStart EventType = iota // pointer pressed inside a button's view
	EventPress                       // button activated (press then release inside)
)

func (t EventType) String() string {
	switch t {
	case EventPressStart:
		return "press-start"
	case EventPress:
		return "press"
	default:
		return "unknown"
	}
}

// InteractionEvent is published by components through ProcessContext.Emit.
type InteractionEvent struct {
	Type   EventType
	ViewID string
	X, Y   float64 // layout space
	Frame  uint64
}

// EventStore is the interface for optional event forwarding, e.g. to an ECS.
// When set on an Engine, component events are passed to it.
type EventStore interface {
	EmitEvent(event InteractionEvent)
}

// EventRecorder is an EventStore that keeps every event in order.
type EventRecorder struct {
	Events []InteractionEvent
}

// EmitEvent appends event.
func (r *EventRecorder) EmitEvent(event InteractionEvent) {
	r.Events = append(r.Events, event)
}

package ecs

import (
	lview "github.com/luxgile/LView"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for lview interaction events.
// Subscribe to this in your ECS systems to receive button events.
var InteractionEventType = events.NewEventType[lview.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) lview.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event lview.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Package ecs provides ECS adapters for lview.
//
// [NewDonburiStore] bridges lview interaction events (button press start and
// press) into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEventStore(store)
//
// [IndexViews] mirrors a view tree into the world, one entity per view, so
// systems can look views up by label with [LookupID] or iterate them with a
// query on [ViewIndex].
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

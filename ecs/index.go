package ecs

import (
	"slices"

	lview "github.com/luxgile/LView"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ViewEntry is the component stored on each indexed entity.
type ViewEntry struct {
	View  *lview.View
	Order int // pre-order (paint) index across every indexed tree in the world
	Depth int // 0 for the root
}

// ViewIndex is the Donburi component type holding a ViewEntry.
var ViewIndex = donburi.NewComponentType[ViewEntry]()

var viewQuery = donburi.NewQuery(filter.Contains(ViewIndex))

// IndexViews creates one entity per view in root's subtree, in paint order,
// and returns them in that order. The tree keeps owning the views; the
// entities only reference them. Orders continue after any views already
// indexed in world, so a later tree sorts after an earlier one.
func IndexViews(world donburi.World, root *lview.View) []donburi.Entity {
	var entities []donburi.Entity
	base := viewQuery.Count(world)
	root.Walk(func(v *lview.View, depth int) bool {
		e := world.Create(ViewIndex)
		ViewIndex.SetValue(world.Entry(e), ViewEntry{
			View:  v,
			Order: base + len(entities),
			Depth: depth,
		})
		entities = append(entities, e)
		return true
	})
	return entities
}

// LookupID returns the indexed views labelled id, in paint order.
func LookupID(world donburi.World, id string) []*lview.View {
	var found []ViewEntry
	viewQuery.Each(world, func(entry *donburi.Entry) {
		ve := ViewIndex.Get(entry)
		if ve.View != nil && ve.View.ID == id {
			found = append(found, *ve)
		}
	})
	slices.SortFunc(found, func(a, b ViewEntry) int { return a.Order - b.Order })

	views := make([]*lview.View, len(found))
	for i, ve := range found {
		views[i] = ve.View
	}
	return views
}

// Package lview lays out and draws a user interface described as a tree of
// nested rectangular views, on top of [Ebitengine].
//
// # Quick start
//
// Describe the UI with a [Structure] and hand it to [Run], which creates a
// window and game loop:
//
//	root := lview.NewView("root")
//	root.Transform = lview.Relative(lview.PositionZero,
//		lview.NewSize(lview.Percent(90), lview.Percent(90)))
//	root.Color = lview.ColorBlue
//	lview.Run(lview.StructureFunc(func() *lview.View { return root }),
//		lview.DefaultRunConfig())
//
// For full control, build an [Engine] with [NewEngine]; it implements
// [ebiten.Game] and can be passed to ebiten.RunGame directly.
//
// # Geometry
//
// Every length is a [ScreenValue]: [Pixel] or [Percent] of the parent's
// matching axis. A view's [Transform] is either [Relative] (a [Position]
// from the parent origin plus a [Size]) or [MarginInset] (the parent shrunk
// by a [Margin]). Percentages compound through depth: a 50% child of a 50%
// child covers a quarter of the root on each axis.
//
// Layout space has its origin at the bottom-left of the surface with Y
// increasing upward. Geometry is never clamped; rectangles with negative
// extents are emitted as-is and skipped by the rasterizer.
//
// # Paint order
//
// [View.Emit] walks the tree in pre-order, parent before children, siblings
// in insertion order, appending one [Primitive] per view to a [Batch].
// Later primitives paint over earlier ones.
//
// # Components
//
// Views carry any number of [Component] values ([Button], [Text], or your
// own). Each logic tick the engine calls Process on every component, in the
// same order, with a [ProcessContext] holding the view's rectangle and the
// pointer state. Events raised by components reach an optional
// [EventStore]; see lview/ecs for a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package lview

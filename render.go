package lview

// Resolve walks the tree depth-first in pre-order, resolving every view's
// rectangle against its parent's and passing it to fn. The root resolves
// against parent. Siblings are visited in insertion order, and a view is
// always visited before its children.
func (v *View) Resolve(parent Rect, fn func(view *View, r Rect)) {
	r := v.Transform.Rect(parent)
	fn(v, r)
	for _, child := range v.children {
		child.Resolve(r, fn)
	}
}

// Emit appends one rectangle primitive per view to b, in paint order: a
// parent before its children, siblings in insertion order. Later primitives
// paint over earlier ones.
func (v *View) Emit(b Batch, parent Rect) {
	r := v.Transform.Rect(parent)
	b.AddRect(r, v.Color)
	for _, child := range v.children {
		child.Emit(b, r)
	}
}

// Process runs every component of every view in the tree, in paint order
// and, within a view, in attachment order. ctx supplies the pointer state,
// frame, and event store; View and Rect are filled in per view. Each
// component gets its own copy of the context.
func (v *View) Process(parent Rect, ctx ProcessContext) {
	v.Resolve(parent, func(view *View, r Rect) {
		for _, c := range view.components {
			call := ctx
			call.View = view
			call.Rect = r
			c.Process(&call)
		}
	})
}

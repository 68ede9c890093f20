package lview

import (
	"fmt"
	"strings"
)

// View is a node in the UI tree. A view exclusively owns its children and
// components; there is no reference from a child back to its parent, so the
// tree is acyclic by construction.
type View struct {
	// ID is a caller-assigned label used for later querying. It need not be
	// unique.
	ID        string
	Color     Color
	Transform Transform

	children   []*View
	components []Component

	// owned is set once the view has been added to a parent.
	owned bool
}

// NewView creates a view with the given label, white color, and a transform
// covering the whole parent.
func NewView(id string) *View {
	return &View{
		ID:        id,
		Color:     ColorWhite,
		Transform: DefaultTransform(),
	}
}

// --- Tree construction ---

// AddChild appends child to this view's children and returns the receiver.
// Children are painted in insertion order, after their parent.
// Panics if child is nil, already belongs to a parent, or contains v.
func (v *View) AddChild(child *View) *View {
	if child == nil {
		panic("lview: cannot add nil child")
	}
	if child.owned {
		panic(fmt.Sprintf("lview: view %q already has a parent", child.ID))
	}
	if child == v || child.contains(v) {
		panic("lview: adding child would create a cycle")
	}
	child.owned = true
	v.children = append(v.children, child)
	if globalDebug {
		debugCheckChildCount(v)
	}
	return v
}

// Child creates a new view, passes it to init, and appends it. It returns
// the receiver so calls can be chained:
//
//	root.Child(func(bar *View) { ... }).Child(func(body *View) { ... })
func (v *View) Child(init func(*View)) *View {
	child := NewView("")
	if init != nil {
		init(child)
	}
	return v.AddChild(child)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (v *View) Children() []*View {
	return v.children
}

// NumChildren returns the number of children.
func (v *View) NumChildren() int {
	return len(v.children)
}

// ChildAt returns the child at the given index.
func (v *View) ChildAt(index int) *View {
	return v.children[index]
}

// --- Queries ---

// Walk visits v and its descendants in pre-order, the same order in which
// they are painted. Returning false from fn skips that view's subtree.
func (v *View) Walk(fn func(view *View, depth int) bool) {
	v.walk(fn, 0)
}

func (v *View) walk(fn func(*View, int) bool, depth int) {
	if !fn(v, depth) {
		return
	}
	for _, child := range v.children {
		child.walk(fn, depth+1)
	}
}

// FindByID returns every view in the subtree labelled id, in pre-order.
func (v *View) FindByID(id string) []*View {
	var found []*View
	v.Walk(func(view *View, _ int) bool {
		if view.ID == id {
			found = append(found, view)
		}
		return true
	})
	return found
}

// contains reports whether target is v or one of its descendants.
func (v *View) contains(target *View) bool {
	if v == target {
		return true
	}
	for _, child := range v.children {
		if child.contains(target) {
			return true
		}
	}
	return false
}

// String returns an indented dump of the subtree.
func (v *View) String() string {
	var b strings.Builder
	v.Walk(func(view *View, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&b, "View{id: %q, color: %v, transform: %v, children: %d, components: %d}\n",
			view.ID, view.Color, view.Transform, len(view.children), len(view.components))
		return true
	})
	return b.String()
}

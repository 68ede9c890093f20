package lview

// Component is a behavior attached to a View. Process is called once per
// logic tick, for every component of every view, in paint order.
type Component interface {
	Process(ctx *ProcessContext)
}

// ProcessContext carries per-call state into Component.Process.
type ProcessContext struct {
	// View and Rect identify the view the component is attached to and its
	// resolved rectangle for this tick.
	View *View
	Rect Rect

	Pointer PointerState
	Frame   uint64

	store EventStore
}

// Emit forwards an interaction event to the engine's EventStore. The event's
// ViewID and Frame are filled in when empty. No-op without a store.
func (ctx *ProcessContext) Emit(event InteractionEvent) {
	if ctx.store == nil {
		return
	}
	if event.ViewID == "" && ctx.View != nil {
		event.ViewID = ctx.View.ID
	}
	if event.Frame == 0 {
		event.Frame = ctx.Frame
	}
	ctx.store.EmitEvent(event)
}

// --- Attachment ---

// Attach appends c to the view's components and returns the receiver.
// Several components of the same type may coexist.
// Panics if c is nil.
func (v *View) Attach(c Component) *View {
	if c == nil {
		panic("lview: cannot attach nil component")
	}
	v.components = append(v.components, c)
	return v
}

// AttachComponent constructs a component from its zero value, passes it to
// init (which may be nil), and attaches it to v:
//
//	lview.AttachComponent(v, func(b *lview.Button) { b.OnPress = play })
func AttachComponent[C any, P interface {
	*C
	Component
}](v *View, init func(P)) *View {
	c := P(new(C))
	if init != nil {
		init(c)
	}
	return v.Attach(c)
}

// Components returns the component list. The returned slice MUST NOT be mutated by the caller.
func (v *View) Components() []Component {
	return v.components
}

// NumComponents returns the number of attached components.
func (v *View) NumComponents() int {
	return len(v.components)
}

// ComponentsOf returns the components of v with concrete type T, in
// attachment order.
func ComponentsOf[T Component](v *View) []T {
	var out []T
	for _, c := range v.components {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// --- Built-in components ---

var (
	_ Component = (*Button)(nil)
	_ Component = (*Text)(nil)
)

// Button invokes OnPress when the pointer is pressed and then released inside
// its view's rectangle.
type Button struct {
	OnPress func()

	armed bool
}

// Pressed reports whether a press that started inside the view is held.
func (b *Button) Pressed() bool {
	return b.armed
}

// Process runs the press state machine against ctx.Pointer.
func (b *Button) Process(ctx *ProcessContext) {
	p := ctx.Pointer
	inside := ctx.Rect.Contains(p.X, p.Y)

	if p.JustPressed && inside {
		b.armed = true
		ctx.Emit(InteractionEvent{Type: EventPressStart, X: p.X, Y: p.Y})
	}
	if !p.JustReleased {
		return
	}
	wasArmed := b.armed
	b.armed = false
	if !wasArmed || !inside {
		return
	}
	if b.OnPress != nil {
		b.OnPress()
	}
	ctx.Emit(InteractionEvent{Type: EventPress, X: p.X, Y: p.Y})
}

// Text holds a static string. Text shaping is not performed; Process is a
// no-op.
type Text struct {
	Text string
}

// Process does nothing.
func (t *Text) Process(*ProcessContext) {}

package lview

import "github.com/hajimehoshi/ebiten/v2"

// PointerState is the primary pointer for one logic tick, in layout space.
type PointerState struct {
	X, Y         float64
	Down         bool
	JustPressed  bool // Down this tick, not the previous one
	JustReleased bool // Down the previous tick, not this one
}

// PointerSource samples the primary pointer in screen space (top-left
// origin, Y down).
type PointerSource interface {
	Pointer() (x, y float64, down bool)
}

// ebitenPointer reads the mouse cursor and left button from ebiten.
type ebitenPointer struct{}

func (ebitenPointer) Pointer() (float64, float64, bool) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// pointerTracker derives press/release transitions between samples.
type pointerTracker struct {
	down bool
}

// sample converts a screen-space reading to layout space for a surface of
// height surfaceH and computes transitions against the previous sample.
func (t *pointerTracker) sample(sx, sy float64, down bool, surfaceH float64) PointerState {
	ps := PointerState{
		X:            sx,
		Y:            surfaceH - sy,
		Down:         down,
		JustPressed:  down && !t.down,
		JustReleased: !down && t.down,
	}
	t.down = down
	return ps
}

// SetPointerSource replaces the pointer source. Passing nil restores the
// ebiten mouse.
func (e *Engine) SetPointerSource(src PointerSource) {
	if src == nil {
		src = ebitenPointer{}
	}
	e.source = src
}

// readPointer pops one injected event if any are queued, otherwise samples
// the pointer source.
func (e *Engine) readPointer() PointerState {
	surfaceH := e.Surface().Height
	if len(e.injectQueue) > 0 {
		evt := e.injectQueue[0]
		copy(e.injectQueue, e.injectQueue[1:])
		e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]
		return e.pointer.sample(evt.screenX, evt.screenY, evt.pressed, surfaceH)
	}
	x, y, down := e.source.Pointer()
	return e.pointer.sample(x, y, down, surfaceH)
}

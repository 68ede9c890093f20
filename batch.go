package lview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Batch receives rectangle primitives in paint order.
type Batch interface {
	AddRect(r Rect, c Color)
}

// Primitive is a single colored rectangle emitted during traversal.
type Primitive struct {
	Rect  Rect
	Color Color
}

const defaultPrimitiveCap = 256

var _ Batch = (*ShapeBatch)(nil)

// ShapeBatch records primitives and rasterizes them onto an ebiten image.
// The zero value is ready to use.
type ShapeBatch struct {
	prims []Primitive
}

// NewShapeBatch returns a batch with room for capacity primitives.
func NewShapeBatch(capacity int) *ShapeBatch {
	if capacity <= 0 {
		capacity = defaultPrimitiveCap
	}
	return &ShapeBatch{prims: make([]Primitive, 0, capacity)}
}

// AddRect appends a primitive.
func (b *ShapeBatch) AddRect(r Rect, c Color) {
	b.prims = append(b.prims, Primitive{Rect: r, Color: c})
}

// Primitives returns the recorded primitives in paint order. The returned
// slice MUST NOT be mutated by the caller and is only valid until Reset.
func (b *ShapeBatch) Primitives() []Primitive {
	return b.prims
}

// Len returns the number of recorded primitives.
func (b *ShapeBatch) Len() int {
	return len(b.prims)
}

// Reset clears the batch, keeping its storage for the next frame.
func (b *ShapeBatch) Reset() {
	b.prims = b.prims[:0]
}

// Draw rasterizes the primitives onto dst in order, so later primitives
// cover earlier ones. Empty and fully transparent rectangles are skipped.
func (b *ShapeBatch) Draw(dst *ebiten.Image) {
	surfaceH := float64(dst.Bounds().Dy())
	for i := range b.prims {
		p := &b.prims[i]
		if p.Rect.Empty() || p.Color.A <= 0 {
			continue
		}
		x, y, w, h := screenRect(p.Rect, surfaceH)
		vector.DrawFilledRect(dst, x, y, w, h, p.Color.toRGBA(), false)
	}
}

// screenRect converts a layout-space rectangle (Y-up, bottom-left origin)
// to top-left-origin screen coordinates for a surface of height surfaceH.
func screenRect(r Rect, surfaceH float64) (x, y, w, h float32) {
	return float32(r.X), float32(surfaceH - r.Y - r.Height), float32(r.Width), float32(r.Height)
}

package lview

import (
	"image/color"
	"testing"
)

func TestShapeBatchZeroValueUsable(t *testing.T) {
	var b ShapeBatch
	b.AddRect(Rect{Width: 1, Height: 1}, ColorRed)
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestNewShapeBatchCapacity(t *testing.T) {
	if got := cap(NewShapeBatch(16).prims); got != 16 {
		t.Errorf("cap = %d, want 16", got)
	}
	if got := cap(NewShapeBatch(0).prims); got != defaultPrimitiveCap {
		t.Errorf("cap = %d, want %d", got, defaultPrimitiveCap)
	}
}

func TestShapeBatchResetKeepsStorage(t *testing.T) {
	b := NewShapeBatch(4)
	for i := 0; i < 3; i++ {
		b.AddRect(Rect{X: float64(i)}, ColorBlack)
	}
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", b.Len())
	}
	if cap(b.prims) != 4 {
		t.Errorf("cap after Reset = %d, want 4", cap(b.prims))
	}
}

func TestShapeBatchPrimitivesInOrder(t *testing.T) {
	var b ShapeBatch
	b.AddRect(Rect{X: 1}, ColorRed)
	b.AddRect(Rect{X: 2}, ColorGreen)
	prims := b.Primitives()
	if prims[0].Rect.X != 1 || prims[1].Rect.X != 2 {
		t.Errorf("primitives out of order: %v", prims)
	}
	if prims[0].Color != ColorRed || prims[1].Color != ColorGreen {
		t.Errorf("colors = %v, %v", prims[0].Color, prims[1].Color)
	}
}

func TestScreenRectFlipsY(t *testing.T) {
	// A 100x20 rect at the bottom-left of a 600-high surface lands at
	// screen y = 580.
	x, y, w, h := screenRect(Rect{X: 10, Y: 0, Width: 100, Height: 20}, 600)
	if x != 10 || y != 580 || w != 100 || h != 20 {
		t.Errorf("screenRect = (%v, %v, %v, %v), want (10, 580, 100, 20)", x, y, w, h)
	}
	// A rect touching the top edge lands at screen y = 0.
	_, y, _, _ = screenRect(Rect{Y: 550, Width: 1, Height: 50}, 600)
	if y != 0 {
		t.Errorf("top-edge y = %v, want 0", y)
	}
}

func TestCountDrawable(t *testing.T) {
	prims := []Primitive{
		{Rect: Rect{Width: 10, Height: 10}, Color: ColorRed},
		{Rect: Rect{Width: 0, Height: 10}, Color: ColorRed},
		{Rect: Rect{Width: -5, Height: 10}, Color: ColorRed},
		{Rect: Rect{Width: 10, Height: 10}, Color: ColorTransparent},
	}
	if got := countDrawable(prims); got != 1 {
		t.Errorf("countDrawable = %d, want 1", got)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	want := color.RGBA{R: 127, G: 63, B: 0, A: 127}
	if got != want {
		t.Errorf("toRGBA = %v, want %v", got, want)
	}
	if got := (Color{R: 2, G: -1, B: 1, A: 1}).toRGBA(); got != (color.RGBA{255, 0, 255, 255}) {
		t.Errorf("out-of-range channels should clamp, got %v", got)
	}
}

func TestRGBA8(t *testing.T) {
	c := RGBA8(255, 0, 51, 255)
	if c.R != 1 || c.G != 0 || c.B != 0.2 || c.A != 1 {
		t.Errorf("RGBA8 = %v", c)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(10, 10) || !r.Contains(30, 30) || !r.Contains(20, 15) {
		t.Error("points inside or on the edge should be contained")
	}
	if r.Contains(9.9, 15) || r.Contains(15, 30.1) {
		t.Error("points outside should not be contained")
	}
}

func TestRectPosSize(t *testing.T) {
	r := NewRect(Vec2{1, 2}, Vec2{3, 4})
	if r.Pos() != (Vec2{1, 2}) || r.Size() != (Vec2{3, 4}) {
		t.Errorf("Pos/Size = %v/%v", r.Pos(), r.Size())
	}
}

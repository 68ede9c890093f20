package lview

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at rasterization time.
type Color struct {
	R, G, B, A float64
}

// Named colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorGreen       = Color{0, 1, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorTransparent = Color{}
)

// RGBA8 builds a Color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// toRGBA converts to a premultiplied color.RGBA for ebiten submission.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for resolved positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in layout space. Layout space has its
// origin at the bottom-left of the surface, with Y increasing upward. The
// rasterizer flips Y when drawing onto an ebiten image.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect builds a Rect from an origin and a size.
func NewRect(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Pos returns the rectangle's origin.
func (r Rect) Pos() Vec2 { return Vec2{r.X, r.Y} }

// Size returns the rectangle's extent.
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no positive area. Layout never
// clamps, so negative extents are possible and count as empty.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

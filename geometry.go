package lview

// Position is an offset from a parent rectangle's origin.
type Position struct {
	X, Y ScreenValue
}

// PositionZero places a view at its parent's origin.
var PositionZero = Position{X: Pixel(0), Y: Pixel(0)}

// NewPosition returns a Position with the given axes.
func NewPosition(x, y ScreenValue) Position {
	return Position{X: x, Y: y}
}

// Px resolves the position to absolute pixels. Each axis is resolved
// independently against the parent's extent and origin on that axis.
func (p Position) Px(parent Rect) Vec2 {
	return Vec2{
		X: p.X.Offset(parent.Width, parent.X),
		Y: p.Y.Offset(parent.Height, parent.Y),
	}
}

// Size is an extent. Width and height scale independently against the
// parent's width and height; there is no aspect coupling.
type Size struct {
	Width, Height ScreenValue
}

// NewSize returns a Size with the given axes.
func NewSize(width, height ScreenValue) Size {
	return Size{Width: width, Height: height}
}

// DefaultSize covers the whole parent on both axes.
func DefaultSize() Size {
	return Size{Width: DefaultScreenValue(), Height: DefaultScreenValue()}
}

// Px resolves the size to absolute pixels.
func (s Size) Px(parent Rect) Vec2 {
	return Vec2{
		X: s.Width.Extent(parent.Width),
		Y: s.Height.Extent(parent.Height),
	}
}

// Margin is a four-sided inset. Top and bottom resolve against the parent's
// height, left and right against its width.
type Margin struct {
	Top, Right, Bottom, Left ScreenValue
}

// NewMargin returns a Margin in top, right, bottom, left order.
func NewMargin(top, right, bottom, left ScreenValue) Margin {
	return Margin{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Uniform returns a Margin with v on every side.
func Uniform(v ScreenValue) Margin {
	return Margin{Top: v, Right: v, Bottom: v, Left: v}
}

// Rect shrinks parent inward by the resolved insets. The origin moves by
// left and bottom (layout space is Y-up). Insets larger than the parent
// produce negative extents; they are not clamped.
func (m Margin) Rect(parent Rect) Rect {
	left := m.Left.Extent(parent.Width)
	right := m.Right.Extent(parent.Width)
	top := m.Top.Extent(parent.Height)
	bottom := m.Bottom.Extent(parent.Height)
	return Rect{
		X:      parent.X + left,
		Y:      parent.Y + bottom,
		Width:  parent.Width - left - right,
		Height: parent.Height - top - bottom,
	}
}

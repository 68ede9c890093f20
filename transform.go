package lview

import "fmt"

// TransformKind selects how a Transform derives a view's rectangle.
type TransformKind uint8

const (
	TransformRelative TransformKind = iota // explicit position + size
	TransformMargin                        // parent inset by a margin
)

// Transform is the rule converting a parent rectangle into a view's own
// rectangle. A single flat struct is used for both kinds; only the fields
// belonging to Kind are read.
//
// The zero value is Relative with zero position and zero size. Views built
// with NewView start from DefaultTransform instead.
type Transform struct {
	Kind     TransformKind
	Position Position // TransformRelative
	Size     Size     // TransformRelative
	Margin   Margin   // TransformMargin
}

// Relative returns a transform placing the view at pos (relative to the
// parent origin) with the given size.
func Relative(pos Position, size Size) Transform {
	return Transform{Kind: TransformRelative, Position: pos, Size: size}
}

// MarginInset returns a transform that shrinks the parent by m.
func MarginInset(m Margin) Transform {
	return Transform{Kind: TransformMargin, Margin: m}
}

// DefaultTransform places the view at the parent's origin covering the
// whole parent.
func DefaultTransform() Transform {
	return Relative(PositionZero, DefaultSize())
}

// Rect resolves the transform against parent. It is pure: the same parent
// always yields the same rectangle.
func (t Transform) Rect(parent Rect) Rect {
	if t.Kind == TransformMargin {
		return t.Margin.Rect(parent)
	}
	return NewRect(t.Position.Px(parent), t.Size.Px(parent))
}

func (t Transform) String() string {
	if t.Kind == TransformMargin {
		m := t.Margin
		return fmt.Sprintf("Margin{top: %v, right: %v, bottom: %v, left: %v}", m.Top, m.Right, m.Bottom, m.Left)
	}
	return fmt.Sprintf("Relative{pos: (%v, %v), size: (%v, %v)}",
		t.Position.X, t.Position.Y, t.Size.Width, t.Size.Height)
}

package lview

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit specifies how a ScreenValue is interpreted.
type Unit uint8

const (
	UnitPixel   Unit = iota // absolute pixels
	UnitPercent             // percentage (0-100 scale) of a reference dimension
)

// ScreenValue is a scalar that is either an absolute pixel amount or a
// percentage of a reference dimension supplied at resolution time. Amounts
// are not bounded: negative and >100 percentages resolve like any other.
//
// The zero value is Pixel(0).
type ScreenValue struct {
	Amount float64
	Unit   Unit
}

// Pixel returns a ScreenValue of v pixels.
func Pixel(v float64) ScreenValue {
	return ScreenValue{Amount: v, Unit: UnitPixel}
}

// Percent returns a ScreenValue of p percent. The value is on a 0-100 scale
// (50 = half of the reference dimension).
func Percent(p float64) ScreenValue {
	return ScreenValue{Amount: p, Unit: UnitPercent}
}

// DefaultScreenValue returns Percent(100), the full reference dimension.
func DefaultScreenValue() ScreenValue {
	return Percent(100)
}

// Offset resolves v as a coordinate: origin plus the pixel amount, or origin
// plus the given percentage of reference.
func (v ScreenValue) Offset(reference, origin float64) float64 {
	return origin + v.Extent(reference)
}

// Extent resolves v as a length with no origin term.
// A percentage of a zero reference is always 0.
func (v ScreenValue) Extent(reference float64) float64 {
	if v.Unit != UnitPercent {
		return v.Amount
	}
	if reference == 0 {
		return 0
	}
	return reference * v.Amount / 100
}

// String renders v as "10px" or "50%".
func (v ScreenValue) String() string {
	amount := strconv.FormatFloat(v.Amount, 'g', -1, 64)
	if v.Unit == UnitPercent {
		return amount + "%"
	}
	return amount + "px"
}

// ParseScreenValue parses "10", "10px" or "50%". Surrounding whitespace is
// ignored. NaN and infinite amounts are rejected.
func ParseScreenValue(s string) (ScreenValue, error) {
	raw := strings.TrimSpace(s)
	unit := UnitPixel
	switch {
	case strings.HasSuffix(raw, "%"):
		unit = UnitPercent
		raw = strings.TrimSuffix(raw, "%")
	case strings.HasSuffix(raw, "px"):
		raw = strings.TrimSuffix(raw, "px")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return ScreenValue{}, fmt.Errorf("lview: parse screen value %q: %w", s, err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ScreenValue{}, fmt.Errorf("lview: parse screen value %q: not a finite number", s)
	}
	return ScreenValue{Amount: amount, Unit: unit}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseScreenValue.
func (v *ScreenValue) UnmarshalText(text []byte) error {
	parsed, err := ParseScreenValue(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

package lview

import (
	"encoding/json"
	"math"
	"testing"
)

func TestScreenValueConstructors(t *testing.T) {
	if v := Pixel(12); v.Unit != UnitPixel || v.Amount != 12 {
		t.Errorf("Pixel(12) = %+v", v)
	}
	if v := Percent(50); v.Unit != UnitPercent || v.Amount != 50 {
		t.Errorf("Percent(50) = %+v", v)
	}
	if v := DefaultScreenValue(); v != Percent(100) {
		t.Errorf("DefaultScreenValue() = %v, want 100%%", v)
	}
	if (ScreenValue{}) != Pixel(0) {
		t.Error("zero ScreenValue should equal Pixel(0)")
	}
}

func TestScreenValueOffsetPixelIgnoresReference(t *testing.T) {
	for _, ref := range []float64{0, 1, 640, -20} {
		if got := Pixel(15).Offset(ref, 100); got != 115 {
			t.Errorf("Pixel(15).Offset(%v, 100) = %v, want 115", ref, got)
		}
	}
}

func TestScreenValueOffsetPercent(t *testing.T) {
	if got := Percent(25).Offset(400, 10); got != 110 {
		t.Errorf("Percent(25).Offset(400, 10) = %v, want 110", got)
	}
}

func TestScreenValueExtent(t *testing.T) {
	tests := map[string]struct {
		value ScreenValue
		ref   float64
		want  float64
	}{
		"pixel":            {Pixel(30), 1000, 30},
		"negative pixel":   {Pixel(-5), 1000, -5},
		"zero percent":     {Percent(0), 640, 0},
		"full percent":     {Percent(100), 640, 640},
		"half":             {Percent(50), 300, 150},
		"overflow":         {Percent(150), 200, 300},
		"negative percent": {Percent(-10), 200, -20},
		"zero reference":   {Percent(50), 0, 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Extent(tt.ref); got != tt.want {
				t.Errorf("Extent(%v) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestScreenValueExtentZeroReferenceInfinite(t *testing.T) {
	got := Percent(math.Inf(1)).Extent(0)
	if got != 0 {
		t.Errorf("Percent(+Inf).Extent(0) = %v, want 0", got)
	}
}

func TestScreenValueString(t *testing.T) {
	if got := Pixel(10).String(); got != "10px" {
		t.Errorf("String() = %q, want %q", got, "10px")
	}
	if got := Percent(12.5).String(); got != "12.5%" {
		t.Errorf("String() = %q, want %q", got, "12.5%")
	}
}

func TestParseScreenValue(t *testing.T) {
	tests := map[string]ScreenValue{
		"10":      Pixel(10),
		"10px":    Pixel(10),
		" 50% ":   Percent(50),
		"-2.5%":   Percent(-2.5),
		"0px":     Pixel(0),
		"150 %":   Percent(150),
		"1e2px":   Pixel(100),
		"  -7 px": Pixel(-7),
	}
	for in, want := range tests {
		got, err := ParseScreenValue(in)
		if err != nil {
			t.Errorf("ParseScreenValue(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseScreenValue(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseScreenValueInvalid(t *testing.T) {
	for _, in := range []string{"", "%", "px", "abc", "10em", "NaN%", "Inf"} {
		if _, err := ParseScreenValue(in); err == nil {
			t.Errorf("ParseScreenValue(%q) should fail", in)
		}
	}
}

func TestScreenValueUnmarshalText(t *testing.T) {
	var size struct {
		W ScreenValue `json:"w"`
		H ScreenValue `json:"h"`
	}
	if err := json.Unmarshal([]byte(`{"w": "50%", "h": "20px"}`), &size); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size.W != Percent(50) || size.H != Pixel(20) {
		t.Errorf("got (%v, %v), want (50%%, 20px)", size.W, size.H)
	}
	if err := json.Unmarshal([]byte(`{"w": "wide"}`), &size); err == nil {
		t.Error("expected error for invalid value")
	}
}

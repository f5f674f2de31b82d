package sketch

import (
	"image/color"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#FF0000", Red},
		{"ff0000", Red},
		{"#f00", Red},
		{"#0F08", RGBA{G: 1, A: 136.0 / 255}},
		{"#0000FF80", RGBA{B: 1, A: 128.0 / 255}},
		{"  #000000 ", Black},
		{"red", Red},
		{"RED", Red},
		{"Orange", RGB(1, 165.0/255, 0)},
		{"lime", Green},
		{"transparent", Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#GGGGGG", "notacolor", "#FF00000"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) error = nil, want error", in)
		}
	}
}

func TestMustParseColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseColor did not panic on bad input")
		}
	}()
	MustParseColor("#XYZ")
}

func TestRGBA_Hex(t *testing.T) {
	tests := []struct {
		c    RGBA
		want string
	}{
		{Black, "#000000"},
		{Red, "#FF0000"},
		{RGB(1, 165.0/255, 0), "#FFA500"},
		{RGBA{B: 1, A: 0.5}, "#0000FF80"},
		{RGBA{R: 2, G: -1, B: math.NaN(), A: 1}, "#FF0000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestRGBA_ColorRoundTrip(t *testing.T) {
	for _, c := range Palette {
		got := FromColor(c.Color())
		if got != c {
			t.Errorf("FromColor(%v.Color()) = %v", c, got)
		}
	}

	n := RGBA{R: 0.5, A: 0.5}.Color().(color.NRGBA)
	if n.R != 128 || n.A != 128 {
		t.Errorf("Color() = %v, want rounded to 128", n)
	}
}

func TestPalette(t *testing.T) {
	if len(Palette) != 10 {
		t.Fatalf("len(Palette) = %d, want 10", len(Palette))
	}
	want := []string{
		"#000000", "#FF0000", "#00FF00", "#0000FF", "#FFFF00",
		"#FF00FF", "#00FFFF", "#FFA500", "#800080", "#FFC0CB",
	}
	for i, c := range Palette {
		if got := c.Hex(); got != want[i] {
			t.Errorf("Palette[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestRGBA_Clamped(t *testing.T) {
	got := RGBA{R: -0.5, G: 1.5, B: math.NaN(), A: 0.25}.clamped()
	want := RGBA{R: 0, G: 1, B: 0, A: 0.25}
	if got != want {
		t.Errorf("clamped() = %v, want %v", got, want)
	}
}

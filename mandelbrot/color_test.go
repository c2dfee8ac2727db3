package mandelbrot

import (
	"image/color"
	"testing"
)

func TestSchemeColorInsideSetIsBlack(t *testing.T) {
	schemes := []ColorScheme{Grayscale, Rainbow, Fire, ColorScheme(42)}
	for _, scheme := range schemes {
		got := SchemeColor(100, 100, scheme)
		if got != (color.RGBA{A: 255}) {
			t.Errorf("SchemeColor(100, 100, %d) = %v, want black", scheme, got)
		}
	}
}

func TestSchemeColorGrayscale(t *testing.T) {
	tests := []struct {
		iteration int
		want      uint8
	}{
		{0, 255},
		{50, 127},
		{99, 2},
	}
	for _, tt := range tests {
		got := SchemeColor(tt.iteration, 100, Grayscale)
		want := color.RGBA{R: tt.want, G: tt.want, B: tt.want, A: 255}
		if got != want {
			t.Errorf("SchemeColor(%d, 100, Grayscale) = %v, want %v", tt.iteration, got, want)
		}
	}
}

func TestSchemeColorRainbow(t *testing.T) {
	tests := []struct {
		iteration int
		want      color.RGBA
	}{
		// Negative sine lobes clamp to zero
		{0, color.RGBA{R: 0, G: 220, B: 0, A: 255}},
		{50, color.RGBA{R: 0, G: 127, B: 127, A: 255}},
	}
	for _, tt := range tests {
		if got := SchemeColor(tt.iteration, 100, Rainbow); got != tt.want {
			t.Errorf("SchemeColor(%d, 100, Rainbow) = %v, want %v", tt.iteration, got, tt.want)
		}
	}
}

func TestSchemeColorFire(t *testing.T) {
	tests := []struct {
		iteration int
		want      color.RGBA
	}{
		{0, color.RGBA{A: 255}},
		{25, color.RGBA{R: 255, A: 255}},
		{50, color.RGBA{R: 255, G: 255, A: 255}},
		{75, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		// Last segment ramps blue back down via min(1, 4-ramp)
		{90, color.RGBA{R: 255, G: 255, B: 102, A: 255}},
	}
	for _, tt := range tests {
		if got := SchemeColor(tt.iteration, 100, Fire); got != tt.want {
			t.Errorf("SchemeColor(%d, 100, Fire) = %v, want %v", tt.iteration, got, tt.want)
		}
	}
}

func TestSchemeColorUnknownSchemeIsBlack(t *testing.T) {
	if got := SchemeColor(10, 100, ColorScheme(9)); got != (color.RGBA{A: 255}) {
		t.Errorf("SchemeColor(10, 100, 9) = %v, want black", got)
	}
}

func TestSchemeColorAlwaysOpaque(t *testing.T) {
	for _, scheme := range []ColorScheme{Grayscale, Rainbow, Fire} {
		for iteration := 0; iteration <= 100; iteration++ {
			if got := SchemeColor(iteration, 100, scheme); got.A != 255 {
				t.Fatalf("SchemeColor(%d, 100, %s).A = %d, want 255", iteration, scheme, got.A)
			}
		}
	}
}

func TestParseColorScheme(t *testing.T) {
	tests := []struct {
		name    string
		want    ColorScheme
		wantErr bool
	}{
		{"grayscale", Grayscale, false},
		{"rainbow", Rainbow, false},
		{"fire", Fire, false},
		{"FIRE", Fire, false},
		{"sepia", Grayscale, true},
		{"", Grayscale, true},
	}
	for _, tt := range tests {
		got, err := ParseColorScheme(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorScheme(%q) error = %v, wantErr %t", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorScheme(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestColorSchemeString(t *testing.T) {
	tests := []struct {
		scheme ColorScheme
		want   string
	}{
		{Grayscale, "grayscale"},
		{Rainbow, "rainbow"},
		{Fire, "fire"},
	}
	for _, tt := range tests {
		if got := tt.scheme.String(); got != tt.want {
			t.Errorf("ColorScheme(%d).String() = %q, want %q", tt.scheme, got, tt.want)
		}
	}
}

package logo

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func solidImage(c color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func hue(hex string, t *testing.T) float64 {
	t.Helper()
	c, err := colorful.Hex(hex)
	if err != nil {
		t.Fatalf("invalid hex %q: %v", hex, err)
	}
	h, _, _ := c.Hsl()
	return h
}

func TestExtractPalette_DominantColor(t *testing.T) {
	// Saturated red image: primary must land near hue 0.
	img := solidImage(color.RGBA{R: 220, G: 30, B: 30, A: 255}, 64, 64)

	got := ExtractPalette(img)

	h := hue(got.Primary, t)
	if h > 15 && h < 345 {
		t.Errorf("Primary hue = %f, want near red", h)
	}
	if got.Secondary == got.Primary {
		t.Error("Secondary should differ from primary")
	}
}

func TestExtractPalette_TwoColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if x < 40 {
				img.SetRGBA(x, y, color.RGBA{R: 30, G: 60, B: 220, A: 255}) // blue
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 230, G: 180, B: 30, A: 255}) // yellow
			}
		}
	}

	got := ExtractPalette(img)

	ph := hue(got.Primary, t)
	if ph < 180 || ph > 280 {
		t.Errorf("Primary hue = %f, want blue range", ph)
	}
	sh := hue(got.Secondary, t)
	if sh < 30 || sh > 80 {
		t.Errorf("Secondary hue = %f, want yellow range", sh)
	}
}

func TestExtractPalette_GrayImageUsesDefault(t *testing.T) {
	img := solidImage(color.RGBA{R: 128, G: 128, B: 128, A: 255}, 32, 32)
	got := ExtractPalette(img)
	if got != DefaultPalette {
		t.Errorf("Expected default palette for gray image, got %+v", got)
	}
}

func TestExtractPalette_NilImageUsesDefault(t *testing.T) {
	if got := ExtractPalette(nil); got != DefaultPalette {
		t.Errorf("Expected default palette for nil image, got %+v", got)
	}
}

func TestPlaceholderPNG_Deterministic(t *testing.T) {
	a, colorsA, err := PlaceholderPNG("DOGE")
	if err != nil {
		t.Fatalf("PlaceholderPNG failed: %v", err)
	}
	b, colorsB, err := PlaceholderPNG("DOGE")
	if err != nil {
		t.Fatalf("PlaceholderPNG failed: %v", err)
	}

	if colorsA != colorsB {
		t.Errorf("Palette not deterministic: %+v vs %+v", colorsA, colorsB)
	}
	if string(a) != string(b) {
		t.Error("PNG bytes not deterministic")
	}

	_, colorsC, err := PlaceholderPNG("PEPE")
	if err != nil {
		t.Fatalf("PlaceholderPNG failed: %v", err)
	}
	if colorsA == colorsC {
		t.Error("Different tickers should get different palettes")
	}
}

func TestGradientPNG_InvalidColor(t *testing.T) {
	if _, err := GradientPNG(DefaultPalette); err != nil {
		t.Errorf("GradientPNG with default palette failed: %v", err)
	}
	bad := DefaultPalette
	bad.Primary = "not-a-color"
	if _, err := GradientPNG(bad); err == nil {
		t.Error("GradientPNG with invalid color should fail")
	}
}

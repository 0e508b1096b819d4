package logo

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"

	"token-promo-lab/internal/domain"
)

// Placeholder image dimensions.
const (
	placeholderSize = 512
	bannerWidth     = 1500
	bannerHeight    = 500
)

// PlaceholderPNG synthesizes a deterministic two-tone gradient logo for a
// ticker, returning the PNG bytes and the palette it was drawn with.
func PlaceholderPNG(ticker string) ([]byte, domain.BrandColors, error) {
	h := fnv.New32a()
	h.Write([]byte(ticker))
	hue := float64(h.Sum32() % 360)

	primary := colorful.Hsl(hue, 0.72, 0.45)
	secondary := colorful.Hsl(float64(int(hue+150)%360), 0.65, 0.55)

	data, err := gradientPNG(primary, secondary, placeholderSize, placeholderSize)
	if err != nil {
		return nil, domain.BrandColors{}, err
	}
	return data, domain.BrandColors{Primary: primary.Hex(), Secondary: secondary.Hex()}, nil
}

// GradientPNG renders a banner-sized gradient between the two brand colors.
// Used as the degraded banner background.
func GradientPNG(colors domain.BrandColors) ([]byte, error) {
	primary, err := colorful.Hex(colors.Primary)
	if err != nil {
		return nil, fmt.Errorf("parse primary color: %w", err)
	}
	secondary, err := colorful.Hex(colors.Secondary)
	if err != nil {
		return nil, fmt.Errorf("parse secondary color: %w", err)
	}
	return gradientPNG(primary, secondary, bannerWidth, bannerHeight)
}

func gradientPNG(from, to colorful.Color, width, height int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		t := float64(x) / float64(width-1)
		c := from.BlendLab(to, t).Clamped()
		r, g, b := c.RGB255()
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI wraps PNG bytes as a data URI usable wherever an image URL is
// expected.
func DataURI(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}

package logo

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"token-promo-lab/internal/domain"
)

// DefaultPalette is the fixed palette used when extraction cannot find
// usable colors.
var DefaultPalette = domain.BrandColors{Primary: "#6c5ce7", Secondary: "#00cec9"}

// Sampling and filtering parameters for palette extraction.
const (
	sampleGrid    = 64   // sample at most 64x64 points
	minSaturation = 0.15 // drop near-gray pixels
	minLuminance  = 0.08 // drop near-black pixels
	maxLuminance  = 0.92 // drop near-white pixels
	hueBuckets    = 12
)

// ExtractPalette derives the two dominant saturated colors of an image.
// It never fails: images with no usable colors get the default palette.
func ExtractPalette(img image.Image) domain.BrandColors {
	if img == nil {
		return DefaultPalette
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return DefaultPalette
	}

	type bucket struct {
		count int
		sumH  float64
		sumS  float64
		sumL  float64
	}
	buckets := make([]bucket, hueBuckets)

	stepX := max(1, bounds.Dx()/sampleGrid)
	stepY := max(1, bounds.Dy()/sampleGrid)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			h, s, l := c.Hsl()
			if s < minSaturation || l < minLuminance || l > maxLuminance {
				continue
			}
			idx := int(h/360.0*hueBuckets) % hueBuckets
			buckets[idx].count++
			buckets[idx].sumH += h
			buckets[idx].sumS += s
			buckets[idx].sumL += l
		}
	}

	first, second := -1, -1
	for i := range buckets {
		if buckets[i].count == 0 {
			continue
		}
		if first < 0 || buckets[i].count > buckets[first].count {
			second = first
			first = i
		} else if second < 0 || buckets[i].count > buckets[second].count {
			second = i
		}
	}

	if first < 0 {
		return DefaultPalette
	}

	primary := bucketColor(buckets[first].sumH, buckets[first].sumS, buckets[first].sumL, buckets[first].count)
	var secondary colorful.Color
	if second >= 0 {
		secondary = bucketColor(buckets[second].sumH, buckets[second].sumS, buckets[second].sumL, buckets[second].count)
	} else {
		// Single dominant hue: complement it.
		h, s, l := primary.Hsl()
		secondary = colorful.Hsl(float64(int(h+180)%360), s, l)
	}

	return domain.BrandColors{Primary: primary.Hex(), Secondary: secondary.Hex()}
}

func bucketColor(sumH, sumS, sumL float64, count int) colorful.Color {
	n := float64(count)
	return colorful.Hsl(sumH/n, sumS/n, sumL/n)
}

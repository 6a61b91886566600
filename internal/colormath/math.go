package colormath

import "math"

// Luma weights (Rec. 709).
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Lighten moves every channel toward 255 by amount (a fraction in [0,1]).
func Lighten(c RGB, amount float64) RGB {
	a := clampUnit(amount)
	return RGB{
		R: clampChannel(float64(c.R) + (255-float64(c.R))*a),
		G: clampChannel(float64(c.G) + (255-float64(c.G))*a),
		B: clampChannel(float64(c.B) + (255-float64(c.B))*a),
	}
}

// Darken moves every channel toward 0 by amount (a fraction in [0,1]).
func Darken(c RGB, amount float64) RGB {
	a := clampUnit(amount)
	return RGB{
		R: clampChannel(float64(c.R) * (1 - a)),
		G: clampChannel(float64(c.G) * (1 - a)),
		B: clampChannel(float64(c.B) * (1 - a)),
	}
}

// Mix interpolates channel-wise from a (ratio 0) to b (ratio 1).
func Mix(a, b RGB, ratio float64) RGB {
	r := clampUnit(ratio)
	return RGB{
		R: clampChannel(lerp(a.R, b.R, r)),
		G: clampChannel(lerp(a.G, b.G, r)),
		B: clampChannel(lerp(a.B, b.B, r)),
	}
}

// Luma returns the perceived brightness in [0,255].
func Luma(c RGB) float64 {
	return lumaR*float64(c.R) + lumaG*float64(c.G) + lumaB*float64(c.B)
}

// Saturation returns (max-min)/max, or 0 for black.
func Saturation(c RGB) float64 {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	if hi == 0 {
		return 0
	}
	return float64(hi-lo) / float64(hi)
}

// Distance is the Euclidean distance between a and b in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Quantize snaps every channel to the center of its step-wide bucket.
// A non-positive step returns c unchanged.
func Quantize(c RGB, step int) RGB {
	if step <= 0 {
		return c
	}
	return RGB{
		R: quantizeChannel(c.R, step),
		G: quantizeChannel(c.G, step),
		B: quantizeChannel(c.B, step),
	}
}

func quantizeChannel(v uint8, step int) uint8 {
	bucket := int(v) / step
	return clampChannel(float64(bucket*step + step/2))
}

func lerp(a, b uint8, t float64) float64 {
	return float64(a) + (float64(b)-float64(a))*t
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

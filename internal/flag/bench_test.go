package flag

import (
	"context"
	"image"
	"testing"
)

// tricolor is roughly the size of a restcountries PNG.
func tricolor() *image.NRGBA {
	return columns(213, band{107, rgb(0, 85, 164)}, band{106, rgb(255, 255, 255)}, band{107, rgb(239, 65, 53)})
}

func BenchmarkRank(b *testing.B) {
	img := tricolor()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Rank(img)
	}
}

func BenchmarkDownsample(b *testing.B) {
	img := columns(1200, band{1800, rgb(0, 85, 164)})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Downsample(img, MaxSamplePixels)
	}
}

func BenchmarkExtract_Cached(b *testing.B) {
	img := tricolor()
	e := NewExtractor(LoaderFunc(func(ctx context.Context, ref string) (image.Image, error) {
		return img, nil
	}), NewCache(8))
	ctx := context.Background()
	e.Extract(ctx, "fr.png", fallbackColor)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Extract(ctx, "fr.png", fallbackColor)
	}
}

package flag

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GlobePalette_Go/internal/colormath"
)

var fallbackColor = colormath.RGB{R: 90, G: 90, B: 200}

// columns builds a w x h image split into vertical bands of the given widths.
func columns(h int, bands ...band) *image.NRGBA {
	w := 0
	for _, b := range bands {
		w += b.size
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	x := 0
	for _, b := range bands {
		for i := 0; i < b.size; i++ {
			for y := 0; y < h; y++ {
				img.SetNRGBA(x, y, b.c)
			}
			x++
		}
	}
	return img
}

// rows is columns transposed.
func rows(w int, bands ...band) *image.NRGBA {
	h := 0
	for _, b := range bands {
		h += b.size
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	y := 0
	for _, b := range bands {
		for i := 0; i < b.size; i++ {
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, b.c)
			}
			y++
		}
	}
	return img
}

type band struct {
	size int
	c    color.NRGBA
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func TestExtract_EmptyRef(t *testing.T) {
	loader := new(MockLoader)
	e := NewExtractor(loader, NewCache(8))

	got := e.Extract(context.Background(), "", fallbackColor)
	assert.Equal(t, fallbackColor, got.Primary)
	assert.Nil(t, got.Secondary)
	assert.True(t, got.Fallback)
	assert.Equal(t, 0, e.Cache().Len())
	loader.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestExtract_Tricolor(t *testing.T) {
	img := columns(100,
		band{55, rgb(0, 85, 164)},
		band{40, rgb(255, 255, 255)},
		band{55, rgb(239, 65, 53)},
	)
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "fr.png").Return(img, nil).Once()
	e := NewExtractor(loader, NewCache(8))

	got := e.Extract(context.Background(), "fr.png", fallbackColor)
	assert.False(t, got.Fallback)
	assert.Equal(t, colormath.Quantize(colormath.RGB{R: 0, G: 85, B: 164}, BucketStep), got.Primary)
	require.NotNil(t, got.Secondary)
	assert.Equal(t, colormath.Quantize(colormath.RGB{R: 239, G: 65, B: 53}, BucketStep), *got.Secondary)

	again := e.Extract(context.Background(), "fr.png", colormath.RGB{})
	assert.Equal(t, got, again)
	loader.AssertNumberOfCalls(t, "Load", 1)
	assert.Equal(t, int64(1), e.Stats().CacheHits)
}

func TestExtract_LoadFailureIsCached(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "broken.png").Return(nil, errors.New("404")).Once()
	e := NewExtractor(loader, NewCache(8))
	ctx := context.Background()

	got := e.Extract(ctx, "broken.png", fallbackColor)
	assert.Equal(t, Result{Primary: fallbackColor, Fallback: true}, got)

	got = e.Extract(ctx, "broken.png", fallbackColor)
	assert.Equal(t, Result{Primary: fallbackColor, Fallback: true}, got)

	other := colormath.RGB{R: 1, G: 2, B: 3}
	got = e.Extract(ctx, "broken.png", other)
	assert.Equal(t, other, got.Primary, "cached failures honour the caller's fallback")

	loader.AssertNumberOfCalls(t, "Load", 1)
	assert.Equal(t, int64(3), e.Stats().Fallbacks)
}

func TestExtract_SecondaryAbsentWhenColorsClose(t *testing.T) {
	img := columns(20,
		band{12, rgb(200, 30, 30)},
		band{8, rgb(200, 60, 30)},
	)
	e := NewExtractor(LoaderFunc(func(ctx context.Context, ref string) (image.Image, error) {
		return img, nil
	}), nil)

	got := e.Extract(context.Background(), "close.png", fallbackColor)
	assert.Equal(t, colormath.Quantize(colormath.RGB{R: 200, G: 30, B: 30}, BucketStep), got.Primary)
	assert.Nil(t, got.Secondary)
}

func TestExtract_FullyFilteredImage(t *testing.T) {
	transparentRed := color.NRGBA{R: 255, A: 100}
	img := columns(10,
		band{5, rgb(255, 255, 255)},
		band{5, rgb(0, 0, 0)},
		band{5, rgb(128, 128, 128)},
		band{5, transparentRed},
	)
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "mono.png").Return(img, nil).Once()
	e := NewExtractor(loader, nil)

	got := e.Extract(context.Background(), "mono.png", fallbackColor)
	assert.Equal(t, Result{Primary: fallbackColor, Fallback: true}, got)

	e.Extract(context.Background(), "mono.png", fallbackColor)
	loader.AssertNumberOfCalls(t, "Load", 1)
}

func TestExtract_SinglePixelImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, rgb(200, 20, 20))
	e := NewExtractor(LoaderFunc(func(ctx context.Context, ref string) (image.Image, error) {
		return img, nil
	}), nil)

	got := e.Extract(context.Background(), "dot.png", fallbackColor)
	assert.Equal(t, Result{Primary: fallbackColor, Fallback: true}, got)
}

func TestExtract_RecoversPanic(t *testing.T) {
	e := NewExtractor(LoaderFunc(func(ctx context.Context, ref string) (image.Image, error) {
		panic("corrupt chunk")
	}), nil)

	var got Result
	assert.NotPanics(t, func() {
		got = e.Extract(context.Background(), "panic.png", fallbackColor)
	})
	assert.Equal(t, fallbackColor, got.Primary)
	assert.Equal(t, int64(1), e.Stats().Panics)
}

func TestExtract_CancellationNotCached(t *testing.T) {
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "slow.png").Return(nil, context.DeadlineExceeded)
	e := NewExtractor(loader, nil)

	got := e.Extract(context.Background(), "slow.png", fallbackColor)
	assert.Equal(t, fallbackColor, got.Primary)
	assert.True(t, got.Fallback)
	assert.Equal(t, 0, e.Cache().Len())

	e.Extract(context.Background(), "slow.png", fallbackColor)
	loader.AssertNumberOfCalls(t, "Load", 2)
}

func TestExtract_DoneContextSkipsLoad(t *testing.T) {
	loader := new(MockLoader)
	e := NewExtractor(loader, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := e.Extract(ctx, "fr.png", fallbackColor)
	assert.Equal(t, fallbackColor, got.Primary)
	assert.Equal(t, 0, e.Cache().Len())
	loader.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestExtract_CancelledCallerDoesNotFailJoinedCallers(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var loads atomic.Int32
	loader := LoaderFunc(func(ctx context.Context, ref string) (image.Image, error) {
		if loads.Add(1) == 1 {
			close(started)
		}
		<-release
		return columns(10, band{10, rgb(206, 17, 38)}), ctx.Err()
	})
	e := NewExtractor(loader, nil)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan Result, 1)
	go func() { first <- e.Extract(ctx, "fr.png", fallbackColor) }()
	<-started

	second := make(chan Result, 1)
	go func() { second <- e.Extract(context.Background(), "fr.png", fallbackColor) }()

	cancel()
	got := <-first
	assert.True(t, got.Fallback, "the cancelled caller gets its fallback")

	close(release)
	got = <-second
	assert.False(t, got.Fallback)
	assert.Equal(t, colormath.Quantize(colormath.New(206, 17, 38), BucketStep), got.Primary)
	assert.Equal(t, 1, e.Cache().Len())
	assert.Equal(t, int32(1), loads.Load())
}

func TestExtract_NilLoader(t *testing.T) {
	got := NewExtractor(nil, nil).Extract(context.Background(), "x.png", fallbackColor)
	assert.Equal(t, fallbackColor, got.Primary)
}

func TestRank_OrderAndLimit(t *testing.T) {
	palette := []color.NRGBA{
		rgb(224, 32, 32),
		rgb(32, 160, 32),
		rgb(32, 32, 224),
		rgb(224, 224, 32),
		rgb(224, 32, 224),
		rgb(32, 224, 224),
		rgb(224, 128, 32),
		rgb(128, 32, 224),
	}
	var bands []band
	for i, c := range palette {
		bands = append(bands, band{size: len(palette) - i, c: c})
	}
	img := rows(10, bands...)

	ranking := Rank(img)
	require.Len(t, ranking, MaxBuckets)
	for i := 1; i < len(ranking); i++ {
		assert.Greater(t, ranking[i-1].Count, ranking[i].Count)
	}
	for i, b := range ranking {
		want := colormath.Quantize(colormath.RGB{R: palette[i].R, G: palette[i].G, B: palette[i].B}, BucketStep)
		assert.Equal(t, want, b.Color)
		assert.Equal(t, (len(palette)-i)*10, b.Count)
	}
}

func TestRank_TiesKeepEncounterOrder(t *testing.T) {
	red, green := rgb(220, 30, 30), rgb(30, 200, 30)

	ranking := Rank(columns(2, band{5, red}, band{5, green}))
	require.Len(t, ranking, 2)
	assert.Equal(t, ranking[0].Count, ranking[1].Count)
	assert.Equal(t, colormath.Quantize(colormath.RGB{R: 220, G: 30, B: 30}, BucketStep), ranking[0].Color)

	ranking = Rank(columns(2, band{5, green}, band{5, red}))
	assert.Equal(t, colormath.Quantize(colormath.RGB{R: 30, G: 200, B: 30}, BucketStep), ranking[0].Color)
}

func TestPick(t *testing.T) {
	_, _, ok := Pick(nil)
	assert.False(t, ok)

	primary := colormath.RGB{R: 208, G: 16, B: 16}
	near := colormath.RGB{R: 208, G: 48, B: 16}
	far := colormath.RGB{R: 16, G: 16, B: 208}

	p, s, ok := Pick(Ranking{{Color: primary, Count: 9}, {Color: near, Count: 5}, {Color: far, Count: 2}})
	require.True(t, ok)
	assert.Equal(t, primary, p)
	require.NotNil(t, s)
	assert.Equal(t, far, *s, "secondary skips buckets within distance 40")

	_, s, _ = Pick(Ranking{{Color: primary, Count: 9}, {Color: near, Count: 5}})
	assert.Nil(t, s)
}

func TestDownsample(t *testing.T) {
	big := image.NewRGBA(image.Rect(0, 0, 1000, 1000))
	small := Downsample(big, MaxSamplePixels)
	assert.Equal(t, 141, small.Bounds().Dx())
	assert.Equal(t, 141, small.Bounds().Dy())
	assert.LessOrEqual(t, small.Bounds().Dx()*small.Bounds().Dy(), MaxSamplePixels)

	thin := Downsample(image.NewRGBA(image.Rect(0, 0, 1, 90000)), MaxSamplePixels)
	assert.Equal(t, 1, thin.Bounds().Dx(), "each side keeps at least one pixel")

	within := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	assert.Same(t, within, Downsample(within, MaxSamplePixels))

	empty := Downsample(image.NewNRGBA(image.Rect(0, 0, 0, 0)), MaxSamplePixels)
	assert.Equal(t, 0, empty.Bounds().Dx())
}

func TestDownsample_KeepsDominantColor(t *testing.T) {
	img := columns(300,
		band{400, rgb(0, 122, 61)},
		band{200, rgb(206, 17, 38)},
	)
	ranking := Rank(img)
	require.NotEmpty(t, ranking)
	assert.Equal(t, colormath.Quantize(colormath.RGB{R: 0, G: 122, B: 61}, BucketStep), ranking[0].Color)
}

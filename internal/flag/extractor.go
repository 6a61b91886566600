package flag

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/GlobePalette_Go/internal/colormath"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// Result is the primary/secondary color pair extracted from one flag.
// Secondary is nil when no ranked color is far enough from Primary.
type Result struct {
	Primary   colormath.RGB  `json:"primary"`
	Secondary *colormath.RGB `json:"secondary,omitempty"`
	// Fallback is set when Primary is the caller's fallback color.
	Fallback bool `json:"fallback"`
}

// Bucket is one quantized color and how many sampled pixels fell into it.
type Bucket struct {
	Color colormath.RGB `json:"color"`
	Count int           `json:"count"`
}

// Ranking is at most MaxBuckets buckets, most frequent first. Buckets with
// equal counts keep the order in which they were first sampled.
type Ranking []Bucket

// Stats counts extractor outcomes.
type Stats struct {
	Extractions int64 `json:"extractions"`
	Fallbacks   int64 `json:"fallbacks"`
	Panics      int64 `json:"panics"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	CacheSize   int   `json:"cache_size"`
}

// Extractor samples flag images into palette results. Extract never fails:
// every error path degrades to the caller's fallback color.
type Extractor struct {
	loader      Loader
	cache       *Cache
	sf          singleflight.Group
	loadTimeout time.Duration

	extractions atomic.Int64
	fallbacks   atomic.Int64
	panics      atomic.Int64
}

// NewExtractor creates an extractor. A nil cache gets a default-sized one.
func NewExtractor(loader Loader, cache *Cache) *Extractor {
	if cache == nil {
		cache = NewCache(DefaultCacheSize)
	}
	return &Extractor{loader: loader, cache: cache, loadTimeout: DefaultLoadTimeout}
}

// Cache returns the backing palette cache.
func (e *Extractor) Cache() *Cache {
	return e.cache
}

// Extract returns the palette for ref. An empty ref returns the fallback
// without touching the cache. Failed and colorless images are cached too, so
// a broken ref is loaded at most once.
func (e *Extractor) Extract(ctx context.Context, ref string, fallback colormath.RGB) Result {
	if ref == "" {
		e.fallbacks.Add(1)
		return Result{Primary: fallback, Fallback: true}
	}

	if cached, ok := e.cache.get(ref); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "ref", ref)
		return e.resolve(cached, fallback)
	}

	if err := ctx.Err(); err != nil {
		e.fallbacks.Add(1)
		return Result{Primary: fallback, Fallback: true}
	}

	// The shared load outlives any single caller and is bounded by its own
	// timeout.
	shared := context.WithoutCancel(ctx)
	ch := e.sf.DoChan(ref, func() (interface{}, error) {
		if cached, ok := e.cache.peek(ref); ok {
			return cached, nil
		}
		loadCtx, cancel := context.WithTimeout(shared, e.loadTimeout)
		defer cancel()

		en, err := e.extract(loadCtx, ref)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgExtractFallback, "ref", ref, "error", err)
			if loadCtx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logger.FromContext(ctx).Debug(LogMsgSkipCacheOnAbort, "ref", ref)
				return en, nil
			}
		}
		e.cache.put(ref, en)
		return en, nil
	})

	select {
	case <-ctx.Done():
		e.fallbacks.Add(1)
		return Result{Primary: fallback, Fallback: true}
	case res := <-ch:
		return e.resolve(res.Val.(entry), fallback)
	}
}

// Stats reports extraction and cache counters.
func (e *Extractor) Stats() Stats {
	return Stats{
		Extractions: e.extractions.Load(),
		Fallbacks:   e.fallbacks.Load(),
		Panics:      e.panics.Load(),
		CacheHits:   e.cache.Hits(),
		CacheMisses: e.cache.Misses(),
		CacheSize:   e.cache.Len(),
	}
}

func (e *Extractor) resolve(en entry, fallback colormath.RGB) Result {
	if en.NoColors {
		e.fallbacks.Add(1)
		return Result{Primary: fallback, Fallback: true}
	}
	return Result{Primary: en.Primary, Secondary: en.Secondary}
}

// extract loads and ranks one image. A decode panic is reported as an error.
func (e *Extractor) extract(ctx context.Context, ref string) (en entry, err error) {
	e.extractions.Add(1)
	defer func() {
		if r := recover(); r != nil {
			e.panics.Add(1)
			logger.FromContext(ctx).Warn(LogMsgExtractPanic, "ref", ref, "panic", r)
			en, err = entry{NoColors: true}, fmt.Errorf("panic: %v", r)
		}
	}()

	if e.loader == nil {
		return entry{NoColors: true}, errors.New("no loader configured")
	}
	img, err := e.loader.Load(ctx, ref)
	if err != nil {
		return entry{NoColors: true}, err
	}
	if img == nil {
		return entry{NoColors: true}, errors.New("loader returned no image")
	}

	ranking := Rank(img)
	primary, secondary, ok := Pick(ranking)
	if !ok {
		return entry{NoColors: true}, nil
	}

	logger.FromContext(ctx).Debug(LogMsgExtracted,
		"ref", ref,
		"primary", primary.Hex(),
		"buckets", len(ranking))
	return entry{Primary: primary, Secondary: secondary}, nil
}

// Pick chooses the primary and secondary colors from a ranking. ok is false
// when the ranking is empty.
func Pick(r Ranking) (primary colormath.RGB, secondary *colormath.RGB, ok bool) {
	if len(r) == 0 {
		return colormath.RGB{}, nil, false
	}
	primary = r[0].Color
	for _, b := range r[1:] {
		if colormath.Distance(primary, b.Color) > MinSecondaryDistance {
			c := b.Color
			return primary, &c, true
		}
	}
	return primary, nil, true
}

// Rank downsamples img and returns its dominant quantized colors. Pixels that
// are mostly transparent, near grey, near black or near white are ignored.
// Single-pixel images are placeholders and rank empty.
func Rank(img image.Image) Ranking {
	if img == nil || img.Bounds().Dx()*img.Bounds().Dy() <= 1 {
		return nil
	}
	sample := Downsample(img, MaxSamplePixels)
	b := sample.Bounds()

	counts := make(map[colormath.RGB]int)
	var order []colormath.RGB
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := sample.NRGBAAt(x, y)
			if px.A < MinAlpha {
				continue
			}
			c := colormath.RGB{R: px.R, G: px.G, B: px.B}
			if colormath.Saturation(c) < MinSaturation {
				continue
			}
			if l := colormath.Luma(c); l < MinLuma || l > MaxLuma {
				continue
			}
			q := colormath.Quantize(c, BucketStep)
			if _, seen := counts[q]; !seen {
				order = append(order, q)
			}
			counts[q]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > MaxBuckets {
		order = order[:MaxBuckets]
	}

	ranking := make(Ranking, len(order))
	for i, c := range order {
		ranking[i] = Bucket{Color: c, Count: counts[c]}
	}
	return ranking
}

// Downsample returns img as NRGBA scaled uniformly so that it holds at most
// maxPixels pixels. Each side is at least one pixel.
func Downsample(img image.Image, maxPixels int) *image.NRGBA {
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	if area := w * h; maxPixels > 0 && area > maxPixels {
		scale := math.Sqrt(float64(maxPixels) / float64(area))
		w = max(1, int(math.Floor(float64(w)*scale)))
		h = max(1, int(math.Floor(float64(h)*scale)))
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
		return dst
	}

	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	return dst
}

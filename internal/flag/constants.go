package flag

import "time"

// Sampling and ranking parameters
const (
	MaxSamplePixels      = 20000
	MinAlpha             = 200
	MinSaturation        = 0.15
	MinLuma              = 20.0
	MaxLuma              = 235.0
	BucketStep           = 32
	MaxBuckets           = 6
	MinSecondaryDistance = 40.0
)

// Loader limits
const (
	DefaultLoadTimeout = 10 * time.Second
	MaxImageBytes      = 8 << 20
	MaxDecodeDimension = 4096
	DefaultCacheSize   = 512
)

// Log messages
const (
	LogMsgExtractFallback  = "Flag extraction fell back to default color"
	LogMsgExtractPanic     = "Recovered panic during flag extraction"
	LogMsgExtracted        = "Flag palette extracted"
	LogMsgCacheHit         = "Flag palette cache hit"
	LogMsgSkipCacheOnAbort = "Not caching flag failure caused by cancellation"
)

// Error messages
const (
	ErrMsgUnsupportedFormat = "unsupported image format"
	ErrMsgUnexpectedStatus  = "unexpected status %d loading %s"
	ErrMsgEmptyRef          = "empty image reference"
	ErrMsgImageTooLarge     = "image dimensions %dx%d exceed decode limit"
)

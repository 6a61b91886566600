package flag

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for images that cannot be decoded
// headless, such as SVG.
var ErrUnsupportedFormat = errors.New(ErrMsgUnsupportedFormat)

// Loader turns an image reference into decoded pixels.
type Loader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, ref string) (image.Image, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, ref string) (image.Image, error) {
	return f(ctx, ref)
}

// HTTPLoader fetches images over HTTP(S) and decodes PNG, JPEG, GIF and WebP.
type HTTPLoader struct {
	client *http.Client
}

// NewHTTPLoader returns an HTTPLoader. A nil client gets DefaultLoadTimeout.
func NewHTTPLoader(client *http.Client) *HTTPLoader {
	if client == nil {
		client = &http.Client{Timeout: DefaultLoadTimeout}
	}
	return &HTTPLoader{client: client}
}

// Load downloads and decodes ref.
func (l *HTTPLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	if isSVG(ref) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ref)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "image/png,image/webp,image/jpeg,image/gif;q=0.8")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(ErrMsgUnexpectedStatus, resp.StatusCode, ref)
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "svg") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ref)
	}

	return decode(io.LimitReader(resp.Body, MaxImageBytes))
}

// FileLoader reads images from the local filesystem. Relative refs resolve
// against Root.
type FileLoader struct {
	Root string
}

// Load opens and decodes ref.
func (l FileLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if isSVG(ref) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ref)
	}

	path := strings.TrimPrefix(ref, "file://")
	if !filepath.IsAbs(path) && l.Root != "" {
		path = filepath.Join(l.Root, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decode(io.LimitReader(f, MaxImageBytes))
}

// SchemeLoader dispatches http(s) refs to HTTP and everything else to File.
type SchemeLoader struct {
	HTTP Loader
	File Loader
}

// NewDefaultLoader returns a SchemeLoader over an HTTPLoader and a FileLoader.
func NewDefaultLoader(client *http.Client, root string) *SchemeLoader {
	return &SchemeLoader{HTTP: NewHTTPLoader(client), File: FileLoader{Root: root}}
}

// Load routes ref by scheme.
func (l *SchemeLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	if ref == "" {
		return nil, errors.New(ErrMsgEmptyRef)
	}
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return l.HTTP.Load(ctx, ref)
	}
	return l.File.Load(ctx, ref)
}

// decode checks the header dimensions before decoding so a small, highly
// compressed file cannot expand into an oversized pixel buffer.
func decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, wrapFormat(err)
	}
	if cfg.Width > MaxDecodeDimension || cfg.Height > MaxDecodeDimension {
		return nil, fmt.Errorf("%w: "+ErrMsgImageTooLarge, ErrUnsupportedFormat, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, wrapFormat(err)
	}
	return img, nil
}

func wrapFormat(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return err
}

func isSVG(ref string) bool {
	p := ref
	if u, err := url.Parse(ref); err == nil && u.Path != "" {
		p = u.Path
	}
	return strings.EqualFold(filepath.Ext(p), ".svg")
}

package renderer

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
)

// LoadResult is the outcome of one background load.
type LoadResult struct {
	Source string
	Image  image.Image
	Err    error
}

// ImageLoader fetches background images off the frame goroutine.
// Results are delivered on a buffered channel and picked up with Poll.
type ImageLoader struct {
	client  *http.Client
	timeout time.Duration
	results chan LoadResult
}

// NewImageLoader creates a loader. timeout bounds each load (0 = none).
func NewImageLoader(timeout time.Duration) *ImageLoader {
	return &ImageLoader{
		client:  &http.Client{},
		timeout: timeout,
		results: make(chan LoadResult, 4),
	}
}

// Load starts loading source (file path or http(s) URL) in the background.
func (l *ImageLoader) Load(ctx context.Context, source string) {
	go func() {
		loadCtx := ctx
		if l.timeout > 0 {
			var cancel context.CancelFunc
			loadCtx, cancel = context.WithTimeout(ctx, l.timeout)
			defer cancel()
		}

		img, err := l.load(loadCtx, source)
		res := LoadResult{Source: source, Image: img, Err: err}

		select {
		case l.results <- res:
		case <-ctx.Done():
		}
	}()
}

// Poll returns a finished load if one is waiting. It never blocks.
func (l *ImageLoader) Poll() (LoadResult, bool) {
	select {
	case res := <-l.results:
		return res, true
	default:
		return LoadResult{}, false
	}
}

// Results exposes the result channel for callers that want to wait.
func (l *ImageLoader) Results() <-chan LoadResult {
	return l.results
}

func (l *ImageLoader) load(ctx context.Context, source string) (image.Image, error) {
	if source == "" {
		return nil, fmt.Errorf("no background source")
	}

	var rc io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching background: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetching background: status %s", resp.Status)
		}
		rc = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("opening background: %w", err)
		}
		rc = f
	}
	defer rc.Close()

	img, format, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decoding background: %w", err)
	}

	b := img.Bounds()
	slog.Debug("background decoded", "source", source, "format", format, "width", b.Dx(), "height", b.Dy())
	return img, nil
}

// Package art fetches card images and renders them as ANSI terminal art.
package art

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"
)

// Display bounding box for fetched card images. Images are downscaled to fit
// while preserving aspect ratio; smaller images are left alone.
const (
	MaxImageWidth  = 320
	MaxImageHeight = 450
)

// DefaultTimeout bounds a single image download.
const DefaultTimeout = 15 * time.Second

const userAgent = "scryglass/1.0"

// Fetcher downloads and decodes card images.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher with a bounded download timeout. A zero
// timeout selects the default.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads an image, decodes it, and scales it down to fit the
// display bounding box.
func (f *Fetcher) Fetch(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error building image request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching image: %w", err)
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"url":      imageURL,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("image fetch")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch failed: HTTP %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	return resize.Thumbnail(MaxImageWidth, MaxImageHeight, img, resize.Lanczos3), nil
}

package art

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage returns a solid-color RGBA image of the given size.
func testImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToANSIShape(t *testing.T) {
	// 20x28 source at 10 columns: 20px wide, 14px tall, 7 rows of cells
	img := testImage(20, 28, color.RGBA{R: 200, G: 30, B: 30, A: 255})

	rendered := ToANSI(img, 10)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")

	assert.Len(t, lines, 7)
	for _, line := range lines {
		assert.Equal(t, 10, VisibleWidth(line))
		assert.Contains(t, line, "\x1b[38;2;")
		assert.Contains(t, line, "▀")
	}
}

func TestToANSIMinimumSize(t *testing.T) {
	img := testImage(1, 1, color.RGBA{A: 255})

	rendered := ToANSI(img, 0)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")

	require.NotEmpty(t, lines)
	assert.Equal(t, 2, VisibleWidth(lines[0]))
}

func TestStripANSI(t *testing.T) {
	colored := "\x1b[38;2;1;2;3m\x1b[48;2;4;5;6m▀\x1b[0m"
	assert.Equal(t, "▀", StripANSI(colored))
	assert.Equal(t, 1, VisibleWidth(colored))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestFetchKeepsSmallImages(t *testing.T) {
	src := testImage(64, 90, color.RGBA{B: 180, A: 255})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes(t, src))
	}))
	defer server.Close()

	fetcher := NewFetcher(time.Second)
	img, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestFetchDownscalesToBoundingBox(t *testing.T) {
	src := testImage(640, 900, color.RGBA{G: 120, A: 255})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes(t, src))
	}))
	defer server.Close()

	fetcher := NewFetcher(time.Second)
	img, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.LessOrEqual(t, img.Bounds().Dx(), MaxImageWidth)
	assert.LessOrEqual(t, img.Bounds().Dy(), MaxImageHeight)
	// 640x900 shares the bounding box aspect ratio, so it lands exactly on it
	assert.Equal(t, MaxImageWidth, img.Bounds().Dx())
	assert.Equal(t, MaxImageHeight, img.Bounds().Dy())
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(time.Second)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer server.Close()

	fetcher := NewFetcher(time.Second)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding image")
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	const url = "https://img.example/card.jpg"

	_, ok := Cached(dir, url)
	assert.False(t, ok)

	require.NoError(t, Store(dir, url, "rendered art"))

	got, ok := Cached(dir, url)
	require.True(t, ok)
	assert.Equal(t, "rendered art", got)

	// Different URLs get different cache entries
	_, ok = Cached(dir, "https://img.example/other.jpg")
	assert.False(t, ok)
}

func TestStoreCreatesCacheDir(t *testing.T) {
	dir := t.TempDir() + "/nested/ansi_cache"
	require.NoError(t, Store(dir, "u", "art"))

	got, ok := Cached(dir, "u")
	require.True(t, ok)
	assert.Equal(t, "art", got)
}

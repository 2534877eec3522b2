package art

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
)

// Cached looks up previously rendered ANSI art for an image URL.
func Cached(cacheDir, imageURL string) (string, bool) {
	data, err := os.ReadFile(cachePath(cacheDir, imageURL))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Store saves rendered ANSI art for an image URL, creating the cache
// directory if needed.
func Store(cacheDir, imageURL, rendered string) error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create ANSI cache directory: %v", err)
	}
	if err := os.WriteFile(cachePath(cacheDir, imageURL), []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write ANSI art to cache: %v", err)
	}
	return nil
}

// cachePath derives the cache filename from the image URL.
func cachePath(cacheDir, imageURL string) string {
	return filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(imageURL))))
}

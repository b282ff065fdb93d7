package imaging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ironsheep/multiband-mcp/internal/colorspace"
	"github.com/ironsheep/multiband-mcp/internal/raster"
)

// ErrUnknownSpace is returned when a color space name is not registered.
var ErrUnknownSpace = errors.New("imaging: unknown color space")

// ImageCache provides thread-safe caching of loaded rasters to avoid redundant
// disk reads and repeated color-space conversions.
//
// Loaded images are keyed by the exact path string. Converted images are kept
// per source path and dropped together with it by Evict.
//
// ImageCache is safe for concurrent use by multiple goroutines. The cached
// rasters themselves are shared; callers must not modify them.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	hsv, err := cache.Convert("/path/to/image.png", "hsv", raster.Float)
type ImageCache struct {
	mu        sync.RWMutex
	codec     raster.Codec
	images    map[string]*raster.Image
	converted map[string]map[string]*raster.Image
}

// NewImageCache creates an empty cache that decodes with raster.DefaultCodec.
func NewImageCache() *ImageCache {
	return NewImageCacheWith(raster.DefaultCodec)
}

// NewImageCacheWith creates an empty cache that decodes with codec.
func NewImageCacheWith(codec raster.Codec) *ImageCache {
	return &ImageCache{
		codec:     codec,
		images:    make(map[string]*raster.Image),
		converted: make(map[string]map[string]*raster.Image),
	}
}

// Load retrieves a raster from the cache or decodes it from disk.
//
// Decoding failures are returned as *raster.DecodeError carrying the path.
func (c *ImageCache) Load(path string) (*raster.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := raster.LoadWith(c.codec, path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if cached, ok := c.images[path]; ok {
		img = cached
	} else {
		c.images[path] = img
	}
	c.mu.Unlock()

	return img, nil
}

// Convert returns the image at path converted to the named color space and
// encoding. The source is loaded through the cache first.
func (c *ImageCache) Convert(path, space string, enc raster.Encoding) (*raster.Image, error) {
	conv, ok := colorspace.Lookup(space)
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownSpace, space, strings.Join(colorspace.Names(), ", "))
	}
	key := colorspace.Name(conv) + "/" + enc.String()

	c.mu.RLock()
	if img, ok := c.converted[path][key]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	src, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	img, err := raster.Convert(src, conv, enc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s to %s: %w", path, key, err)
	}

	c.mu.Lock()
	byKey, ok := c.converted[path]
	if !ok {
		byKey = make(map[string]*raster.Image)
		c.converted[path] = byKey
	}
	if cached, ok := byKey[key]; ok {
		img = cached
	} else {
		byKey[key] = img
	}
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images and conversions from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*raster.Image)
	c.converted = make(map[string]map[string]*raster.Image)
	c.mu.Unlock()
}

// Evict removes the image at path and every conversion derived from it.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	delete(c.converted, path)
	c.mu.Unlock()
}

// ImageInfo describes a raster: its geometry, sample layout, color space and
// per-band extrema.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Bands is the number of samples per pixel.
	Bands int `json:"bands"`

	// Encoding is the sample storage type: "byte", "int" or "float".
	Encoding string `json:"encoding"`

	// Space is the color space name, e.g. "rgba" or "hsv".
	Space string `json:"space"`

	// Kind is "multi" or "gray".
	Kind string `json:"kind"`

	// Extrema holds the observed minimum and maximum of each band.
	Extrema []raster.Extent `json:"extrema"`

	// Path is the file the image was loaded from, if any.
	Path string `json:"path,omitempty"`

	// Format is detected from the file extension: "png", "jpeg", "gif",
	// "tiff", "bmp" or "unknown". Empty for in-memory images.
	Format string `json:"format,omitempty"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes,omitempty"`
}

// Describe returns the in-memory description of m. File fields are left
// empty except Path.
func Describe(m *raster.Image) *ImageInfo {
	return &ImageInfo{
		Width:    m.Width(),
		Height:   m.Height(),
		Bands:    m.Bands(),
		Encoding: m.Encoding().String(),
		Space:    colorspace.Name(m.Space()),
		Kind:     m.Space().Kind().String(),
		Extrema:  m.Extrema(),
		Path:     m.Path(),
	}
}

// LoadImageInfo loads an image into the cache (if not already cached) and
// describes it, including on-disk format and size.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	info := Describe(img)
	info.Format = formatOf(path)
	info.FileSizeBytes = stat.Size()
	return info, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".tif", ".tiff":
		return "tiff"
	case ".bmp":
		return "bmp"
	}
	return "unknown"
}

package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"runtime"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	"golang.org/x/sync/errgroup"
)

// FrameCache provides thread-safe caching of decoded frames.
//
// Animations often reuse a frame, listing the same file several times in the
// sequence. The cache keys decoded images by the exact path string, so each
// distinct path is decoded once and repeated entries share the same
// image.Image. Different paths to the same file are cached separately.
//
// FrameCache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	cache := imaging.NewFrameCache()
//	frames, err := cache.LoadAll([]string{"a.png", "b.png", "a.png"})
//	if err != nil {
//	    log.Fatal(err)
//	}
type FrameCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewFrameCache creates and initializes a new empty frame cache.
func NewFrameCache() *FrameCache {
	return &FrameCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves a frame from the cache or decodes it from disk if not cached.
//
// The format is detected from the file contents. PNG, JPEG, GIF, BMP and TIFF
// are supported; JPEG and TIFF files are rotated according to their EXIF
// orientation tag.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a supported image
func (c *FrameCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	c.mu.Lock()
	// Another goroutine may have decoded the same path meanwhile; keep the
	// first so repeated entries stay identical.
	if cached, ok := c.images[path]; ok {
		img = cached
	} else {
		c.images[path] = img
	}
	c.mu.Unlock()

	return img, nil
}

// LoadAll loads every path, concurrently, and returns the frames in the order
// of paths. On error no frames are returned.
func (c *FrameCache) LoadAll(paths []string) ([]image.Image, error) {
	frames := make([]image.Image, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			img, err := c.Load(path)
			if err != nil {
				return err
			}
			frames[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return frames, nil
}

// Len returns the number of distinct paths currently cached.
func (c *FrameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

package imaging

import (
	"image"
	"image/color"
	"runtime"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/sync/errgroup"
)

// FindTrimmedBoundingBox finds the bounding box of the non-background content
// of an image.
//
// Parameters:
//   - img: The image to analyze. It is not modified.
//   - background: The background color. If nil, the color of the top-left
//     pixel of the image is used.
//
// Returns the tight box around every pixel that differs from the background,
// and true. If every pixel equals the background the image has no foreground:
// the zero (empty) BoundingBox and false are returned.
//
// # Pixel Comparison
//
// Pixels are compared as 8-bit premultiplied RGBA, which is the same as taking
// the per-channel absolute difference against an image filled with the
// background color and looking for non-zero results. Fully transparent pixels
// compare equal regardless of their hidden color channels.
func FindTrimmedBoundingBox(img image.Image, background color.Color) (BoundingBox, bool) {
	src := clone.AsShallowRGBA(img)
	bounds := src.Bounds()
	if bounds.Empty() {
		return BoundingBox{}, false
	}

	var bg color.RGBA
	if background == nil {
		bg = src.RGBAAt(bounds.Min.X, bounds.Min.Y)
	} else {
		bg = color.RGBAModel.Convert(background).(color.RGBA)
	}

	left, top := bounds.Max.X, bounds.Max.Y
	right, bottom := bounds.Min.X, bounds.Min.Y
	found := false

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := src.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x, i = x+1, i+4 {
			p := src.Pix[i : i+4 : i+4]
			if p[0] == bg.R && p[1] == bg.G && p[2] == bg.B && p[3] == bg.A {
				continue
			}
			found = true
			left = min(left, x)
			right = max(right, x+1)
			top = min(top, y)
			bottom = max(bottom, y+1)
		}
	}

	if !found {
		return BoundingBox{}, false
	}
	return BoundingBox{Left: left, Top: top, Right: right, Bottom: bottom}, true
}

// FindTrimmedBoundingBoxes runs FindTrimmedBoundingBox over every image,
// analyzing frames concurrently. The result has one box per image in input
// order; images without foreground get the zero (empty) box.
func FindTrimmedBoundingBoxes(images []image.Image, background color.Color) []BoundingBox {
	boxes := make([]BoundingBox, len(images))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, img := range images {
		g.Go(func() error {
			boxes[i], _ = FindTrimmedBoundingBox(img, background)
			return nil
		})
	}
	_ = g.Wait()

	return boxes
}

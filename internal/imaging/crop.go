package imaging

import (
	"fmt"
	"image"
	"runtime"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// Crop extracts the region described by box from an image.
//
// The returned image keeps box as its bounds rather than being moved to the
// origin, so the crop can be repeated with the same box without effect.
//
// # Errors
//
//   - ErrInvalidInput if box is empty
//   - ErrInvalidInput if box is not entirely inside the image bounds
func Crop(img image.Image, box BoundingBox) (*image.NRGBA, error) {
	if box.IsEmpty() {
		return nil, fmt.Errorf("%w: crop box %v is empty", ErrInvalidInput, box)
	}

	bounds := img.Bounds()
	r := box.Rect()
	if !r.In(bounds) {
		return nil, fmt.Errorf("%w: crop box %v outside image bounds %v",
			ErrInvalidInput, box, BoxFromRect(bounds))
	}

	cropped := imaging.Crop(img, r)
	// imaging.Crop moves the region to the origin; put it back where it came from.
	cropped.Rect = r
	return cropped, nil
}

// CropAll crops every image to the same box, concurrently. All outputs share
// the box's width and height and are returned in input order.
//
// On error no images are returned. The error names the index of an image
// the box did not fit.
func CropAll(images []image.Image, box BoundingBox) ([]*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: no images to crop", ErrInvalidInput)
	}

	out := make([]*image.NRGBA, len(images))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, img := range images {
		g.Go(func() error {
			cropped, err := Crop(img, box)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			out[i] = cropped
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

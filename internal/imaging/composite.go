package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Composite lays frames out side by side into a single sprite sheet.
//
// The sheet is frameWidth*len(frames) wide and frameHeight tall, starts fully
// transparent, and frame k is copied to horizontal offset k*frameWidth.
// Frames never overlap, so the block of frame k holds exactly that frame's
// non-premultiplied pixels, including partially transparent ones. Frames are
// read from their own bounds, so cropped frames that do not start at the
// origin are handled. The output only depends on the frames and their order.
//
// # Errors
//
//   - ErrInvalidInput if frames is empty or the frames have zero area
//   - ErrInvalidInput if any frame differs in size from the first one
func Composite(frames []image.Image) (*image.NRGBA, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames to composite", ErrInvalidInput)
	}

	size := frames[0].Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: frame 0 has no pixels", ErrInvalidInput)
	}
	for i, f := range frames[1:] {
		if s := f.Bounds().Size(); s != size {
			return nil, fmt.Errorf("%w: frame %d is %dx%d, want %dx%d",
				ErrInvalidInput, i+1, s.X, s.Y, size.X, size.Y)
		}
	}

	sheet := imaging.New(size.X*len(frames), size.Y, color.Transparent)
	rowBytes := size.X * 4
	for k, f := range frames {
		src := imaging.Clone(f)
		for y := 0; y < size.Y; y++ {
			i := sheet.PixOffset(k*size.X, y)
			j := y * src.Stride
			copy(sheet.Pix[i:i+rowBytes], src.Pix[j:j+rowBytes])
		}
	}

	return sheet, nil
}

// FrameRect returns the rectangle frame k occupies in a sheet whose frames
// are w by h pixels.
func FrameRect(k, w, h int) image.Rectangle {
	return image.Rect(k*w, 0, (k+1)*w, h)
}

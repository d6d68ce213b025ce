package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/andybons/gogif"
	"github.com/disintegration/imaging"
)

// Encode writes img to w in the format implied by filename's extension
// (.png, .jpg/.jpeg, .gif, .tif/.tiff or .bmp).
//
// Formats without an alpha channel flatten transparent pixels, so PNG is the
// usual choice for sprite sheets.
func Encode(w io.Writer, img image.Image, filename string) error {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return fmt.Errorf("unsupported output format for %s: %w", filename, err)
	}
	if err := imaging.Encode(w, img, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return nil
}

// EncodeGIF writes frames to w as a looping animated GIF, showing each frame
// for frameDelay (rounded to the GIF resolution of 10ms, at least 10ms).
//
// Each frame gets its own palette from a median-cut quantizer with up to 255
// colors, plus a transparent entry at index 0 so transparent pixels survive.
// Frames are moved to the origin and must all have the same size.
func EncodeGIF(w io.Writer, frames []image.Image, frameDelay time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: no frames to encode", ErrInvalidInput)
	}

	delay := int(frameDelay / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	size := frames[0].Bounds().Size()
	anim := &gif.GIF{
		Config: image.Config{Width: size.X, Height: size.Y},
	}

	quantizer := gogif.MedianCutQuantizer{NumColor: 255}
	for i, f := range frames {
		b := f.Bounds()
		if b.Size() != size {
			return fmt.Errorf("%w: frame %d is %dx%d, want %dx%d",
				ErrInvalidInput, i, b.Dx(), b.Dy(), size.X, size.Y)
		}

		pal := image.NewPaletted(b, nil)
		quantizer.Quantize(pal, b, f, b.Min)

		// Index 0 is transparent, so the freshly allocated image starts out
		// fully transparent and draw.Over only fills opaque pixels.
		frame := image.NewPaletted(image.Rect(0, 0, size.X, size.Y),
			append(color.Palette{color.Transparent}, pal.Palette...))
		draw.Draw(frame, frame.Bounds(), f, b.Min, draw.Over)

		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}

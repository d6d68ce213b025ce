package walt

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/ironsheep/walt/internal/imaging"
	"github.com/ironsheep/walt/internal/markup"
)

// Result describes a built sprite sheet.
type Result struct {
	// Sheet is the composite image.
	Sheet *image.NRGBA

	// Frames are the frames as placed in the sheet, after any trimming.
	Frames []image.Image

	FrameWidth  int
	FrameHeight int

	// Box is the crop window applied to every frame. It is the zero box when
	// trimming was not requested.
	Box imaging.BoundingBox
}

// FrameCount returns the number of frames in the sheet.
func (r *Result) FrameCount() int { return len(r.Frames) }

// Build trims (if requested) and composites frames into a sprite sheet.
//
// When opts.Trim is set, each frame's foreground box is found, the boxes are
// reduced to one enclosing box, and every frame is cropped to it. A frame with
// no foreground at all fails the trim stage with imaging.ErrInvalidInput.
// opts.Inputs, when it has one entry per frame, is used to name frames in
// messages.
func Build(frames []image.Image, opts Options) (*Result, error) {
	if len(frames) == 0 {
		return nil, stageErr(StageComposite, fmt.Errorf("%w: no frames", imaging.ErrInvalidInput))
	}

	res := &Result{Frames: frames}

	if opts.Trim {
		if opts.TrimColor != nil {
			opts.logf("trimming %d frames against %s", len(frames), imaging.HexString(opts.TrimColor))
		} else {
			opts.logf("trimming %d frames against each frame's top-left pixel", len(frames))
		}

		boxes := imaging.FindTrimmedBoundingBoxes(frames, opts.TrimColor)
		for i, b := range boxes {
			if b.IsEmpty() {
				return nil, stageErr(StageTrim, fmt.Errorf("%w: frame %d%s is entirely background",
					imaging.ErrInvalidInput, i, frameName(opts, i)))
			}
			if opts.TrimColor == nil {
				opts.logf("frame %d%s: background %s, foreground %v",
					i, frameName(opts, i), imaging.HexString(imaging.BackgroundAt(frames[i])), b)
			} else {
				opts.logf("frame %d%s: foreground %v", i, frameName(opts, i), b)
			}
		}

		box, err := imaging.ReduceBoundingBoxes(boxes)
		if err != nil {
			return nil, stageErr(StageTrim, err)
		}
		opts.logf("cropping all frames to %v (%dx%d)", box, box.Width(), box.Height())

		cropped, err := imaging.CropAll(frames, box)
		if err != nil {
			return nil, stageErr(StageTrim, err)
		}

		res.Box = box
		res.Frames = make([]image.Image, len(cropped))
		for i, c := range cropped {
			res.Frames[i] = c
		}
	}

	sheet, err := imaging.Composite(res.Frames)
	if err != nil {
		return nil, stageErr(StageComposite, err)
	}
	res.Sheet = sheet
	res.FrameWidth = res.Frames[0].Bounds().Dx()
	res.FrameHeight = res.Frames[0].Bounds().Dy()
	opts.logf("composited %d frames of %dx%d into %dx%d sheet",
		len(res.Frames), res.FrameWidth, res.FrameHeight, sheet.Bounds().Dx(), sheet.Bounds().Dy())

	return res, nil
}

// Run loads opts.Inputs, builds the sprite sheet and writes the outputs.
//
// Outputs are encoded in memory first and written only after every stage has
// succeeded, so a failed run leaves no output files behind.
func Run(opts Options) (*Result, error) {
	if len(opts.Inputs) == 0 {
		return nil, stageErr(StageLoad, fmt.Errorf("%w: no input files", imaging.ErrInvalidInput))
	}

	cache := imaging.NewFrameCache()
	frames, err := cache.LoadAll(opts.Inputs)
	if err != nil {
		return nil, stageErr(StageLoad, err)
	}
	opts.logf("loaded %d frames (%d distinct files)", len(frames), cache.Len())

	res, err := Build(frames, opts)
	if err != nil {
		return nil, err
	}

	outputs, err := render(res, opts)
	if err != nil {
		return nil, stageErr(StageWrite, err)
	}
	if err := writeAll(outputs); err != nil {
		return nil, stageErr(StageWrite, err)
	}
	for _, o := range outputs {
		opts.logf("wrote %s (%d bytes)", o.path, len(o.data))
	}

	return res, nil
}

// render encodes every output of a run.
func render(res *Result, opts Options) ([]output, error) {
	var outputs []output

	var sheet bytes.Buffer
	if err := imaging.Encode(&sheet, res.Sheet, opts.OutImage); err != nil {
		return nil, err
	}
	outputs = append(outputs, output{path: opts.OutImage, data: sheet.Bytes()})

	params := markup.Params{
		FrameWidth:  res.FrameWidth,
		FrameHeight: res.FrameHeight,
		FrameCount:  res.FrameCount(),
		ClassName:   opts.ClassName,
		ImageURL:    imageURL(opts.OutMarkup, opts.OutImage),
		Duration:    opts.Duration,
	}
	var doc bytes.Buffer
	if err := markup.Render(&doc, params); err != nil {
		return nil, err
	}
	outputs = append(outputs, output{path: opts.OutMarkup, data: doc.Bytes()})

	if opts.OutPreview != "" {
		loop := markup.LoopDuration(res.FrameCount(), opts.Duration)
		var preview bytes.Buffer
		if err := imaging.EncodeGIF(&preview, res.Frames, loop/time.Duration(res.FrameCount())); err != nil {
			return nil, err
		}
		outputs = append(outputs, output{path: opts.OutPreview, data: preview.Bytes()})
	}

	return outputs, nil
}

// imageURL returns the sheet path as seen from the directory of the markup file.
func imageURL(markupPath, imagePath string) string {
	rel, err := filepath.Rel(filepath.Dir(markupPath), imagePath)
	if err != nil {
		rel = filepath.Base(imagePath)
	}
	return filepath.ToSlash(rel)
}

func frameName(opts Options, i int) string {
	if len(opts.Inputs) == 0 || i >= len(opts.Inputs) {
		return ""
	}
	return " (" + opts.Inputs[i] + ")"
}

package walt

import (
	"image/color"
	"time"
)

// Default option values.
const (
	DefaultOutImage  = "walt.png"
	DefaultOutMarkup = "walt.html"
	DefaultClassName = "walt"
)

// Options configures a conversion run.
type Options struct {
	// Inputs are the frame files, in animation order.
	Inputs []string

	// OutImage is the sprite sheet path; its extension selects the format.
	OutImage string

	// OutMarkup is the HTML/CSS path.
	OutMarkup string

	// OutPreview is an optional animated GIF path. Empty disables the preview.
	OutPreview string

	// Trim crops every frame to the smallest box holding the foreground of
	// all frames.
	Trim bool

	// TrimColor is the background color used when trimming. If nil, each
	// frame's top-left pixel is its background.
	TrimColor color.Color

	// ClassName is the CSS class-name prefix.
	ClassName string

	// Duration is the length of one animation loop. Zero means 24 frames per
	// second.
	Duration time.Duration

	// Verbose enables progress reporting through Logf.
	Verbose bool

	// Logf receives progress messages when Verbose is set. Nil discards them.
	Logf func(format string, args ...any)
}

// DefaultOptions returns Options with the default output names and class name.
func DefaultOptions() Options {
	return Options{
		OutImage:  DefaultOutImage,
		OutMarkup: DefaultOutMarkup,
		ClassName: DefaultClassName,
	}
}

func (o *Options) logf(format string, args ...any) {
	if o.Verbose && o.Logf != nil {
		o.Logf(format, args...)
	}
}

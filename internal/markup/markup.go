package markup

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"text/template"
	"time"
)

// FramesPerSecond is the playback rate implied when no duration is given.
const FramesPerSecond = 24

// ErrInvalidParams is wrapped by errors for parameters that cannot be rendered.
var ErrInvalidParams = errors.New("invalid markup parameters")

var classNameRE = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// Params describes the sprite sheet to animate.
type Params struct {
	FrameWidth  int
	FrameHeight int
	FrameCount  int

	// ClassName is the CSS class of the animated element. The keyframes are
	// named ClassName + "-anim".
	ClassName string

	// ImageURL is the sheet location as referenced from the markup file.
	ImageURL string

	// Duration is the length of one loop. Zero means FrameCount frames at
	// FramesPerSecond.
	Duration time.Duration
}

// Validate checks that p can be rendered.
func (p Params) Validate() error {
	switch {
	case p.FrameWidth <= 0 || p.FrameHeight <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidParams, p.FrameWidth, p.FrameHeight)
	case p.FrameCount <= 0:
		return fmt.Errorf("%w: frame count %d", ErrInvalidParams, p.FrameCount)
	case p.Duration < 0:
		return fmt.Errorf("%w: negative duration %v", ErrInvalidParams, p.Duration)
	}
	return ValidateClassName(p.ClassName)
}

// ValidateClassName reports whether name can be used as a CSS class name
// without escaping.
func ValidateClassName(name string) error {
	if !classNameRE.MatchString(name) {
		return fmt.Errorf("%w: class name %q is not a CSS identifier", ErrInvalidParams, name)
	}
	return nil
}

// LoopDuration returns the duration of one animation loop: d if positive,
// otherwise frameCount frames at FramesPerSecond.
func LoopDuration(frameCount int, d time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return time.Duration(frameCount) * time.Second / FramesPerSecond
}

// FormatSeconds formats d as a CSS time in seconds with two decimals, e.g. "2.00s".
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 2, 64) + "s"
}

type keyframe struct {
	Percent string
	Offset  int
}

type view struct {
	Params
	SheetWidth int
	Duration   string
	Keyframes  []keyframe
}

var tmpl = template.Must(template.New("walt").Funcs(template.FuncMap{
	"cssString": cssString,
	"htmlAttr":  htmlAttr,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.ClassName}}</title>
<style>
.{{.ClassName}} {
  width: {{.FrameWidth}}px;
  height: {{.FrameHeight}}px;
  background-image: url("{{cssString .ImageURL}}");
  background-repeat: no-repeat;
  background-size: {{.SheetWidth}}px {{.FrameHeight}}px;
  animation: {{.ClassName}}-anim {{.Duration}} step-end infinite;
}

@keyframes {{.ClassName}}-anim {
{{- range .Keyframes}}
  {{.Percent}} { background-position: {{.Offset}}px 0; }
{{- end}}
}
</style>
</head>
<body>
<div class="{{htmlAttr .ClassName}}"></div>
</body>
</html>
`))

// Render writes an HTML document animating the sheet described by p.
//
// The animation steps through the sheet with one keyframe per frame, moving
// the background left by FrameWidth pixels each step, and holds the last frame
// until the loop restarts. The sheet is FrameWidth*FrameCount pixels wide.
func Render(w io.Writer, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	v := view{
		Params:     p,
		SheetWidth: p.FrameWidth * p.FrameCount,
		Duration:   FormatSeconds(LoopDuration(p.FrameCount, p.Duration)),
	}
	for k := 0; k < p.FrameCount; k++ {
		v.Keyframes = append(v.Keyframes, keyframe{
			Percent: formatPercent(float64(k) * 100 / float64(p.FrameCount)),
			Offset:  -k * p.FrameWidth,
		})
	}
	v.Keyframes = append(v.Keyframes, keyframe{
		Percent: "100%",
		Offset:  -(p.FrameCount - 1) * p.FrameWidth,
	})

	if err := tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("failed to render markup: %w", err)
	}
	return nil
}

// formatPercent renders a keyframe selector with at most four decimals and
// no trailing zeros.
func formatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "%"
}

var cssStringReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `, "<", `\3c `)

func cssString(s string) string { return cssStringReplacer.Replace(s) }

var htmlAttrReplacer = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")

func htmlAttr(s string) string { return htmlAttrReplacer.Replace(s) }

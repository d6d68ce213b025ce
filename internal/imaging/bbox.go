package imaging

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidInput is wrapped by every error caused by arguments that cannot
// be processed, as opposed to I/O or codec failures.
var ErrInvalidInput = errors.New("invalid input")

// BoundingBox represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (Left, Top) is the top-left corner (inclusive)
//   - (Right, Bottom) is the bottom-right corner (exclusive)
//
// The zero value is empty and marks an undefined box, such as the result of
// trimming an image that contains nothing but background.
type BoundingBox struct {
	Left, Top, Right, Bottom int
}

// BoxFromRect converts an image.Rectangle into a BoundingBox.
func BoxFromRect(r image.Rectangle) BoundingBox {
	return BoundingBox{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}

// Rect returns the box as an image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// Width returns Right - Left.
func (b BoundingBox) Width() int { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b BoundingBox) Height() int { return b.Bottom - b.Top }

// IsEmpty reports whether the box encloses no pixels. Empty boxes are
// undefined for the purpose of reduction and cropping.
func (b BoundingBox) IsEmpty() bool {
	return b.Left >= b.Right || b.Top >= b.Bottom
}

// String formats the box as (left,top,right,bottom).
func (b BoundingBox) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", b.Left, b.Top, b.Right, b.Bottom)
}

// ReduceBoundingBoxes returns the smallest box enclosing every box in the
// sequence.
//
// The reduction is coordinatewise: the minimum of all lefts and tops and the
// maximum of all rights and bottoms. It is not an intersection, so frames whose
// content is smaller than another frame's keep some background padding after
// cropping, but all frames end up the same size. The result does not depend on
// the order of boxes.
//
// # Errors
//
//   - ErrInvalidInput if boxes is empty
//   - ErrInvalidInput if any box is empty (undefined); the message names its index
func ReduceBoundingBoxes(boxes []BoundingBox) (BoundingBox, error) {
	if len(boxes) == 0 {
		return BoundingBox{}, fmt.Errorf("%w: no bounding boxes to reduce", ErrInvalidInput)
	}

	var out BoundingBox
	for i, b := range boxes {
		if b.IsEmpty() {
			return BoundingBox{}, fmt.Errorf("%w: bounding box %d is undefined", ErrInvalidInput, i)
		}
		if i == 0 {
			out = b
			continue
		}
		out.Left = min(out.Left, b.Left)
		out.Top = min(out.Top, b.Top)
		out.Right = max(out.Right, b.Right)
		out.Bottom = max(out.Bottom, b.Bottom)
	}
	return out, nil
}

// Package imaging provides the frame geometry and compositing operations
// used to turn a sequence of images into a sprite sheet.
//
// The package covers the full path from decoded frames to an encoded sheet:
// background trimming, bounding box reduction, uniform cropping, horizontal
// compositing, and encoding of the sheet and of an animated GIF preview.
// All operations work with standard Go image.Image types and use a coordinate
// system where X increases rightward and Y increases downward.
//
// # Coordinate System
//
// Bounding boxes are expressed in the coordinate space of the source image:
//   - Left and Top are inclusive
//   - Right and Bottom are exclusive
//   - Width = Right - Left, Height = Bottom - Top
//
// Cropped frames keep the box as their bounds, so cropping a frame again with
// the same box returns the same pixels. Composite sheets always start at (0,0).
//
// # Undefined Boxes
//
// An image whose every pixel equals the background has no foreground and
// therefore no bounding box. FindTrimmedBoundingBox reports this with a false
// result and the zero BoundingBox, which is empty. Operations that need a
// defined box reject empty boxes with ErrInvalidInput.
//
// # Thread Safety
//
// FrameCache is safe for concurrent use. All other functions are stateless
// and never modify their inputs, so they can be called concurrently.
//
// # Error Handling
//
// Invalid arguments (empty sequences, mismatched frame sizes, boxes outside an
// image, undefined boxes) produce errors wrapping ErrInvalidInput, which callers
// can test with errors.Is. File and codec failures are returned wrapped with
// context.
package imaging

// Package walt turns a sequence of images into a sprite sheet and the
// HTML/CSS that animates it.
//
// Build works on frames already in memory. Run loads the frames from disk,
// builds the sheet and writes the sheet, the markup and an optional GIF
// preview. Every failure is reported as a *StageError naming the stage.
package walt

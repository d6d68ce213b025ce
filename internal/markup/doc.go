// Package markup renders the HTML and CSS that animate a sprite sheet.
//
// The sheet is shown through a box the size of one frame. A CSS animation
// steps the sheet's background-position left by one frame width per
// keyframe, using step-end timing so each frame is held rather than slid.
//
// # Duration
//
// Without an explicit duration the loop runs at FramesPerSecond, so 48
// frames play in 2.00s. Durations are emitted in seconds with two decimals.
//
// # Errors
//
// Render and Params.Validate wrap ErrInvalidParams for non-positive frame
// sizes or counts, negative durations, and class names that are not valid
// CSS identifiers. Nothing is written when validation fails.
package markup

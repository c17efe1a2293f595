// Package viz drives the animated panel and styles the auxiliary views.
//
// The live loop is a Bubble Tea program:
//
//   - [Model]: ticks a render session forward every frame
//   - [Theme]: lipgloss colors derived from the active palette
//   - [BucketGraph]: asciigraph plot of an image histogram
//
// # Key Bindings
//
//	q, Esc, Ctrl+C - stop the animation
package viz

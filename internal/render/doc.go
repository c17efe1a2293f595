// Package render composes masked, colored noise rows and the stat panel
// beside them into terminal text.
//
// A [Session] is built once per run from a palette, a mask shape and a
// noise filler. Every method is a function of the frame number and row
// index, so any frame can be rendered without replaying earlier ones.
//
// # Thread Safety
//
// Sessions are read-only after construction, but the noise filler's random
// generator is not. Render from a single goroutine.
package render

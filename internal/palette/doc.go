// Package palette derives the run's colors from a source image.
//
// Extraction quantizes sampled pixels into a 16x16x16 histogram, keeps the
// four most populated buckets and turns their mean colors into:
//
//   - four backgrounds ordered by relative luminance
//   - one foreground per stat row ([Dis], [Ker], [Upt], [Mem])
//   - a [Pipe] foreground for separators
//
// Results persist to a line-oriented KEY=#rrggbb file ([Store]) so later
// runs without an image reuse them.
//
// # Fallback
//
// [Resolve] tries the image, then the stored config, then the built-in
// defaults. Every failure along the chain is soft: callers always receive a
// usable palette together with the [Tier] that produced it.
//
// # Thread Safety
//
// A [Palette] is a plain value. Resolve it once at startup and share copies.
package palette

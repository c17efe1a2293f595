// Package mask evaluates the analytic silhouettes that frame the noise
// column. A Shape is picked once per run and asked, cell by cell, whether
// a coordinate lies inside it.
package mask

import (
	"fmt"
	"math"
	"strings"
)

// Shape is one of the 24 analytic silhouettes.
type Shape int

const (
	Rect Shape = iota
	Ellipse
	Diamond
	TriUp
	TriDown
	TriLeft
	TriRight
	TrapUp
	TrapDown
	TrapLeft
	TrapRight
	Hourglass
	Hex
	Oct
	ChevUp
	ChevDown
	ChevLeft
	ChevRight
	Wave
	NotchTop
	NotchBottom
	Pill
	StairsUp
	StairsDown

	// Count is the number of shapes in the catalog.
	Count = int(StairsDown) + 1
)

const (
	slope      = 0.6
	trapFloor  = 0.6
	hourWaist  = 0.25
	octCorner  = 0.35
	pillRadius = 0.6
	notchFrac  = 0.35
	waveAmp    = 0.35
	waveBand   = 0.4
	wavePi     = 3.14159
)

var names = [Count]string{
	"rect", "ellipse", "diamond",
	"tri_up", "tri_down", "tri_left", "tri_right",
	"trap_up", "trap_down", "trap_left", "trap_right",
	"hourglass", "hex", "oct",
	"chev_up", "chev_down", "chev_left", "chev_right",
	"wave", "notch_top", "notch_bottom", "pill",
	"stairs_up", "stairs_down",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= Count {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return names[s]
}

// Valid reports whether s is a catalog shape.
func (s Shape) Valid() bool {
	return s >= 0 && int(s) < Count
}

// Names lists shape names in catalog order.
func Names() []string {
	out := make([]string, Count)
	copy(out, names[:])
	return out
}

// ByName resolves a shape name, case-insensitively. Hyphens and underscores
// are interchangeable.
func ByName(name string) (Shape, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range names {
		if n == key {
			return Shape(i), nil
		}
	}
	return Rect, fmt.Errorf("unknown mask shape: %s", name)
}

// Ranger draws a uniform index in [0, n).
type Ranger interface {
	Range(n int) int
}

// Pick draws one shape uniformly from the catalog.
func Pick(r Ranger) Shape {
	return Shape(r.Range(Count))
}

// Contains reports whether cell (x, y) of a width x rows canvas lies inside s.
// Canvases with width <= 1 or rows <= 1 are always inside.
func (s Shape) Contains(x, y, width, rows int) bool {
	if width <= 1 || rows <= 1 {
		return true
	}

	a := float64(width-1) / 2.0
	b := float64(rows-1) / 2.0
	dx := float64(x) - a
	dy := float64(y) - b
	adx := math.Abs(dx)
	ady := math.Abs(dy)
	lastX := float64(width - 1)
	lastY := float64(rows - 1)

	switch s {
	case Rect:
		return true
	case Ellipse:
		return (dx*dx)/(a*a)+(dy*dy)/(b*b) <= 1.0
	case Diamond:
		return adx/a+ady/b <= 1.0

	case TriUp:
		return adx <= a*(1.0-float64(y)/lastY)
	case TriDown:
		return adx <= a*(1.0-(lastY-float64(y))/lastY)
	case TriLeft:
		return ady <= b*(1.0-float64(x)/lastX)
	case TriRight:
		return ady <= b*(1.0-(lastX-float64(x))/lastX)

	// narrow at the named edge, full extent at the opposite one
	case TrapUp:
		return adx <= a*(trapFloor+(1-trapFloor)*(float64(y)/lastY))
	case TrapDown:
		return adx <= a*(trapFloor+(1-trapFloor)*((lastY-float64(y))/lastY))
	case TrapLeft:
		return ady <= b*(trapFloor+(1-trapFloor)*(float64(x)/lastX))
	case TrapRight:
		return ady <= b*(trapFloor+(1-trapFloor)*((lastX-float64(x))/lastX))

	case Hourglass:
		m := math.Min(ady/b, 1.0)
		return adx <= a*(hourWaist+(1-hourWaist)*m)

	case Hex:
		band := b / 3.0
		if ady <= band {
			return true
		}
		shrink := (ady - band) / band
		return adx <= a*(1.0-shrink) && shrink <= 1.0

	case Oct:
		corner := math.Min(a, b) * octCorner
		if (adx <= a-corner && ady <= b) || (ady <= b-corner && adx <= a) {
			return true
		}
		return adx+ady <= a+b-corner

	case ChevUp:
		return dy <= 0 && ady >= adx*(b/a)*slope
	case ChevDown:
		return dy >= 0 && ady >= adx*(b/a)*slope
	case ChevLeft:
		return dx <= 0 && adx >= ady*(a/b)*slope
	case ChevRight:
		return dx >= 0 && adx >= ady*(a/b)*slope

	case Wave:
		center := waveAmp * math.Sin(wavePi*(dx/a))
		yn := dy / b
		return yn <= center+waveBand && yn >= center-waveBand

	case NotchTop:
		return !(float64(y) < b*notchFrac && adx < a*notchFrac)
	case NotchBottom:
		return !(lastY-float64(y) < b*notchFrac && adx < a*notchFrac)

	case Pill:
		r := math.Min(a, b) * pillRadius
		if adx <= a-r || ady <= b-r {
			return true
		}
		ex := adx - (a - r)
		ey := ady - (b - r)
		return ex*ex+ey*ey <= r*r

	case StairsUp:
		return float64(x) <= (float64(y)/lastY)*float64(width)
	case StairsDown:
		return float64(x) <= ((lastY-float64(y))/lastY)*float64(width)
	}
	return true
}

// Preview renders the containment grid using inside for covered cells and
// outside for the rest, one line per row.
func Preview(s Shape, width, rows int, inside, outside rune) string {
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			if s.Contains(x, y, width, rows) {
				sb.WriteRune(inside)
			} else {
				sb.WriteRune(outside)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

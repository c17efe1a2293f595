// Package noise holds the catalog of glyph sets and fills the per-row
// character buffers that the renderer colors and masks.
package noise

import (
	"fmt"
	"unicode/utf8"
)

const (
	// JitterPercent is the chance a template glyph is swapped for a random one.
	JitterPercent = 20

	fallbackCharset = "@#%*&"
)

// Set is one catalog entry: a charset for random glyphs and an optional
// template silhouette, one string per row.
type Set struct {
	Name    string
	Charset string
	Rows    []string
}

// HasTemplate reports whether the set carries a silhouette.
func (s Set) HasTemplate() bool {
	return len(s.Rows) > 0
}

// Width is the widest template row in runes.
func (s Set) Width() int {
	w := 0
	for _, r := range s.Rows {
		w = max(w, utf8.RuneCountInString(r))
	}
	return w
}

// Count is the catalog size.
func Count() int {
	return len(catalog)
}

// Catalog returns a copy of all sets in catalog order.
func Catalog() []Set {
	out := make([]Set, len(catalog))
	copy(out, catalog)
	return out
}

// ByIndex returns the set at i, wrapping out-of-range indices.
func ByIndex(i int) Set {
	n := len(catalog)
	return catalog[((i%n)+n)%n]
}

// ByName looks up an exact catalog name.
func ByName(name string) (Set, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Set{}, false
}

// Index returns the catalog position of name, or -1.
func Index(name string) int {
	for i, s := range catalog {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Names lists catalog names in order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, s := range catalog {
		out[i] = s.Name
	}
	return out
}

// DJB2 hashes s with h = h*33 + b over its bytes, starting at 5381.
func DJB2(s string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(s); i++ {
		h = (h << 5) + h + uint64(s[i])
	}
	return h
}

// Ranger draws a uniform index in [0, n).
type Ranger interface {
	Range(n int) int
}

// Select picks the run's set. An exact name wins, any other non-empty name
// is hashed onto the catalog, and an empty name draws from r.
func Select(name string, r Ranger) Set {
	if s, ok := ByName(name); ok {
		return s
	}
	if name != "" {
		return catalog[DJB2(name)%uint64(len(catalog))]
	}
	return catalog[r.Range(len(catalog))]
}

// Symbol is an optional single display glyph. The zero value means none.
type Symbol rune

// ParseSymbol takes the first rune of s.
func ParseSymbol(s string) Symbol {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError && size == 1 {
		return 0
	}
	return Symbol(r)
}

func (s Symbol) String() string {
	if s == 0 {
		return ""
	}
	return string(rune(s))
}

// Filler produces rows for one set. Only the random branches touch r.
type Filler struct {
	Set    Set
	Symbol Symbol
	Rand   Ranger
}

// Row fills row i of frame into exactly width runes.
func (f Filler) Row(frame uint64, row, width int) []rune {
	if width <= 0 {
		return []rune{}
	}
	out := make([]rune, width)

	charset := []rune(f.Set.Charset)
	if len(charset) == 0 {
		charset = []rune(fallbackCharset)
	}

	if row < 0 || row >= len(f.Set.Rows) {
		for c := range out {
			if f.Symbol != 0 {
				if phase(frame, row, c, 5) < 3 {
					out[c] = rune(f.Symbol)
				} else {
					out[c] = ' '
				}
				continue
			}
			out[c] = charset[f.Rand.Range(len(charset))]
		}
		return out
	}

	tmpl := []rune(f.Set.Rows[row])
	n := copy(out, tmpl)
	for c := n; c < width; c++ {
		out[c] = ' '
	}

	for c, ch := range out {
		if ch == ' ' {
			continue
		}
		if f.Symbol != 0 {
			if phase(frame, row, c, 6) == 0 {
				out[c] = ' '
			} else {
				out[c] = rune(f.Symbol)
			}
			continue
		}
		if f.Rand.Range(100) < JitterPercent {
			out[c] = charset[f.Rand.Range(len(charset))]
		}
	}
	return out
}

func phase(frame uint64, row, col, period int) int {
	return int((frame + uint64(row) + uint64(col)) % uint64(period))
}

func (s Set) String() string {
	return fmt.Sprintf("%s (%d glyphs, %d rows)", s.Name, len([]rune(s.Charset)), len(s.Rows))
}

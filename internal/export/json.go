package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/san-kum/glitch/internal/palette"
)

// PaletteDoc is the JSON form of a palette.
type PaletteDoc struct {
	Source     string            `json:"source,omitempty"`
	Tier       string            `json:"tier,omitempty"`
	Background []string          `json:"background"`
	Foreground map[string]string `json:"foreground"`
}

// NewPaletteDoc flattens p into hex strings keyed like the color config.
func NewPaletteDoc(p palette.Palette, tier string) PaletteDoc {
	doc := PaletteDoc{
		Source:     p.Source,
		Tier:       tier,
		Background: make([]string, len(p.Background)),
		Foreground: make(map[string]string, palette.RoleCount),
	}
	for i, c := range p.Background {
		doc.Background[i] = c.Hex()
	}
	for r := palette.Role(0); int(r) < palette.RoleCount; r++ {
		doc.Foreground[r.Key()] = p.FG(r).Hex()
	}
	return doc
}

// Palette parses the document back into a palette.
func (d PaletteDoc) Palette() (palette.Palette, error) {
	if len(d.Background) != 4 {
		return palette.Palette{}, fmt.Errorf("expected 4 backgrounds, got %d", len(d.Background))
	}
	p := palette.Palette{Source: d.Source}
	for i, h := range d.Background {
		c, err := palette.ParseHex(h)
		if err != nil {
			return palette.Palette{}, fmt.Errorf("background %d: %w", i+1, err)
		}
		p.Background[i] = c
	}
	for r := palette.Role(0); int(r) < palette.RoleCount; r++ {
		h, ok := d.Foreground[r.Key()]
		if !ok {
			p.Foreground[r] = derived(p, r)
			continue
		}
		c, err := palette.ParseHex(h)
		if err != nil {
			return palette.Palette{}, fmt.Errorf("%s: %w", r.Key(), err)
		}
		p.Foreground[r] = c
	}
	return p, nil
}

func derived(p palette.Palette, r palette.Role) palette.RGB {
	return palette.Derive(p.Background, p.Source).FG(r)
}

// WritePaletteJSON writes p as indented JSON.
func WritePaletteJSON(w io.Writer, p palette.Palette, tier string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewPaletteDoc(p, tier))
}

// ReadPaletteJSON decodes a document written by WritePaletteJSON.
func ReadPaletteJSON(r io.Reader) (palette.Palette, error) {
	var doc PaletteDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return palette.Palette{}, fmt.Errorf("decode palette: %w", err)
	}
	return doc.Palette()
}

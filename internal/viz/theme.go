package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/glitch/internal/palette"
)

// Theme defines the colors for the auxiliary views.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

func lg(c palette.RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// ThemeFrom maps a palette onto a theme so listings match the panel.
func ThemeFrom(p palette.Palette) Theme {
	name := p.Source
	if name == "" {
		name = "default"
	}
	return Theme{
		Name:       name,
		Primary:    lg(p.FG(palette.Dis)),
		Secondary:  lg(p.FG(palette.Ker)),
		Accent:     lg(p.FG(palette.Upt)),
		Background: lg(p.BG(0)),
		Text:       lg(p.FG(palette.Mem)),
		Muted:      lg(p.FG(palette.Pipe)),
	}
}

// Header renders a bold underlined title.
func (t Theme) Header(title string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Muted).
		Render(title)
}

// Label renders a dim key.
func (t Theme) Label(s string) string {
	return lipgloss.NewStyle().Foreground(t.Secondary).Render(s)
}

// Value renders a stat or color value.
func (t Theme) Value(s string) string {
	return lipgloss.NewStyle().Foreground(t.Text).Render(s)
}

// Badge renders s in the accent color on the darkest background.
func (t Theme) Badge(s string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Background).
		Padding(0, 1).
		Render(s)
}

// Hint renders italic help text.
func (t Theme) Hint(s string) string {
	return lipgloss.NewStyle().Foreground(t.Muted).Italic(true).Render(s)
}

// Separator renders a centered divider.
func (t Theme) Separator(width int) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-2)
	right := strings.Repeat("─", width-mid-1)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}

func swatch(c palette.RGB, width int) string {
	return lipgloss.NewStyle().Background(lg(c)).Render(strings.Repeat(" ", width))
}

// Swatches lists every palette slot with a color block and its hex value,
// in config file order.
func Swatches(p palette.Palette) string {
	var sb strings.Builder
	for i, c := range p.Background {
		fmt.Fprintf(&sb, "%-8s %s %s\n", fmt.Sprintf("BG%d", i+1), swatch(c, 6), c.Hex())
	}
	for r := palette.Role(0); int(r) < palette.RoleCount; r++ {
		c := p.FG(r)
		fmt.Fprintf(&sb, "%-8s %s %s\n", r.Key(), swatch(c, 6), c.Hex())
	}
	return sb.String()
}

// Gradient blends the four backgrounds in Lab space across width cells.
func Gradient(p palette.Palette, width int) []palette.RGB {
	if width <= 0 {
		return nil
	}
	out := make([]palette.RGB, width)
	if width == 1 {
		out[0] = p.BG(0)
		return out
	}
	last := len(p.Background) - 1
	for x := range out {
		t := float64(x) / float64(width-1) * float64(last)
		seg := min(int(t), last-1)
		a := p.Background[seg].Colorful()
		b := p.Background[seg+1].Colorful()
		r, g, bl := a.BlendLab(b, t-float64(seg)).Clamped().RGB255()
		out[x] = palette.RGB{R: r, G: g, B: bl}
	}
	return out
}

// GradientBar renders Gradient as a row of colored cells.
func GradientBar(p palette.Palette, width int) string {
	var sb strings.Builder
	for _, c := range Gradient(p, width) {
		sb.WriteString(swatch(c, 1))
	}
	return sb.String()
}

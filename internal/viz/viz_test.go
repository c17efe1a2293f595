package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/glitch/internal/mask"
	"github.com/san-kum/glitch/internal/noise"
	"github.com/san-kum/glitch/internal/palette"
	"github.com/san-kum/glitch/internal/prng"
	"github.com/san-kum/glitch/internal/render"
)

func testSession() *render.Session {
	set, _ := noise.ByName("grid")
	return &render.Session{
		Palette: palette.Default(),
		Shape:   mask.Diamond,
		Noise:   noise.Filler{Set: set, Symbol: 'o', Rand: prng.NewSeeded(1)},
	}
}

func tick(m tea.Model) (tea.Model, tea.Cmd) {
	return m.Update(TickMsg(time.Now()))
}

func TestModel_StopsAfterDuration(t *testing.T) {
	var m tea.Model = NewModel(testSession(), nil, 50*time.Millisecond, 150*time.Millisecond)

	for i := 0; i < 2; i++ {
		var cmd tea.Cmd
		m, cmd = tick(m)
		if m.(Model).Done() {
			t.Fatalf("done after %d ticks", i+1)
		}
		if cmd == nil {
			t.Fatal("expected next tick")
		}
	}
	m, _ = tick(m)
	if !m.(Model).Done() {
		t.Error("expected done after 3 ticks")
	}
	if got := m.(Model).Frame(); got != 3 {
		t.Errorf("expected frame 3, got %d", got)
	}
}

func TestModel_ZeroDurationRunsUntilQuit(t *testing.T) {
	var m tea.Model = NewModel(testSession(), nil, 10*time.Millisecond, 0)
	for i := 0; i < 500; i++ {
		m, _ = tick(m)
	}
	if m.(Model).Done() {
		t.Fatal("zero duration should not stop on its own")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.(Model).Done() || cmd == nil {
		t.Error("expected q to quit")
	}
}

func TestModel_RefreshesStats(t *testing.T) {
	calls := 0
	stats := func() []render.Stat {
		calls++
		return []render.Stat{{Key: "host", Label: "HST", Value: "box"}}
	}
	var m tea.Model = NewModel(testSession(), stats, 0, 0)
	m, _ = tick(m)
	m, _ = tick(m)
	if calls != 3 {
		t.Errorf("expected 3 stat collections, got %d", calls)
	}
	if !strings.Contains(m.View(), "| box") {
		t.Errorf("view missing stat value: %q", m.View())
	}
}

func TestModel_ViewMatchesSession(t *testing.T) {
	s := testSession()
	stats := []render.Stat{{Label: "A", Value: "1"}, {Label: "B", Value: "2"}}
	m := NewModel(s, func() []render.Stat { return stats }, 0, 0)

	want := s.Frame(0, stats)
	if got := m.View(); got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestGradient(t *testing.T) {
	p := palette.Default()

	tests := []struct {
		width int
		want  int
	}{
		{0, 0},
		{1, 1},
		{4, 4},
		{30, 30},
	}
	for _, tt := range tests {
		if got := len(Gradient(p, tt.width)); got != tt.want {
			t.Errorf("len(Gradient(%d)) = %d, want %d", tt.width, got, tt.want)
		}
	}

	g := Gradient(p, 10)
	if g[0] != p.Background[0] {
		t.Errorf("gradient starts at %s, want %s", g[0], p.Background[0])
	}
	if g[9] != p.Background[3] {
		t.Errorf("gradient ends at %s, want %s", g[9], p.Background[3])
	}
}

func TestSwatches(t *testing.T) {
	p := palette.Default()
	out := Swatches(p)
	for _, want := range []string{"BG1", "BG4", "FG_DIS", "FG_PIPE", p.BG(0).Hex(), p.FG(palette.Pipe).Hex()} {
		if !strings.Contains(out, want) {
			t.Errorf("Swatches() missing %q", want)
		}
	}
	if n := strings.Count(out, "\n"); n != 9 {
		t.Errorf("expected 9 lines, got %d", n)
	}
}

func TestThemeFrom(t *testing.T) {
	th := ThemeFrom(palette.Default())
	if th.Name != "default" {
		t.Errorf("expected name default, got %s", th.Name)
	}
	if string(th.Background) != palette.Default().BG(0).Hex() {
		t.Errorf("unexpected background %s", th.Background)
	}
}

func TestBucketGraph(t *testing.T) {
	if got := BucketGraph(nil, 40, 5); got != "" {
		t.Errorf("expected empty graph, got %q", got)
	}

	buckets := []palette.Bucket{
		{Key: 0xfff, Count: 3, Mean: palette.White},
		{Key: 0x000, Count: 9, Mean: palette.Black},
	}
	out := BucketGraph(buckets, 40, 5)
	if !strings.Contains(out, "2 buckets") {
		t.Errorf("missing caption in %q", out)
	}
	if buckets[0].Count != 3 {
		t.Error("BucketGraph reordered its input")
	}
}

func TestThemeText(t *testing.T) {
	th := ThemeFrom(palette.Default())

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"value", th.Value("6.9.1"), "6.9.1"},
		{"badge", th.Badge("image"), "image"},
		{"label", th.Label("tier:"), "tier:"},
		{"hint", th.Hint("q to quit"), "q to quit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("%s = %q, want it to contain %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	th := ThemeFrom(palette.Default())
	for _, width := range []int{0, 5, 8, 40} {
		out := th.Separator(width)
		if got := lipgloss.Width(out); got != width {
			t.Errorf("Separator(%d) width = %d", width, got)
		}
	}
	if !strings.Contains(th.Separator(40), "◆") {
		t.Error("expected a centered mark")
	}
}

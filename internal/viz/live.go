package viz

import (
	"context"
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/glitch/internal/render"
)

// DefaultSpeed is the frame interval used when none is given.
const DefaultSpeed = 50 * time.Millisecond

// TickMsg advances the animation by one frame.
type TickMsg time.Time

// StatSource supplies the panel rows. It is called once per frame.
type StatSource func() []render.Stat

// Model animates a render session. Elapsed time is counted in ticks, so a
// run lasts duration/speed frames regardless of scheduling jitter.
type Model struct {
	session  *render.Session
	stats    StatSource
	rows     []render.Stat
	frame    uint64
	speed    time.Duration
	duration time.Duration
	elapsed  time.Duration
	done     bool
}

// NewModel returns a model that stops after duration; zero runs until quit.
func NewModel(s *render.Session, stats StatSource, speed, duration time.Duration) Model {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	if stats == nil {
		stats = func() []render.Stat { return nil }
	}
	m := Model{
		session:  s,
		stats:    stats,
		speed:    speed,
		duration: max(duration, 0),
	}
	m.rows = m.stats()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.speed, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles ticks and quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	case TickMsg:
		m.frame++
		m.elapsed += m.speed
		if m.duration > 0 && m.elapsed >= m.duration {
			m.done = true
			return m, tea.Quit
		}
		m.rows = m.stats()
		return m, m.tick()
	}
	return m, nil
}

// View renders the current frame.
func (m Model) View() string {
	return m.session.Frame(m.frame, m.rows)
}

// Frame is the index of the frame on screen.
func (m Model) Frame() uint64 { return m.frame }

// Done reports whether the model has asked to quit.
func (m Model) Done() bool { return m.done }

// Run drives m until it quits or ctx is cancelled. A nil in disables key
// input. Cancellation is not an error.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

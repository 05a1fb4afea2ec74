package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/all-my-doggies/internal/app"
	"github.com/vovakirdan/all-my-doggies/internal/core"
	"github.com/vovakirdan/all-my-doggies/internal/game"
)

// Model is the Bubble Tea model for watching and steering a running session.
// The simulation runs on the loop goroutine; the model only forwards keys
// and draws the latest snapshot.
type Model struct {
	host     *Host
	keys     *KeyMapper
	view     *Renderer
	snap     game.Snapshot
	hasFrame bool
	width    int
	height   int
	quitting bool
}

// NewModel creates a model reading frames from host.
func NewModel(host *Host, view *Renderer, width, height int) Model {
	return Model{
		host:   host,
		keys:   NewKeyMapper(),
		view:   view,
		width:  width,
		height: height,
	}
}

// Init starts waiting for the first frame.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.host.Frames())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		m.snap = game.Snapshot(msg)
		m.hasFrame = true
		return m, waitForFrame(m.host.Frames())

	case loopDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey forwards the key to the loop. Quitting waits for the loop to
// stop so the final state is recorded.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if action != core.ActionNone {
		m.host.Send(action)
	}
	if isQuit {
		m.host.Close()
	}
	return m, nil
}

// View renders the latest snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.hasFrame {
		return "Waking the dog up..."
	}
	return m.view.Render(m.snap, m.width, m.height)
}

// Snapshot returns the last frame received from the loop.
func (m Model) Snapshot() game.Snapshot { return m.snap }

// Options configures Run.
type Options struct {
	Clock       core.Clock
	Hold        time.Duration // zero selects DefaultHold
	World       core.Rect
	Width       int
	Height      int
	ProgramOpts []tea.ProgramOption
}

// startLoop runs sess on its own goroutine and closes the host's frames
// when it stops. The returned channel yields the loop's error.
func startLoop(ctx context.Context, sess *app.Session, host *Host) <-chan error {
	done := make(chan error, 1)
	go func() {
		err := sess.Run(ctx, host)
		host.finish()
		done <- err
	}()
	return done
}

// Run plays sess in the terminal until the game quits or ctx is done.
func Run(ctx context.Context, sess *app.Session, opts Options) error {
	host := NewHost(opts.Clock, opts.Hold)
	model := NewModel(host, NewRenderer(opts.World), opts.Width, opts.Height)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	loopDone := startLoop(ctx, sess, host)

	popts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts.ProgramOpts...)
	_, err := tea.NewProgram(model, popts...).Run()

	host.Close()
	loopErr := <-loopDone

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	if loopErr != nil && !errors.Is(loopErr, context.Canceled) {
		return loopErr
	}
	return nil
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/all-my-doggies/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case " ", "p":
		return core.ActionPause, false
	case "f":
		return core.ActionFeed, false
	}
	return core.ActionNone, false
}

// gameKeys describes the bindings for the help bar.
type gameKeys struct {
	Move  key.Binding
	Feed  key.Binding
	Pause key.Binding
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k gameKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Feed, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k gameKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Feed, k.Pause},
		{k.Start, k.Quit},
	}
}

func defaultGameKeys() gameKeys {
	return gameKeys{
		Move: key.NewBinding(
			key.WithKeys("w", "a", "s", "d", "up", "down", "left", "right"),
			key.WithHelp("wasd/arrows", "walk"),
		),
		Feed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feed"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

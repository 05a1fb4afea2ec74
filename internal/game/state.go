package game

import "time"

// State is one node of the game state machine. The set of states is closed:
// only types in this package implement it.
type State interface {
	gameState()
	String() string
}

// Initializing is the state before anything is shown. It never exits on its own.
type Initializing struct{}

func (Initializing) gameState()     {}
func (Initializing) String() string { return "initializing" }

// Splash shows the title card until Duration has passed since Start.
type Splash struct {
	Start    time.Time
	Duration time.Duration
}

func (Splash) gameState()     {}
func (Splash) String() string { return "splash" }

// Remaining returns how long the splash still shows at now.
func (s Splash) Remaining(now time.Time) time.Duration {
	left := s.Duration - now.Sub(s.Start)
	if left < 0 {
		return 0
	}
	return left
}

// CollectingInfo is reserved for asking the player about themselves and
// their dog. Nothing transitions into it yet.
type CollectingInfo struct{}

func (CollectingInfo) gameState()     {}
func (CollectingInfo) String() string { return "collecting info" }

// MainMenu waits for the player to confirm.
type MainMenu struct{}

func (MainMenu) gameState()     {}
func (MainMenu) String() string { return "main menu" }

// Playing runs the simulation.
type Playing struct{}

func (Playing) gameState()     {}
func (Playing) String() string { return "playing" }

// Paused freezes the simulation until the pause toggle is pressed again.
type Paused struct{}

func (Paused) gameState()     {}
func (Paused) String() string { return "paused" }

// Quit is terminal. The surrounding loop exits when it sees it.
type Quit struct{}

func (Quit) gameState()     {}
func (Quit) String() string { return "quit" }

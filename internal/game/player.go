package game

import "github.com/vovakirdan/all-my-doggies/internal/core"

// Player is the human owner of the dog.
type Player struct {
	Name   string
	Gender core.Gender
}

// NewPlayer creates a player. An empty name becomes "Player".
func NewPlayer(name string, gender core.Gender) *Player {
	if name == "" {
		name = "Player"
	}
	return &Player{Name: name, Gender: gender}
}

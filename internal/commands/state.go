package commands

import (
	"github.com/hollowvale/go-adventure/internal/combat"
	"github.com/hollowvale/go-adventure/internal/dice"
	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/save"
)

// State is the running session a command executes against. Handlers mutate
// it directly; the session loop owns it for the lifetime of one game.
type State struct {
	Dict   *game.Dictionary
	World  *game.WorldState
	Player *game.Player
	Engine *combat.Engine
	Roller dice.Roller
	Saves  *save.Manager

	// Encounter is the active fight, nil outside combat
	Encounter *combat.Encounter

	// Quit is set when the player asks to leave or dies
	Quit bool
}

// InCombat reports whether a fight is currently running.
func (s *State) InCombat() bool {
	return s.Encounter != nil && s.Encounter.Active()
}

// Room returns the definition of the player's current room, or nil if the
// player is somewhere the catalog no longer knows.
func (s *State) Room() *game.Room {
	return s.Dict.Rooms.Get(string(s.Player.CurrentRoom))
}

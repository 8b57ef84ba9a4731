package save

import (
	"context"
	"sync"

	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/pixil98/go-log"
)

const AutosaveName = "autosave"

// AutoSaver periodically writes the running session to the autosave slot.
// It implements driver.Manager and does nothing until a session is attached.
type AutoSaver struct {
	manager *Manager

	mu     sync.Mutex
	player *game.Player
	world  *game.WorldState
}

func NewAutoSaver(manager *Manager) *AutoSaver {
	return &AutoSaver{manager: manager}
}

// Attach points the autosaver at the live session state. Passing nils
// detaches it.
func (a *AutoSaver) Attach(player *game.Player, world *game.WorldState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.player = player
	a.world = world
}

func (a *AutoSaver) Tick(ctx context.Context) error {
	a.mu.Lock()
	player, world := a.player, a.world
	a.mu.Unlock()

	if player == nil || world == nil {
		return nil
	}

	// Autosave failures are logged, never fatal to the session.
	if err := a.manager.Save(AutosaveName, player, world); err != nil {
		log.GetLogger(ctx).Warnf("autosave failed: %v", err)
	}
	return nil
}

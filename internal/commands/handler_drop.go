package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// DropHandlerFactory creates the drop command.
type DropHandlerFactory struct{}

func (f *DropHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *DropHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		if len(args) == 0 {
			return NewUserError("Drop what?")
		}
		query := strings.Join(args, " ")

		id, item := findInventoryItem(s, query)
		if item == nil {
			return NewUserError(fmt.Sprintf("You aren't carrying a %s.", query))
		}
		if !item.Droppable {
			return NewUserError(fmt.Sprintf("You can't bring yourself to part with the %s.", item.Name))
		}

		dropped := s.Player.Drop(id)
		if dropped == nil {
			return NewUserError(fmt.Sprintf("You aren't carrying a %s.", query))
		}
		s.World.MoveEntity(game.EntityItem, storage.Identifier(id), s.Player.CurrentRoom)

		return send(pub, s.Player.Id, fmt.Sprintf("You drop the %s.", item.Name))
	}, nil
}

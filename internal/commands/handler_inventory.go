package commands

import (
	"context"
	"sort"

	"github.com/hollowvale/go-adventure/internal/display"
)

// InventoryHandlerFactory creates the inventory listing command.
type InventoryHandlerFactory struct{}

func (f *InventoryHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *InventoryHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		ids := make([]string, 0, len(s.Player.Inventory))
		for id := range s.Player.Inventory {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		var lines []string
		for _, id := range ids {
			item := s.Player.Inventory[id]
			line := item.Name
			if id == s.Player.EquippedWeapon {
				line += " (equipped)"
			}
			lines = append(lines, line)
		}

		msg := display.Heading("Inventory") + "\n" + display.List(lines, "nothing at all")
		return send(pub, s.Player.Id, msg)
	}, nil
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/display"
)

// EquipHandlerFactory creates the weapon-wielding command.
type EquipHandlerFactory struct{}

func (f *EquipHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *EquipHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		if len(args) == 0 {
			return NewUserError("Equip what?")
		}
		query := strings.Join(args, " ")

		id, item := findInventoryItem(s, query)
		if item == nil {
			return NewUserError(fmt.Sprintf("You aren't carrying a %s.", query))
		}

		if err := s.Player.EquipWeapon(id); err != nil {
			return NewUserError(display.Capitalize(err.Error()) + ".")
		}

		return send(pub, s.Player.Id,
			fmt.Sprintf("You wield the %s. Attack damage is now %d.", item.Name, s.Player.TotalDamage))
	}, nil
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// UseHandlerFactory creates the item-use command. What using means depends on
// the item's kind: keys unlock, consumables heal, upgrades boost, spell tomes
// teach, lore is read.
type UseHandlerFactory struct{}

func (f *UseHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *UseHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		if len(args) == 0 {
			return NewUserError("Use what?")
		}
		query := strings.Join(args, " ")

		id, item := findInventoryItem(s, query)
		if item == nil {
			return NewUserError(fmt.Sprintf("You aren't carrying a %s.", query))
		}
		if !item.ClassRestriction.Allows(s.Player.Class) {
			return NewUserError(fmt.Sprintf("The %s is not meant for a %s.", item.Name, s.Player.Class))
		}

		var err error
		used := false
		switch item.Kind() {
		case game.ItemKindKey:
			used, err = useKey(s, pub, item)
		case game.ItemKindConsumable:
			used, err = useConsumable(s, pub, item)
		case game.ItemKindUpgrade:
			used, err = useUpgrade(s, pub, item)
		case game.ItemKindSpell:
			used, err = useSpellTome(s, pub, item)
		case game.ItemKindLore:
			err = send(pub, s.Player.Id, item.Description)
			used = true
		default:
			if !item.Usable {
				return NewUserError(fmt.Sprintf("You can't think of a use for the %s.", item.Name))
			}
			err = send(pub, s.Player.Id, fmt.Sprintf("You fiddle with the %s, to no obvious effect.", item.Name))
			used = true
		}
		if err != nil {
			return err
		}

		if used && item.ConsumedOnUse {
			s.Player.Drop(id)
		}
		return nil
	}, nil
}

func useKey(s *State, pub Publisher, item *game.Item) (bool, error) {
	for _, raw := range item.Unlocks {
		id := storage.NormalizeId(raw)
		if !s.World.UnlockRoom(id) {
			continue
		}

		name := string(id)
		if room := s.Dict.Rooms.Get(string(id)); room != nil {
			name = room.Name
		}
		return true, send(pub, s.Player.Id,
			fmt.Sprintf("The %s turns with a click. %s is now open.", item.Name, name))
	}
	return false, NewUserError(fmt.Sprintf("The %s doesn't open anything here.", item.Name))
}

func useConsumable(s *State, pub Publisher, item *game.Item) (bool, error) {
	if item.Heal > 0 {
		// Report what was actually restored, not the label on the bottle.
		healed := s.Player.Heal(item.Heal)
		msg := fmt.Sprintf("You consume the %s and recover %d health (%d/%d).",
			item.Name, healed, s.Player.Health, s.Player.MaxHealth)
		if healed == 0 {
			msg = fmt.Sprintf("You consume the %s, but you are already at full health.", item.Name)
		}
		if err := send(pub, s.Player.Id, msg); err != nil {
			return false, err
		}
	}

	if item.PermanentHealth > 0 || item.PermanentDamage > 0 {
		if _, err := applyPermanent(s, pub, item); err != nil {
			return false, err
		}
	}

	if item.Effect != nil {
		eff := *item.Effect
		s.Player.AddStatusEffect(game.EffectId(eff.Name), &eff)
		if err := send(pub, s.Player.Id,
			fmt.Sprintf("The %s effect takes hold (%d rounds).", eff.Name, eff.Duration)); err != nil {
			return false, err
		}
	}

	if item.Heal <= 0 && item.PermanentHealth <= 0 && item.PermanentDamage <= 0 && item.Effect == nil {
		return false, NewUserError(fmt.Sprintf("The %s has no effect.", item.Name))
	}
	return true, nil
}

func useUpgrade(s *State, pub Publisher, item *game.Item) (bool, error) {
	return applyPermanent(s, pub, item)
}

func applyPermanent(s *State, pub Publisher, item *game.Item) (bool, error) {
	applied := false
	if item.PermanentHealth > 0 {
		s.Player.IncreaseMaxHealth(item.PermanentHealth)
		applied = true
		if err := send(pub, s.Player.Id,
			fmt.Sprintf("You feel hardier. Max health is now %d.", s.Player.MaxHealth)); err != nil {
			return false, err
		}
	}
	if item.PermanentDamage > 0 {
		s.Player.IncreaseDamage(item.PermanentDamage)
		applied = true
		if err := send(pub, s.Player.Id,
			fmt.Sprintf("You feel stronger. Attack damage is now %d.", s.Player.TotalDamage)); err != nil {
			return false, err
		}
	}
	if !applied {
		return false, NewUserError(fmt.Sprintf("The %s has no effect.", item.Name))
	}
	return true, nil
}

func useSpellTome(s *State, pub Publisher, item *game.Item) (bool, error) {
	class := s.Dict.Classes.Get(s.Player.Class)
	if class == nil || !class.CanCast {
		return false, NewUserError("The words swim before your eyes. You cannot cast spells.")
	}
	if item.Teaches.Id() == "" {
		return false, NewUserError(fmt.Sprintf("The %s teaches nothing you can grasp.", item.Name))
	}

	// Inventory snapshots restored from a save carry an unresolved
	// reference, so fall back to a catalog lookup.
	attack := item.Teaches.Get()
	if attack == nil {
		attack = s.Dict.Attacks.Get(item.Teaches.Id())
	}
	if attack == nil {
		return false, NewUserError(fmt.Sprintf("The %s teaches nothing you can grasp.", item.Name))
	}
	if !s.Player.LearnSpell(item.Teaches.Id()) {
		return false, NewUserError(fmt.Sprintf("You already know %s.", attack.Name))
	}

	return true, send(pub, s.Player.Id, fmt.Sprintf("You learn %s!", attack.Name))
}

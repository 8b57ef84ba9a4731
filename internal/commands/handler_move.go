package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// MoveHandlerFactory creates the travel command.
// Config:
//   - locked_message (optional): template shown at a locked door, sees .Key
type MoveHandlerFactory struct{}

func (f *MoveHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *MoveHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		if len(args) == 0 {
			return NewUserError("Go where?")
		}
		query := strings.Join(args, " ")

		dest, _ := findExit(s, query)
		if dest == "" {
			return NewUserError("You can't go that way.")
		}

		ok, block := s.World.CanMoveTo(s.Player.CurrentRoom, dest)
		if !ok && block == game.MoveLocked {
			// A carried key that opens the destination is used on the
			// spot rather than refusing the move.
			if keyId, key := heldKeyFor(s, dest); key != nil {
				s.World.UnlockRoom(dest)
				if err := send(pub, s.Player.Id,
					fmt.Sprintf("You unlock the way with the %s.", key.Name)); err != nil {
					return err
				}
				if key.ConsumedOnUse {
					s.Player.Drop(keyId)
				}
				ok = true
			}
		}
		if !ok {
			switch block {
			case game.MoveLocked:
				msg, err := configMessage(config, "locked_message",
					"The way is locked.{{ if .Key }} You need the {{ .Key }}.{{ end }}",
					map[string]string{"Key": keyName(s, dest)})
				if err != nil {
					return err
				}
				return NewUserError(msg)
			default:
				// Hidden exits refuse exactly like absent ones.
				return NewUserError("You can't go that way.")
			}
		}

		s.Player.MoveTo(dest)
		s.World.MarkVisited(dest)

		if err := send(pub, s.Player.Id, describeRoom(s)); err != nil {
			return err
		}

		for _, name := range entityNames(s, game.EntityEnemy) {
			if err := send(pub, s.Player.Id, fmt.Sprintf("%s eyes you warily...", name)); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

// heldKeyFor returns the inventory key that opens the room, or nil. The
// room's declared key wins; otherwise any carried key whose unlock list names
// the room will do.
func heldKeyFor(s *State, roomId storage.Identifier) (string, *game.Item) {
	if required := s.World.RequiredKey(roomId); required != "" {
		id := string(storage.NormalizeId(required))
		if item, ok := s.Player.Inventory[id]; ok && item.Kind() == game.ItemKindKey {
			return id, item
		}
	}

	for id, item := range s.Player.Inventory {
		if item.Kind() != game.ItemKindKey {
			continue
		}
		for _, raw := range item.Unlocks {
			if storage.NormalizeId(raw) == roomId {
				return id, item
			}
		}
	}
	return "", nil
}

// keyName returns the display name of the key a locked room demands, or "".
func keyName(s *State, roomId storage.Identifier) string {
	keyId := s.World.RequiredKey(roomId)
	if keyId == "" {
		return ""
	}
	if item := s.Dict.Items.Get(string(storage.NormalizeId(keyId))); item != nil {
		return item.Name
	}
	return keyId
}

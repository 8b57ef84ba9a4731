package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowvale/go-adventure/internal/display"
	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// describeRoom renders the standard room view: description, exits, and
// everything standing around.
func describeRoom(s *State) string {
	room := s.Room()
	if room == nil {
		return "You are nowhere you recognize."
	}

	var b strings.Builder
	b.WriteString(display.Heading(room.Name))
	b.WriteString("\n")
	b.WriteString(room.Description)
	b.WriteString("\n\nExits:\n")
	b.WriteString(display.List(visibleExits(s, room), "none"))

	if items := entityNames(s, game.EntityItem); len(items) > 0 {
		b.WriteString("\n\nYou see:\n")
		b.WriteString(display.List(items, ""))
	}
	if enemies := entityNames(s, game.EntityEnemy); len(enemies) > 0 {
		b.WriteString("\n\nEnemies here:\n")
		b.WriteString(display.List(enemies, ""))
	}
	if npcs := entityNames(s, game.EntityNPC); len(npcs) > 0 {
		b.WriteString("\n\nAlso here:\n")
		b.WriteString(display.List(npcs, ""))
	}

	return b.String()
}

// visibleExits lists the room's exits, hiding undiscovered ones and marking
// locked ones.
func visibleExits(s *State, room *game.Room) []string {
	var exits []string
	for _, exit := range room.Exits {
		id := storage.NormalizeId(exit)
		st := s.World.RoomState(id)
		if st.Hidden {
			continue
		}

		name := string(id)
		if dest := s.Dict.Rooms.Get(string(id)); dest != nil {
			name = dest.Name
		}
		if st.Locked {
			name += " (locked)"
		}
		exits = append(exits, name)
	}
	return exits
}

func entityNames(s *State, kind game.EntityKind) []string {
	var names []string
	for _, id := range s.World.EntitiesInRoom(kind, s.Player.CurrentRoom) {
		switch kind {
		case game.EntityItem:
			if item := s.Dict.Items.Get(string(id)); item != nil {
				names = append(names, item.Name)
			}
		case game.EntityEnemy:
			if enemy := s.Dict.Enemies.Get(string(id)); enemy != nil {
				name := enemy.Name
				if enemy.IsBoss {
					name += " (boss)"
				}
				names = append(names, name)
			}
		case game.EntityNPC:
			if npc := s.Dict.NPCs.Get(string(id)); npc != nil {
				names = append(names, npc.Name)
			}
		}
	}
	return names
}

// LookHandlerFactory creates the room description command.
type LookHandlerFactory struct{}

func (f *LookHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *LookHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		// "look <thing>" inspects one thing instead of the whole room.
		if len(args) > 0 {
			return lookAt(s, pub, strings.Join(args, " "))
		}
		return send(pub, s.Player.Id, describeRoom(s))
	}, nil
}

func lookAt(s *State, pub Publisher, query string) error {
	if _, item := findInventoryItem(s, query); item != nil {
		return send(pub, s.Player.Id, item.Description)
	}
	if _, item := findRoomItem(s, query); item != nil {
		return send(pub, s.Player.Id, item.Description)
	}
	if _, enemy := findRoomEnemy(s, query); enemy != nil {
		return send(pub, s.Player.Id, enemy.Description)
	}
	if _, npc := findRoomNPC(s, query); npc != nil {
		return send(pub, s.Player.Id, npc.Description)
	}
	return NewUserError(fmt.Sprintf("You don't see any %s here.", query))
}

// SearchHandlerFactory creates the close-examination command, which can
// reveal hidden passages.
// Config:
//   - found_message (optional): template for a discovery, sees .Room
type SearchHandlerFactory struct{}

func (f *SearchHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *SearchHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		room := s.Room()
		if room == nil {
			return NewUserError("There is nothing here to search.")
		}

		if room.DetailedDescription != "" {
			if err := send(pub, s.Player.Id, room.DetailedDescription); err != nil {
				return err
			}
		}

		found := false
		for _, exit := range room.Exits {
			id := storage.NormalizeId(exit)
			if !s.World.RoomState(id).Hidden {
				continue
			}
			if !s.World.DiscoverRoom(id) {
				continue
			}
			found = true

			name := string(id)
			if dest := s.Dict.Rooms.Get(string(id)); dest != nil {
				name = dest.Name
			}
			msg, err := configMessage(config, "found_message",
				"You discover a hidden passage to {{ .Room }}!",
				map[string]string{"Room": name})
			if err != nil {
				return err
			}
			if err := send(pub, s.Player.Id, msg); err != nil {
				return err
			}
		}

		if !found && room.DetailedDescription == "" {
			return send(pub, s.Player.Id, "You find nothing out of the ordinary.")
		}
		return nil
	}, nil
}

package commands

import (
	"context"
	"strings"

	"github.com/hollowvale/go-adventure/internal/display"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// MapHandlerFactory creates the visited-rooms overview command. Only rooms
// the player has entered appear; unexplored territory stays unknown.
type MapHandlerFactory struct{}

func (f *MapHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *MapHandlerFactory) Create(config map[string]any, pub Publisher) (CommandFunc, error) {
	return func(ctx context.Context, s *State, args []string) error {
		visited := s.World.VisitedRooms()
		visitedSet := make(map[storage.Identifier]bool, len(visited))
		for _, id := range visited {
			visitedSet[id] = true
		}

		var lines []string
		for _, id := range visited {
			room := s.Dict.Rooms.Get(string(id))
			if room == nil {
				continue
			}

			line := room.Name
			if id == s.Player.CurrentRoom {
				line += " (you are here)"
			}

			var exits []string
			for _, exit := range room.Exits {
				eid := storage.NormalizeId(exit)
				if s.World.RoomState(eid).Hidden {
					continue
				}
				name := string(eid)
				if dest := s.Dict.Rooms.Get(string(eid)); dest != nil {
					name = dest.Name
				}
				if !visitedSet[eid] {
					name += " (unexplored)"
				}
				exits = append(exits, name)
			}
			if len(exits) > 0 {
				line += " -> " + strings.Join(exits, ", ")
			}

			lines = append(lines, line)
		}

		msg := display.Heading("Map") + "\n" + display.List(lines, "You haven't been anywhere yet.")
		return send(pub, s.Player.Id, msg)
	}, nil
}

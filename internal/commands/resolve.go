package commands

import (
	"strings"

	"github.com/hollowvale/go-adventure/internal/game"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// matches reports whether a player's query names the given id or display
// name. Queries are matched whole, case-insensitively, with underscores and
// spaces interchangeable.
func matches(query, id, name string) bool {
	q := strings.ReplaceAll(strings.ToLower(query), " ", "_")
	if q == strings.ToLower(id) {
		return true
	}
	return strings.EqualFold(strings.ReplaceAll(query, "_", " "), name)
}

// findRoomItem resolves a query against the items in the player's room.
func findRoomItem(s *State, query string) (storage.Identifier, *game.Item) {
	for _, id := range s.World.EntitiesInRoom(game.EntityItem, s.Player.CurrentRoom) {
		item := s.Dict.Items.Get(string(id))
		if item != nil && matches(query, string(id), item.Name) {
			return id, item
		}
	}
	return "", nil
}

// findInventoryItem resolves a query against the player's inventory.
func findInventoryItem(s *State, query string) (string, *game.Item) {
	for id, item := range s.Player.Inventory {
		if matches(query, id, item.Name) {
			return id, item
		}
	}
	return "", nil
}

// findRoomEnemy resolves a query against the enemies in the player's room.
func findRoomEnemy(s *State, query string) (storage.Identifier, *game.Enemy) {
	for _, id := range s.World.EntitiesInRoom(game.EntityEnemy, s.Player.CurrentRoom) {
		enemy := s.Dict.Enemies.Get(string(id))
		if enemy != nil && matches(query, string(id), enemy.Name) {
			return id, enemy
		}
	}
	return "", nil
}

// findRoomNPC resolves a query against the NPCs in the player's room.
func findRoomNPC(s *State, query string) (storage.Identifier, *game.NPC) {
	for _, id := range s.World.EntitiesInRoom(game.EntityNPC, s.Player.CurrentRoom) {
		npc := s.Dict.NPCs.Get(string(id))
		if npc != nil && matches(query, string(id), npc.Name) {
			return id, npc
		}
	}
	return "", nil
}

// findExit resolves a query against the current room's declared exits,
// returning the destination id. Hidden destinations are deliberately
// resolvable: the world decides whether the move is allowed.
func findExit(s *State, query string) (storage.Identifier, *game.Room) {
	room := s.Room()
	if room == nil {
		return "", nil
	}
	for _, exit := range room.Exits {
		id := storage.NormalizeId(exit)
		dest := s.Dict.Rooms.Get(string(id))
		name := ""
		if dest != nil {
			name = dest.Name
		}
		if matches(query, string(id), name) {
			return id, dest
		}
	}
	return "", nil
}

package game

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/hollowvale/go-adventure/internal/storage"
)

// EntityKind distinguishes the three location maps the world tracks.
type EntityKind int

const (
	EntityItem EntityKind = iota
	EntityEnemy
	EntityNPC
)

func (k EntityKind) String() string {
	switch k {
	case EntityEnemy:
		return "enemy"
	case EntityNPC:
		return "npc"
	default:
		return "item"
	}
}

// MoveBlock is the reason a move was refused.
type MoveBlock int

const (
	MoveAllowed MoveBlock = iota
	MoveNoExit
	MoveHidden
	MoveLocked
)

func (b MoveBlock) String() string {
	switch b {
	case MoveNoExit:
		return "no exit"
	case MoveHidden:
		return "hidden"
	case MoveLocked:
		return "locked"
	default:
		return "allowed"
	}
}

// RoomState holds the mutable accessibility flags for one room.
type RoomState struct {
	Visited     bool   `json:"visited"`
	Locked      bool   `json:"locked"`
	Hidden      bool   `json:"hidden"`
	KeyRequired string `json:"key_required,omitempty"`
}

// WorldState is the single source of truth for where every item, enemy, and
// NPC currently lives, and for per-room accessibility rules. All access goes
// through its methods.
type WorldState struct {
	mu   sync.RWMutex
	dict *Dictionary

	itemLocations  map[storage.Identifier]storage.Identifier
	enemyLocations map[storage.Identifier]storage.Identifier
	npcLocations   map[storage.Identifier]storage.Identifier

	roomStates map[storage.Identifier]*RoomState

	itemSpawnCounts map[storage.Identifier]int

	// Tombstones for entities that were removed from the world (taken,
	// defeated). Rooms keep declaring their initial occupants, so removal
	// must be recorded explicitly or the declared list would resurrect
	// them.
	removed map[EntityKind]map[storage.Identifier]bool
}

// NewWorldState initializes world state from the room catalog: every room's
// declared occupants are registered in the location maps under normalized
// ids, and room flags seed the room states. Occupants without a catalog
// definition are skipped with a warning; missing data degrades, it never
// aborts the session.
func NewWorldState(dict *Dictionary) *WorldState {
	w := &WorldState{
		dict:            dict,
		itemLocations:   make(map[storage.Identifier]storage.Identifier),
		enemyLocations:  make(map[storage.Identifier]storage.Identifier),
		npcLocations:    make(map[storage.Identifier]storage.Identifier),
		roomStates:      make(map[storage.Identifier]*RoomState),
		itemSpawnCounts: make(map[storage.Identifier]int),
		removed: map[EntityKind]map[storage.Identifier]bool{
			EntityItem:  {},
			EntityEnemy: {},
			EntityNPC:   {},
		},
	}

	for roomId, room := range dict.Rooms.GetAll() {
		rid := storage.Identifier(roomId)
		w.roomStates[rid] = &RoomState{
			Locked:      room.Locked,
			Hidden:      room.Hidden,
			KeyRequired: room.KeyRequired,
		}

		for _, raw := range room.Items {
			id := storage.NormalizeId(raw)
			if dict.Items.Get(string(id)) == nil {
				slog.Warn("room declares unknown item", "room", roomId, "item", raw)
				continue
			}
			w.itemLocations[id] = rid
			w.itemSpawnCounts[id]++
		}
		for _, raw := range room.Enemies {
			id := storage.NormalizeId(raw)
			if dict.Enemies.Get(string(id)) == nil {
				slog.Warn("room declares unknown enemy", "room", roomId, "enemy", raw)
				continue
			}
			w.enemyLocations[id] = rid
		}
		for _, raw := range room.NPCs {
			id := storage.NormalizeId(raw)
			if dict.NPCs.Get(string(id)) == nil {
				slog.Warn("room declares unknown npc", "room", roomId, "npc", raw)
				continue
			}
			w.npcLocations[id] = rid
		}
	}

	return w
}

func (w *WorldState) locations(kind EntityKind) map[storage.Identifier]storage.Identifier {
	switch kind {
	case EntityEnemy:
		return w.enemyLocations
	case EntityNPC:
		return w.npcLocations
	default:
		return w.itemLocations
	}
}

func (w *WorldState) declared(kind EntityKind, room *Room) []string {
	switch kind {
	case EntityEnemy:
		return room.Enemies
	case EntityNPC:
		return room.NPCs
	default:
		return room.Items
	}
}

// EntitiesInRoom returns the ids of the given kind currently in the room:
// the location map's matches plus any declared occupants that were never
// registered, minus removed entities. The result is sorted and free of
// duplicates.
func (w *WorldState) EntitiesInRoom(kind EntityKind, roomId storage.Identifier) []storage.Identifier {
	w.mu.RLock()
	defer w.mu.RUnlock()

	present := map[storage.Identifier]bool{}
	for id, loc := range w.locations(kind) {
		if loc == roomId {
			present[id] = true
		}
	}

	if room := w.dict.Rooms.Get(string(roomId)); room != nil {
		for _, raw := range w.declared(kind, room) {
			id := storage.NormalizeId(raw)
			if _, tracked := w.locations(kind)[id]; tracked {
				continue
			}
			if w.removed[kind][id] {
				continue
			}
			present[id] = true
		}
	}

	ids := make([]storage.Identifier, 0, len(present))
	for id := range present {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MoveEntity places an entity in a room, clearing any removal record.
func (w *WorldState) MoveEntity(kind EntityKind, id, roomId storage.Identifier) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.locations(kind)[id] = roomId
	delete(w.removed[kind], id)
}

// RemoveEntity takes an entity out of the world. Removing an id that is not
// placed anywhere is reported as failure, not an error.
func (w *WorldState) RemoveEntity(kind EntityKind, id storage.Identifier) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.locations(kind)[id]; ok {
		delete(w.locations(kind), id)
		w.removed[kind][id] = true
		return true
	}

	// The entity may only be visible through a room's declared list.
	if w.removed[kind][id] {
		return false
	}
	for _, room := range w.dict.Rooms.GetAll() {
		for _, raw := range w.declared(kind, room) {
			if storage.NormalizeId(raw) == id {
				w.removed[kind][id] = true
				return true
			}
		}
	}

	return false
}

// RemoveEnemyByName removes an enemy from the given room by display name.
// Used as a fallback when an encounter's enemy id has drifted from the room
// data.
func (w *WorldState) RemoveEnemyByName(roomId storage.Identifier, name string) bool {
	for _, id := range w.EntitiesInRoom(EntityEnemy, roomId) {
		enemy := w.dict.Enemies.Get(string(id))
		if enemy != nil && enemy.MatchName(name) {
			return w.RemoveEntity(EntityEnemy, id)
		}
	}
	return false
}

// EntityRoom returns the room currently holding the entity, or "" if it is
// not placed in the world.
func (w *WorldState) EntityRoom(kind EntityKind, id storage.Identifier) storage.Identifier {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.locations(kind)[id]
}

// RoomState returns a copy of the room's state. Unknown rooms report the
// zero state.
func (w *WorldState) RoomState(roomId storage.Identifier) RoomState {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if st, ok := w.roomStates[roomId]; ok {
		return *st
	}
	return RoomState{}
}

// CanMoveTo checks whether the player may move between the two rooms. It
// fails closed: the exit must be declared by the source room, and hidden or
// locked destinations block until discovered or unlocked.
func (w *WorldState) CanMoveTo(from, to storage.Identifier) (bool, MoveBlock) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	room := w.dict.Rooms.Get(string(from))
	if room == nil || !room.HasExit(string(to)) {
		return false, MoveNoExit
	}

	if st, ok := w.roomStates[to]; ok {
		if st.Hidden {
			return false, MoveHidden
		}
		if st.Locked {
			return false, MoveLocked
		}
	}

	return true, MoveAllowed
}

// RequiredKey returns the key item id a locked room demands, if any.
func (w *WorldState) RequiredKey(roomId storage.Identifier) string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if st, ok := w.roomStates[roomId]; ok {
		return st.KeyRequired
	}
	return ""
}

// UnlockRoom clears a room's locked flag. Returns false if the room was
// already unlocked or does not exist.
func (w *WorldState) UnlockRoom(roomId storage.Identifier) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	st, ok := w.roomStates[roomId]
	if !ok || !st.Locked {
		return false
	}
	st.Locked = false
	return true
}

// DiscoverRoom clears a room's hidden flag. Returns false if the room was
// already visible or does not exist.
func (w *WorldState) DiscoverRoom(roomId storage.Identifier) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	st, ok := w.roomStates[roomId]
	if !ok || !st.Hidden {
		return false
	}
	st.Hidden = false
	return true
}

// MarkVisited records that the player has entered the room.
func (w *WorldState) MarkVisited(roomId storage.Identifier) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if st, ok := w.roomStates[roomId]; ok {
		st.Visited = true
	}
}

// VisitedRooms returns the sorted ids of every visited room.
func (w *WorldState) VisitedRooms() []storage.Identifier {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var ids []storage.Identifier
	for id, st := range w.roomStates {
		if st.Visited {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

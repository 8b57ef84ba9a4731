package game

import (
	"fmt"

	"github.com/hollowvale/go-adventure/internal/storage"
)

// Extension keys carried in a world snapshot.
const (
	extRemovedItems   = "removed_items"
	extRemovedEnemies = "removed_enemies"
	extRemovedNPCs    = "removed_npcs"
)

// WorldSnapshot is the serializable form of WorldState. Catalog definitions
// are not snapshotted; only placements and per-room flags are. Unknown
// extension keys survive a load/save round trip untouched.
type WorldSnapshot struct {
	ItemLocations   map[string]string     `json:"item_locations"`
	EnemyLocations  map[string]string     `json:"enemy_locations"`
	NPCLocations    map[string]string     `json:"npc_locations"`
	RoomStates      map[string]*RoomState `json:"room_states"`
	ItemSpawnCounts map[string]int        `json:"item_spawn_counts,omitempty"`

	Ext storage.ExtensionState `json:"ext,omitempty"`
}

// Snapshot captures the current world state.
func (w *WorldState) Snapshot() (*WorldSnapshot, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snap := &WorldSnapshot{
		ItemLocations:   make(map[string]string, len(w.itemLocations)),
		EnemyLocations:  make(map[string]string, len(w.enemyLocations)),
		NPCLocations:    make(map[string]string, len(w.npcLocations)),
		RoomStates:      make(map[string]*RoomState, len(w.roomStates)),
		ItemSpawnCounts: make(map[string]int, len(w.itemSpawnCounts)),
	}

	for id, loc := range w.itemLocations {
		snap.ItemLocations[string(id)] = string(loc)
	}
	for id, loc := range w.enemyLocations {
		snap.EnemyLocations[string(id)] = string(loc)
	}
	for id, loc := range w.npcLocations {
		snap.NPCLocations[string(id)] = string(loc)
	}
	for id, st := range w.roomStates {
		cp := *st
		snap.RoomStates[string(id)] = &cp
	}
	for id, n := range w.itemSpawnCounts {
		snap.ItemSpawnCounts[string(id)] = n
	}

	for kind, key := range map[EntityKind]string{
		EntityItem:  extRemovedItems,
		EntityEnemy: extRemovedEnemies,
		EntityNPC:   extRemovedNPCs,
	} {
		ids := removedIds(w.removed[kind])
		if len(ids) == 0 {
			continue
		}
		if err := snap.Ext.Set(key, ids); err != nil {
			return nil, fmt.Errorf("snapshotting %s removals: %w", kind, err)
		}
	}

	return snap, nil
}

func removedIds(set map[storage.Identifier]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, string(id))
	}
	return ids
}

// RestoreWorldState rebuilds world state from a snapshot against the current
// catalogs. Rooms added to the catalog since the save get their default
// state; placements referencing definitions that no longer exist are kept
// and degrade at lookup time.
func RestoreWorldState(dict *Dictionary, snap *WorldSnapshot) (*WorldState, error) {
	w := NewWorldState(dict)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.itemLocations = restoreLocations(snap.ItemLocations)
	w.enemyLocations = restoreLocations(snap.EnemyLocations)
	w.npcLocations = restoreLocations(snap.NPCLocations)

	for id, st := range snap.RoomStates {
		cp := *st
		w.roomStates[storage.Identifier(id)] = &cp
	}

	w.itemSpawnCounts = make(map[storage.Identifier]int, len(snap.ItemSpawnCounts))
	for id, n := range snap.ItemSpawnCounts {
		w.itemSpawnCounts[storage.Identifier(id)] = n
	}

	for kind, key := range map[EntityKind]string{
		EntityItem:  extRemovedItems,
		EntityEnemy: extRemovedEnemies,
		EntityNPC:   extRemovedNPCs,
	} {
		var ids []string
		set := map[storage.Identifier]bool{}
		found, err := snap.Ext.Get(key, &ids)
		if err != nil {
			return nil, fmt.Errorf("restoring %s removals: %w", kind, err)
		}
		if found {
			for _, id := range ids {
				set[storage.Identifier(id)] = true
			}
		}
		w.removed[kind] = set
	}

	return w, nil
}

func restoreLocations(m map[string]string) map[storage.Identifier]storage.Identifier {
	out := make(map[storage.Identifier]storage.Identifier, len(m))
	for id, loc := range m {
		out[storage.Identifier(id)] = storage.Identifier(loc)
	}
	return out
}

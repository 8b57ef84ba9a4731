package game

import (
	"sort"

	"github.com/hollowvale/go-adventure/internal/dice"
	"github.com/hollowvale/go-adventure/internal/storage"
)

// candidate is one item eligible for procedural placement.
type candidate struct {
	id   storage.Identifier
	item *Item
}

// PlaceItems scatters not-yet-placed, class-eligible, under-cap items across
// unlocked rooms, weighted by rarity tier. The target total is two placements
// per room. Selection is weighted-random without replacement; a tier drops
// out of the draw once its pool is exhausted. Deterministic for a fixed
// roller.
func (w *WorldState) PlaceItems(playerClass string, roller dice.Roller) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	pools := w.buildRarityPools(playerClass)

	// Tiers that actually have items, most common first.
	var tiers []Rarity
	var weights []int
	for _, tier := range Tiers {
		if len(pools[tier]) > 0 {
			tiers = append(tiers, tier)
			weights = append(weights, tier.Weight())
		}
	}

	target := 2 * len(w.dict.Rooms.GetAll())
	eligible := w.unlockedRooms()

	placed := 0
	for placed < target {
		if len(tiers) == 0 || len(eligible) == 0 {
			break
		}

		pick := dice.Weighted(roller, weights)
		if pick < 0 {
			break
		}
		tier := tiers[pick]

		if len(pools[tier]) == 0 {
			tiers = append(tiers[:pick], tiers[pick+1:]...)
			weights = append(weights[:pick], weights[pick+1:]...)
			continue
		}

		// Draw an item from the tier without replacement.
		idx := dice.Pick(roller, len(pools[tier]))
		cand := pools[tier][idx]
		pools[tier] = append(pools[tier][:idx], pools[tier][idx+1:]...)

		if w.placeOne(cand, eligible, roller) {
			placed++
		}
	}

	return placed
}

// buildRarityPools groups placeable items by rarity tier. Items already in
// the world, at their spawn cap, or restricted to another class are skipped.
func (w *WorldState) buildRarityPools(playerClass string) map[Rarity][]candidate {
	pools := map[Rarity][]candidate{}

	// Deterministic iteration order so a fixed seed gives a fixed world.
	all := w.dict.Items.GetAll()
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, rawId := range ids {
		item := all[rawId]
		id := storage.Identifier(rawId)

		if _, placed := w.itemLocations[id]; placed {
			continue
		}
		if playerClass != "" && !item.ClassRestriction.Allows(playerClass) {
			continue
		}
		if w.itemSpawnCounts[id] >= item.SpawnLimit() {
			continue
		}

		pools[item.Rarity] = append(pools[item.Rarity], candidate{id: id, item: item})
	}

	return pools
}

// unlockedRooms returns the sorted ids of rooms open for placement.
func (w *WorldState) unlockedRooms() []storage.Identifier {
	var rooms []storage.Identifier
	for id := range w.dict.Rooms.GetAll() {
		rid := storage.Identifier(id)
		if st, ok := w.roomStates[rid]; ok && st.Locked {
			continue
		}
		rooms = append(rooms, rid)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i] < rooms[j] })
	return rooms
}

// placeOne puts a single candidate into a random eligible room, honoring the
// item's allowed_rooms restriction.
func (w *WorldState) placeOne(cand candidate, unlocked []storage.Identifier, roller dice.Roller) bool {
	rooms := unlocked
	if len(cand.item.AllowedRooms) > 0 {
		rooms = nil
		open := map[storage.Identifier]bool{}
		for _, id := range unlocked {
			open[id] = true
		}
		for _, raw := range cand.item.AllowedRooms {
			id := storage.NormalizeId(raw)
			if open[id] {
				rooms = append(rooms, id)
			}
		}
	}

	idx := dice.Pick(roller, len(rooms))
	if idx < 0 {
		return false
	}

	w.itemLocations[cand.id] = rooms[idx]
	delete(w.removed[EntityItem], cand.id)
	w.itemSpawnCounts[cand.id]++
	return true
}
